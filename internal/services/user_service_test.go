package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trapham24065/api-contact-book/internal/apperrors"
	"github.com/trapham24065/api-contact-book/internal/models"
	"github.com/trapham24065/api-contact-book/internal/services/dto"
)

func newAdminEnv(t *testing.T) (*testEnv, *models.User) {
	t.Helper()
	env := newTestEnv(t)
	registerTestUser(t, env, "root@example.com", "password123")
	admin, err := env.userRepo.FindByEmail("root@example.com")
	require.NoError(t, err)
	admin.Role = models.RoleAdmin
	require.NoError(t, env.userRepo.Update(admin))
	return env, admin
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestAdminCreateUser(t *testing.T) {
	env, admin := newAdminEnv(t)

	user, err := env.users.CreateUser(admin, dto.CreateUserRequest{
		Name:     "Managed",
		Email:    "managed@example.com",
		Password: "password123",
		Role:     intPtr(1),
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleStandard, user.Role)
	assert.Equal(t, 100, user.DailyQuota)

	// Explicit quota overrides the default.
	custom, err := env.users.CreateUser(admin, dto.CreateUserRequest{
		Name:       "Big Quota",
		Email:      "big@example.com",
		Password:   "password123",
		Role:       intPtr(1),
		DailyQuota: intPtr(5000),
	})
	require.NoError(t, err)
	assert.Equal(t, 5000, custom.DailyQuota)

	_, err = env.users.CreateUser(admin, dto.CreateUserRequest{
		Name:     "Dup",
		Email:    "managed@example.com",
		Password: "password123",
		Role:     intPtr(1),
	})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeEmailAlreadyExists, appErr.Code)
}

func TestAdminCreateUserPersistsAdminRole(t *testing.T) {
	env, admin := newAdminEnv(t)

	created, err := env.users.CreateUser(admin, dto.CreateUserRequest{
		Name:       "Second Admin",
		Email:      "admin2@example.com",
		Password:   "password123",
		Role:       intPtr(0),
		DailyQuota: intPtr(0),
	})
	require.NoError(t, err)

	// Re-read from storage: role 0 and quota 0 must survive the INSERT,
	// not just live on the returned struct.
	stored, err := env.userRepo.FindByID(created.UserID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, stored.Role)
	assert.True(t, stored.IsAdmin())
	assert.Equal(t, 0, stored.DailyQuota)
}

func TestAdminUpdateUser(t *testing.T) {
	env, admin := newAdminEnv(t)

	user, err := env.users.CreateUser(admin, dto.CreateUserRequest{
		Name:     "Target",
		Email:    "target@example.com",
		Password: "password123",
		Role:     intPtr(1),
	})
	require.NoError(t, err)

	updated, err := env.users.UpdateUser(admin, user.UserID, dto.UpdateUserRequest{
		Status:     strPtr("suspended"),
		DailyQuota: intPtr(10),
	})
	require.NoError(t, err)
	assert.Equal(t, models.UserStatusSuspended, updated.Status)
	assert.Equal(t, 10, updated.DailyQuota)
	assert.Equal(t, "Target", updated.Name)

	_, err = env.users.UpdateUser(admin, 9999, dto.UpdateUserRequest{Status: strPtr("active")})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestAdminListUsersSortSanitized(t *testing.T) {
	env, admin := newAdminEnv(t)

	_, err := env.users.CreateUser(admin, dto.CreateUserRequest{
		Name: "Zeta", Email: "z@example.com", Password: "password123", Role: intPtr(1),
	})
	require.NoError(t, err)

	// A hostile sort value falls back to a safe default instead of erroring.
	result, err := env.users.ListUsers(dto.ListUsersQuery{Sort: "email;DROP TABLE users:asc"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Total)

	result, err = env.users.ListUsers(dto.ListUsersQuery{Sort: "email:asc", Limit: 1})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "root@example.com", result.Items[0].Email)
}

func TestAdminDeleteUser(t *testing.T) {
	env, admin := newAdminEnv(t)

	user, err := env.users.CreateUser(admin, dto.CreateUserRequest{
		Name: "Doomed", Email: "doomed@example.com", Password: "password123", Role: intPtr(1),
	})
	require.NoError(t, err)

	require.NoError(t, env.users.DeleteUser(admin, user.UserID))

	_, err = env.users.GetUser(user.UserID)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode)

	err = env.users.DeleteUser(admin, user.UserID)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode)
}

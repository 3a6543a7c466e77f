package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerInput struct {
	Name     string `json:"name" validate:"required,max=150"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type changePasswordInput struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,strongpassword,nefield=CurrentPassword"`
}

func TestValidateSuccess(t *testing.T) {
	v := New()

	err := v.Validate(&registerInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "longenough",
	})
	assert.NoError(t, err)
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&registerInput{Email: "not-an-email", Password: "short"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)

	assert.Contains(t, vErr.Errors, "name")
	assert.Contains(t, vErr.Errors, "email")
	assert.Contains(t, vErr.Errors, "password")
	assert.Equal(t, "This field is required", vErr.Errors["name"])
	assert.Equal(t, "Must be a valid email address", vErr.Errors["email"])
	assert.Equal(t, "Must be at least 8 characters long", vErr.Errors["password"])
}

func TestStrongPassword(t *testing.T) {
	v := New()

	cases := []struct {
		password string
		valid    bool
	}{
		{"Str0ng!pass", true},
		{"alllowercase1!", false},
		{"ALLUPPERCASE1!", false},
		{"NoDigits!here", false},
		{"NoSymbols1here", false},
	}

	for _, tc := range cases {
		err := v.Validate(&changePasswordInput{
			CurrentPassword: "old-password",
			NewPassword:     tc.password,
		})
		if tc.valid {
			assert.NoError(t, err, "password %q", tc.password)
		} else {
			require.Error(t, err, "password %q", tc.password)
			vErr, ok := err.(*ValidationError)
			require.True(t, ok)
			assert.Contains(t, vErr.Errors, "new_password")
		}
	}
}

func TestNewPasswordMustDiffer(t *testing.T) {
	v := New()

	err := v.Validate(&changePasswordInput{
		CurrentPassword: "Same0ne!here",
		NewPassword:     "Same0ne!here",
	})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors["new_password"], "Must be different from")
}

package auth

import "github.com/trapham24065/api-contact-book/internal/models"

// CanAccessContact is the contact authorization policy: administrators can
// access any contact, standard users only their own.
func CanAccessContact(user *models.User, contact *models.Contact) bool {
	if user == nil || contact == nil {
		return false
	}
	if user.IsAdmin() {
		return true
	}
	return user.UserID == contact.UserID
}

// CanManageUsers gates the admin user-management endpoints.
func CanManageUsers(user *models.User) bool {
	return user != nil && user.IsAdmin()
}

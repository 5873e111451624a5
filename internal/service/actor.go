package service

import (
	"errors"

	"github.com/noah-isme/siaga-go-api/internal/models"
)

// ErrForbidden indicates the caller is authenticated but not allowed to act
// on the requested resource.
var ErrForbidden = errors.New("insufficient permissions")

// Actor identifies the authenticated caller of a service operation.
type Actor struct {
	ID   string
	Role string
}

// IsStaff reports whether the actor holds an admin or teacher role.
func (a Actor) IsStaff() bool {
	return a.Role == models.RoleAdmin || a.Role == models.RoleTeacher
}

// CanAccessUserScoped reports whether the actor may read records belonging to
// the given user: the owner always may, plus any of the allowed roles.
func (a Actor) CanAccessUserScoped(userID string, roles ...string) bool {
	if a.ID == userID {
		return true
	}
	for _, role := range roles {
		if a.Role == role {
			return true
		}
	}
	return false
}

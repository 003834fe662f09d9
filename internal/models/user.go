package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRole string
type UserStatus string

const (
	UserRoleOwner  UserRole = "owner"
	UserRoleRenter UserRole = "renter"

	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
)

func (r UserRole) Valid() bool {
	return r == UserRoleOwner || r == UserRoleRenter
}

type User struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Email          string             `json:"email" bson:"email" validate:"required,email"`
	Password       string             `json:"-" bson:"password"`
	Role           UserRole           `json:"role" bson:"role" validate:"required"`
	ProfilePicture string             `json:"profile_picture" bson:"profile_picture"`
	Status         UserStatus         `json:"status" bson:"status" default:"active"`
	LastLoginAt    *time.Time         `json:"last_login_at" bson:"last_login_at"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at" bson:"updated_at"`
}

// PublicProfile strips credentials and internal fields before a user record
// leaves the API.
func (u *User) PublicProfile() map[string]interface{} {
	return map[string]interface{}{
		"id":              u.ID,
		"name":            u.Name,
		"email":           u.Email,
		"role":            u.Role,
		"profile_picture": u.ProfilePicture,
		"created_at":      u.CreatedAt,
	}
}

package entity

import (
	"time"
)

// User represents a registered user in the system
type User struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	FirstName    string    `bson:"first_name" json:"first_name"`
	LastName     string    `bson:"last_name" json:"last_name"`
	Role         UserRole  `bson:"role" json:"role"`
	Profile      Profile   `bson:"profile" json:"profile"`
	IsActive     bool      `bson:"is_active" json:"is_active"`
	JoinedAt     time.Time `bson:"joined_at" json:"joined_at"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// Profile holds the free-form profile fields of a user.
type Profile struct {
	Bio    *string  `bson:"bio,omitempty" json:"bio,omitempty"`
	Avatar *string  `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Skills []string `bson:"skills" json:"skills"`
}

// UserRole represents the role of a user in the system
type UserRole string

const (
	UserRoleStudent    UserRole = "student"
	UserRoleInstructor UserRole = "instructor"
)

func DefaultRole() UserRole {
	return UserRoleStudent
}

package users

import (
	"time"

	"github.com/google/uuid"
)

// Role is the access level of a user account
type Role string

const (
	RoleUser  Role = "USER"
	RoleOwner Role = "OWNER"
	RoleAdmin Role = "ADMIN"
)

type User struct {
	ID        uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	Name      string    `json:"name" gorm:"not null"`
	Phone     string    `json:"phone" gorm:"uniqueIndex;not null;size:15"`
	Email     string    `json:"email,omitempty" gorm:"size:255"`
	Role      Role      `json:"role" gorm:"not null;default:'USER'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func IsValidRole(role string) bool {
	switch role {
	case string(RoleUser), string(RoleOwner), string(RoleAdmin):
		return true
	default:
		return false
	}
}

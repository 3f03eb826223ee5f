package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Username  string    `json:"username" db:"username" example:"alice"`
	Password  string    `json:"-" db:"password"` // bcrypt digest, excluded from JSON
	Role      RoleType  `json:"role" db:"role" example:"student"`
	Grade     *string   `json:"grade,omitempty" db:"grade" example:"初二"` // nullable
	Avatar    *string   `json:"avatar,omitempty" db:"avatar"`            // nullable
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

package model

import (
	"strings"
	"time"
)

type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email" gorm:"uniqueIndex"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FullName is the display name used in instructor review views. Either part
// may be empty for accounts provisioned by the external identity provider.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

package models

import "time"

// User mirrors the external identity provider's profile. Rows are created or
// refreshed on every authenticated sync and are never deleted by this service.
type User struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	Name      string    `json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	AvatarURL string    `json:"avatarUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

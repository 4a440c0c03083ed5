package models

import "time"

// Presence holds the last heartbeat per user. There is no explicit offline
// event; staleness is computed at read time against a fixed window.
type Presence struct {
	UserID    string    `gorm:"primaryKey;type:text" json:"userId"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Presence) TableName() string {
	return "presence"
}

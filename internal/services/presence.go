package services

import (
	"time"

	"gorm.io/gorm/clause"

	"github.com/The-morning-star23/tars-chart/internal/database"
	"github.com/The-morning-star23/tars-chart/internal/models"
)

// OnlineWindow is how long a heartbeat keeps a user online. Clients beat
// every 10-15s, strictly inside the window, so coverage is continuous while
// the tab is open.
const OnlineWindow = 30 * time.Second

// Heartbeat records that the user is alive right now.
func Heartbeat(userID string) error {
	row := models.Presence{
		UserID:    userID,
		UpdatedAt: time.Now(),
	}
	return database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"updated_at"}),
	}).Create(&row).Error
}

// OnlineUserIDs returns users whose last heartbeat is within the window at
// the given instant. Pure function of stored timestamps; no background
// expiry job exists.
func OnlineUserIDs(now time.Time) ([]string, error) {
	var rows []models.Presence
	err := database.DB.
		Where("updated_at > ?", now.Add(-OnlineWindow)).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.UserID)
	}
	return ids, nil
}

// IsOnline reports whether a single user is within the presence window.
func IsOnline(userID string, now time.Time) (bool, error) {
	var n int64
	err := database.DB.Model(&models.Presence{}).
		Where("user_id = ? AND updated_at > ?", userID, now.Add(-OnlineWindow)).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

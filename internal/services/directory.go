package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/The-morning-star23/tars-chart/internal/database"
	"github.com/The-morning-star23/tars-chart/internal/models"
	apperrors "github.com/The-morning-star23/tars-chart/pkg/errors"
	"github.com/The-morning-star23/tars-chart/pkg/utils"
)

// SyncUser upserts the local profile row for an authenticated identity.
// Called on every successful authentication so name/avatar changes at the
// identity provider propagate here.
func SyncUser(userID, name, email, avatarURL string) (*models.User, error) {
	if userID == "" {
		return nil, apperrors.Unauthorized("caller identity required")
	}
	if email == "" {
		return nil, apperrors.BadRequest("email required")
	}

	var user models.User
	err := database.DB.First(&user, "id = ?", userID).Error
	if err == nil {
		if user.Name != name || user.AvatarURL != avatarURL || user.Email != email {
			updates := map[string]interface{}{
				"name":       name,
				"email":      email,
				"avatar_url": avatarURL,
			}
			if err := database.DB.Model(&user).Updates(updates).Error; err != nil {
				return nil, err
			}
		}
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = models.User{
		ID:        userID,
		Name:      name,
		Email:     email,
		AvatarURL: avatarURL,
		CreatedAt: time.Now(),
	}
	if err := database.DB.Create(&user).Error; err != nil {
		// Concurrent sync for the same identity: the first writer wins.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
				return nil, err
			}
			return &user, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetUser fetches a single profile by ID.
func GetUser(userID string) (*models.User, error) {
	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("user not found")
		}
		return nil, err
	}
	return &user, nil
}

// SearchUsers returns all users except the caller, optionally filtered by a
// case-insensitive name/email match.
func SearchUsers(callerID, term string) ([]models.User, error) {
	query := database.DB.Model(&models.User{}).Where("id <> ?", callerID)

	if term = strings.TrimSpace(term); term != "" {
		like := utils.SanitizeSearchQuery(term)
		query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?)", like, like)
	}

	var users []models.User
	if err := query.Order("name asc").Limit(50).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

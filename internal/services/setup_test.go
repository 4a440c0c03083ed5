package services

import (
	"fmt"
	"sync/atomic"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/The-morning-star23/tars-chart/internal/database"
	"github.com/The-morning-star23/tars-chart/internal/models"
	"github.com/The-morning-star23/tars-chart/pkg/logger"
)

var testDBCounter int64

// SetupTestDB points database.DB at a fresh in-memory SQLite database so
// each test starts from empty state.
func SetupTestDB() {
	logger.Init("test")

	n := atomic.AddInt64(&testDBCounter, 1)
	dsn := fmt.Sprintf("file:services_test_%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		panic(err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Conversation{},
		&models.ConversationMember{},
		&models.Message{},
		&models.MessageReaction{},
		&models.ReadReceipt{},
		&models.TypingStatus{},
		&models.Presence{},
	); err != nil {
		panic(err)
	}
	database.DB = db
}

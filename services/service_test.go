package services

import (
	"testing"
	"time"

	"hotel-booking/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory SQLite database with foreign keys enabled so
// cascade rules behave like production MySQL. A single connection keeps the
// in-memory database alive for the whole test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Room{},
		&models.Booking{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	user, err := NewUserService(db).Create(CreateUserInput{Email: email, Password: "testpassword"})
	require.NoError(t, err)
	return user
}

func createTestRoom(t *testing.T, db *gorm.DB, number string, price int) models.Room {
	t.Helper()
	room, err := NewRoomService(db).Create(CreateRoomInput{Number: number, Size: 25, Price: price})
	require.NoError(t, err)
	return room
}

func date(year int, month time.Month, day int) models.Date {
	return models.NewDate(year, month, day)
}

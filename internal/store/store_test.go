package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/example/pickles/internal/models"
	"github.com/example/pickles/internal/utils"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Order{}, &models.Contact{}))
	return db
}

func TestUsersCreateAndVerify(t *testing.T) {
	ctx := context.Background()
	users := NewUsers(newTestDB(t))

	created, err := users.Create(ctx, "test@test.com", "testuser", "test123")
	require.NoError(t, err)
	assert.Equal(t, "test@test.com", created.Email)
	assert.Equal(t, models.UserStatusActive, created.Status)
	assert.Equal(t, utils.HashPassword("test123"), created.Password)

	verified, err := users.VerifyCredentials(ctx, "test@test.com", "test123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, verified.ID)
	assert.Equal(t, "testuser", verified.Name)

	_, err = users.VerifyCredentials(ctx, "test@test.com", "wrong")
	assert.ErrorIs(t, err, ErrCredentialMismatch)

	_, err = users.VerifyCredentials(ctx, "nouser@x", "anything")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUsersDuplicateCreateLeavesRecordUnchanged(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUsers(db)

	_, err := users.Create(ctx, "a@x.com", "A", "secret")
	require.NoError(t, err)

	_, err = users.Create(ctx, "a@x.com", "B", "other")
	assert.ErrorIs(t, err, ErrDuplicateUser)

	var stored models.User
	require.NoError(t, db.Where("email = ?", "a@x.com").First(&stored).Error)
	assert.Equal(t, "A", stored.Name)
	assert.Equal(t, utils.HashPassword("secret"), stored.Password)
}

func TestRecordsInsertOrderGeneratesUniqueIDs(t *testing.T) {
	ctx := context.Background()
	records := NewRecords(newTestDB(t))

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		id, err := records.InsertOrder(ctx, &models.Order{
			Name:        "A",
			Email:       "a@x.com",
			Item:        "dill",
			Quantity:    1,
			Timestamp:   time.Now().UTC(),
			Status:      models.OrderStatusPending,
			TotalAmount: 100,
			Source:      models.SourceOrderForm,
		})
		require.NoError(t, err)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestRecordsInsertContact(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	records := NewRecords(db)

	id, err := records.InsertContact(ctx, &models.Contact{
		Name:      "A",
		Email:     "a@x.com",
		Message:   "hello",
		Timestamp: time.Now().UTC(),
		Status:    models.ContactStatusNew,
	})
	require.NoError(t, err)

	var stored models.Contact
	require.NoError(t, db.First(&stored, "id = ?", id).Error)
	assert.Equal(t, "hello", stored.Message)
	assert.Equal(t, models.ContactStatusNew, stored.Status)
}

func TestRecordsHealth(t *testing.T) {
	records := NewRecords(newTestDB(t))
	assert.NoError(t, records.Health(context.Background()))
}

package repository

import (
	"path/filepath"
	"testing"

	"github.com/vermaanurag1532/Restro-sub000/entity"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.Order{}))
	return db
}

func TestNextSuffixIDStartsAtOne(t *testing.T) {
	db := newTestDB(t)

	id, err := NextSuffixID(db, "orders", "order_id", "ORDER")
	require.NoError(t, err)
	require.Equal(t, "ORDER-1", id)
}

func TestNextSuffixIDNumericNotLexicographic(t *testing.T) {
	db := newTestDB(t)

	// ORDER-9 sorts after ORDER-10 as text; the suffix must be compared
	// as a number.
	for _, id := range []string{"ORDER-1", "ORDER-9", "ORDER-10"} {
		require.NoError(t, db.Create(&entity.Order{OrderID: id}).Error)
	}

	id, err := NextSuffixID(db, "orders", "order_id", "ORDER")
	require.NoError(t, err)
	require.Equal(t, "ORDER-11", id)
}

func TestNextSuffixIDMonotonic(t *testing.T) {
	db := newTestDB(t)

	for i := 0; i < 5; i++ {
		id, err := NextSuffixID(db, "orders", "order_id", "ORDER")
		require.NoError(t, err)
		require.NoError(t, db.Create(&entity.Order{OrderID: id}).Error)
	}

	var last entity.Order
	require.NoError(t, db.Order("length(order_id) DESC, order_id DESC").First(&last).Error)
	require.Equal(t, "ORDER-5", last.OrderID)
}

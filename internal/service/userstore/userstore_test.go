package userstore

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cafetec/cafetec-api/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	return db
}

func TestFindOrCreateCreatesOnFirstUse(t *testing.T) {
	db := newTestDB(t)

	user, created, err := FindOrCreate(context.Background(), db, "Juan Pérez", "juan@example.com")
	require.NoError(t, err)
	require.True(t, created)
	require.NotZero(t, user.ID)
	require.Equal(t, "Juan Pérez", user.Name)
}

func TestFindOrCreateIsIdempotentPerEmail(t *testing.T) {
	db := newTestDB(t)

	first, created, err := FindOrCreate(context.Background(), db, "Juan", "juan@example.com")
	require.NoError(t, err)
	require.True(t, created)

	// the name on file is kept, not overwritten
	second, created, err := FindOrCreate(context.Background(), db, "Otro Nombre", "juan@example.com")
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, "Juan", second.Name)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestFindOrCreateRecoversFromLostRace(t *testing.T) {
	db := newTestDB(t)

	// a concurrent writer inserted the row between lookup and create
	require.NoError(t, db.Create(&models.User{Name: "Ana", Email: "ana@example.com"}).Error)

	user, created, err := FindOrCreate(context.Background(), db, "Ana", "ana@example.com")
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, "Ana", user.Name)
}

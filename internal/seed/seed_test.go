package seed

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rlozano/campus-canteen-backend/pkg/config"
	"github.com/rlozano/campus-canteen-backend/pkg/db/models"
	"github.com/rlozano/campus-canteen-backend/pkg/logger"
)

func newSeedTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:seed_%s?mode=memory&cache=shared&_busy_timeout=5000", uuid.NewString())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.MenuItem{}, &models.TimeSlot{}, &models.Notice{}))
	return conn
}

func TestRunSeedsEmptyTables(t *testing.T) {
	conn := newSeedTestDB(t)
	logg := logger.New(logger.Options{ServiceName: "test"})

	require.NoError(t, Run(context.Background(), conn, config.SlotsConfig{DefaultCapacity: 20}, logg))

	var menu, slots, notices int64
	require.NoError(t, conn.Model(&models.MenuItem{}).Count(&menu).Error)
	require.NoError(t, conn.Model(&models.TimeSlot{}).Count(&slots).Error)
	require.NoError(t, conn.Model(&models.Notice{}).Count(&notices).Error)
	require.EqualValues(t, 6, menu)
	require.EqualValues(t, 6, slots)
	require.EqualValues(t, 2, notices)

	var slot models.TimeSlot
	require.NoError(t, conn.Where("time = ?", "9:00-10:00").First(&slot).Error)
	require.Equal(t, "9:00 - 10:00 AM", slot.Label)
	require.Equal(t, 20, slot.Total)
	require.Zero(t, slot.Booked)
}

func TestRunIsIdempotent(t *testing.T) {
	conn := newSeedTestDB(t)
	logg := logger.New(logger.Options{ServiceName: "test"})
	cfg := config.SlotsConfig{DefaultCapacity: 20}

	require.NoError(t, Run(context.Background(), conn, cfg, logg))
	require.NoError(t, Run(context.Background(), conn, cfg, logg))

	var menu int64
	require.NoError(t, conn.Model(&models.MenuItem{}).Count(&menu).Error)
	require.EqualValues(t, 6, menu)
}

func TestRunSkipsNonEmptyTables(t *testing.T) {
	conn := newSeedTestDB(t)
	logg := logger.New(logger.Options{ServiceName: "test"})

	existing := models.TimeSlot{ID: uuid.New(), Time: "8:00-9:00", Label: "early", Total: 5}
	require.NoError(t, conn.Create(&existing).Error)

	require.NoError(t, Run(context.Background(), conn, config.SlotsConfig{DefaultCapacity: 20}, logg))

	var slots int64
	require.NoError(t, conn.Model(&models.TimeSlot{}).Count(&slots).Error)
	require.EqualValues(t, 1, slots)

	// Other tables still get their defaults.
	var menu int64
	require.NoError(t, conn.Model(&models.MenuItem{}).Count(&menu).Error)
	require.EqualValues(t, 6, menu)
}

func TestRunUsesConfiguredCapacity(t *testing.T) {
	conn := newSeedTestDB(t)
	logg := logger.New(logger.Options{ServiceName: "test"})

	require.NoError(t, Run(context.Background(), conn, config.SlotsConfig{DefaultCapacity: 50}, logg))

	var slot models.TimeSlot
	require.NoError(t, conn.First(&slot).Error)
	require.Equal(t, 50, slot.Total)
}

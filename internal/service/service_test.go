package service_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"go-plant-shop/internal/domain"
	"go-plant-shop/pkg/utils"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.User{}, &domain.Plant{}, &domain.Order{}, &domain.OrderItem{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string, admin bool) *domain.User {
	t.Helper()
	u := &domain.User{
		ID:           utils.NewID(),
		Email:        email,
		Name:         "Test User",
		Admin:        admin,
		PasswordHash: utils.HashPassword("password"),
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedPlant(t *testing.T, db *gorm.DB, name string, price int64, stock int) *domain.Plant {
	t.Helper()
	p := &domain.Plant{
		ID:          utils.NewID(),
		Name:        name,
		Price:       price,
		Description: "a plant",
		Stock:       stock,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func plantStock(t *testing.T, db *gorm.DB, id string) int {
	t.Helper()
	var p domain.Plant
	require.NoError(t, db.First(&p, "id = ?", id).Error)
	return p.Stock
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

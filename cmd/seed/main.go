package main

import (
	"os"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"go-plant-shop/internal/core/config"
	"go-plant-shop/internal/core/database"
	"go-plant-shop/internal/core/logger"
	"go-plant-shop/internal/domain"
	"go-plant-shop/internal/seed"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		log.Fatal("db open", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&domain.User{}, &domain.Plant{}, &domain.Order{}, &domain.OrderItem{},
	); err != nil {
		log.Fatal("automigrate failed", zap.Error(err))
	}

	if err := seed.Run(db, log, seed.Options{
		Admins:          cfg.Seed.Admins,
		Users:           cfg.Seed.Users,
		Plants:          cfg.Seed.Plants,
		CredentialsFile: "users.txt",
	}); err != nil {
		log.Fatal("seed failed", zap.Error(err))
	}
}

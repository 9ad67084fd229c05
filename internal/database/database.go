package database

import (
	"context"
	"errors"

	"lsbets/config"
	"lsbets/internal/domain"
	"lsbets/internal/models"
	"lsbets/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return db, nil
}

// AutoMigrate runs Gorm auto-migration for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Bankroll{},
		&models.Bet{},
		&models.WithdrawRequest{},
		&models.Notification{},
	)
}

// SeedAdmin creates the adjudication account on first boot. Skipped when the
// account exists or no password is configured.
func SeedAdmin(db *gorm.DB, cfg *config.AdminConfig, log *zap.Logger) {
	if cfg.Password == "" {
		log.Warn("ADMIN_PASSWORD not set, admin account not seeded")
		return
	}
	users := repository.NewUserRepository(db)
	ctx := context.Background()
	if _, err := users.GetByUsername(ctx, cfg.Username); !errors.Is(err, domain.ErrNotFound) {
		if err != nil {
			log.Error("admin seed: lookup failed", zap.Error(err))
		}
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("admin seed: hash failed", zap.Error(err))
		return
	}
	u := models.User{
		Username:     cfg.Username,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	}
	if err := users.Create(ctx, &u); err != nil {
		log.Error("admin seed: create failed", zap.Error(err))
		return
	}
	log.Info("admin account seeded", zap.String("username", cfg.Username))
}

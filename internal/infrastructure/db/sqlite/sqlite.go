package sqlite

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/saasdash/dashboard-api/internal/core/domain"
)

// Connect opens (creating if necessary) the SQLite database at dbPath and
// migrates the schema. TranslateError is on so unique-constraint violations
// surface as gorm.ErrDuplicatedKey and can be mapped to domain errors.
func Connect(dbPath string, debug bool) (*gorm.DB, error) {
	if err := os.MkdirAll(path.Dir(dbPath), fs.ModePerm); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	logLevel := gormlogger.Silent
	if debug {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	models := []interface{}{
		&domain.User{},
		&domain.Product{},
		&domain.Invoice{},
	}
	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			return nil, fmt.Errorf("auto migrate: %w", err)
		}
	}

	return db, nil
}

// SeedDemo creates the two demo accounts when the users table is empty.
// Idempotent: a populated table is left untouched.
func SeedDemo(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&domain.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	repo := NewUserRepository(db)
	accounts := []struct {
		email    string
		password string
		role     string
	}{
		{"admin@demo.com", "admin", domain.RoleAdmin},
		{"user@demo.com", "user", domain.RoleUser},
	}

	now := time.Now().UTC()
	for _, a := range accounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		if _, err := repo.Create(ctx, &domain.User{
			Email:        a.email,
			PasswordHash: string(hash),
			Role:         a.role,
			CreatedAt:    now,
			UpdatedAt:    now,
		}); err != nil {
			return fmt.Errorf("seed %s: %w", a.email, err)
		}
	}
	return nil
}

// Package seed provisions the initial admin account so a fresh deployment
// can reach the price-configuration endpoints.
package seed

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authdomain "github.com/mmdpc/courierd/internal/auth/domain"
	"github.com/mmdpc/courierd/internal/config"
)

// EnsureAdmin creates the configured admin account if it does not exist.
// Without seed credentials this is a no-op; an existing account is never
// overwritten, so rotating the password means deleting the row first.
func EnsureAdmin(db *gorm.DB, cfg config.Config, log *zap.Logger) error {
	email := strings.ToLower(strings.TrimSpace(cfg.Seed.AdminEmail))
	password := cfg.Seed.AdminPassword
	if email == "" || password == "" {
		log.Info("no seed admin configured, skipping")
		return nil
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing authdomain.Admin
		err := tx.WithContext(ctx).Where("email = ?", email).First(&existing).Error
		if err == nil {
			log.Info("seed admin already present", zap.String("email", email))
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		admin := authdomain.Admin{
			ID:           node.Generate(),
			Email:        email,
			PasswordHash: string(hashed),
			CreatedAt:    time.Now().UTC(),
		}
		if err := tx.WithContext(ctx).Create(&admin).Error; err != nil {
			return err
		}
		log.Info("seed admin created", zap.String("email", email))
		return nil
	})
}

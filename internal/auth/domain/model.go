// Package domain holds admin accounts and the token contract for the
// price-configuration surface.
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Admin struct {
	ID           snowflake.ID `gorm:"primaryKey"`
	Email        string       `gorm:"uniqueIndex;not null"`
	PasswordHash string       `gorm:"not null"`
	CreatedAt    time.Time    `gorm:"not null"`
}

func (Admin) TableName() string { return "admins" }

var (
	ErrMissingCredentials = errors.New("auth: missing credentials")
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	ErrUnauthorized       = errors.New("auth: unauthorized")
)

type Repository interface {
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*Admin, error)
	Insert(ctx context.Context, db *gorm.DB, admin *Admin) error
}

type Service interface {
	// Login checks the credentials and mints a bearer token carrying the
	// admin claim.
	Login(ctx context.Context, email, password string) (string, error)
	// VerifyToken validates a bearer token and requires the admin claim.
	VerifyToken(token string) error
}

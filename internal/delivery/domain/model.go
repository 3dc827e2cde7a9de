// Package domain holds the persisted delivery record and the request
// contract for the public delivery endpoint.
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

const (
	MailStatusSent    = "sent"
	MailStatusNotSent = "not sent"
)

type Delivery struct {
	ID                    snowflake.ID `gorm:"primaryKey" json:"-"`
	CustomerID            snowflake.ID `gorm:"not null;index" json:"-"`
	PackageCount          int          `gorm:"not null" json:"packageCount"`
	Distance              float64      `gorm:"not null" json:"distance"`
	Date                  time.Time    `gorm:"not null" json:"date"`
	Cost                  float64      `gorm:"not null" json:"cost"`
	BaseCost              float64      `gorm:"not null" json:"baseCost"`
	AdditionalPackageCost float64      `gorm:"not null" json:"additionalPackageCost"`
	DistanceCost          float64      `gorm:"not null" json:"distanceCost"`
	WeekendTariff         bool         `gorm:"not null" json:"weekendTariff"`
	MailStatus            string       `gorm:"not null" json:"-"`
	CreatedAt             time.Time    `gorm:"not null" json:"-"`
}

func (Delivery) TableName() string { return "deliveries" }

// CreateRequest is the public request-delivery payload. Numeric fields are
// pointers so a missing field is distinguishable from zero.
type CreateRequest struct {
	PackageCount *int       `json:"packageCount"`
	Distance     *float64   `json:"distance"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	Date         *time.Time `json:"date"`
	Name         string     `json:"name"`
	LastName     string     `json:"lastName"`
}

var (
	ErrMissingParams = errors.New("delivery: missing params")
	ErrInvalidParams = errors.New("delivery: invalid params")
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, delivery *Delivery) error
}

type Service interface {
	// Create prices the trip, persists the delivery record, and sends the
	// confirmation mail best-effort; the returned record carries the
	// resulting mail status.
	Create(ctx context.Context, req CreateRequest) (*Delivery, error)
}

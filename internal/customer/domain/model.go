// Package domain holds the customer record created on first delivery
// request.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type Customer struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"-"`
	Email     string       `gorm:"uniqueIndex;not null" json:"email"`
	Phone     string       `gorm:"not null" json:"phone"`
	Name      string       `gorm:"not null" json:"name"`
	LastName  string       `gorm:"not null" json:"lastName"`
	CreatedAt time.Time    `gorm:"not null" json:"-"`
}

func (Customer) TableName() string { return "customers" }

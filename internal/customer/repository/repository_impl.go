package repository

import (
	"context"

	customerdomain "github.com/mmdpc/courierd/internal/customer/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() customerdomain.Repository {
	return &repo{}
}

func (r *repo) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*customerdomain.Customer, error) {
	var c customerdomain.Customer
	err := db.WithContext(ctx).Raw(
		`SELECT id, email, phone, name, last_name, created_at
		 FROM customers WHERE email = ? LIMIT 1`,
		email,
	).Scan(&c).Error
	if err != nil {
		return nil, err
	}
	if c.ID == 0 {
		return nil, nil
	}
	return &c, nil
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, customer *customerdomain.Customer) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO customers (id, email, phone, name, last_name, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		customer.ID,
		customer.Email,
		customer.Phone,
		customer.Name,
		customer.LastName,
		customer.CreatedAt,
	).Error
}

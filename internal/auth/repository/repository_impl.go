package repository

import (
	"context"

	authdomain "github.com/mmdpc/courierd/internal/auth/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() authdomain.Repository {
	return &repo{}
}

func (r *repo) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*authdomain.Admin, error) {
	var a authdomain.Admin
	err := db.WithContext(ctx).Raw(
		`SELECT id, email, password_hash, created_at
		 FROM admins WHERE email = ? LIMIT 1`,
		email,
	).Scan(&a).Error
	if err != nil {
		return nil, err
	}
	if a.ID == 0 {
		return nil, nil
	}
	return &a, nil
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, admin *authdomain.Admin) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO admins (id, email, password_hash, created_at)
		 VALUES (?, ?, ?, ?)`,
		admin.ID,
		admin.Email,
		admin.PasswordHash,
		admin.CreatedAt,
	).Error
}

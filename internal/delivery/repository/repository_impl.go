package repository

import (
	"context"

	deliverydomain "github.com/mmdpc/courierd/internal/delivery/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() deliverydomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, delivery *deliverydomain.Delivery) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO deliveries (
			id, customer_id, package_count, distance, date, cost,
			base_cost, additional_package_cost, distance_cost,
			weekend_tariff, mail_status, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		delivery.ID,
		delivery.CustomerID,
		delivery.PackageCount,
		delivery.Distance,
		delivery.Date,
		delivery.Cost,
		delivery.BaseCost,
		delivery.AdditionalPackageCost,
		delivery.DistanceCost,
		delivery.WeekendTariff,
		delivery.MailStatus,
		delivery.CreatedAt,
	).Error
}

package service

import (
	"context"
	"errors"
	"strings"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mmdpc/courierd/internal/clock"
	customerdomain "github.com/mmdpc/courierd/internal/customer/domain"
	deliverydomain "github.com/mmdpc/courierd/internal/delivery/domain"
	"github.com/mmdpc/courierd/internal/mail"
	pricingdomain "github.com/mmdpc/courierd/internal/pricing/domain"
)

type Params struct {
	fx.In

	DB           *gorm.DB
	Log          *zap.Logger
	GenID        *snowflake.Node
	Clock        clock.Clock
	Repo         deliverydomain.Repository
	CustomerRepo customerdomain.Repository
	Pricing      pricingdomain.Service
	Mailer       mail.Sender
}

type Service struct {
	db           *gorm.DB
	log          *zap.Logger
	genID        *snowflake.Node
	clock        clock.Clock
	repo         deliverydomain.Repository
	customerRepo customerdomain.Repository
	pricing      pricingdomain.Service
	mailer       mail.Sender
}

func New(p Params) deliverydomain.Service {
	return &Service{
		db:           p.DB,
		log:          p.Log.Named("delivery.service"),
		genID:        p.GenID,
		clock:        p.Clock,
		repo:         p.Repo,
		customerRepo: p.CustomerRepo,
		pricing:      p.Pricing,
		mailer:       p.Mailer,
	}
}

func (s *Service) Create(ctx context.Context, req deliverydomain.CreateRequest) (*deliverydomain.Delivery, error) {
	if err := validateRequest(&req); err != nil {
		return nil, err
	}

	customer, err := s.findOrCreateCustomer(ctx, req)
	if err != nil {
		return nil, err
	}

	quote, err := s.pricing.QuoteFor(ctx, *req.Distance, *req.PackageCount, *req.Date)
	if err != nil {
		return nil, err
	}

	entity := &deliverydomain.Delivery{
		ID:                    s.genID.Generate(),
		CustomerID:            customer.ID,
		PackageCount:          *req.PackageCount,
		Distance:              *req.Distance,
		Date:                  *req.Date,
		Cost:                  quote.Price,
		BaseCost:              quote.Base,
		AdditionalPackageCost: quote.AdditionalPackages,
		DistanceCost:          quote.DistanceCost,
		WeekendTariff:         quote.WeekendTariff,
		MailStatus:            deliverydomain.MailStatusNotSent,
		CreatedAt:             s.clock.Now(ctx),
	}

	// Notification is best effort: a failed or unconfigured mailer never
	// fails the delivery request.
	if s.mailer.Enabled() {
		confirmation := mail.Confirmation{
			Email:        customer.Email,
			Name:         customer.Name,
			LastName:     customer.LastName,
			PackageCount: entity.PackageCount,
			Distance:     entity.Distance,
			Price:        entity.Cost,
			Date:         entity.Date,
		}
		if err := s.mailer.SendConfirmation(ctx, confirmation); err != nil {
			s.log.Warn("confirmation mail failed", zap.String("email", customer.Email), zap.Error(err))
		} else {
			entity.MailStatus = deliverydomain.MailStatusSent
		}
	}

	if err := s.repo.Insert(ctx, s.db, entity); err != nil {
		return nil, err
	}

	s.log.Info("delivery recorded",
		zap.Float64("distance", entity.Distance),
		zap.Int("package_count", entity.PackageCount),
		zap.Float64("cost", entity.Cost),
		zap.String("mail_status", entity.MailStatus))
	return entity, nil
}

func (s *Service) findOrCreateCustomer(ctx context.Context, req deliverydomain.CreateRequest) (*customerdomain.Customer, error) {
	existing, err := s.customerRepo.FindByEmail(ctx, s.db, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	customer := &customerdomain.Customer{
		ID:        s.genID.Generate(),
		Email:     req.Email,
		Phone:     req.Phone,
		Name:      req.Name,
		LastName:  req.LastName,
		CreatedAt: s.clock.Now(ctx),
	}
	if err := s.customerRepo.Insert(ctx, s.db, customer); err != nil {
		// A concurrent request may have created the same customer; the
		// unique index makes the insert lose, the lookup wins.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return s.customerRepo.FindByEmail(ctx, s.db, req.Email)
		}
		return nil, err
	}
	return customer, nil
}

func validateRequest(req *deliverydomain.CreateRequest) error {
	req.Email = strings.TrimSpace(req.Email)
	if req.PackageCount == nil || req.Distance == nil || req.Date == nil ||
		req.Email == "" || req.Name == "" || req.LastName == "" || req.Phone == "" {
		return deliverydomain.ErrMissingParams
	}
	if *req.PackageCount < 1 {
		return deliverydomain.ErrInvalidParams
	}
	return nil
}

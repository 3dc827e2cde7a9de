package service

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authdomain "github.com/mmdpc/courierd/internal/auth/domain"
	"github.com/mmdpc/courierd/internal/config"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Cfg  config.Config
	Repo authdomain.Repository
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	repo     authdomain.Repository
	secret   []byte
	tokenTTL time.Duration
}

func New(p Params) authdomain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("auth.service"),
		repo:     p.Repo,
		secret:   []byte(p.Cfg.Auth.Secret),
		tokenTTL: p.Cfg.Auth.TokenTTL,
	}
}

func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", authdomain.ErrMissingCredentials
	}

	admin, err := s.repo.FindByEmail(ctx, s.db, email)
	if err != nil {
		return "", err
	}
	if admin == nil {
		return "", authdomain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		s.log.Debug("login rejected", zap.String("email", email))
		return "", authdomain.ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"isAdmin": true,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", err
	}

	s.log.Info("admin logged in", zap.String("email", email))
	return signed, nil
}

// VerifyToken accepts the raw token value from the Authorization header;
// an optional "Bearer " prefix is tolerated. Anything that does not parse
// as an HS256 token signed with our secret and carrying isAdmin=true is
// unauthorized.
func (s *Service) VerifyToken(raw string) error {
	raw = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), "Bearer "))
	if raw == "" {
		return authdomain.ErrUnauthorized
	}

	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, authdomain.ErrUnauthorized
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return authdomain.ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return authdomain.ErrUnauthorized
	}
	if isAdmin, _ := claims["isAdmin"].(bool); !isAdmin {
		return authdomain.ErrUnauthorized
	}
	return nil
}

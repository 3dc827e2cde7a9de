package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/mmdpc/courierd/internal/auth/repository"
	"github.com/mmdpc/courierd/internal/config"

	authdomain "github.com/mmdpc/courierd/internal/auth/domain"
)

const testSecret = "test-secret"

func newTestService(t *testing.T) authdomain.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&authdomain.Admin{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	hashed, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&authdomain.Admin{
		ID:           node.Generate(),
		Email:        "admin@example.com",
		PasswordHash: string(hashed),
		CreatedAt:    time.Now().UTC(),
	}).Error)

	return New(Params{
		DB:  db,
		Log: zap.NewNop(),
		Cfg: config.Config{
			Auth: config.AuthConfig{Secret: testSecret, TokenTTL: time.Hour},
		},
		Repo: repository.Provide(),
	})
}

func TestLogin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	t.Run("missing credentials", func(t *testing.T) {
		_, err := svc.Login(ctx, "", "hunter2")
		assert.ErrorIs(t, err, authdomain.ErrMissingCredentials)

		_, err = svc.Login(ctx, "admin@example.com", "")
		assert.ErrorIs(t, err, authdomain.ErrMissingCredentials)
	})

	t.Run("unknown account", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody@example.com", "hunter2")
		assert.ErrorIs(t, err, authdomain.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "admin@example.com", "hunter3")
		assert.ErrorIs(t, err, authdomain.ErrInvalidCredentials)
	})

	t.Run("valid credentials", func(t *testing.T) {
		token, err := svc.Login(ctx, "admin@example.com", "hunter2")
		require.NoError(t, err)
		require.NotEmpty(t, token)
		assert.NoError(t, svc.VerifyToken(token))
		assert.NoError(t, svc.VerifyToken("Bearer "+token))
	})
}

func TestVerifyToken(t *testing.T) {
	svc := newTestService(t)

	t.Run("empty token", func(t *testing.T) {
		assert.ErrorIs(t, svc.VerifyToken(""), authdomain.ErrUnauthorized)
		assert.ErrorIs(t, svc.VerifyToken("Bearer "), authdomain.ErrUnauthorized)
	})

	t.Run("garbage token", func(t *testing.T) {
		assert.ErrorIs(t, svc.VerifyToken("not-a-jwt"), authdomain.ErrUnauthorized)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"isAdmin": true,
			"exp":     time.Now().Add(time.Hour).Unix(),
		})
		signed, err := token.SignedString([]byte("other-secret"))
		require.NoError(t, err)
		assert.ErrorIs(t, svc.VerifyToken(signed), authdomain.ErrUnauthorized)
	})

	t.Run("missing admin claim", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		signed, err := token.SignedString([]byte(testSecret))
		require.NoError(t, err)
		assert.ErrorIs(t, svc.VerifyToken(signed), authdomain.ErrUnauthorized)
	})

	t.Run("expired token", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"isAdmin": true,
			"exp":     time.Now().Add(-time.Minute).Unix(),
		})
		signed, err := token.SignedString([]byte(testSecret))
		require.NoError(t, err)
		assert.ErrorIs(t, svc.VerifyToken(signed), authdomain.ErrUnauthorized)
	})
}

package auth

import (
	"github.com/mmdpc/courierd/internal/auth/repository"
	"github.com/mmdpc/courierd/internal/auth/service"
	"go.uber.org/fx"
)

var Module = fx.Module("auth.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)

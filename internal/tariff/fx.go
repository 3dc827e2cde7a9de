package tariff

import (
	"github.com/mmdpc/courierd/internal/tariff/repository"
	"github.com/mmdpc/courierd/internal/tariff/service"
	"go.uber.org/fx"
)

var Module = fx.Module("tariff.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)

package delivery

import (
	"github.com/mmdpc/courierd/internal/delivery/repository"
	"github.com/mmdpc/courierd/internal/delivery/service"
	"go.uber.org/fx"
)

var Module = fx.Module("delivery.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)

package fixedprice

import (
	"github.com/mmdpc/courierd/internal/fixedprice/repository"
	"github.com/mmdpc/courierd/internal/fixedprice/service"
	"go.uber.org/fx"
)

var Module = fx.Module("fixedprice.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)

package audit

import (
	"github.com/mmdpc/courierd/internal/audit/repository"
	"github.com/mmdpc/courierd/internal/audit/service"
	"go.uber.org/fx"
)

var Module = fx.Module("audit.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.NewService),
)

package srv

import (
	"context"

	"github.com/sandevgo/defendiq/pkg/log"
)

type Service interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// StartServices runs every service in its own goroutine. Start errors are
// reported on the returned channel, which has room for all of them.
func StartServices(ctx context.Context, services []Service) <-chan error {
	logger := log.FromCtx(ctx)
	errs := make(chan error, len(services))
	for _, service := range services {
		go func(service Service) {
			if err := service.Start(ctx); err != nil {
				logger.Error().Err(err).Msgf("%T failed to start", service)
				errs <- err
			}
		}(service)
	}
	return errs
}

// ShutdownServices blocks until ctx is done and then stops the services in
// reverse order, so cleanups registered first run last.
func ShutdownServices(ctx context.Context, services []Service) {
	<-ctx.Done()
	for i := len(services) - 1; i >= 0; i-- {
		if err := services[i].Shutdown(context.WithoutCancel(ctx)); err != nil {
			log.FromCtx(ctx).Error().Err(err).Msgf("%T failed to shutdown", services[i])
		}
	}
}

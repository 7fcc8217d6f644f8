package tracer

import (
	"context"

	"go.uber.org/fx"
)

// FXModule provides the Tracer and flushes it when the application stops.
//
// Usage:
//
//	app := fx.New(
//	    fx.Supply(tracer.Config{ServiceName: "orders"}),
//	    tracer.FXModule,
//	)
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewClient,
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// RegisterTracerLifecycle shuts the tracer provider down on application stop so that
// pending spans are exported.
func RegisterTracerLifecycle(lc fx.Lifecycle, tracer *Tracer) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if tracer == nil || tracer.tracer == nil {
				return nil
			}
			tracer.logger.Info("shutting down tracer...", nil, nil)
			return tracer.Shutdown(ctx)
		},
	})
}

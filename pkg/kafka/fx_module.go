package kafka

import (
	"context"

	"github.com/Aleph-Alpha/spandocs/pkg/assertion"
	"go.uber.org/fx"
)

// FXModule provides the *ViolationPublisher, registers it as an assertion observer
// and closes it on shutdown.
var FXModule = fx.Module("kafka",
	fx.Provide(
		NewViolationPublisher,
		assertion.AsObserver(func(p *ViolationPublisher) *ViolationPublisher { return p }),
	),
	fx.Invoke(RegisterPublisherLifecycle),
)

// RegisterPublisherLifecycle flushes and closes the publisher when the application stops.
func RegisterPublisherLifecycle(lc fx.Lifecycle, p *ViolationPublisher, logger Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing Kafka violation publisher", nil, nil)
			return p.Close()
		},
	})
}

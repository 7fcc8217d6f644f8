package minio

import "go.uber.org/fx"

// FXModule provides the documentation publisher from a supplied Config and Logger.
var FXModule = fx.Module("minio",
	fx.Provide(
		NewClient,
	),
)

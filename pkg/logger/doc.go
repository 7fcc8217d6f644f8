// Package logger provides structured logging on top of zap.
//
// Every other package of this module logs through a small Logger interface of its own
// (Info, Debug, Warn, Error and Fatal taking a message, an optional error and optional
// field maps); *Logger satisfies all of them.
//
// Basic Usage:
//
//	log := logger.NewLoggerClient(logger.Config{
//		Level:       logger.Info,
//		ServiceName: "spandocs",
//	})
//
//	log.Info("extraction finished", nil, map[string]interface{}{
//		"entries": 12,
//	})
//
//	// Trace and span IDs of the span in ctx are added to the entry.
//	log.WarnWithContext(ctx, "span schema violation", err, nil)
//
// FX Module Integration:
//
//	app := fx.New(
//		fx.Supply(logger.Config{Level: logger.Debug}),
//		logger.FXModule,
//	)
//
// Buffered entries are flushed when the application stops.
package logger

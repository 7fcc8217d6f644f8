package assertion

// Logger defines the logging operations the assertion package needs.
//
//go:generate mockgen -source=observer.go -destination=mock_logger.go -package=assertion
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}

// Observer is notified about every check that ran. Implementations are called inline on
// the goroutine performing the span mutation and must not block.
type Observer interface {
	ObserveCheck(ctx CheckContext)
}

// CheckContext describes one executed check.
type CheckContext struct {
	// Kind is the part of the span that was checked.
	Kind Kind

	// Schema is the name pattern of the schema used for the check.
	Schema string

	// Value is the checked name, tag key or event value.
	Value string

	// Descriptor is true for descriptor checks and false for string checks.
	Descriptor bool

	// Violation is the returned error, nil when the check passed.
	Violation *ViolationError
}

// NoOpObserver ignores all checks.
type NoOpObserver struct{}

// ObserveCheck does nothing.
func (NoOpObserver) ObserveCheck(CheckContext) {}

// MultiObserver fans a check out to several observers in order.
type MultiObserver []Observer

// ObserveCheck forwards ctx to every observer.
func (m MultiObserver) ObserveCheck(ctx CheckContext) {
	for _, o := range m {
		o.ObserveCheck(ctx)
	}
}

// LoggingObserver logs violations as warnings. Passing checks are not logged.
type LoggingObserver struct {
	logger Logger
}

// NewLoggingObserver returns an observer that reports violations to logger.
func NewLoggingObserver(logger Logger) *LoggingObserver {
	return &LoggingObserver{logger: logger}
}

// ObserveCheck logs ctx when it carries a violation.
func (o *LoggingObserver) ObserveCheck(ctx CheckContext) {
	if ctx.Violation == nil {
		return
	}
	o.logger.Warn("span schema violation", ctx.Violation, map[string]interface{}{
		"kind":    string(ctx.Kind),
		"schema":  ctx.Schema,
		"value":   ctx.Value,
		"allowed": ctx.Violation.Allowed,
	})
}

package assertion

import "go.uber.org/fx"

// ObserverGroup is the fx value group collecting assertion observers.
const ObserverGroup = "assertion_observers"

// FXModule provides the Gate and the Checker of the application. A Config has to be
// supplied by the application; observers are collected from the ObserverGroup value group.
//
// Usage:
//
//	app := fx.New(
//	    fx.Supply(assertion.Config{Available: true, Enabled: true}),
//	    assertion.FXModule,
//	    metrics.FXModule,
//	)
var FXModule = fx.Module("assertion",
	fx.Provide(
		NewGate,
		NewCheckerFromParams,
	),
)

// CheckerParams are the fx dependencies of the application Checker.
type CheckerParams struct {
	fx.In

	Gate      Gate
	Observers []Observer `group:"assertion_observers"`
}

// NewCheckerFromParams builds the Checker from fx dependencies, shared with every
// registered observer.
func NewCheckerFromParams(p CheckerParams) *Checker {
	var opts []Option
	switch len(p.Observers) {
	case 0:
	case 1:
		opts = append(opts, WithObserver(p.Observers[0]))
	default:
		opts = append(opts, WithObserver(MultiObserver(p.Observers)))
	}
	return NewChecker(p.Gate, opts...)
}

// AsObserver annotates an observer constructor so its result joins ObserverGroup.
//
//	fx.Provide(assertion.AsObserver(metrics.NewAssertionObserver))
func AsObserver(constructor interface{}) interface{} {
	return fx.Annotate(
		constructor,
		fx.As(new(Observer)),
		fx.ResultTags(`group:"`+ObserverGroup+`"`),
	)
}

// Package assertion checks span mutations against a spanschema.Schema.
//
// Enforcement is controlled by a Gate resolved once from Config at process start:
//
//   - Descriptor checks (AssertTagKeyValid, AssertEventValueValid) compare the descriptor
//     against the declared ones by equality. They run whenever assertion reporting is
//     available in the deployment.
//   - String checks (AssertKeyValid, AssertNameValid, AssertEventValid) match raw strings
//     against the declared templates. They can reject values that used to work, so they
//     additionally require the explicit Enabled switch.
//
// A failed check returns a *ViolationError. errors.Is(err, ErrSchemaViolation) reports
// whether an error is a violation.
//
// Matching:
//
// A template containing the wildcard marker "%s" is compiled to a regular expression in
// which the marker matches any substring, including the empty one, and the whole candidate
// has to match. Other templates require exact equality. Compiled expressions are memoized
// in a PatternCache shared by the process.
//
// Basic usage:
//
//	checker := assertion.NewChecker(assertion.NewGate(assertion.Config{
//		Available: true,
//		Enabled:   true,
//	}))
//
//	if err := checker.AssertKeyValid("http.header.x-id", HTTPClientSpan); err != nil {
//		return err
//	}
//
// FX Module Integration:
//
//	app := fx.New(
//		fx.Supply(assertion.Config{Available: true}),
//		assertion.FXModule,
//	)
//
// Observers registered in the "assertion_observers" value group (see AsObserver) are
// notified about every check that ran.
//
// Thread Safety:
//
// Checker and PatternCache are safe for concurrent use. Checks never block.
package assertion

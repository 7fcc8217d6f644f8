package metrics

import (
	"strconv"

	"github.com/Aleph-Alpha/spandocs/pkg/assertion"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	resultPass      = "pass"
	resultViolation = "violation"
)

// AssertionObserver counts span schema checks.
type AssertionObserver struct {
	checks *prometheus.CounterVec
}

var _ assertion.Observer = (*AssertionObserver)(nil)

// NewAssertionObserver registers span_assertion_checks_total on m.
//
// Labels:
//   - kind: "name", "tag_key" or "event"
//   - descriptor: "true" for descriptor checks, "false" for string checks
//   - result: "pass" or "violation"
func NewAssertionObserver(m *Metrics) *AssertionObserver {
	checks := createCounterVec(m.namespace,
		"span_assertion_checks_total",
		"Span schema checks by kind and result.",
		[]string{"kind", "descriptor", "result"},
	)
	m.Registerer.MustRegister(checks)
	return &AssertionObserver{checks: checks}
}

// ObserveCheck increments the counter of the check outcome.
func (o *AssertionObserver) ObserveCheck(ctx assertion.CheckContext) {
	result := resultPass
	if ctx.Violation != nil {
		result = resultViolation
	}
	o.checks.WithLabelValues(string(ctx.Kind), strconv.FormatBool(ctx.Descriptor), result).Inc()
}

package metrics

import (
	"testing"

	"github.com/Aleph-Alpha/spandocs/pkg/assertion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/mock/gomock"
)

func TestFXModuleRegistersObserver(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any(), nil, gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	var (
		checker *assertion.Checker
		m       *Metrics
	)
	app := fxtest.New(t,
		fx.Supply(
			Config{Address: "127.0.0.1:0"},
			assertion.Config{Available: true, Enabled: true},
		),
		fx.Provide(func() Logger { return log }),
		FXModule,
		assertion.FXModule,
		fx.Populate(&checker, &m),
	)
	app.RequireStart()
	defer app.RequireStop()

	require.NoError(t, checker.AssertNameValid("orders", nameOnly("orders")))

	families, err := m.Registry.Gather()
	require.NoError(t, err)
	var found bool
	for _, f := range families {
		if f.GetName() == "span_assertion_checks_total" {
			found = true
			require.Len(t, f.GetMetric(), 1)
			assert.Equal(t, 1.0, f.GetMetric()[0].GetCounter().GetValue())
		}
	}
	assert.True(t, found)
}

package calculation

import (
	"fmt"
	"sync"
	"testing"

	"github.com/mkhegde/calcmymoney/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLogger records formatted messages by level.
type TestLogger struct {
	mu     sync.Mutex
	Debugs []string
	Infos  []string
	Warns  []string
	Errors []string
}

func (l *TestLogger) Debugf(format string, args ...any) { l.add(&l.Debugs, format, args...) }
func (l *TestLogger) Infof(format string, args ...any)  { l.add(&l.Infos, format, args...) }
func (l *TestLogger) Warnf(format string, args ...any)  { l.add(&l.Warns, format, args...) }
func (l *TestLogger) Errorf(format string, args ...any) { l.add(&l.Errors, format, args...) }

func (l *TestLogger) add(dst *[]string, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	*dst = append(*dst, fmt.Sprintf(format, args...))
}

func TestNewCalculationEngine(t *testing.T) {
	engine := NewCalculationEngine()

	assert.NotNil(t, engine, "Should create engine")
	assert.NotNil(t, engine.Logger, "Should initialize logger")
	assert.False(t, engine.Debug, "Debug should default to off")
}

func TestCalculationEngine_SetLogger(t *testing.T) {
	engine := NewCalculationEngine()

	customLogger := &TestLogger{}
	engine.SetLogger(customLogger)
	assert.Equal(t, customLogger, engine.Logger, "Should set custom logger")

	engine.SetLogger(nil)
	assert.NotNil(t, engine.Logger, "Should not be nil")
	assert.IsType(t, NopLogger{}, engine.Logger, "Should be no-op logger")
}

func TestCalculationEngine_LogsRejections(t *testing.T) {
	engine := NewCalculationEngine()
	logger := &TestLogger{}
	engine.SetLogger(logger)

	_, err := engine.GenerateSchedule(domain.LoanTerms{Principal: 0, AnnualRatePercent: 5, TermPeriods: 12})
	require.Error(t, err)

	_, err = engine.AllocateBands(100, nil)
	require.Error(t, err)

	_, err = engine.Project(domain.GrowthPlan{Periods: MaxProjectionPeriods + 1})
	require.Error(t, err)

	assert.Len(t, logger.Warns, 3, "Each rejection should be logged once")
	assert.Contains(t, logger.Warns[0], "rejected")
	assert.Empty(t, logger.Debugs, "Debug output is off by default")
}

func TestCalculationEngine_DebugSummaries(t *testing.T) {
	engine := NewCalculationEngine()
	engine.Debug = true
	logger := &TestLogger{}
	engine.SetLogger(logger)

	_, err := engine.AllocateBands(50000, []domain.Band{domain.NewBand("low", 0, 10000, 0), domain.OpenBand("high", 10000, 0.2)})
	require.NoError(t, err)
	_, err = engine.GenerateSchedule(domain.LoanTerms{Principal: 1200, TermPeriods: 12})
	require.NoError(t, err)
	_, err = engine.Project(domain.GrowthPlan{PeriodicContribution: 100, Periods: 24})
	require.NoError(t, err)

	require.Len(t, logger.Debugs, 3)
	assert.Contains(t, logger.Debugs[0], "due=8000.00")
	assert.Contains(t, logger.Debugs[1], "payment=100.00")
	assert.Contains(t, logger.Debugs[2], "contributed=2400.00")
}

func TestCalculationEngine_NilReceiverIsUsable(t *testing.T) {
	var engine *CalculationEngine

	schedule, err := engine.GenerateSchedule(domain.LoanTerms{Principal: 1000, TermPeriods: 10})
	require.NoError(t, err)
	assert.Equal(t, 10, schedule.Totals.Periods)
}

func TestCalculationEngine_ConcurrentUse(t *testing.T) {
	engine := NewCalculationEngine()
	terms := domain.LoanTerms{Principal: 250000, AnnualRatePercent: 5, TermPeriods: 360}

	want, err := engine.GenerateSchedule(terms)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]*domain.Schedule, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = engine.GenerateSchedule(terms)
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		require.NotNil(t, got, "goroutine %d", i)
		assert.Equal(t, want.Totals, got.Totals, "goroutine %d should match the serial result", i)
	}
}

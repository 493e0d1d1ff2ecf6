//go:build unit

package rates_test

import (
	"context"
	"testing"
	"time"

	"estatebook/internal/domain/pricing"
	"estatebook/internal/infra/rates"
	"estatebook/internal/pkg/clock"
	"estatebook/internal/pkg/config"
	"estatebook/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	rules   pricing.RateRules
	err     error
	fetches int
}

func (s *stubSource) Fetch(_ context.Context) (pricing.RateRules, error) {
	s.fetches++
	if s.err != nil {
		return pricing.RateRules{}, s.err
	}
	return s.rules, nil
}

func testRatesConfig() config.RatesConfig {
	return config.RatesConfig{
		RefreshInterval:        5 * time.Minute,
		FallbackServiceFeeRate: 0.12,
		FallbackTaxRate:        0.14,
		FallbackCurrency:       "USD",
		FallbackMinimumStay:    1,
	}
}

func liveRules(t *testing.T) pricing.RateRules {
	t.Helper()
	rules, err := pricing.NewRateRules(0.15, 0.10, "EUR", 2)
	require.NoError(t, err)
	return rules
}

func TestCachedProvider_ServesFetchedRules(t *testing.T) {
	source := &stubSource{rules: liveRules(t)}
	clk := clock.NewMockClock(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
	provider := rates.NewCachedProvider(source, testRatesConfig(), clk)

	got := provider.Current(context.Background())
	assert.Equal(t, 0.15, got.ServiceFeeRate)
	assert.Equal(t, "EUR", got.Currency)
	assert.Equal(t, 1, source.fetches)
}

func TestCachedProvider_CachesWithinRefreshInterval(t *testing.T) {
	source := &stubSource{rules: liveRules(t)}
	clk := clock.NewMockClock(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
	provider := rates.NewCachedProvider(source, testRatesConfig(), clk)

	ctx := context.Background()
	provider.Current(ctx)
	clk.Add(time.Minute)
	provider.Current(ctx)
	provider.Current(ctx)
	assert.Equal(t, 1, source.fetches, "within the interval only the first call may hit the source")

	clk.Add(5 * time.Minute)
	provider.Current(ctx)
	assert.Equal(t, 2, source.fetches, "a stale cache triggers a refetch")
}

func TestCachedProvider_FallbackBeforeFirstSuccess(t *testing.T) {
	source := &stubSource{err: errs.New("connection refused")}
	clk := clock.NewMockClock(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
	provider := rates.NewCachedProvider(source, testRatesConfig(), clk)

	got := provider.Current(context.Background())
	assert.Equal(t, 0.12, got.ServiceFeeRate)
	assert.Equal(t, 0.14, got.TaxRate)
	assert.Equal(t, "USD", got.Currency)
}

func TestCachedProvider_LastKnownGoodAfterSourceFails(t *testing.T) {
	source := &stubSource{rules: liveRules(t)}
	clk := clock.NewMockClock(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
	provider := rates.NewCachedProvider(source, testRatesConfig(), clk)

	ctx := context.Background()
	provider.Current(ctx)

	source.err = errs.New("connection refused")
	clk.Add(10 * time.Minute)

	got := provider.Current(ctx)
	assert.Equal(t, "EUR", got.Currency, "stale last-known-good beats fallback defaults")
}

func TestCachedProvider_BreakerShedsRepeatedFailures(t *testing.T) {
	source := &stubSource{err: errs.New("connection refused")}
	clk := clock.NewMockClock(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
	provider := rates.NewCachedProvider(source, testRatesConfig(), clk)

	ctx := context.Background()
	for range 10 {
		provider.Current(ctx)
	}
	// after three consecutive failures the breaker opens and stops
	// hammering the source
	assert.Equal(t, 3, source.fetches)
}

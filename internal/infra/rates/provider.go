package rates

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"estatebook/internal/domain/pricing"
	"estatebook/internal/infra"
	"estatebook/internal/pkg/clock"
	"estatebook/internal/pkg/config"
	"estatebook/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sony/gobreaker"
)

// RuleSource fetches the authoritative rate rules.
type RuleSource interface {
	Fetch(ctx context.Context) (pricing.RateRules, error)
}

// PostgresRuleSource reads the single rate_rules row.
type PostgresRuleSource struct {
	pool *pgxpool.Pool
}

func NewPostgresRuleSource(pool *pgxpool.Pool) *PostgresRuleSource {
	return &PostgresRuleSource{pool: pool}
}

func (s *PostgresRuleSource) Fetch(ctx context.Context) (pricing.RateRules, error) {
	var (
		serviceFeeRate, taxRate float64
		currency                string
		defaultMinimumStay      int
	)
	err := s.pool.QueryRow(ctx, `
		SELECT service_fee_rate, tax_rate, currency, default_minimum_stay
		FROM rate_rules
		WHERE id = 1`,
	).Scan(&serviceFeeRate, &taxRate, &currency, &defaultMinimumStay)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return pricing.RateRules{}, infra.WrapRepoErr("rate rules not configured", err, infra.KindNotFound)
		}
		return pricing.RateRules{}, infra.WrapRepoErr("failed to fetch rate rules", err)
	}

	return pricing.NewRateRules(serviceFeeRate, taxRate, currency, defaultMinimumStay)
}

// CachedProvider serves rate rules from a cache refreshed at a bounded
// interval. Fetches go through a circuit breaker; when the source is down the
// provider degrades to the last-known-good snapshot, or the configured
// fallback before the first successful fetch. It never fails a booking
// attempt.
type CachedProvider struct {
	source   RuleSource
	breaker  *gobreaker.CircuitBreaker
	clock    clock.Clock
	interval time.Duration
	fallback pricing.RateRules

	mu        sync.RWMutex
	current   pricing.RateRules
	fetchedAt time.Time
	haveGood  bool
}

func NewCachedProvider(source RuleSource, cfg config.RatesConfig, clk clock.Clock) *CachedProvider {
	fallback, err := pricing.NewRateRules(
		cfg.FallbackServiceFeeRate,
		cfg.FallbackTaxRate,
		cfg.FallbackCurrency,
		cfg.FallbackMinimumStay,
	)
	if err != nil {
		// misconfigured fallback rates are a deployment error; zero rates
		// still let bookings through
		slog.Error("invalid fallback rate configuration, using zero rates", "error", err)
		fallback = pricing.RateRules{Currency: "USD", DefaultMinimumStay: 1}
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "rate-rules",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("rate-rule breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
	})

	return &CachedProvider{
		source:   source,
		breaker:  breaker,
		clock:    clk,
		interval: cfg.RefreshInterval,
		fallback: fallback,
	}
}

// Current returns the freshest snapshot available. Rate-config
// unavailability is degraded service, never an error on the booking path.
func (p *CachedProvider) Current(ctx context.Context) pricing.RateRules {
	p.mu.RLock()
	if p.haveGood && p.clock.Now().Sub(p.fetchedAt) < p.interval {
		rules := p.current
		p.mu.RUnlock()
		return rules
	}
	p.mu.RUnlock()

	result, err := p.breaker.Execute(func() (any, error) {
		return p.source.Fetch(ctx)
	})
	if err != nil {
		return p.degraded(err)
	}

	rules := result.(pricing.RateRules)
	p.mu.Lock()
	p.current = rules
	p.fetchedAt = p.clock.Now()
	p.haveGood = true
	p.mu.Unlock()
	return rules
}

func (p *CachedProvider) degraded(cause error) pricing.RateRules {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.haveGood {
		slog.Warn("rate-rule fetch failed, serving last-known-good", "error", cause)
		return p.current
	}
	slog.Warn("rate-rule fetch failed before first success, serving fallback defaults", "error", cause)
	return p.fallback
}

package components

import (
	"estatebook/internal/domain/pricing"
	"estatebook/internal/infra/rates"
	"estatebook/internal/pkg/clock"
	"estatebook/internal/pkg/config"
	"estatebook/internal/usecase/commands"
	"estatebook/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		pricing.NewStandardCalculator,
		fx.As(new(pricing.Calculator)),
	),
	fx.Annotate(
		NewRateRuleProvider,
		fx.As(new(commands.RateRuleProvider)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewAvailabilityQueries,
	),
)

func NewRateRuleProvider(source rates.RuleSource, cfg config.Config, clk clock.Clock) *rates.CachedProvider {
	return rates.NewCachedProvider(source, cfg.Rates, clk)
}

package components

import (
	"log/slog"

	"hecho-core/internal/domain/policy"
	"hecho-core/internal/handler/api"
	"hecho-core/internal/pkg/clock"
	"hecho-core/internal/pkg/config"
	"hecho-core/internal/usecase"
	"hecho-core/internal/usecase/commands"
	"hecho-core/internal/usecase/queries"
	"hecho-core/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		NewPolicyEngine,
		fx.As(new(api.PolicyEvaluator)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewSequenceCommands,
		commands.NewJobCommands,
		commands.NewNotificationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewJobQueries,
		queries.NewNotificationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewPolicyEngine(cfg config.Config) *policy.Engine {
	return policy.NewEngine(policy.DefaultRules(policy.Thresholds{
		MaxAutoApproveAmount: cfg.Policy.MaxAutoApproveAmount,
		MaxDiscountPercent:   cfg.Policy.MaxDiscountPercent,
		CriticalKeywords:     cfg.Policy.CriticalKeywords,
	})...)
}

func NewSequenceCommands(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config, logger *slog.Logger) commands.SequenceCommands {
	return commands.NewSequenceCommands(uow, clk, cfg.Sequence.Location(), logger)
}

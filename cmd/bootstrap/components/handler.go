package components

import (
	"hecho-core/internal/handler"
	"hecho-core/internal/handler/api"
	"hecho-core/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSequenceHandler,
		api.NewPolicyHandler,
		api.NewJobHandler,
		api.NewNotificationHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(seq *api.SequenceHandler, pol *api.PolicyHandler, jobs *api.JobHandler, notif *api.NotificationHandler) handler.Handlers {
	return handler.Handlers{
		Sequence:     seq,
		Policy:       pol,
		Job:          jobs,
		Notification: notif,
	}
}

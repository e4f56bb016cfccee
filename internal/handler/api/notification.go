package api

import (
	"net/http"

	"hecho-core/internal/domain/user"
	reqdto "hecho-core/internal/handler/dto/request"
	resdto "hecho-core/internal/handler/dto/response"
	"hecho-core/internal/handler/httperr"
	"hecho-core/internal/handler/middleware"
	"hecho-core/internal/usecase/commands"
	"hecho-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	cmds commands.NotificationCommands
	q    queries.NotificationQueries
}

func NewNotificationHandler(cmds commands.NotificationCommands, q queries.NotificationQueries) *NotificationHandler {
	return &NotificationHandler{cmds: cmds, q: q}
}

// @Summary Send notification
// @Description Write one in-app notification for a user
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SendNotificationRequest true "Send notification request"
// @Success 201 {object} resdto.DeliveryResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/notifications [post]
func (h *NotificationHandler) Send(c *gin.Context) {
	var req reqdto.SendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	d := h.cmds.Send(c.Request.Context(), req.ToDomain())
	if !d.OK() {
		abortWithUsecaseError(c, d.Err, "Invalid notification")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromDelivery(d))
}

// @Summary Broadcast notification
// @Description Send one notification to every active holder of a role
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BroadcastNotificationRequest true "Broadcast request"
// @Success 200 {object} resdto.BroadcastResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/notifications/broadcast [post]
func (h *NotificationHandler) Broadcast(c *gin.Context) {
	var req reqdto.BroadcastNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	role, err := user.NewRole(req.Role)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid role", nil)
		return
	}

	report, err := h.cmds.BroadcastToRole(c.Request.Context(), role, req.MessageInput.ToDomain())
	if err != nil {
		abortWithUsecaseError(c, err, "Broadcast failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBroadcastReport(report))
}

// @Summary List notifications
// @Description List the caller's notifications, newest first
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (1-200)"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var qp reqdto.ListNotificationsQuery
	if err := c.ShouldBindQuery(&qp); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	items, err := h.q.ListForUser(c.Request.Context(), userID, qp.Limit)
	if err != nil {
		abortWithUsecaseError(c, err, "List notifications failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": resdto.FromNotificationList(items)})
}

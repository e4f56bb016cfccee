package api

import (
	"net/http"

	"hecho-core/internal/domain/policy"
	reqdto "hecho-core/internal/handler/dto/request"
	resdto "hecho-core/internal/handler/dto/response"
	"hecho-core/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

type PolicyEvaluator interface {
	Evaluate(ticket policy.Ticket, quote policy.Quote) policy.Decision
}

type PolicyHandler struct {
	engine PolicyEvaluator
}

func NewPolicyHandler(engine PolicyEvaluator) *PolicyHandler {
	return &PolicyHandler{engine: engine}
}

// @Summary Evaluate approval policy
// @Description Decide whether a quote requires human approval
// @Tags policy
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.EvaluatePolicyRequest true "Ticket and quote"
// @Success 200 {object} resdto.DecisionResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/policy/evaluate [post]
func (h *PolicyHandler) Evaluate(c *gin.Context) {
	var req reqdto.EvaluatePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	ticket, quote := req.ToDomain()
	c.JSON(http.StatusOK, resdto.FromDecision(h.engine.Evaluate(ticket, quote)))
}

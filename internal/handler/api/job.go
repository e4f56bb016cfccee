package api

import (
	"net/http"

	reqdto "hecho-core/internal/handler/dto/request"
	resdto "hecho-core/internal/handler/dto/response"
	"hecho-core/internal/handler/httperr"
	"hecho-core/internal/handler/middleware"
	"hecho-core/internal/usecase/commands"
	"hecho-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	cmds commands.JobCommands
	q    queries.JobQueries
}

func NewJobHandler(cmds commands.JobCommands, q queries.JobQueries) *JobHandler {
	return &JobHandler{cmds: cmds, q: q}
}

// @Summary Submit job
// @Description Persist a job as QUEUED and hand it to the worker in the background
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SubmitJobRequest true "Submit job request"
// @Success 202 {object} resdto.JobAcceptedResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/jobs [post]
func (h *JobHandler) Submit(c *gin.Context) {
	orgID, ok := middleware.GetOrgID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.SubmitJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.Submit(c.Request.Context(), orgID, req.ToDomain())
	if err != nil {
		abortWithUsecaseError(c, err, "Invalid job")
		return
	}
	c.Header("Location", "/api/jobs/"+id)
	c.JSON(http.StatusAccepted, resdto.NewJobAccepted(id))
}

// @Summary Get job
// @Description Get the current status of a job of the caller's organization
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Success 200 {object} resdto.JobResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/jobs/{id} [get]
func (h *JobHandler) Get(c *gin.Context) {
	orgID, ok := middleware.GetOrgID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	view, err := h.q.Get(c.Request.Context(), orgID, c.Param("id"))
	if err != nil {
		abortWithUsecaseError(c, err, "Get job failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromJobView(view))
}

package api

import (
	"net/http"

	"hecho-core/internal/domain/sequence"
	resdto "hecho-core/internal/handler/dto/response"
	"hecho-core/internal/handler/httperr"
	"hecho-core/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type SequenceHandler struct {
	cmds commands.SequenceCommands
}

func NewSequenceHandler(cmds commands.SequenceCommands) *SequenceHandler {
	return &SequenceHandler{cmds: cmds}
}

// @Summary Allocate document number
// @Description Issue the next gap-free number for a document type (COT, FACT, FACTPF, OC, COND)
// @Tags sequences
// @Produce json
// @Security BearerAuth
// @Param type path string true "Document type"
// @Success 201 {object} resdto.NumberResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/sequences/{type} [post]
func (h *SequenceHandler) Allocate(c *gin.Context) {
	t, err := sequence.ParseType(c.Param("type"))
	if err != nil || t == sequence.TypeTicket {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown sequence type", nil)
		return
	}

	number, err := h.cmds.Allocate(c.Request.Context(), t)
	if err != nil {
		abortWithUsecaseError(c, err, "Allocate number failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.NumberResponse{Number: number})
}

// @Summary Next ticket number
// @Description Issue the next ticket number of the current day
// @Tags sequences
// @Produce json
// @Security BearerAuth
// @Success 201 {object} resdto.NumberResponse
// @Failure 401 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/tickets/number [post]
func (h *SequenceHandler) NextTicketNumber(c *gin.Context) {
	number, err := h.cmds.NextTicketNumber(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err, "Allocate ticket number failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.NumberResponse{Number: number})
}

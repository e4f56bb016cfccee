//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"hecho-core/internal/domain/sequence"
	"hecho-core/internal/handler/api"
	resdto "hecho-core/internal/handler/dto/response"
	"hecho-core/internal/pkg/errs"
	"hecho-core/tests/common/httptest"
	commandsmock "hecho-core/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SequenceHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSequenceCommands
}

func (s *SequenceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSequenceCommands(s.mockCtrl)
	h := api.NewSequenceHandler(s.mockCommands)

	auth := mockAuth(testPrincipal)
	s.router.POST("/sequences/:type", auth, h.Allocate)
	s.router.POST("/tickets/number", auth, h.NextTicketNumber)
}

func (s *SequenceHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSequenceHandlerSuite(t *testing.T) {
	suite.Run(t, new(SequenceHandlerTestSuite))
}

func (s *SequenceHandlerTestSuite) TestAllocate() {
	s.Run("success: returns 201 with the issued number", func() {
		s.mockCommands.EXPECT().Allocate(gomock.Any(), sequence.TypeQuote).Return("COT-000043", nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/sequences/cot", nil, "bearer-token")

		var body resdto.NumberResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("COT-000043", body.Number)
	})

	s.Run("error: 400 for an unknown type", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/sequences/XYZ", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown sequence type")
	})

	s.Run("error: 400 for tickets, which have their own route", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/sequences/TK", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown sequence type")
	})

	s.Run("error: 503 when the counter is unavailable", func() {
		s.mockCommands.EXPECT().Allocate(gomock.Any(), sequence.TypeInvoice).
			Return("", errs.Mark(errors.New("conn refused"), errs.ErrSequenceUnavailable))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/sequences/FACT", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Service temporarily unavailable")
	})

	s.Run("error: 401 without credentials", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/sequences/COT", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *SequenceHandlerTestSuite) TestNextTicketNumber() {
	s.Run("success: returns 201", func() {
		s.mockCommands.EXPECT().NextTicketNumber(gomock.Any()).Return("TK-2025-11-30-007", nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/tickets/number", nil, "bearer-token")

		var body resdto.NumberResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("TK-2025-11-30-007", body.Number)
	})

	s.Run("error: unexpected failure is 500", func() {
		s.mockCommands.EXPECT().NextTicketNumber(gomock.Any()).Return("", errors.New("boom"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/tickets/number", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

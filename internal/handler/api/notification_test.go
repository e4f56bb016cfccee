//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"hecho-core/internal/domain/notification"
	"hecho-core/internal/domain/user"
	"hecho-core/internal/handler/api"
	resdto "hecho-core/internal/handler/dto/response"
	"hecho-core/internal/pkg/errs"
	"hecho-core/internal/usecase/queries"
	"hecho-core/tests/common/httptest"
	"hecho-core/tests/common/testutil"
	commandsmock "hecho-core/tests/mock/commands"
	queriesmock "hecho-core/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type NotificationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockNotificationCommands
	mockQueries  *queriesmock.MockNotificationQueries
}

func (s *NotificationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockNotificationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockNotificationQueries(s.mockCtrl)
	h := api.NewNotificationHandler(s.mockCommands, s.mockQueries)

	auth := mockAuth(testPrincipal)
	s.router.POST("/notifications", auth, h.Send)
	s.router.GET("/notifications", auth, h.List)
	s.router.POST("/notifications/broadcast", auth, h.Broadcast)
}

func (s *NotificationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestNotificationHandlerSuite(t *testing.T) {
	suite.Run(t, new(NotificationHandlerTestSuite))
}

func messageBody() map[string]any {
	return map[string]any{
		"title":    "Quote needs approval",
		"body":     "COT-000043 exceeds the limit",
		"type":     "WARNING",
		"link":     "/quotes/q-1",
		"metadata": map[string]any{"quoteId": "q-1"},
	}
}

func (s *NotificationHandlerTestSuite) TestSend() {
	sendBody := testutil.DtoMap(s.T(), messageBody(), testutil.Field("user_id", "user-7"))

	s.Run("success: 201 with the delivery", func() {
		s.mockCommands.EXPECT().Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, p notification.Payload) notification.Delivery {
				s.Equal("user-7", p.UserID)
				s.Equal(notification.TypeWarning, p.Type)
				s.Equal("q-1", p.Metadata["quoteId"])
				return notification.Delivery{UserID: "user-7", NotificationID: "n-1"}
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/notifications", sendBody, "bearer-token")

		var body resdto.DeliveryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(resdto.DeliveryResponse{UserID: "user-7", NotificationID: "n-1", OK: true}, body)
	})

	s.Run("error: 400 on invalid type", func() {
		req := testutil.DtoMap(s.T(), sendBody, testutil.Field("type", "DEBUG"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/notifications", req, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 on missing user", func() {
		req := testutil.DtoMap(s.T(), sendBody, testutil.Field("user_id", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/notifications", req, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 503 when the write fails", func() {
		s.mockCommands.EXPECT().Send(gomock.Any(), gomock.Any()).Return(notification.Delivery{
			UserID: "user-7",
			Err:    errs.Mark(errors.New("insert failed"), errs.ErrStorageUnavailable),
		})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/notifications", sendBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Service temporarily unavailable")
	})
}

func (s *NotificationHandlerTestSuite) TestBroadcast() {
	broadcastBody := testutil.DtoMap(s.T(), messageBody(), testutil.Field("role", "admin"))

	s.Run("success: 200 with per-recipient outcome", func() {
		s.mockCommands.EXPECT().BroadcastToRole(gomock.Any(), user.RoleAdmin, gomock.Any()).Return(notification.BroadcastReport{
			Role:     "ADMIN",
			Targeted: 2,
			Deliveries: []notification.Delivery{
				{UserID: "a", NotificationID: "n-a"},
				{UserID: "b", Err: errors.New("row lock timeout")},
			},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/notifications/broadcast", broadcastBody, "bearer-token")

		var body resdto.BroadcastResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("ADMIN", body.Role)
		s.Equal(2, body.Targeted)
		s.Equal(1, body.Succeeded)
		s.Equal(1, body.Failed)
		s.Require().Len(body.Deliveries, 2)
		s.False(body.Deliveries[1].OK)
		s.Equal("row lock timeout", body.Deliveries[1].Error)
	})

	s.Run("error: 400 on unknown role", func() {
		req := testutil.DtoMap(s.T(), broadcastBody, testutil.Field("role", "ROOT"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/notifications/broadcast", req, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid role")
	})

	s.Run("error: 503 when recipients cannot be listed", func() {
		s.mockCommands.EXPECT().BroadcastToRole(gomock.Any(), user.RoleAdmin, gomock.Any()).
			Return(notification.BroadcastReport{Role: "ADMIN"}, errs.Mark(errors.New("boom"), errs.ErrRoleLookupFailed))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/notifications/broadcast", broadcastBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Service temporarily unavailable")
	})
}

func (s *NotificationHandlerTestSuite) TestList() {
	created := time.Date(2025, 11, 30, 9, 0, 0, 0, time.UTC)

	s.Run("success: lists the caller's notifications", func() {
		s.mockQueries.EXPECT().ListForUser(gomock.Any(), "user-1", 10).Return([]*queries.NotificationView{
			{ID: "n-2", UserID: "user-1", Title: "newer", Type: "INFO", Metadata: map[string]any{}, CreatedAt: created.Add(time.Minute)},
			{ID: "n-1", UserID: "user-1", Title: "older", Type: "INFO", Metadata: map[string]any{}, CreatedAt: created},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/notifications?limit=10", nil, "bearer-token")

		var body struct {
			Items []resdto.NotificationResponse `json:"items"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Items, 2)
		s.Equal("n-2", body.Items[0].ID)
		s.Equal(created.Unix(), body.Items[1].CreatedAt)
	})

	s.Run("success: limit defaults downstream", func() {
		s.mockQueries.EXPECT().ListForUser(gomock.Any(), "user-1", 0).Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/notifications", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.JSONEq(`{"items":[]}`, rec.Body.String())
	})

	s.Run("error: 400 on out-of-range limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/notifications?limit=500", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})
}

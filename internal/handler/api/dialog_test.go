//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"salon-booking/internal/handler/api"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/handler/middleware"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/dialog"
	"salon-booking/tests/common/builder"
	"salon-booking/tests/common/httptest"
	dialogmock "salon-booking/tests/mock/dialog"
	usecasemock "salon-booking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DialogHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockConversation *dialogmock.MockConversation
}

func (s *DialogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockConversation = dialogmock.NewMockConversation(s.mockCtrl)

	h := api.NewDialogHandler(s.mockConversation)
	auth := middleware.NewAuthMiddleware(usecasemock.NewMockTokenValidator(s.mockCtrl), config.NewTestConfig().Channel)
	g := s.router.Group("/api/dialog", auth.RequireChannel())
	g.POST("/start", h.Start)
	g.POST("/input", h.Input)
}

func (s *DialogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDialogHandlerSuite(t *testing.T) {
	suite.Run(t, new(DialogHandlerTestSuite))
}

func (s *DialogHandlerTestSuite) TestStart() {
	s.mockConversation.EXPECT().Start(gomock.Any(), userID).Return(dialog.Reply{
		State:   dialog.StateChooseService,
		Prompt:  "Choose a service.",
		Options: []string{"manicure", "pedicure", "cover"},
	}, nil).Times(1)

	rec := httptest.PerformChannelRequest(s.T(), s.router, http.MethodPost, "/api/dialog/start", nil, channelKey, userID)

	var body resdto.DialogResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal(string(dialog.StateChooseService), body.State)
	s.Equal([]string{"manicure", "pedicure", "cover"}, body.Options)
}

func (s *DialogHandlerTestSuite) TestInput() {
	url := "/api/dialog/input"

	s.Run("success: relays the text and renders the hold", func() {
		hold := builder.NewBookingBuilder().BuildHoldRM()
		s.mockConversation.EXPECT().Handle(gomock.Any(), userID, "79161234567").Return(dialog.Reply{
			State:   dialog.StateAwaitingPayment,
			Prompt:  "Your time is held.",
			Options: []string{dialog.InputPaid, dialog.InputCancel},
			Hold:    hold,
		}, nil).Times(1)

		rec := httptest.PerformChannelRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"text": "79161234567"}, channelKey, userID)

		var body resdto.DialogResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().NotNil(body.Hold)
		s.Equal(hold.ID, body.Hold.ID)
		s.Nil(body.Appointment)
	})

	s.Run("success: a rejected input is still 200 with an error message", func() {
		s.mockConversation.EXPECT().Handle(gomock.Any(), userID, "A").Return(dialog.Reply{
			State:  dialog.StateEnterName,
			Prompt: "What is your name?",
			Error:  "a name needs 2 to 64 characters",
		}, nil).Times(1)

		rec := httptest.PerformChannelRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"text": "A"}, channelKey, userID)

		var body resdto.DialogResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.NotEmpty(body.Error)
		s.Equal([]string{}, body.Options)
	})

	s.Run("error: 400 on missing text", func() {
		rec := httptest.PerformChannelRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, channelKey, userID)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 on oversized text", func() {
		rec := httptest.PerformChannelRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"text": strings.Repeat("x", 257)}, channelKey, userID)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 500 on unexpected failure", func() {
		s.mockConversation.EXPECT().Handle(gomock.Any(), userID, "paid").Return(dialog.Reply{}, errs.New("engine exploded")).Times(1)

		rec := httptest.PerformChannelRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"text": "paid"}, channelKey, userID)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

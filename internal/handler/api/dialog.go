package api

import (
	"net/http"

	reqdto "salon-booking/internal/handler/dto/request"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/handler/middleware"
	"salon-booking/internal/usecase/dialog"

	"github.com/gin-gonic/gin"
)

// DialogHandler lets a thin front end relay chat messages and render replies.
type DialogHandler struct {
	conversation dialog.Conversation
}

func NewDialogHandler(conversation dialog.Conversation) *DialogHandler {
	return &DialogHandler{conversation: conversation}
}

// @Summary Start a booking dialog
// @Tags dialog
// @Produce json
// @Security ChannelKey
// @Success 200 {object} resdto.DialogResponse
// @Router /dialog/start [post]
func (h *DialogHandler) Start(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	reply, err := h.conversation.Start(c.Request.Context(), userID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReply(reply))
}

// @Summary Send user input to the booking dialog
// @Description Rejected input keeps the state and is reported in the reply's error field with status 200.
// @Tags dialog
// @Accept json
// @Produce json
// @Security ChannelKey
// @Param request body reqdto.DialogInputRequest true "User input"
// @Success 200 {object} resdto.DialogResponse
// @Failure 400 {object} httperr.Response
// @Router /dialog/input [post]
func (h *DialogHandler) Input(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	var req reqdto.DialogInputRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindingError(c, err)
		return
	}
	reply, err := h.conversation.Handle(c.Request.Context(), userID, req.Text)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReply(reply))
}

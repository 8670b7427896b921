package api

import (
	"net/http"

	reqdto "salon-booking/internal/handler/dto/request"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/handler/middleware"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves chat front ends acting for one end user.
type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary List services
// @Tags booking
// @Produce json
// @Security ChannelKey
// @Success 200 {array} resdto.ServiceResponse
// @Router /services [get]
func (h *BookingHandler) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromServices(h.q.ListServices(c.Request.Context())))
}

// @Summary Free start times for a service on a date
// @Tags booking
// @Produce json
// @Security ChannelKey
// @Param id path string true "Service ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.FreeSlotsResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /services/{id}/slots [get]
func (h *BookingHandler) FreeSlots(c *gin.Context) {
	var query reqdto.FreeSlotsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithBindingError(c, err)
		return
	}
	slots, err := h.q.FreeSlots(c.Request.Context(), c.Param("id"), query.Date)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFreeSlots(slots))
}

// @Summary Hold a slot pending payment
// @Tags booking
// @Accept json
// @Produce json
// @Security ChannelKey
// @Param request body reqdto.HoldRequest true "Hold request"
// @Success 201 {object} resdto.HoldResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations [post]
func (h *BookingHandler) Hold(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	var req reqdto.HoldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindingError(c, err)
		return
	}
	hold, err := h.cmds.Hold(c.Request.Context(), req, userID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.Header("Location", "/api/reservations/"+hold.ID)
	c.JSON(http.StatusCreated, resdto.FromHold(hold))
}

// @Summary Confirm a held reservation after payment
// @Tags booking
// @Produce json
// @Security ChannelKey
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/confirm [post]
func (h *BookingHandler) Confirm(c *gin.Context) {
	var uri reqdto.ReservationURI
	if err := c.ShouldBindUri(&uri); err != nil {
		abortWithBindingError(c, err)
		return
	}
	appt, err := h.cmds.Confirm(c.Request.Context(), uri.ID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointment(appt))
}

// @Summary Release a held reservation
// @Description Always 204; releasing an unknown or already released reservation is a no-op.
// @Tags booking
// @Security ChannelKey
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Router /reservations/{id} [delete]
func (h *BookingHandler) Discard(c *gin.Context) {
	h.cmds.Discard(c.Request.Context(), c.Param("id"))
	c.Status(http.StatusNoContent)
}

// @Summary The user's confirmed appointments
// @Tags booking
// @Produce json
// @Security ChannelKey
// @Success 200 {array} resdto.AppointmentResponse
// @Router /appointments [get]
func (h *BookingHandler) ListAppointments(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointments(h.q.ListAppointmentsForUser(c.Request.Context(), userID)))
}

// @Summary Refund quote for cancelling an appointment now
// @Tags booking
// @Produce json
// @Security ChannelKey
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param time path string true "Start time (HH:MM)"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 404 {object} httperr.Response
// @Router /appointments/{date}/{time}/quote [get]
func (h *BookingHandler) Quote(c *gin.Context) {
	quote(c, h.q)
}

// @Summary Cancel an appointment with a refund
// @Tags booking
// @Produce json
// @Security ChannelKey
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param time path string true "Start time (HH:MM)"
// @Success 200 {object} resdto.CancellationResponse
// @Failure 404 {object} httperr.Response
// @Router /appointments/{date}/{time}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	cancel(c, h.cmds)
}

// @Summary The user's cancellations and refunds
// @Tags booking
// @Produce json
// @Security ChannelKey
// @Success 200 {array} resdto.CancellationResponse
// @Router /cancellations [get]
func (h *BookingHandler) ListCancellations(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCancellations(h.q.ListCancellationsForUser(c.Request.Context(), userID)))
}

// quote and cancel are shared with the operator routes; visibility follows the actor.
func quote(c *gin.Context, q queries.BookingQueries) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	var uri reqdto.AppointmentURI
	if err := c.ShouldBindUri(&uri); err != nil {
		abortWithBindingError(c, err)
		return
	}
	rm, err := q.Quote(c.Request.Context(), uri.Date, uri.Time, actor)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuote(rm))
}

func cancel(c *gin.Context, cmds commands.BookingCommands) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	var uri reqdto.AppointmentURI
	if err := c.ShouldBindUri(&uri); err != nil {
		abortWithBindingError(c, err)
		return
	}
	rm, err := cmds.Cancel(c.Request.Context(), uri.Date, uri.Time, actor)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCancellation(rm))
}

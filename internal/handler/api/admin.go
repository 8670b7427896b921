package api

import (
	"net/http"

	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the operator. Routes sit behind RequireOperator.
type AdminHandler struct {
	cmds        commands.AdminCommands
	bookingCmds commands.BookingCommands
	q           queries.AdminQueries
	bookingQ    queries.BookingQueries
}

func NewAdminHandler(
	cmds commands.AdminCommands,
	bookingCmds commands.BookingCommands,
	q queries.AdminQueries,
	bookingQ queries.BookingQueries,
) *AdminHandler {
	return &AdminHandler{cmds: cmds, bookingCmds: bookingCmds, q: q, bookingQ: bookingQ}
}

// @Summary Business summary
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SummaryResponse
// @Router /admin/summary [get]
func (h *AdminHandler) Summary(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromSummary(h.q.Summary(c.Request.Context())))
}

// @Summary All confirmed appointments
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.AppointmentResponse
// @Router /admin/appointments [get]
func (h *AdminHandler) ListAppointments(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromAppointments(h.q.ListAllAppointments(c.Request.Context())))
}

// @Summary Refund quote for any appointment
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param time path string true "Start time (HH:MM)"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 404 {object} httperr.Response
// @Router /admin/appointments/{date}/{time}/quote [get]
func (h *AdminHandler) Quote(c *gin.Context) {
	quote(c, h.bookingQ)
}

// @Summary Cancel any appointment
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param time path string true "Start time (HH:MM)"
// @Success 200 {object} resdto.CancellationResponse
// @Failure 404 {object} httperr.Response
// @Router /admin/appointments/{date}/{time}/cancel [post]
func (h *AdminHandler) Cancel(c *gin.Context) {
	cancel(c, h.bookingCmds)
}

// @Summary Drop appointments past the retention age
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.PurgeResponse
// @Router /admin/purge [post]
func (h *AdminHandler) Purge(c *gin.Context) {
	rm, err := h.cmds.Purge(c.Request.Context())
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPurge(rm))
}

// @Summary Export every persisted collection
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ExportResponse
// @Router /admin/export [get]
func (h *AdminHandler) Export(c *gin.Context) {
	export := h.q.Export(c.Request.Context())
	c.Header("Content-Disposition", `attachment; filename="salon-export-`+export.ExportedAt.Format("20060102-150405")+`.json"`)
	c.JSON(http.StatusOK, resdto.FromExport(export))
}

package api

import (
	"errors"
	"net/http"

	"salon-booking/internal/handler/httperr"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var errUnauthenticated = errors.New("request identity missing")

type errorMapping struct {
	target  error
	status  int
	message string
}

// Checked in order: an unknown service is also marked as invalid input.
var domainErrors = []errorMapping{
	{target: errs.ErrUnknownService, status: http.StatusNotFound, message: "Unknown service"},
	{target: errs.ErrInvalidInput, status: http.StatusBadRequest, message: "Invalid input"},
	{target: errs.ErrSlotUnavailable, status: http.StatusConflict, message: "Slot is not available"},
	{target: errs.ErrSlotNoLongerAvailable, status: http.StatusConflict, message: "Slot is no longer available"},
	{target: errs.ErrReservationNotFound, status: http.StatusNotFound, message: "Reservation not found"},
	{target: errs.ErrAppointmentNotFound, status: http.StatusNotFound, message: "Appointment not found"},
	{target: queries.ErrProfileNotFound, status: http.StatusNotFound, message: "Profile not found"},
}

func abortWithDomainError(c *gin.Context, err error) {
	for _, m := range domainErrors {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.message, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

func abortWithBindingError(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", validationDetail(err))
}

// validationDetail lists failing fields and tags, or nil for non-validation errors
// such as malformed JSON.
func validationDetail(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]string, len(verrs))
	for i, fe := range verrs {
		out[i] = fe.Field() + ": " + fe.Tag()
	}
	return out
}

func abortUnauthenticated(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
}

package request

import (
	"sync"

	"salon-booking/internal/domain/calendar"
	"salon-booking/internal/domain/client"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the isodate, hhmm and phone tags to gin's validator.
// Safe to call more than once.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		if err = v.RegisterValidation("isodate", isoDate); err != nil {
			return
		}
		if err = v.RegisterValidation("hhmm", hhmm); err != nil {
			return
		}
		err = v.RegisterValidation("phone", phone)
	})
	return err
}

func isoDate(fl validator.FieldLevel) bool {
	_, err := calendar.ParseDate(fl.Field().String())
	return err == nil
}

func hhmm(fl validator.FieldLevel) bool {
	_, err := calendar.ParseTimeOfDay(fl.Field().String())
	return err == nil
}

func phone(fl validator.FieldLevel) bool {
	_, err := client.NewPhone(fl.Field().String())
	return err == nil
}

package handlers

import (
	"reflect"
	"strings"
	"sync"

	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// registerValidators adds the request validators gin's binding does not ship with.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("notblank", notBlank)
		_ = v.RegisterValidation("calendardate", calendarDate)
		_ = v.RegisterValidation("money", positiveMoney)
	})
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// calendarDate accepts YYYY-MM-DD dates that exist on the calendar.
func calendarDate(fl validator.FieldLevel) bool {
	_, err := domain.ParseDate(fl.Field().String())
	return err == nil
}

// positiveMoney accepts amounts above zero minor units.
func positiveMoney(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int32, reflect.Int64:
		return fl.Field().Int() > 0
	}
	return false
}

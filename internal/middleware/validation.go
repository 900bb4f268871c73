package middleware

import (
	"reflect"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/adeemchu/studentportal/internal/app/models"
)

// The validator does not know how to zero-check models.Date and
// models.TimeOfDay, so `binding:"required"` on those fields would
// otherwise pass for absent values. Registering type funcs makes the
// validator see nil whenever the value was not supplied.
func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterCustomTypeFunc(dateValue, models.Date{})
	v.RegisterCustomTypeFunc(timeOfDayValue, models.TimeOfDay{})
}

func dateValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(models.Date); ok && d.Valid {
		return d.Time
	}
	return nil
}

func timeOfDayValue(field reflect.Value) interface{} {
	if t, ok := field.Interface().(models.TimeOfDay); ok && t.Valid {
		return t.Time
	}
	return nil
}

package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("bookingdate", bookingDateFunc)
	return v
}

// bookingDateFunc accepts dates in the wire format only. Range checks
// against the draft's initialization date live in the wizard, since the
// lower bound is per-draft state rather than a property of the value.
var bookingDateFunc validator.Func = func(fl validator.FieldLevel) bool {
	_, err := time.Parse(DateLayout, fl.Field().String())
	return err == nil
}

// Validate runs the shared validator over a struct's `validate` tags.
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// FieldErrors flattens a validator error into a field→tag map the templates
// can render next to inputs. Non-validator errors come back as a single
// catch-all entry.
func FieldErrors(err error) map[string]string {
	if err == nil {
		return nil
	}
	out := map[string]string{}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out[""] = err.Error()
		return out
	}
	for _, fe := range verrs {
		out[fe.Field()] = fe.Tag()
	}
	return out
}

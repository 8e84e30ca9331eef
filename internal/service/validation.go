package service

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"coursecraft/internal/model"
	apperr "coursecraft/pkg/errors"
)

// newValidator builds the request validator; field names follow the json tags
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("course_type", func(fl validator.FieldLevel) bool {
		return model.CourseType(fl.Field().String()).Valid()
	})
	return v
}

// validateStruct runs v over req and reports the first violation as a ValidationError
func validateStruct(v *validator.Validate, op string, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return apperr.Validation(op, fe.Field(), fieldMessage(fe))
	}
	return apperr.Validation(op, "", err.Error())
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "gt":
		return fe.Field() + " must be greater than " + fe.Param()
	case "min":
		return fe.Field() + " must be at least " + fe.Param()
	case "max":
		return fe.Field() + " must be at most " + fe.Param()
	case "uuid":
		return fe.Field() + " must be a UUID"
	case "datetime":
		return fe.Field() + " must be a date formatted " + fe.Param()
	case "oneof":
		return fe.Field() + " must be one of " + fe.Param()
	case "course_type":
		return fe.Field() + " is not a known course type"
	}
	return fe.Field() + " is invalid"
}

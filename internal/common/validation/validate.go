package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/abeheron1/mock-data-holder/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
)

type ErrorValidateResponse struct {
	Code    string `json:"code,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message,omitempty"`
}

func (e ErrorValidateResponse) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var validate = validator.New()

func init() {
	registerDate()
	registerISO8601DateTme()
}

func ValidateStruct(toValidate interface{}) error {
	// register function to get tag name from json tags.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	var errs *multierror.Error
	if err := validate.Struct(toValidate); err != nil {
		// this check is only needed when your code could produce
		// an invalid value for validation such as interface with nil
		// value most including myself do not usually have code like this.
		if _, ok := err.(*validator.InvalidValidationError); ok {
			errs = multierror.Append(errs, ErrorValidateResponse{
				Message: err.Error(),
			})
			return errs.ErrorOrNil()
		}

		var valErrs validator.ValidationErrors
		if errors.As(err, &valErrs) {
			for _, valErr := range valErrs {
				key := fmt.Sprintf("%s_%s", valErr.Field(), valErr.Tag())
				if data, found := models.MapErrors[key]; found {
					errs = multierror.Append(errs, ErrorValidateResponse{
						Code:    data.Code,
						Field:   valErr.Field(),
						Message: data.ErrorMessage.Error(),
					})
				} else {
					errs = multierror.Append(errs, ErrorValidateResponse{
						Code:    "UNKNOWN",
						Field:   valErr.Field(),
						Message: strings.TrimSpace(fmt.Sprintf("%s %s", valErr.Tag(), valErr.Param())),
					})
				}
			}
		}
	}

	return errs.ErrorOrNil()
}

func registerDate() {
	validate.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		input := fl.Field().String()
		pattern := `\d{4}-\d{2}-\d{2}`
		return regexp.MustCompile(pattern).MatchString(input)
	})
}

func registerISO8601DateTme() {
	validate.RegisterValidation("iso8601datetime", func(fl validator.FieldLevel) bool {
		input := fl.Field().String()
		if input != "" {
			_, err := time.Parse(time.RFC3339, input)
			return err == nil
		}

		return true
	})
}

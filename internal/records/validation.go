package records

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// checkDraft runs the struct tags of a draft and converts the first failure into a
// *ValidationError.
func checkDraft(schema string, draft any) error {
	err := validate.Struct(draft)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	first := fieldErrs[0]
	verr := &ValidationError{Schema: schema, Field: first.Field()}
	switch first.Tag() {
	case "required":
	case "datetime":
		verr.Reason = "must be a YYYY-MM-DD date"
	case "oneof":
		verr.Reason = "must be one of " + strings.ReplaceAll(first.Param(), " ", ", ")
	default:
		verr.Reason = "is invalid"
	}
	return verr
}

func parseQuantity(schema, field, raw string) (int64, error) {
	qty, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &ValidationError{Schema: schema, Field: field, Reason: "must be a whole number"}
	}
	if qty < 0 {
		return 0, &ValidationError{Schema: schema, Field: field, Reason: "must not be negative"}
	}
	return qty, nil
}

func parseAmount(schema, field, raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, &ValidationError{Schema: schema, Field: field, Reason: "must be a decimal number"}
	}
	if amount.IsNegative() {
		return decimal.Zero, &ValidationError{Schema: schema, Field: field, Reason: "must not be negative"}
	}
	return amount, nil
}

package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"wealthwatch/internal/models"
	"wealthwatch/internal/types"
)

// Validator wraps the go-playground validator with custom rules and type
// support for the money and calendar types used by the API.
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("expense_category", validateExpenseCategory)

	// decimal amounts and calendar types validate through their underlying
	// numeric/time representations so the standard tags (gte, required) apply
	v.RegisterCustomTypeFunc(decimalToFloat, decimal.Decimal{})
	v.RegisterCustomTypeFunc(monthToTime, types.Month{})
	v.RegisterCustomTypeFunc(dateToTime, types.Date{})

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// validateExpenseCategory restricts a category to the fixed enumeration.
func validateExpenseCategory(fl validator.FieldLevel) bool {
	return models.IsValidCategory(fl.Field().String())
}

func decimalToFloat(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.InexactFloat64()
	}
	return nil
}

func monthToTime(field reflect.Value) interface{} {
	if m, ok := field.Interface().(types.Month); ok {
		return m.Time()
	}
	return nil
}

func dateToTime(field reflect.Value) interface{} {
	if d, ok := field.Interface().(types.Date); ok {
		return d.Time()
	}
	return nil
}

package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/ley73/internal/domain"
)

// MaxAge bounds every age a profile may carry
const MaxAge = 120

// ValidationRule registers a custom rule on the underlying validator
type ValidationRule struct {
	Rule func(v *validator.Validate)
}

// Validator wraps go-playground/validator with the decimal type and the profile rules registered
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a validator ready for domain.ContributorProfile
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	pv := &Validator{validate: v}
	pv.Register(ProfileRules()...)
	return pv
}

// Register installs additional rules
func (v *Validator) Register(rules ...ValidationRule) {
	for _, r := range rules {
		r.Rule(v.validate)
	}
}

// ProfileRules are the custom tags used by domain.ContributorProfile
func ProfileRules() []ValidationRule {
	return []ValidationRule{
		{Rule: func(v *validator.Validate) {
			_ = v.RegisterValidation("age", ageValidator)
		}},
	}
}

// Profile validates a built profile and converts failures into ValidationErrors
func (v *Validator) Profile(p domain.ContributorProfile) error {
	err := v.validate.Struct(p)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate profile: %w", err)
	}

	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, NewValidationError(p.Name, fieldPath(fe), describe(fe), fe))
	}
	return errors.Join(errs...)
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

func ageValidator(fl validator.FieldLevel) bool {
	switch f := fl.Field(); f.Kind() {
	case reflect.Float32, reflect.Float64:
		return f.Float() > 0 && f.Float() <= MaxAge
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return f.Int() > 0 && f.Int() <= MaxAge
	default:
		return false
	}
}

// fieldPath drops the root struct name: "ContributorProfile.dependents.children" -> "dependents.children"
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "age":
		return fmt.Sprintf("must be greater than 0 and at most %d", MaxAge)
	case "gte":
		return "must be " + fe.Param() + " or more"
	case "lte":
		return "must be " + fe.Param() + " or less"
	case "gt":
		return "must be greater than " + fe.Param()
	default:
		return "failed " + fe.Tag()
	}
}

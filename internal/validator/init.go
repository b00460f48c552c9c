package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the birth date format accepted from forms and stored in the database.
const DateLayout = "2006-01-02"

var validate *validator.Validate

func init() {
	// Initialize validation
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(formFieldName)
	if err := registerRules(validate); err != nil {
		panic(err)
	}
}

func GetValidator() *validator.Validate {
	return validate
}

// FieldErrors validates s and returns a field→message map keyed by the
// form field name. A nil map means s is valid.
func FieldErrors(s any) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"form": err.Error()}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; seen {
			continue
		}
		out[fe.Field()] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	label := strings.NewReplacer("_", " ", "-", " ").Replace(fe.Field())
	label = strings.ToUpper(label[:1]) + label[1:]

	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "min":
		return fmt.Sprintf("%s length must be at least %s characters", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s length must be at most %s characters", label, fe.Param())
	case "eqfield":
		return "Passwords do not match"
	case "phone10":
		return "Enter a 10-digit phone number without the country code"
	case "isodate":
		return "Use the YYYY-MM-DD format"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, fe.Param())
	default:
		return label + " is invalid"
	}
}

func formFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

func registerRules(v *validator.Validate) error {
	if err := v.RegisterValidation("phone10", isPhone10); err != nil {
		return err
	}
	return v.RegisterValidation("isodate", isISODate)
}

// isPhone10 accepts exactly ten ASCII digits, no country code.
func isPhone10(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) != 10 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(DateLayout, fl.Field().String())
	return err == nil
}

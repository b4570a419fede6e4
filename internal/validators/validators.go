package validators

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// TagLanguage is the struct tag of the language rule.
const TagLanguage = "langtag"

var langTagRe = regexp.MustCompile(`^[a-z]{2}$`)

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsLangTag reports whether s is a two-letter lowercase language tag.
func IsLangTag(s string) bool {
	return langTagRe.MatchString(s)
}

// langTag accepts any casing; callers lowercase the value before use.
func langTag(fl validator.FieldLevel) bool {
	return IsLangTag(strings.ToLower(strings.TrimSpace(fl.Field().String())))
}

// Register adds the custom rules to v and makes errors report JSON field
// names.
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonFieldName)
	return v.RegisterValidation(TagLanguage, langTag)
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// RegisterBinding adds the custom rules to gin's binding engine.
func RegisterBinding() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected binding validator engine")
	}
	return Register(v)
}

// Message turns a binding error into a single client facing sentence.
func Message(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request body"
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case TagLanguage:
		return fmt.Sprintf("%s must be a two-letter language code", fe.Field())
	case "min", "max", "gte", "lte":
		return fmt.Sprintf("%s is out of range", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

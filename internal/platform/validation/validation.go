// Package validation wraps go-playground/validator with the custom tags the
// account forms need and converts its errors into field-error mappings.
//
// Custom tags:
//
//	emailshape  local@domain with at least one dot in the domain
//	phone       10 to 15 ASCII digits
//	notfuture   a calendar date (YYYY-MM-DD or RFC 3339) that is not after today
//	date        a parseable calendar date
//	minutf16    at least N UTF-16 code units (minutf16=6)
//	maxutf16    at most N UTF-16 code units (maxutf16=160)
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf16"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the calendar date format accepted by the date tags.
const DateLayout = "2006-01-02"

var (
	emailShapeRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex      = regexp.MustCompile(`^[0-9]{10,15}$`)
)

// Clock returns the current time.
type Clock func() time.Time

// Validator validates structs against `validate` tags.
type Validator struct {
	validate *validator.Validate
	now      Clock
	loc      *time.Location
}

// New builds a Validator. Dates are compared in loc using now for "today".
func New(now Clock, loc *time.Location) *Validator {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.UTC
	}

	v := &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      now,
		loc:      loc,
	}

	// Report fields by their JSON name so errors line up with the request body.
	v.validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// Registration only fails for empty tags or nil funcs.
	_ = v.validate.RegisterValidation("emailshape", isEmailShape)
	_ = v.validate.RegisterValidation("phone", isPhone)
	_ = v.validate.RegisterValidation("date", isDate)
	_ = v.validate.RegisterValidation("notfuture", v.isNotFuture)
	_ = v.validate.RegisterValidation("minutf16", hasMinUTF16)
	_ = v.validate.RegisterValidation("maxutf16", hasMaxUTF16)

	return v
}

// Violation is a single failed rule.
type Violation struct {
	Field string
	Tag   string
	Param string
}

// Struct validates s and returns every violation in field order, at most one
// per field. A nil slice means s is valid.
func (v *Validator) Struct(s any) ([]Violation, error) {
	err := v.validate.Struct(s)
	if err == nil {
		return nil, nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil, err
	}

	seen := make(map[string]bool, len(validationErrs))
	violations := make([]Violation, 0, len(validationErrs))
	for _, fe := range validationErrs {
		if seen[fe.Field()] {
			continue
		}
		seen[fe.Field()] = true
		violations = append(violations, Violation{
			Field: fe.Field(),
			Tag:   fe.Tag(),
			Param: fe.Param(),
		})
	}
	return violations, nil
}

// ParseDate accepts YYYY-MM-DD or an RFC 3339 timestamp and returns the
// calendar date at midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation(DateLayout, s, loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	// The date part as written by the client; the offset is ignored.
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}

// Today returns the current calendar date at midnight in loc.
func Today(now time.Time, loc *time.Location) time.Time {
	n := now.In(loc)
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, loc)
}

// UTF16Len returns the length of s in UTF-16 code units, the way browsers
// count string length. Characters outside the BMP count twice.
func UTF16Len(s string) int {
	return len(utf16.Encode([]rune(s)))
}

func hasMinUTF16(fl validator.FieldLevel) bool {
	return UTF16Len(fl.Field().String()) >= paramInt(fl)
}

func hasMaxUTF16(fl validator.FieldLevel) bool {
	return UTF16Len(fl.Field().String()) <= paramInt(fl)
}

// paramInt panics on a malformed tag, like validator's own length tags.
func paramInt(fl validator.FieldLevel) int {
	n, err := strconv.Atoi(fl.Param())
	if err != nil {
		panic("validation: bad " + fl.GetTag() + " param " + strconv.Quote(fl.Param()))
	}
	return n
}

func isEmailShape(fl validator.FieldLevel) bool {
	return emailShapeRegex.MatchString(fl.Field().String())
}

func isPhone(fl validator.FieldLevel) bool {
	return phoneRegex.MatchString(fl.Field().String())
}

func isDate(fl validator.FieldLevel) bool {
	_, err := ParseDate(fl.Field().String(), time.UTC)
	return err == nil
}

// isNotFuture treats unparseable input as passing; pair it with the date tag.
func (v *Validator) isNotFuture(fl validator.FieldLevel) bool {
	d, err := ParseDate(fl.Field().String(), v.loc)
	if err != nil {
		return true
	}
	return !d.After(Today(v.now(), v.loc))
}

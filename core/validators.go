package core

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	Validate   *validator.Validate
	Translator ut.Translator

	// custom validation tags & texts
	personNameTag   = "person_name"
	personNameText  = "only alphanumeric characters, spaces, dots, hyphens and apostrophes are allowed"
	personNameRegex = regexp.MustCompile(`^[a-zA-Z0-9\s.'-]+$`)

	phoneTag   = "phone_"
	phoneText  = "must be 10 to 15 characters of digits, spaces, hyphens or parentheses, with an optional leading +"
	phoneRegex = regexp.MustCompile(`^\+?[\d\s\-()]{10,15}$`)

	dateStrTag  = "datestr"
	dateStrText = "must be a date in YYYY-MM-DD format"

	requiredTag  = "required"
	requiredText = "this field is required"
)

// Instantiate the validator for use.
func init() {
	Validate = validator.New()

	// Register the english error messages for validation errors.
	_en := en.New()
	uni := ut.New(_en, _en)
	Translator, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(Validate, Translator)

	// Use JSON tag names for errors instead of Go struct names.
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// register custom validators
	_ = Validate.RegisterValidation(personNameTag, personNameValidation)
	RegisterCustomTranslation(personNameTag, personNameText)

	_ = Validate.RegisterValidation(phoneTag, phoneValidation)
	RegisterCustomTranslation(phoneTag, phoneText)

	_ = Validate.RegisterValidation(dateStrTag, dateStrValidation)
	RegisterCustomTranslation(dateStrTag, dateStrText)

	RegisterCustomTranslation(requiredTag, requiredText, true)
}

// RegisterCustomTranslation registers a custom translation for the specified validation tag.
func RegisterCustomTranslation(tag, text string, override ...bool) {
	var ovrd bool
	if len(override) > 0 {
		ovrd = override[0]
	}
	_ = Validate.RegisterTranslation(
		tag, Translator,
		func(t ut.Translator) error { return t.Add(tag, text, ovrd) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// Custom Global Validators

// personNameValidation allows alphanumerics, whitespace, `.`, `-` and `'`.
func personNameValidation(fl validator.FieldLevel) bool {
	return personNameRegex.MatchString(fl.Field().String())
}

// phoneValidation allows an optional leading + followed by 10-15 characters
// of digits, spaces, hyphens and parentheses.
func phoneValidation(fl validator.FieldLevel) bool {
	return phoneRegex.MatchString(fl.Field().String())
}

// dateStrValidation checks the YYYY-MM-DD persisted date format.
func dateStrValidation(fl validator.FieldLevel) bool {
	_, err := time.Parse(DateFormat, fl.Field().String())
	return err == nil
}

// Validation predicates shared by the record types' setters.
// These mirror the tag-based rules above for callers that mutate a record
// directly instead of going through an input struct.

// IsValidID reports whether id is usable as a record identifier.
func IsValidID(id int) bool {
	return id > 0 && id <= 999999
}

// IsValidAge reports whether age is an acceptable student age.
func IsValidAge(age int) bool {
	return age >= 16 && age <= 100
}

// IsValidName reports whether name is non-empty, at most 100 characters and
// drawn from the allowed name charset.
func IsValidName(name string) bool {
	return name != "" && len(name) <= 100 && personNameRegex.MatchString(name)
}

// IsValidEmail accepts an empty string (optional field) or a local@domain.tld shape.
func IsValidEmail(email string) bool {
	return email == "" || emailRegex.MatchString(email)
}

// IsValidPhone accepts an empty string (optional field) or a 10-15 character phone number.
func IsValidPhone(phone string) bool {
	return phone == "" || phoneRegex.MatchString(phone)
}

// IsValidDate accepts an empty string or a YYYY-MM-DD date.
func IsValidDate(date string) bool {
	if date == "" {
		return true
	}
	_, err := time.Parse(DateFormat, date)
	return err == nil
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

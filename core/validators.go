package core

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Seasons
const (
	SeasonSpring = "Spring"
	SeasonSummer = "Summer"
	SeasonFall   = "Fall"
	SeasonWinter = "Winter"
)

var (
	Seasons = []string{SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter}

	// custom validation tags & texts
	subjectTag   = "subject"
	subjectText  = "must be 1 to 4 upper-case letters"
	subjectRegex = regexp.MustCompile(`^[A-Z]{1,4}$`)

	uidTag   = "uid"
	uidText  = "must be a 'u' followed by 7 digits"
	uidRegex = regexp.MustCompile(`^u[0-9]{7}$`)

	seasonTag  = "season"
	seasonText = "must be one of Spring, Summer, Fall or Winter"

	notBlankTag  = "notblank"
	notBlankText = "this field cannot be blank"

	requiredTag  = "required"
	requiredText = "this field is required"
)

// NewTranslator returns the english translator used for validation messages.
func NewTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}

// InitValidators instantiates the validator for use.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// Use JSON tag names for errors instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// register custom validators
	_ = validate.RegisterValidation(subjectTag, regexValidation(subjectRegex))
	RegisterCustomTranslation(validate, translator, subjectTag, subjectText)

	_ = validate.RegisterValidation(uidTag, regexValidation(uidRegex))
	RegisterCustomTranslation(validate, translator, uidTag, uidText)

	_ = validate.RegisterValidation(seasonTag, seasonValidation)
	RegisterCustomTranslation(validate, translator, seasonTag, seasonText)

	_ = validate.RegisterValidation(notBlankTag, notBlankValidation)
	RegisterCustomTranslation(validate, translator, notBlankTag, notBlankText)

	RegisterCustomTranslation(validate, translator, requiredTag, requiredText, true)
}

// NewValidator returns a validator with the custom validations registered, and its translator.
func NewValidator() (*validator.Validate, ut.Translator) {
	validate := validator.New()
	translator := NewTranslator()
	InitValidators(validate, translator)
	return validate, translator
}

// RegisterCustomTranslation registers a custom translation for the specified validation tag.
func RegisterCustomTranslation(validate *validator.Validate, translator ut.Translator, tag, text string, override ...bool) {
	var ovrd bool
	if len(override) > 0 {
		ovrd = override[0]
	}
	_ = validate.RegisterTranslation(
		tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, ovrd) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// Custom Global Validators

func regexValidation(rx *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return rx.MatchString(fl.Field().String())
	}
}

func seasonValidation(fl validator.FieldLevel) bool {
	return IsSeason(fl.Field().String())
}

func notBlankValidation(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func IsSeason(s string) bool {
	for _, season := range Seasons {
		if s == season {
			return true
		}
	}
	return false
}

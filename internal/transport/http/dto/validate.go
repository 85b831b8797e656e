package dto

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/nexthire/auth-service/internal/domain"
)

var (
	initOnce sync.Once
	validate *validator.Validate
	trans    ut.Translator
)

func engine() (*validator.Validate, ut.Translator) {
	initOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// report json names, not Go field names
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		english := en.New()
		trans, _ = ut.New(english, english).GetTranslator("en")
		_ = en_translations.RegisterDefaultTranslations(validate, trans)

		_ = validate.RegisterTranslation("role", trans,
			func(t ut.Translator) error {
				return t.Add("role", "{0} must be one of: job-seeker, recruiter", true)
			},
			func(t ut.Translator, fe validator.FieldError) string {
				msg, _ := t.T("role", fe.Field())
				return msg
			},
		)
		_ = validate.RegisterValidation("role", func(fl validator.FieldLevel) bool {
			return domain.IsValidRole(fl.Field().String())
		})
	})
	return validate, trans
}

// Validate runs struct tags and converts failures into a validation_failed
// domain error. Message is the first failure; Meta maps field -> message.
func Validate(v any) error {
	val, tr := engine()

	err := val.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return domain.ErrValidation("invalid request", nil)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Translate(tr)
	}
	return domain.ErrValidation(verrs[0].Translate(tr), fields)
}

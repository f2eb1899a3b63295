package vocabulary

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	if err := validate.RegisterValidation("clip_handle", func(fl validator.FieldLevel) bool {
		return ValidateClipHandle(fl.Field().String()) == nil
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to register clip_handle validation: %w", err)
	}
	if err := validate.RegisterTranslation("clip_handle", trans,
		func(ut ut.Translator) error {
			return ut.Add("clip_handle", "{0} must be a file name without a path separator", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T("clip_handle", fe.Field())
			return t
		},
	); err != nil {
		return nil, nil, fmt.Errorf("failed to register clip_handle translation: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return validate, trans, nil
}

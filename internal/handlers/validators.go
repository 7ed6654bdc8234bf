package handlers

import (
	"errors"
	"sync"

	"github.com/SscSPs/storefront_pricing/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	registerValidatorsOnce sync.Once
	registerValidatorsErr  error
)

// registerValidators adds the custom binding tags used by the request DTOs to gin's validator engine.
func registerValidators() error {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerValidatorsErr = errors.New("gin validator engine is not go-playground/validator")
			return
		}
		registerValidatorsErr = v.RegisterValidation("currencycode", validateCurrencyCode)
	})
	return registerValidatorsErr
}

// validateCurrencyCode accepts any spelling ParseCurrencyCode understands.
func validateCurrencyCode(fl validator.FieldLevel) bool {
	_, err := domain.ParseCurrencyCode(fl.Field().String())
	return err == nil
}

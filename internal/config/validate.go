package config

import (
	"sync"

	smerrors "github.com/Station-Manager/errors"
	"github.com/go-playground/validator/v10"

	"github.com/Station-Manager/lograin/internal/rain"
	"github.com/Station-Manager/lograin/internal/types"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// Validate checks the emitter and rain sections. The logging section is
// validated by the logging service when it initializes.
func Validate(cfg *types.AppConfig) error {
	const op smerrors.Op = "config.Validate"
	if cfg == nil {
		return smerrors.New(op).Msg("config is nil")
	}

	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("color", func(fl validator.FieldLevel) bool {
			_, err := rain.ParseColor(fl.Field().String())
			return err == nil
		})
	})

	if err := validate.Struct(cfg); err != nil {
		return smerrors.New(op).Err(err).Msg("configuration is invalid")
	}
	return nil
}

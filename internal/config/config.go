// Package config loads and validates the picker's command-line settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/stigoleg/time-picker/internal/clock"
)

// Config holds every setting the picker command accepts.
type Config struct {
	Title       string `yaml:"title"`
	Label       string `yaml:"label"`
	Placeholder string `yaml:"placeholder"`
	Value       string `yaml:"value"`
	ClearIcon   string `yaml:"clear_icon"`
	// IconSize is not validated: unknown sizes render at the default size.
	IconSize string `yaml:"icon_size"`
	Format   string `yaml:"format" validate:"required,time_layout"`
	Width    int    `yaml:"width" validate:"min=8,max=40"`
	Rows     int    `yaml:"rows" validate:"min=1,max=12"`
	LogFile  string `yaml:"log_file"`
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Title:       "Pick a time",
		Label:       "Time",
		Placeholder: "Select time",
		IconSize:    "small",
		Format:      clock.Layout,
		Width:       16,
		Rows:        5,
		LogLevel:    "info",
	}
}

// Load reads a YAML file on top of Default. It does not validate.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("time_layout", func(fl validator.FieldLevel) bool {
			layout := fl.Field().String()
			ref := time.Date(2001, time.February, 3, 16, 7, 8, 0, time.UTC)
			return ref.Format(layout) != layout
		})
		validateInst = v
	})
	return validateInst
}

// Validate checks cfg and returns one error describing every invalid field.
func Validate(cfg Config) error {
	err := validatorInstance().Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	lines := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		lines = append(lines, describe(fe))
	}
	return fmt.Errorf("invalid configuration:\n\n%s", strings.Join(lines, "\n"))
}

func describe(fe validator.FieldError) string {
	name := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("• %s is required", name)
	case "min":
		return fmt.Sprintf("• %s must be at least %s", name, fe.Param())
	case "max":
		return fmt.Sprintf("• %s must be at most %s", name, fe.Param())
	case "oneof":
		return fmt.Sprintf("• %s must be one of: %s", name, fe.Param())
	case "time_layout":
		return fmt.Sprintf("• %s %q is not a Go time layout (e.g. \"15:04\" or \"03:04 PM\")", name, fe.Value())
	default:
		return fmt.Sprintf("• %s failed %s", name, fe.Tag())
	}
}

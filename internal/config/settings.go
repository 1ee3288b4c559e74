package config

import (
	"os"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	gwerrors "github.com/gatewayops/gwshift/pkg/errors"
)

const (
	// DefaultScratchDir is where transform artifacts land unless overridden.
	DefaultScratchDir = "gwshift-out"
	// DefaultWorkers reproduces the strictly sequential reference import.
	DefaultWorkers = 1
	// DefaultRequestTimeoutSeconds bounds each management-API round-trip.
	DefaultRequestTimeoutSeconds = 30
)

// Settings holds everything the pipeline needs at runtime. There are no
// package-level globals: a Settings value is built once by the CLI layer
// and passed into the constructors that need it.
type Settings struct {
	TargetURL             string `yaml:"target_url" validate:"required,url"`
	AuthToken             string `yaml:"auth_token"`
	ScratchDir            string `yaml:"scratch_dir"`
	Workers               int    `yaml:"workers" validate:"min=1,max=32"`
	RequestTimeoutSeconds int    `yaml:"request_timeout" validate:"min=1,max=600"`

	DryRun  bool `yaml:"-"`
	Verbose bool `yaml:"-"`
}

// Default returns the baseline settings before profile and flag overrides.
func Default() Settings {
	return Settings{
		ScratchDir:            DefaultScratchDir,
		Workers:               DefaultWorkers,
		RequestTimeoutSeconds: DefaultRequestTimeoutSeconds,
	}
}

// LoadProfile reads a YAML profile on top of the defaults. Profiles keep
// tokens out of argv; flags still take precedence at the CLI layer.
func LoadProfile(path string) (Settings, error) {
	settings := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return settings, gwerrors.NewParseError(path, err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, gwerrors.NewParseError(path, err)
	}

	return settings, nil
}

// RequestTimeout returns the per-request timeout as a duration.
func (s Settings) RequestTimeout() time.Duration {
	return time.Duration(s.RequestTimeoutSeconds) * time.Second
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// Validate checks the settings before the pipeline starts. Credentials are
// only required when the run will actually talk to the target.
func (s *Settings) Validate() error {
	if s == nil {
		return gwerrors.NewValidationError("settings", "settings are nil", nil)
	}

	if err := validatorInstance().Struct(s); err != nil {
		if ves, ok := err.(validator.ValidationErrors); ok {
			ve := ves[0]
			return gwerrors.NewValidationError(ve.StructField(), "failed validation for tag '"+ve.Tag()+"'", err)
		}
		return gwerrors.NewValidationError("settings", err.Error(), err)
	}

	if !s.DryRun && s.AuthToken == "" {
		return gwerrors.NewValidationError("AuthToken", "auth token is required unless running with --dry-run", nil)
	}

	return nil
}

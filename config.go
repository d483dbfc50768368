package vpnhost

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// SetConfigName set the config name that vpnhost will look for.
func SetConfigName(v *viper.Viper, name string) {
	v.SetConfigName(name)
	v.SetConfigType("toml")

	configPath := "$HOME"
	// viper has its own way to get user home directory:  https://github.com/spf13/viper/blob/v1.14.0/util.go#L134
	// To be consistent, we prefer os.UserHomeDir instead.
	if homeDir, err := os.UserHomeDir(); err == nil {
		configPath = homeDir
	}
	v.AddConfigPath(configPath)
	v.AddConfigPath(".")
}

// InitConfig initializes default config values for given *viper.Viper instance.
// The instance must use "::" as key delimiter.
func InitConfig(v *viper.Viper, name string) {
	SetConfigName(v, name)

	def := DefaultConfig()
	v.SetDefault("hostname::max_length", def.Hostname.MaxLength)
	v.SetDefault("hostname::strip_domain", def.Hostname.StripDomain)
}

// Config represents vpnhost supported configuration.
type Config struct {
	Service  ServiceConfig  `mapstructure:"service" toml:"service,omitempty"`
	Hostname HostnameConfig `mapstructure:"hostname" toml:"hostname"`
}

// ServiceConfig specifies the logging config.
type ServiceConfig struct {
	LogLevel string `mapstructure:"log_level" toml:"log_level,omitempty" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
	LogPath  string `mapstructure:"log_path" toml:"log_path,omitempty"`
}

// HostnameConfig specifies how client supplied hostnames are checked.
type HostnameConfig struct {
	// MaxLength is the number of bytes kept from the client hostname.
	MaxLength int `mapstructure:"max_length" toml:"max_length" validate:"gt=0,lte=255"`
	// StripDomain drops the domain part before validating the label.
	StripDomain bool `mapstructure:"strip_domain" toml:"strip_domain"`
	// Fallback replaces a rejected hostname. Empty means no replacement.
	Fallback string `mapstructure:"fallback" toml:"fallback,omitempty" validate:"omitempty,hostlabel"`
}

// DefaultConfig returns the config used when no config file is present.
func DefaultConfig() Config {
	return Config{
		Hostname: HostnameConfig{
			MaxLength:   MaxHostnameLen,
			StripDomain: true,
		},
	}
}

// ValidateConfig validates the given config.
func ValidateConfig(validate *validator.Validate, cfg *Config) error {
	_ = validate.RegisterValidation("hostlabel", validateHostLabel)
	return validate.Struct(cfg)
}

func validateHostLabel(fl validator.FieldLevel) bool {
	return ValidHostname(fl.Field().String())
}

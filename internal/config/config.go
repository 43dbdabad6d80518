package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/satriahrh/audioclass/domain"
)

// CredentialsEnv names the variable pointing at the speech backend credentials
const CredentialsEnv = "GOOGLE_APPLICATION_CREDENTIALS"

// Config holds process-wide settings resolved once at startup
type Config struct {
	Port            string        `mapstructure:"port"`
	UploadDir       string        `mapstructure:"upload_dir"`
	CredentialsPath string        `mapstructure:"google_application_credentials"`
	SpeechEndpoint  string        `mapstructure:"speech_endpoint"`
	Environment     string        `mapstructure:"app_env"`
	LogLevel        string        `mapstructure:"log_level"`
	MaxUploadSize   string        `mapstructure:"max_upload_size"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// IsDevelopment reports whether human readable logs should be used
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// LoadDotEnv loads variables from the given .env files into the process
// environment. A missing file is not an error.
func LoadDotEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Load reads configuration from the environment. The credentials path is
// required; its absence is a ConfigurationError.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("port", "8080")
	v.SetDefault("upload_dir", "uploaded_audio")
	v.SetDefault("google_application_credentials", "")
	v.SetDefault("speech_endpoint", "")
	v.SetDefault("app_env", "production")
	v.SetDefault("log_level", "info")
	v.SetDefault("max_upload_size", "32M")
	v.SetDefault("shutdown_timeout", 10*time.Second)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, &domain.ConfigurationError{Key: "environment", Message: err.Error()}
	}

	if strings.TrimSpace(cfg.CredentialsPath) == "" {
		return nil, &domain.ConfigurationError{
			Key:     CredentialsEnv,
			Message: "must be set in the environment or .env file",
		}
	}
	if cfg.UploadDir == "" {
		return nil, &domain.ConfigurationError{Key: "UPLOAD_DIR", Message: "must not be empty"}
	}

	return cfg, nil
}

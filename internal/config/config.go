package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application. Values are read by
// Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	S3       S3Config       `mapstructure:"s3"`
	Auth     AuthConfig     `mapstructure:"auth"`
	LLM      LLMConfig      `mapstructure:"llm"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
	// CORSOrigin is the single allowed browser origin for local frontends.
	CORSOrigin string `mapstructure:"cors_origin"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
}

// AuthConfig selects the identity backend. When FirebaseProjectID is set
// the Firebase verifier is used; otherwise a local HMAC verifier signed
// with DevSecret, which must never be used in production.
type AuthConfig struct {
	FirebaseProjectID string `mapstructure:"firebase_project_id"`
	DevSecret         string `mapstructure:"dev_secret"`
}

// LLMConfig parameterizes the two generation stages. The screening model is
// typically smaller and cheaper than the plan model.
type LLMConfig struct {
	ScreeningModel     string  `mapstructure:"screening_model"`
	PlanModel          string  `mapstructure:"plan_model"`
	ScreeningMaxTokens int32   `mapstructure:"screening_max_tokens"`
	PlanMaxTokens      int32   `mapstructure:"plan_max_tokens"`
	Temperature        float32 `mapstructure:"temperature"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AutomaticEnv()
	// Nested keys map to env vars with underscores, e.g. database.host ->
	// DATABASE_HOST.
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("server.cors_origin", "http://localhost:3000")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.name", "gymtrack")
	viper.SetDefault("database.ssl_mode", "disable")
	viper.SetDefault("llm.screening_model", "gemini-2.5-flash")
	viper.SetDefault("llm.plan_model", "gemini-2.5-pro")
	viper.SetDefault("llm.screening_max_tokens", 8000)
	viper.SetDefault("llm.plan_max_tokens", 12000)
	viper.SetDefault("llm.temperature", 1.0)

	err = viper.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		// Config file is optional; env vars and defaults may be enough.
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}

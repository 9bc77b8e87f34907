// Package config provides configuration management for the application.
// It follows the 12-Factor App methodology by loading configuration
// from environment variables and supporting external configuration files.
//
// 12-Factor App compliance:
//   - III. Config: Store config in the environment
//   - Configuration is loaded from environment variables
//   - No config files checked into version control
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/maderacraft/furniture-go/internal/domain/valueobject"
)

// Config holds all application configuration.
// All fields are populated from environment variables or config files.
type Config struct {
	// App contains application-level configuration
	App AppConfig `mapstructure:"app"`

	// Server contains HTTP server configuration
	Server ServerConfig `mapstructure:"server"`

	// Log contains logging configuration
	Log LogConfig `mapstructure:"log"`

	// Pricing contains the price adjustment settings
	Pricing PricingConfig `mapstructure:"pricing"`

	// Layout contains placement configuration
	Layout LayoutConfig `mapstructure:"layout"`
}

// AppConfig contains application-level configuration.
type AppConfig struct {
	// Name of the application
	Name string `mapstructure:"name"`

	// Environment the application is running in (e.g., development, staging, production)
	Environment string `mapstructure:"environment"`

	// Version of the application
	Version string `mapstructure:"version"`

	// Debug mode flag
	Debug bool `mapstructure:"debug"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	// Host is the server bind address
	Host string `mapstructure:"host"`

	// Port is the server port
	Port int `mapstructure:"port"`

	// ReadTimeout is the maximum duration for reading the entire request, including the body
	ReadTimeout time.Duration `mapstructure:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out writes of the response
	WriteTimeout time.Duration `mapstructure:"write_timeout"`

	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
	IdleTimeout time.Duration `mapstructure:"idle_timeout"`

	// ShutdownTimeout is the maximum duration for graceful server shutdown
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	// CORSAllowedOrigins is a list of allowed origins for CORS
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// LogConfig contains logging configuration.
type LogConfig struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string `mapstructure:"level"`

	// Format is the output format (json, console)
	Format string `mapstructure:"format"`
}

// PricingConfig contains the percentage adjustment settings applied to
// every reference price before formula evaluation.
type PricingConfig struct {
	// GlobalPercent is the store-wide percentage adjustment
	GlobalPercent float64 `mapstructure:"global_percent"`

	// GlobalEnabled toggles the store-wide adjustment
	GlobalEnabled bool `mapstructure:"global_enabled"`

	// CurrencyPercent maps settlement currency codes to surcharge percentages
	CurrencyPercent map[string]float64 `mapstructure:"currency_percent"`

	// CurrencyEnabled toggles the settlement currency surcharge
	CurrencyEnabled bool `mapstructure:"currency_enabled"`

	// CategoryPercent maps category IDs to surcharge percentages
	CategoryPercent map[string]float64 `mapstructure:"category_percent"`

	// USDDiscountPercent is the discount for paying in a dollar instrument
	USDDiscountPercent float64 `mapstructure:"usd_discount_percent"`

	// USDDiscountEnabled toggles the dollar payment discount
	USDDiscountEnabled bool `mapstructure:"usd_discount_enabled"`
}

// AdjustmentSettings converts the pricing configuration into the domain
// settings snapshot consumed by the adjustment pipeline.
//
// Returns:
//   - valueobject.PriceAdjustmentSettings: the settings snapshot
func (p PricingConfig) AdjustmentSettings() valueobject.PriceAdjustmentSettings {
	currencyPercent := make(map[valueobject.Currency]float64, len(p.CurrencyPercent))
	for code, pct := range p.CurrencyPercent {
		currencyPercent[valueobject.Currency(strings.ToUpper(code))] = pct
	}

	categoryPercent := make(map[string]float64, len(p.CategoryPercent))
	for id, pct := range p.CategoryPercent {
		categoryPercent[id] = pct
	}

	return valueobject.PriceAdjustmentSettings{
		GlobalPercent:      p.GlobalPercent,
		GlobalEnabled:      p.GlobalEnabled,
		CurrencyPercent:    currencyPercent,
		CurrencyEnabled:    p.CurrencyEnabled,
		CategoryPercent:    categoryPercent,
		USDDiscountPercent: p.USDDiscountPercent,
		USDDiscountEnabled: p.USDDiscountEnabled,
	}
}

// LayoutConfig contains placement configuration.
type LayoutConfig struct {
	// WallMountHeightMm is the mount height locked onto wall modules
	WallMountHeightMm float64 `mapstructure:"wall_mount_height_mm"`
}

// Load loads the configuration from environment variables and config files.
// It follows this precedence (highest to lowest):
//  1. Environment variables
//  2. Config file (if provided)
//  3. Default values
//
// Returns:
//   - *Config: The loaded configuration
//   - error: Any error encountered during loading
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	v.AddConfigPath("/etc/furniture-go")

	if err := v.ReadInConfig(); err != nil {
		// Config file not found is OK, we'll use env vars and defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("FURNITURE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "furniture-go")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.debug", false)

	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 30*time.Second)
	v.SetDefault("server.cors_allowed_origins", []string{"*"})

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Pricing defaults: every adjustment starts disabled so a bare
	// deployment prices at the reference price
	v.SetDefault("pricing.global_percent", 0.0)
	v.SetDefault("pricing.global_enabled", false)
	v.SetDefault("pricing.currency_enabled", false)
	v.SetDefault("pricing.usd_discount_percent", 0.0)
	v.SetDefault("pricing.usd_discount_enabled", false)

	// Layout defaults
	v.SetDefault("layout.wall_mount_height_mm", 1450.0)
}

// bindEnvVars binds specific environment variables to configuration keys.
func bindEnvVars(v *viper.Viper) {
	// These are explicitly bound for clarity
	v.BindEnv("app.environment", "FURNITURE_ENVIRONMENT")
	v.BindEnv("server.port", "PORT") // Common convention
}

// MustLoad loads the configuration and panics on error.
// Use this in application entry points where configuration is required.
//
// Returns:
//   - *Config: The loaded configuration
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// GetEnv gets an environment variable with a default value.
//
// Parameters:
//   - key: Environment variable name
//   - defaultValue: Default value if not set
//
// Returns:
//   - string: The environment variable value or default
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetEnvInt gets an integer environment variable with a default value.
//
// Parameters:
//   - key: Environment variable name
//   - defaultValue: Default value if not set or invalid
//
// Returns:
//   - int: The environment variable value or default
func GetEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

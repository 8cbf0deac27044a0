package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the trend desk
type Config struct {
	General   GeneralConfig   `mapstructure:"general"`
	Server    ServerConfig    `mapstructure:"server"`
	Gemini    GeminiConfig    `mapstructure:"gemini"`
	Accounts  AccountsConfig  `mapstructure:"accounts"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// GeneralConfig contains general application settings
type GeneralConfig struct {
	Provider string `mapstructure:"provider"` // generation capability to wire, gemini by default
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Address string `mapstructure:"address"`
}

// GeminiConfig contains the generation capability settings
type GeminiConfig struct {
	APIKey    string        `mapstructure:"api_key"`
	Model     string        `mapstructure:"model"`
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	Grounding bool          `mapstructure:"grounding"`
}

func (g GeminiConfig) Validate() error {
	if strings.TrimSpace(g.APIKey) == "" {
		return fmt.Errorf("gemini.api_key is required (or TRENDDESK_GEMINI_API_KEY)")
	}
	return nil
}

// SeedAccount is one account preloaded into the in-memory store.
type SeedAccount struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Role     string `mapstructure:"role"`
}

// AccountsConfig lists the accounts available at startup.
type AccountsConfig struct {
	Seed []SeedAccount `mapstructure:"seed"`
}

// Normalize guarantees the store never starts empty: with no seeds
// configured the stock admin account is preloaded.
func (a AccountsConfig) Normalize() AccountsConfig {
	if len(a.Seed) == 0 {
		a.Seed = []SeedAccount{{Username: "admin", Password: "admin123", Role: "admin"}}
	}
	return a
}

func (a AccountsConfig) Validate() error {
	for _, seed := range a.Seed {
		if strings.TrimSpace(seed.Username) == "" {
			return fmt.Errorf("accounts.seed entries need a username")
		}
		if seed.Role != "standard" && seed.Role != "admin" {
			return fmt.Errorf("accounts.seed role %q must be standard or admin", seed.Role)
		}
	}
	return nil
}

// TelemetryConfig contains telemetry and monitoring settings
type TelemetryConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// LoadConfig loads config from file
func LoadConfig(path string) *Config {
	viper.SetConfigName("config") // name of config file (without extension)
	viper.SetConfigType("json")   // REQUIRED if the config file does not have the extension in the name
	viper.SetDefault("general.provider", "gemini")
	viper.SetDefault("general.log_level", "info")
	viper.SetDefault("gemini.model", "gemini-2.5-flash")
	viper.SetDefault("gemini.timeout", time.Minute)
	viper.SetDefault("gemini.grounding", true)
	viper.SetDefault("telemetry.enabled", true)

	if path == "" {
		viper.AddConfigPath("./config") // path to look for the config file in
		viper.AddConfigPath(".")        // optionally look for config in the working directory
		exe, _ := os.Executable()
		exeDir := filepath.Dir(exe)
		viper.AddConfigPath(exeDir)                                // bin/
		viper.AddConfigPath(filepath.Join(exeDir, ".."))           // repo root
		viper.AddConfigPath(filepath.Join(exeDir, "..", "config")) // repo root/config
	} else {
		viper.SetConfigFile(path)
	}

	viper.SetEnvPrefix("TRENDDESK")
	replacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(replacer)

	viper.AutomaticEnv() // read in environment variables that match (TRENDDESK_*)

	err := viper.ReadInConfig() // Find and read the config file
	if err != nil {             // Handle errors reading the config file
		panic(fmt.Errorf("fatal error config file: %w", err))
	}

	// unmarshal config
	var config Config

	if err = viper.Unmarshal(&config); err != nil {
		panic(fmt.Errorf("fatal error config file: %w", err))
	}
	config.Accounts = config.Accounts.Normalize()

	if err := config.Gemini.Validate(); err != nil {
		panic(err)
	}
	if err := config.Accounts.Validate(); err != nil {
		panic(err)
	}
	return &config
}

package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Port         string `mapstructure:"PORT"`
	LogMode      string `mapstructure:"LOG_MODE"`
	ReportFormat string `mapstructure:"REPORT_FORMAT"`
}

// Defaults
const (
	DefaultPort         = ":8080"
	DefaultLogMode      = "development"
	DefaultReportFormat = "text"
)

func LoadConfig() (c Config, err error) {
	// Get environment type from ENV variable or use development as default
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	viper.SetDefault("PORT", DefaultPort)
	viper.SetDefault("LOG_MODE", DefaultLogMode)
	viper.SetDefault("REPORT_FORMAT", DefaultReportFormat)

	// Load environment file
	viper.SetConfigName(fmt.Sprintf(".env.%s", env))
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	// Environment variables take precedence over config file
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Continue even if file is not found
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
	}

	err = viper.Unmarshal(&c)
	return
}

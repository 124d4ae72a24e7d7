package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	HTTPAddr       string `mapstructure:"http_addr"`
	JWTSecret      string `mapstructure:"jwt_secret"`
	JWTExpiryHours int    `mapstructure:"jwt_expiry_hours"`
	RabbitURL      string `mapstructure:"rabbitmq_url"`
	SessionFile    string `mapstructure:"session_file"`
	SimDelayMS     int    `mapstructure:"sim_delay_ms"`
}

// SimDelay is the artificial latency of the mocked backend.
func (c Config) SimDelay() time.Duration {
	return time.Duration(c.SimDelayMS) * time.Millisecond
}

func (c Config) JWTExpiry() time.Duration {
	return time.Duration(c.JWTExpiryHours) * time.Hour
}

func Load() Config {
	viper.SetDefault("http_addr", ":8080")
	viper.SetDefault("jwt_secret", "ridehub-dev-secret")
	viper.SetDefault("jwt_expiry_hours", 24)
	viper.SetDefault("session_file", "session.json")
	viper.SetDefault("sim_delay_ms", 800)

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	_ = viper.ReadInConfig()

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	_ = viper.BindEnv("http_addr", "HTTP_ADDR")
	_ = viper.BindEnv("jwt_secret", "JWT_SECRET")
	_ = viper.BindEnv("jwt_expiry_hours", "JWT_EXPIRY_HOURS")
	_ = viper.BindEnv("rabbitmq_url", "RABBITMQ_URL")
	_ = viper.BindEnv("session_file", "SESSION_FILE")
	_ = viper.BindEnv("sim_delay_ms", "SIM_DELAY_MS")

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		panic("config error: " + err.Error())
	}
	return c
}

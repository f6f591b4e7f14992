package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	Redis   RedisConfig
	JWT     JWTConfig
	AI      AIConfig
	Booking BookingConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// AIConfig configures the OpenRouter specialty classifier.
type AIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// BookingConfig carries the slot grid parameters used when deriving bookable
// slots from a doctor's working window.
type BookingConfig struct {
	SlotDuration    time.Duration
	LunchBreakStart string // Format: HH:MM
	LunchBreakEnd   string // Format: HH:MM
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.SetDefault("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1")
	viper.SetDefault("OPENROUTER_MODEL", "openai/gpt-4o-mini")
	viper.SetDefault("LUNCH_BREAK_START", "11:00")
	viper.SetDefault("LUNCH_BREAK_END", "13:00")

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	aiTimeout, err := time.ParseDuration(viper.GetString("AI_TIMEOUT"))
	if err != nil {
		aiTimeout = 20 * time.Second
	}

	slotDuration, err := time.ParseDuration(viper.GetString("SLOT_DURATION"))
	if err != nil {
		slotDuration = 30 * time.Minute
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		AI: AIConfig{
			APIKey:  viper.GetString("OPENROUTER_API_KEY"),
			Model:   viper.GetString("OPENROUTER_MODEL"),
			BaseURL: viper.GetString("OPENROUTER_BASE_URL"),
			Timeout: aiTimeout,
		},
		Booking: BookingConfig{
			SlotDuration:    slotDuration,
			LunchBreakStart: viper.GetString("LUNCH_BREAK_START"),
			LunchBreakEnd:   viper.GetString("LUNCH_BREAK_END"),
		},
	}

	return config, nil
}

package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Session   SessionConfig
	Token     TokenConfig
	Email     EmailConfig
	Recaptcha RecaptchaConfig
}

type AppConfig struct {
	Name    string
	Port    string
	BaseURL string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	URI  string
	Name string
}

type SessionConfig struct {
	CookieName  string
	ExpiryHours int
}

type TokenConfig struct {
	SecretKey     string
	MaxAgeSeconds int
}

type EmailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	UseSSL   bool
}

type RecaptchaConfig struct {
	PublicKey  string
	PrivateKey string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("APP_BASE_URL", "http://localhost:8080")
	viper.SetDefault("MONGODB_NAME", "movies")
	viper.SetDefault("SESSION_COOKIE_NAME", "watchlist_session")
	viper.SetDefault("SESSION_EXPIRY_HOURS", 24)
	viper.SetDefault("TOKEN_MAX_AGE_SECONDS", 3600)
	viper.SetDefault("MAIL_USE_SSL", true)
	viper.SetDefault("LOG_PATH", "logs/")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			BaseURL: viper.GetString("APP_BASE_URL"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			URI:  viper.GetString("MONGODB_URI"),
			Name: viper.GetString("MONGODB_NAME"),
		},
		Session: SessionConfig{
			CookieName:  viper.GetString("SESSION_COOKIE_NAME"),
			ExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
		},
		Token: TokenConfig{
			SecretKey:     viper.GetString("SECRET_KEY"),
			MaxAgeSeconds: viper.GetInt("TOKEN_MAX_AGE_SECONDS"),
		},
		Email: EmailConfig{
			Host:     viper.GetString("MAIL_SERVER"),
			Port:     viper.GetInt("MAIL_PORT"),
			User:     viper.GetString("MAIL_USERNAME"),
			Password: viper.GetString("MAIL_PASSWORD"),
			From:     viper.GetString("MAIL_USERNAME"),
			UseSSL:   viper.GetBool("MAIL_USE_SSL"),
		},
		Recaptcha: RecaptchaConfig{
			PublicKey:  viper.GetString("RECAPTCHA_PUBLIC_KEY"),
			PrivateKey: viper.GetString("RECAPTCHA_PRIVATE_KEY"),
		},
	}

	return config, nil
}

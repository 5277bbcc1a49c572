package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds everything the server needs from the environment.
type Config struct {
	Port string

	DBHost string
	DBPort string
	DBName string
	DBUser string
	DBPass string

	S3Bucket  string
	AWSRegion string

	SecretKey  string
	SessionTTL time.Duration

	PresignTTL   time.Duration
	MaxUploadLen int64

	TemplateGlob string
}

func Load() (Config, error) {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("AWS_REGION", "us-east-1")
	viper.SetDefault("SECRET_KEY", "change-this-in-production")
	viper.SetDefault("SESSION_TTL_HOURS", 24)
	viper.SetDefault("PRESIGN_TTL_SECONDS", 3600)
	viper.SetDefault("MAX_CONTENT_LENGTH", int64(2*1024*1024*1024)) // 2GB
	viper.SetDefault("TEMPLATE_GLOB", "web/templates/*.html")
	viper.AutomaticEnv()

	cfg := Config{
		Port:         viper.GetString("PORT"),
		DBHost:       viper.GetString("DB_HOST"),
		DBPort:       viper.GetString("DB_PORT"),
		DBName:       viper.GetString("DB_NAME"),
		DBUser:       viper.GetString("DB_USER"),
		DBPass:       viper.GetString("DB_PASS"),
		S3Bucket:     viper.GetString("S3_BUCKET"),
		AWSRegion:    viper.GetString("AWS_REGION"),
		SecretKey:    viper.GetString("SECRET_KEY"),
		SessionTTL:   time.Duration(viper.GetInt("SESSION_TTL_HOURS")) * time.Hour,
		PresignTTL:   time.Duration(viper.GetInt("PRESIGN_TTL_SECONDS")) * time.Second,
		MaxUploadLen: viper.GetInt64("MAX_CONTENT_LENGTH"),
		TemplateGlob: viper.GetString("TEMPLATE_GLOB"),
	}

	for _, req := range []struct{ key, val string }{
		{"DB_HOST", cfg.DBHost},
		{"DB_NAME", cfg.DBName},
		{"DB_USER", cfg.DBUser},
		{"S3_BUCKET", cfg.S3Bucket},
	} {
		if req.val == "" {
			return Config{}, fmt.Errorf("missing required environment variable %s", req.key)
		}
	}

	return cfg, nil
}

// DatabaseURI builds the postgres connection string for gorm.
func (c Config) DatabaseURI() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPass, c.DBName)
}

package util

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variable.
type Config struct {
	Environment          string        `mapstructure:"ENVIRONMENT"`
	AllowedOrigins       []string      `mapstructure:"ALLOWED_ORIGINS"`
	DBSource             string        `mapstructure:"DB_SOURCE"`
	MigrationURL         string        `mapstructure:"MIGRATION_URL"`
	RedisAddress         string        `mapstructure:"REDIS_ADDRESS"`
	RedisPassword        string        `mapstructure:"REDIS_PASSWORD"`
	HTTPServerAddress    string        `mapstructure:"HTTP_SERVER_ADDRESS"`
	TokenSymmetricKey    string        `mapstructure:"TOKEN_SYMMETRIC_KEY"`
	AccessTokenDuration  time.Duration `mapstructure:"ACCESS_TOKEN_DURATION"`
	RefreshTokenDuration time.Duration `mapstructure:"REFRESH_TOKEN_DURATION"`

	// Place search integrations (best effort, used by the importer).
	NaverClientID      string `mapstructure:"NAVER_CLIENT_ID"`
	NaverClientSecret  string `mapstructure:"NAVER_CLIENT_SECRET"`
	GooglePlacesAPIKey string `mapstructure:"GOOGLE_PLACES_API_KEY"`

	// Gacha tuning. Invalid values are normalized to documented defaults
	// by GachaConfig.Normalize, never rejected.
	GachaCost            int64    `mapstructure:"GACHA_COST"`
	GachaCharacterWeight float64  `mapstructure:"GACHA_CHARACTER_WEIGHT"`
	GachaAssetWeight     float64  `mapstructure:"GACHA_ASSET_WEIGHT"`
	GachaBonusWeight     float64  `mapstructure:"GACHA_BONUS_WEIGHT"`
	GachaAssetPool       []string `mapstructure:"GACHA_ASSET_POOL"`
	GachaBonusMin        int64    `mapstructure:"GACHA_BONUS_MIN"`
	GachaBonusMax        int64    `mapstructure:"GACHA_BONUS_MAX"`
	GachaMaxAssetSlots   int32    `mapstructure:"GACHA_MAX_ASSET_SLOTS"`

	// Points granted right after registration.
	WelcomeBonusPoints int64 `mapstructure:"WELCOME_BONUS_POINTS"`
}

// Gacha assembles the normalized gacha configuration.
func (c Config) Gacha() GachaConfig {
	return GachaConfig{
		Cost:            c.GachaCost,
		CharacterWeight: c.GachaCharacterWeight,
		AssetWeight:     c.GachaAssetWeight,
		BonusWeight:     c.GachaBonusWeight,
		AssetPool:       c.GachaAssetPool,
		BonusMin:        c.GachaBonusMin,
		BonusMax:        c.GachaBonusMax,
		MaxAssetSlots:   c.GachaMaxAssetSlots,
	}.Normalize()
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	// Normalize common quoted values from .env (e.g. REDIS_PASSWORD="...")
	config.RedisPassword = trimOptionalQuotes(config.RedisPassword)
	return
}

func trimOptionalQuotes(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\"")
	s = strings.TrimSuffix(s, "\"")
	s = strings.TrimPrefix(s, "'")
	s = strings.TrimSuffix(s, "'")
	return s
}

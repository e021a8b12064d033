package config

import "time"

// JWTConfig содержит настройки для сессионных токенов и хэширования паролей.
type JWTConfig struct {
	// SecretKey - обязательный секрет подписи; без него сервис не стартует.
	SecretKey  string `yaml:"secret_key" env:"SHARENOTE_JWT_SECRET_KEY" env-required:"true"`
	TokenTTL   string `yaml:"token_ttl" env:"SHARENOTE_JWT_TOKEN_TTL" env-default:"24h"`
	BCryptCost int    `yaml:"bcrypt_cost" env:"SHARENOTE_BCRYPT_COST" env-default:"10"`
}

// GetTokenTTL возвращает продолжительность времени жизни сессионного токена.
func (c *JWTConfig) GetTokenTTL() time.Duration {
	duration, err := time.ParseDuration(c.TokenTTL)
	if err != nil {
		return 24 * time.Hour
	}
	return duration
}

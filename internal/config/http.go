package config

import (
	"fmt"
	"time"
)

// HTTPConfig представляет конфигурацию HTTP сервера.
type HTTPConfig struct {
	Host         string        `yaml:"host" env:"SHARENOTE_HTTP_HOST" env-default:"0.0.0.0"`
	Port         int           `yaml:"port" env:"SHARENOTE_HTTP_PORT" env-default:"8080"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"SHARENOTE_HTTP_READ_TIMEOUT" env-default:"5s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SHARENOTE_HTTP_WRITE_TIMEOUT" env-default:"10s"`
	// BaseURL - внешний адрес сервиса, используется при построении публичных ссылок.
	BaseURL string `yaml:"base_url" env:"SHARENOTE_HTTP_BASE_URL" env-default:"http://localhost:8080"`
}

// GetAddress возвращает адрес HTTP сервера.
func (c *HTTPConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

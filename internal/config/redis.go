package config

import (
	"time"

	"sharenote/pkg/db/redis"
)

// RedisConfig представляет конфигурацию Redis для рассылки событий.
type RedisConfig struct {
	Host          string        `yaml:"host" env:"SHARENOTE_REDIS_HOST" env-default:"localhost"`
	Port          int           `yaml:"port" env:"SHARENOTE_REDIS_PORT" env-default:"6379"`
	Password      string        `yaml:"password" env:"SHARENOTE_REDIS_PASSWORD" env-default:""`
	DB            int           `yaml:"db" env:"SHARENOTE_REDIS_DB" env-default:"0"`
	PoolSize      int           `yaml:"pool_size" env:"SHARENOTE_REDIS_POOL_SIZE" env-default:"10"`
	Timeout       time.Duration `yaml:"timeout" env:"SHARENOTE_REDIS_TIMEOUT" env-default:"3s"`
	EventsChannel string        `yaml:"events_channel" env:"SHARENOTE_REDIS_EVENTS_CHANNEL" env-default:"sharenote:events"`
}

// ToClientConfig преобразует настройки в конфигурацию клиента pkg/db/redis.
func (c *RedisConfig) ToClientConfig() *redis.Config {
	return &redis.Config{
		Host:     c.Host,
		Port:     c.Port,
		Password: c.Password,
		DB:       c.DB,
		PoolSize: c.PoolSize,
		Timeout:  c.Timeout,
	}
}

package config

import "time"

// Redis необязателен. Пустой адрес отключает общий кэш.
type Redis struct {
	Address            string        `env:"REDIS_ADDRESS"`
	Username           string        `env:"REDIS_USERNAME"`
	Password           string        `env:"REDIS_PASSWORD" json:"-"`
	DatabaseNumber     int           `env:"REDIS_DB" envDefault:"0"`
	PoolSize           int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	MinIdleConnections int           `env:"REDIS_MIN_IDLE_CONNS" envDefault:"1"`
	MaxIdleConnections int           `env:"REDIS_MAX_IDLE_CONNS" envDefault:"5"`
	KeyPrefix          string        `env:"REDIS_KEY_PREFIX" envDefault:"similar-groups:"`
	TTL                time.Duration `env:"REDIS_TTL" envDefault:"24h"`
	ConnectTimeout     time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"5s"`
}

func (r Redis) Enabled() bool {
	return r.Address != ""
}

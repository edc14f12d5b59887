package config

import (
	"fmt"
	"time"
)

// PostgresConfig содержит настройки подключения к базе данных.
type PostgresConfig struct {
	Host     string `yaml:"host" env:"NOTELY_POSTGRES_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"NOTELY_POSTGRES_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"NOTELY_POSTGRES_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"NOTELY_POSTGRES_PASSWORD" env-default:"postgres"`
	Database string `yaml:"database" env:"NOTELY_POSTGRES_DB" env-default:"notely"`
	MinConn  int    `yaml:"min_conn" env:"NOTELY_POSTGRES_MIN_CONN" env-default:"1"`
	MaxConn  int    `yaml:"max_conn" env:"NOTELY_POSTGRES_MAX_CONN" env-default:"10"`

	// ConnectAttempts ограничивает число попыток подключения при старте.
	ConnectAttempts int           `yaml:"connect_attempts" env:"NOTELY_POSTGRES_CONNECT_ATTEMPTS" env-default:"5"`
	ConnectBackoff  time.Duration `yaml:"connect_backoff" env:"NOTELY_POSTGRES_CONNECT_BACKOFF" env-default:"1s"`
}

// GetDSN возвращает строку подключения к PostgreSQL.
func (p *PostgresConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		p.Host, p.Port, p.User, p.Password, p.Database)
}

// GetConnectionURL возвращает URL-строку подключения для миграций.
func (p *PostgresConfig) GetConnectionURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		p.User, p.Password, p.Host, p.Port, p.Database)
}

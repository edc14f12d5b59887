package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidTTL = errors.New("invalid token lifetime")

// JWTConfig содержит настройки для JWT токенов.
type JWTConfig struct {
	Secret     string `yaml:"secret" env:"JWT_SECRET" env-default:"fallback-secret-key"`
	ExpiresIn  string `yaml:"expires_in" env:"JWT_EXPIRES_IN" env-default:"7d"`
	BCryptCost int    `yaml:"bcrypt_cost" env:"NOTELY_BCRYPT_COST" env-default:"10"`
}

// GetTTL возвращает время жизни токена. Помимо формата time.ParseDuration
// принимается суффикс "d" (дни), например "7d".
func (c *JWTConfig) GetTTL() (time.Duration, error) {
	return ParseTTL(c.ExpiresIn)
}

// ParseTTL разбирает продолжительность вида "15m", "24h" или "7d".
func ParseTTL(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if days, ok := strings.CutSuffix(value, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil || n <= 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTTL, value)
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}

	duration, err := time.ParseDuration(value)
	if err != nil || duration <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTTL, value)
	}
	return duration, nil
}

package config

// LoggingConfig представляет конфигурацию логирования.
type LoggingConfig struct {
	Level string `yaml:"level" env:"NOTELY_LOGGER_LEVEL" env-default:"info"`
	Mode  string `yaml:"mode" env:"NOTELY_LOGGER_MODE" env-default:"development"`
}

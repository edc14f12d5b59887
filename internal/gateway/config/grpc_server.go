package config

import "fmt"

// GRPCServerConfig - адрес gRPC сервера проверок состояния.
type GRPCServerConfig struct {
	Host string `yaml:"host" env:"NOTELY_GRPC_HOST" env-default:"0.0.0.0"`
	Port int    `yaml:"port" env:"NOTELY_GRPC_PORT" env-default:"50051"`
}

// GetAddress возвращает адрес gRPC сервера в формате host:port.
func (c *GRPCServerConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

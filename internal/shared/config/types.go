package config

import "fmt"

type ServerConfig struct {
	Host string `mapstructure:"host" validate:"required"`
	Port int    `mapstructure:"port" validate:"gte=1,lte=65535"`
	Mode string `mapstructure:"mode"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host" validate:"required"`
	Port            int    `mapstructure:"port" validate:"gte=1,lte=65535"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database" validate:"required"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// GymConfig holds gym-specific business settings.
type GymConfig struct {
	// Timezone is the business timezone used for date boundaries
	// (subscription validity days, attendance dates).
	Timezone string `mapstructure:"timezone" validate:"required,timezone"`
	// Currency is the ISO code applied to plan prices and payments.
	Currency string `mapstructure:"currency" validate:"required,len=3"`
}

type SchedulerConfig struct {
	// ExpirySweepHours is the interval between subscription expiry sweeps.
	ExpirySweepHours int `mapstructure:"expiry_sweep_hours" validate:"gte=1"`
}

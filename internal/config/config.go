package config

import (
	pkgconfig "github.com/BillGoldenWater/BiliBiliRecNotifier/pkg/config"
)

type Config struct {
	Server ServerConfig
	Filter FilterConfig
	Log    LogConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type FilterConfig struct {
	// RoomIDs is a comma-separated allow list of room IDs. Empty means
	// every room triggers a notification.
	RoomIDs string `mapstructure:"room_ids"`
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	v, err := pkgconfig.Load("./config", "config")
	if err != nil {
		return nil, err
	}

	// Set defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 25550)
	v.SetDefault("filter.room_ids", "")
	v.SetDefault("log.level", "info")

	// Bind environment variables
	v.BindEnv("server.port", "PORT")
	v.BindEnv("filter.room_ids", "ROOMID_FILTER")
	v.BindEnv("log.level", "LOG_LEVEL")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

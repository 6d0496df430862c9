package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config - параметры запуска сервера и генерации мира.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Game    GameConfig    `toml:"game"`
	Logging LoggingConfig `toml:"logging"`
}

type ServerConfig struct {
	Port        string        `toml:"port"`
	TickRate    time.Duration `toml:"tick_rate"` // период опроса планировщика хостом
	InQueueSize int           `toml:"in_queue_size"`
}

type GameConfig struct {
	MapWidth     int   `toml:"map_width"`
	MapHeight    int   `toml:"map_height"`
	MaxRooms     int   `toml:"max_rooms"`
	RoomMinSize  int   `toml:"room_min_size"`
	RoomMaxSize  int   `toml:"room_max_size"`
	VisionRadius int   `toml:"vision_radius"`
	Seed         int64 `toml:"seed"` // 0 = случайный при старте
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" или "text"
}

// Load читает конфиг из toml-файла поверх дефолтов.
// Пустой путь означает "только дефолты".
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Default возвращает рабочие значения по умолчанию
// (параметры карты - как в классическом данжен-кроулере).
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        "8080",
			TickRate:    50 * time.Millisecond,
			InQueueSize: 64,
		},
		Game: GameConfig{
			MapWidth:     40,
			MapHeight:    25,
			MaxRooms:     8,
			RoomMinSize:  4,
			RoomMaxSize:  10,
			VisionRadius: 8,
			Seed:         0,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

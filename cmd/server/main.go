package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"gloomdelve-server/internal/config"
	"gloomdelve-server/internal/engine"
	"gloomdelve-server/internal/server"
	"gloomdelve-server/internal/version"
	"gloomdelve-server/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	var configPath string
	var seed int64
	flag.StringVar(&configPath, "config", "", "Path to TOML config (empty for defaults)")
	flag.Int64Var(&seed, "seed", 0, "World seed (0 for random)")
	flag.Parse()

	logger.Log.Info("Starting Gloomdelve...")
	logger.Log.Info(version.String())

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Log.Fatal("Config error: ", err)
	}
	logger.Configure(cfg.Logging.Level, cfg.Logging.Format)

	// Флаг -seed перекрывает конфиг; 0 означает случайное зерно.
	if seed != 0 {
		cfg.Game.Seed = seed
	}
	if cfg.Game.Seed == 0 {
		cfg.Game.Seed = time.Now().UnixNano()
	}
	logger.Log.Infof("Using world seed: %d", cfg.Game.Seed)

	if port := os.Getenv("GD_PORT"); port != "" {
		cfg.Server.Port = port
	}

	rng := rand.New(rand.NewSource(cfg.Game.Seed))
	session := engine.NewSession(cfg, rng)

	srv := server.New(session, cfg.Server.Port, cfg.Server.TickRate)
	if err := srv.Run(); err != nil {
		logger.Log.Fatal("Server error: ", err)
	}
}

package server

import (
	"math/rand"
	"os"
	"testing"

	"gloomdelve-server/internal/config"
	"gloomdelve-server/internal/engine"
	"gloomdelve-server/internal/network"
	"gloomdelve-server/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// newTestServer собирает сервер с детерминированной сессией,
// без запуска цикла и HTTP.
func newTestServer(seed int64) *Server {
	return &Server{
		session: engine.NewSession(config.Default(), rand.New(rand.NewSource(seed))),
		hub:     network.NewBroadcaster(),
	}
}

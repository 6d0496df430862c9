package server

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"gloomdelve-server/internal/engine"
	"gloomdelve-server/internal/network"
	"gloomdelve-server/internal/version"
	"gloomdelve-server/pkg/logger"
)

// Server - хост ядра симуляции: непрерывно опрашиваемый цикл, который
// тикает планировщик, плюс websocket-транспорт для ввода и снапшотов.
// Сессия одна на процесс, все подключившиеся клиенты видят один мир.
type Server struct {
	session  *engine.Session
	hub      *network.Broadcaster
	port     string
	tickRate time.Duration

	// mu разводит цикл симуляции и снапшот при подключении клиента.
	// Внутри кадра ядро остается однопоточным: Tick зовет только loop.
	mu sync.Mutex
}

func New(session *engine.Session, port string, tickRate time.Duration) *Server {
	return &Server{
		session:  session,
		hub:      network.NewBroadcaster(),
		port:     port,
		tickRate: tickRate,
	}
}

// Run запускает цикл симуляции и HTTP-сервер. Блокируется до ошибки.
func (s *Server) Run() error {
	go s.loop()

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/version", s.handleVersion)
	s.registerDebugRoutes(mux)

	logger.Log.Infof("Gloomdelve server running on :%s", s.port)
	return http.ListenAndServe(":"+s.port, mux)
}

// loop - "рендер-цикл" хоста. Планировщик вызывается каждый кадр;
// снапшот рассылается только когда состояние сменилось, так что
// холостые кадры ожидания ввода ничего не стоят.
func (s *Server) loop() {
	ticker := time.NewTicker(s.tickRate)
	defer ticker.Stop()

	prev := engine.StateRunning
	for range ticker.C {
		s.mu.Lock()
		state := s.session.Scheduler.Tick()
		if state != prev {
			s.hub.Broadcast(s.buildSnapshot("UPDATE"))
			prev = state
		}
		s.mu.Unlock()
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.WithError(err).Error("websocket upgrade failed")
		return
	}

	client := newClient(s, conn)
	go client.writePump()
	go client.readPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok")); err != nil {
		logger.Log.WithError(err).Debug("health write failed")
	}
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(version.Info()); err != nil {
		logger.Log.WithError(err).Debug("version write failed")
	}
}

package observability

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type HealthStatus struct {
	Status     string            `json:"status"`
	Timestamp  time.Time         `json:"timestamp"`
	Components map[string]string `json:"components"`
}

// HealthFunc reports the health of the running process.
type HealthFunc func(ctx context.Context) HealthStatus

// MetricsServer serves /metrics and /health.
type MetricsServer struct {
	addr   string
	health HealthFunc
	server *http.Server
}

func NewMetricsServer(addr string, health HealthFunc) *MetricsServer {
	return &MetricsServer{
		addr:   addr,
		health: health,
	}
}

func (s *MetricsServer) Handler() http.Handler {
	mux := http.NewServeMux()

	// Prometheus metrics
	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		status := HealthStatus{Status: "up", Timestamp: time.Now().UTC(), Components: map[string]string{}}
		if s.health != nil {
			status = s.health(r.Context())
		}
		w.Header().Set("Content-Type", "application/json")
		if status.Status != "up" {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		if err := json.NewEncoder(w).Encode(status); err != nil {
			slog.Debug("write health response", "error", err)
		}
	})
	return mux
}

// Start binds the listener synchronously so address errors surface to the
// caller, then serves in the background.
func (s *MetricsServer) Start(ctx context.Context) error {
	ln, err := (&net.ListenConfig{}).Listen(ctx, "tcp", s.addr)
	if err != nil {
		return err
	}
	s.server = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	slog.Info("metrics server starting", "addr", ln.Addr().String())

	go func() {
		if err := s.server.Serve(ln); err != nil && err != http.ErrServerClosed {
			slog.Error("metrics server failed", "error", err)
		}
	}()
	return nil
}

func (s *MetricsServer) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

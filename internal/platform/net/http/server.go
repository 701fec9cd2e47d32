package http

import (
	"context"
	"errors"
	"net"
	stdhttp "net/http"
	"time"

	"stubdemo/internal/platform/config"
	"stubdemo/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// DefaultPort is where the stub services listen unless PORT or ADDR says otherwise
const DefaultPort = 8081

// Server is a thin wrapper over chi + stdlib http.Server
type Server struct {
	addr            string
	mux             *chi.Mux
	srv             *stdhttp.Server
	shutdownTimeout time.Duration
	ready           chan net.Addr
}

// NewServer builds a server from cfg (ADDR, PORT, SHUTDOWN_TIMEOUT)
// opts receive the *chi.Mux so callers can mount routes/mw
func NewServer(cfg config.Conf, opts ...func(*chi.Mux)) *Server {
	addr := cfg.ListenAddr(DefaultPort)
	m := chi.NewRouter()
	for _, o := range opts {
		o(m)
	}
	return &Server{
		addr:            addr,
		mux:             m,
		shutdownTimeout: cfg.MayDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
		ready:           make(chan net.Addr, 1),
		srv: &stdhttp.Server{
			Addr:              addr,
			Handler:           m,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Router returns a Router facade over the internal chi mux
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Addr returns the configured listen address
func (s *Server) Addr() string { return s.addr }

// Ready yields the bound address once Run is listening
func (s *Server) Ready() <-chan net.Addr { return s.ready }

// Run listens and serves until ctx is cancelled or the listener fails.
// A cancelled ctx triggers a graceful shutdown and Run returns nil
func (s *Server) Run(ctx context.Context) error {
	log := logger.Named("http")

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	log.Info().Str("addr", ln.Addr().String()).Msgf("server is listening on http://%s", displayAddr(ln.Addr()))
	s.ready <- ln.Addr()

	stop := context.AfterFunc(ctx, func() {
		sctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := s.Shutdown(sctx); err != nil {
			log.Error().Err(err).Msg("http shutdown failed")
		}
	})
	defer stop()

	err = s.srv.Serve(ln)
	if errors.Is(err, stdhttp.ErrServerClosed) {
		log.Info().Msg("http stopped")
		return nil
	}
	return err
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }

// displayAddr renders wildcard binds as localhost for the startup line
func displayAddr(a net.Addr) string {
	host, port, err := net.SplitHostPort(a.String())
	if err != nil {
		return a.String()
	}
	if ip := net.ParseIP(host); host == "" || (ip != nil && ip.IsUnspecified()) {
		host = "localhost"
	}
	return net.JoinHostPort(host, port)
}

// Copyright 2025 The spincube Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package static

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// ErrInvalidConfig is returned by Config.Validate
var ErrInvalidConfig = errors.New("invalid config")

// Config is the file server configuration
type Config struct {
	// Addr is the listen address
	Addr string
	// Root is the directory to serve
	Root string
}

// DefaultConfig serves the working directory on port 8000 of every interface
func DefaultConfig() Config {
	return Config{
		Addr: ":8000",
		Root: ".",
	}
}

// Validate checks that the address is set and the root is a directory
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: empty listen address", ErrInvalidConfig)
	}
	info, err := os.Stat(c.Root)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrInvalidConfig, c.Root)
	}
	return nil
}

// URL is the address a local browser can open
func (c Config) URL() string {
	_, port, err := net.SplitHostPort(c.Addr)
	if err != nil {
		return "http://" + c.Addr
	}
	return "http://127.0.0.1:" + port
}

// Server serves a directory until it is stopped
type Server struct {
	config     Config
	httpServer *http.Server
}

// New creates a server for cfg
func New(cfg Config) *Server {
	return &Server{
		config: cfg,
		httpServer: &http.Server{
			Addr:              cfg.Addr,
			Handler:           Logger(Handler(http.Dir(cfg.Root))),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Start listens and serves until ctx is done, the process is signalled or
// the listener fails, then shuts down
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.config.Addr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve is like Start for an existing listener
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	done := make(chan error, 1)
	go func() {
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			done <- fmt.Errorf("serve: %w", err)
		}
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	select {
	case <-ctx.Done():
	case sig := <-signals:
		log.Printf("received %v", sig)
	case err := <-done:
		return err
	}
	return s.Shutdown()
}

// Shutdown stops the server, waiting up to 5 seconds for open requests
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

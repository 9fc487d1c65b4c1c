package main

import (
	"net/http"
	"testing"
	"time"

	"commission-reporting-api/internal/config"
)

func TestNewHTTPServer(t *testing.T) {
	cfg := &config.Config{
		Port: "9090",
		Server: config.ServerConfig{
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 7 * time.Second,
		},
	}
	handler := http.NotFoundHandler()

	srv := newHTTPServer(cfg, handler)

	if srv.Addr != ":9090" {
		t.Errorf("Addr = %q, want %q", srv.Addr, ":9090")
	}
	if srv.Handler == nil {
		t.Error("Handler is nil")
	}
	if srv.ReadTimeout != 3*time.Second {
		t.Errorf("ReadTimeout = %v, want 3s", srv.ReadTimeout)
	}
	if srv.WriteTimeout != 7*time.Second {
		t.Errorf("WriteTimeout = %v, want 7s", srv.WriteTimeout)
	}
}

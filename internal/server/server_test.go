package server

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-tasklist/internal/config"
	"github.com/MKhiriev/go-tasklist/internal/handler"
	myHTTP "github.com/MKhiriev/go-tasklist/internal/handler/http"
	"github.com/MKhiriev/go-tasklist/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeServer blocks in RunServer until Shutdown is called.
type fakeServer struct {
	stop      chan struct{}
	shutdowns atomic.Int32
}

func newFakeServer() *fakeServer {
	return &fakeServer{stop: make(chan struct{})}
}

func (f *fakeServer) RunServer() { <-f.stop }

func (f *fakeServer) Shutdown() {
	if f.shutdowns.Add(1) == 1 {
		close(f.stop)
	}
}

func TestNewServer_NoHandlers(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":0"}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_NoAddress(t *testing.T) {
	handlers := &handler.Handlers{HTTP: myHTTP.NewHandler(nil, logger.Nop())}

	s, err := NewServer(handlers, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_HTTP(t *testing.T) {
	handlers := &handler.Handlers{HTTP: myHTTP.NewHandler(nil, logger.Nop())}

	s, err := NewServer(handlers, config.Server{HTTPAddress: ":0", RequestTimeout: time.Second}, logger.Nop())

	require.NoError(t, err)
	srv, ok := s.(*server)
	require.True(t, ok)

	hs, ok := srv.httpServer.(*httpServer)
	require.True(t, ok)
	assert.Equal(t, ":0", hs.server.Addr)
	assert.Equal(t, time.Second, hs.server.ReadTimeout)
}

func TestRun_ShutsDownOnCancel(t *testing.T) {
	fake := newFakeServer()
	s := &server{httpServer: fake, logger: logger.Nop()}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.run(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("run did not return after cancel")
	}
	assert.EqualValues(t, 1, fake.shutdowns.Load())
}

func TestRun_ReturnsWhenServerStops(t *testing.T) {
	fake := newFakeServer()
	s := &server{httpServer: fake, logger: logger.Nop()}

	fake.Shutdown()
	s.run(context.Background())

	assert.EqualValues(t, 1, fake.shutdowns.Load())
}

func TestHTTPServer_ShutdownBeforeServe(t *testing.T) {
	hs := newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())

	hs.Shutdown()
	// ListenAndServe after Shutdown returns ErrServerClosed immediately
	hs.RunServer()
}

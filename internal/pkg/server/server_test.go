package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/salesdash/internal/pkg/logger"
	"github.com/piresc/salesdash/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

func TestNewGracefulServer(t *testing.T) {
	tests := []struct {
		name             string
		config           models.ServerConfig
		expectedAddr     string
		expectedShutdown time.Duration
	}{
		{
			name:             "Configured timeouts",
			config:           models.ServerConfig{Port: 8080, ReadTimeout: 10, WriteTimeout: 30, ShutdownTimeout: 5},
			expectedAddr:     ":8080",
			expectedShutdown: 5 * time.Second,
		},
		{
			name:             "Default shutdown timeout",
			config:           models.ServerConfig{Host: "127.0.0.1", Port: 9090},
			expectedAddr:     "127.0.0.1:9090",
			expectedShutdown: defaultShutdownTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			gs := NewGracefulServer(e, logger.NewNopLogger(), tt.config)

			assert.Equal(t, tt.expectedAddr, gs.addr)
			assert.Equal(t, tt.expectedShutdown, gs.shutdownTimeout)
			assert.Equal(t, time.Duration(tt.config.ReadTimeout)*time.Second, e.Server.ReadTimeout)
			assert.Equal(t, time.Duration(tt.config.WriteTimeout)*time.Second, e.Server.WriteTimeout)
		})
	}
}

func TestGracefulServer_Run(t *testing.T) {
	port := freePort(t)
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.GET("/live", func(c echo.Context) error { return c.String(http.StatusOK, "alive") })

	gs := NewGracefulServer(e, logger.NewNopLogger(), models.ServerConfig{Host: "127.0.0.1", Port: port, ShutdownTimeout: 2})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- gs.Run(ctx) }()

	url := fmt.Sprintf("http://127.0.0.1:%d/live", port)
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestGracefulServer_RunListenError(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	port := l.Addr().(*net.TCPAddr).Port

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	gs := NewGracefulServer(e, logger.NewNopLogger(), models.ServerConfig{Host: "127.0.0.1", Port: port})

	err = gs.Run(context.Background())
	assert.Error(t, err)
}

func TestShutdownManager_Shutdown(t *testing.T) {
	t.Run("Runs functions in order", func(t *testing.T) {
		sm := NewShutdownManager(logger.NewNopLogger())
		var results []string

		for _, name := range []string{"mongo", "redis", "newrelic"} {
			name := name
			sm.Register(func(ctx context.Context) error {
				results = append(results, name)
				return nil
			})
		}

		err := sm.Shutdown(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, []string{"mongo", "redis", "newrelic"}, results)
	})

	t.Run("Continues after a failure", func(t *testing.T) {
		sm := NewShutdownManager(logger.NewNopLogger())
		var results []string

		sm.Register(func(ctx context.Context) error {
			results = append(results, "cleanup1")
			return fmt.Errorf("cleanup1 failed")
		})
		sm.Register(func(ctx context.Context) error {
			results = append(results, "cleanup2")
			return nil
		})

		err := sm.Shutdown(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, []string{"cleanup1", "cleanup2"}, results)
	})

	t.Run("Nil function is ignored", func(t *testing.T) {
		sm := NewShutdownManager(logger.NewNopLogger())
		assert.NotPanics(t, func() {
			sm.Register(nil)
			_ = sm.Shutdown(context.Background())
		})
	})

	t.Run("Concurrent registration", func(t *testing.T) {
		sm := NewShutdownManager(logger.NewNopLogger())
		var wg sync.WaitGroup
		var mu sync.Mutex
		calls := 0

		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				sm.Register(func(ctx context.Context) error {
					mu.Lock()
					calls++
					mu.Unlock()
					return nil
				})
			}()
		}
		wg.Wait()

		assert.NoError(t, sm.Shutdown(context.Background()))
		assert.Equal(t, 10, calls)
	})
}

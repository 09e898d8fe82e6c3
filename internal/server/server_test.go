package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jovian-labs/nbserve/internal/config"
	myHTTP "github.com/jovian-labs/nbserve/internal/handler/http"
	"github.com/jovian-labs/nbserve/internal/logger"
	"github.com/jovian-labs/nbserve/internal/service"
)

func newTestHTTPHandler(t *testing.T) *myHTTP.Handler {
	t.Helper()

	cfg := &config.StructuredConfig{
		App: config.App{BaseURL: "/", DefaultURL: "/tree"},
	}

	return myHTTP.NewHandler(&service.Services{}, nil, cfg, logger.Nop())
}

func TestNewServer_RequiresHTTPAddress(t *testing.T) {
	_, err := NewServer(newTestHTTPHandler(t), config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoHTTPAddress)
}

func TestNewServer(t *testing.T) {
	cfg := config.Server{HTTPAddress: "localhost:8888", RequestTimeout: 30 * time.Second}

	srv, err := NewServer(newTestHTTPHandler(t), cfg, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, srv)
}

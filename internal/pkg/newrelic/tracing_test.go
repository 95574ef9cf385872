package newrelic

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/salesdash/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStart_Disabled(t *testing.T) {
	cfg := &models.Config{}
	cfg.NewRelic.Enabled = false

	assert.Nil(t, Start(cfg))

	cfg.NewRelic.Enabled = true
	cfg.NewRelic.LicenseKey = ""
	assert.Nil(t, Start(cfg))

	assert.NotPanics(t, func() { Shutdown(nil, time.Second) })
}

func TestAgentOptions(t *testing.T) {
	cfg := &models.Config{}
	cfg.App.Name = "salesdash"
	cfg.App.Environment = "staging"
	cfg.NewRelic.LicenseKey = "0123456789012345678901234567890123456789"
	cfg.NewRelic.ForwardLogs = true

	var agent newrelic.Config
	for _, opt := range agentOptions(cfg) {
		opt(&agent)
	}

	assert.Equal(t, "salesdash", agent.AppName)
	assert.Equal(t, cfg.NewRelic.LicenseKey, agent.License)
	assert.True(t, agent.DistributedTracer.Enabled)
	assert.True(t, agent.ApplicationLogging.Forwarding.Enabled)
	assert.False(t, agent.ApplicationLogging.LocalDecorating.Enabled)
	assert.Equal(t, map[string]string{"service": "salesdash", "environment": "staging"}, agent.Labels)
	assert.Subset(t, agent.ErrorCollector.IgnoreStatusCodes,
		[]int{http.StatusBadRequest, http.StatusNotFound, http.StatusTooManyRequests})

	cfg.NewRelic.AppName = "salesdash-api"
	agent = newrelic.Config{}
	for _, opt := range agentOptions(cfg) {
		opt(&agent)
	}
	assert.Equal(t, "salesdash-api", agent.AppName)
}

func TestMiddleware_NilAppPassesThrough(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/statistics", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	h := Middleware(nil)(func(c echo.Context) error {
		called = true
		assert.Nil(t, FromEchoContext(c))
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, h(c))
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHelpers_WithoutTransaction(t *testing.T) {
	ctx := context.Background()

	assert.Nil(t, FromContext(ctx))
	assert.NotPanics(t, func() {
		SetTransactionName(nil, "Transactions.PieChart")
		AddTransactionAttribute(nil, "month", "2022-03")
		NoticeTransactionError(nil, errors.New("boom"))
		StartMongoSegment(ctx, "transactions", "aggregate")()
	})

	v, err := WithSegmentAndReturn(ctx, "segment", func() (int, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

package newrelic

import (
	"net/http"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/salesdash/internal/pkg/logger"
	"github.com/piresc/salesdash/internal/pkg/models"
)

// ignoredStatusCodes are client mistakes, not service faults. Bad months and
// throttled callers would otherwise flood the error inbox.
var ignoredStatusCodes = []int{
	http.StatusBadRequest,
	http.StatusNotFound,
	http.StatusTooManyRequests,
}

// Start connects the APM agent for the dashboard service.
// A nil application means APM is off and every helper in this package no-ops.
func Start(configs *models.Config) *newrelic.Application {
	if !configs.NewRelic.Enabled || configs.NewRelic.LicenseKey == "" {
		logger.Info("New Relic is disabled or license key not provided")
		return nil
	}

	opts := agentOptions(configs)
	app, err := newrelic.NewApplication(opts...)
	if err != nil {
		logger.Warn("New Relic agent unavailable, serving without APM", logger.Err(err))
		return nil
	}

	logger.Info("New Relic agent started",
		logger.String("app_name", appName(configs)),
		logger.String("environment", configs.App.Environment),
		logger.Bool("log_forwarding", configs.NewRelic.ForwardLogs))
	return app
}

// Shutdown flushes pending harvest data. Safe to call with a nil app.
func Shutdown(app *newrelic.Application, timeout time.Duration) {
	if app == nil {
		return
	}
	app.Shutdown(timeout)
}

func agentOptions(configs *models.Config) []newrelic.ConfigOption {
	return []newrelic.ConfigOption{
		newrelic.ConfigAppName(appName(configs)),
		newrelic.ConfigLicense(configs.NewRelic.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(true),
		newrelic.ConfigAppLogForwardingEnabled(configs.NewRelic.ForwardLogs),
		newrelic.ConfigAppLogDecoratingEnabled(configs.NewRelic.LogsEnabled),
		func(cfg *newrelic.Config) {
			cfg.ErrorCollector.IgnoreStatusCodes = append(cfg.ErrorCollector.IgnoreStatusCodes, ignoredStatusCodes...)
			if cfg.Labels == nil {
				cfg.Labels = map[string]string{}
			}
			cfg.Labels["service"] = configs.App.Name
			if configs.App.Environment != "" {
				cfg.Labels["environment"] = configs.App.Environment
			}
		},
	}
}

func appName(configs *models.Config) string {
	if configs.NewRelic.AppName != "" {
		return configs.NewRelic.AppName
	}
	return configs.App.Name
}

package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/salesdash/internal/pkg/models"
	"github.com/piresc/salesdash/services/transactions"
	httpHandler "github.com/piresc/salesdash/services/transactions/handler/http"
)

// Handler combines all handlers for the transactions service
type Handler struct {
	transactionsHTTP *httpHandler.TransactionsHandler
	cfg              *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(transactionUC transactions.TransactionUC, cfg *models.Config) *Handler {
	return &Handler{
		transactionsHTTP: httpHandler.NewTransactionsHandler(transactionUC),
		cfg:              cfg,
	}
}

// RegisterRoutes registers the dashboard routes under the configured API prefix
func (h *Handler) RegisterRoutes(e *echo.Echo, m ...echo.MiddlewareFunc) {
	api := e.Group(h.cfg.Server.APIPrefix, m...)

	api.GET("/pie", h.transactionsHTTP.PieChart)
	api.GET("/bar", h.transactionsHTTP.BarChart)
	api.GET("/statistics", h.transactionsHTTP.Statistics)
	api.GET("/transactions", h.transactionsHTTP.ListTransactions)
	api.GET("/combined", h.transactionsHTTP.Combined)
}

package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/salesdash/internal/pkg/logger"
	"github.com/piresc/salesdash/internal/pkg/models"
	nrpkg "github.com/piresc/salesdash/internal/pkg/newrelic"
	"github.com/piresc/salesdash/internal/utils"
	"github.com/piresc/salesdash/services/transactions"
)

// Response messages
const (
	msgMonthRequired = "Month parameter is required."
	msgInvalidMonth  = "Invalid month format."

	msgPieFailed          = "Failed to fetch pie chart data."
	msgBarFailed          = "Failed to fetch bar chart data."
	msgStatisticsFailed   = "Failed to calculate statistics."
	msgTransactionsFailed = "Failed to fetch transactions."
	msgCombinedFailed     = "Failed to fetch combined data."
)

// TransactionsHandler serves the dashboard endpoints
type TransactionsHandler struct {
	transactionUC transactions.TransactionUC
}

// NewTransactionsHandler creates a new transactions HTTP handler
func NewTransactionsHandler(transactionUC transactions.TransactionUC) *TransactionsHandler {
	return &TransactionsHandler{
		transactionUC: transactionUC,
	}
}

// PieChart handles GET /pie
func (h *TransactionsHandler) PieChart(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Transactions.PieChart")

	month := c.QueryParam("month")
	nrpkg.AddTransactionAttribute(txn, "month", month)

	result, err := h.transactionUC.PieChart(c.Request().Context(), month)
	if err != nil {
		return h.handleError(c, txn, err, month, msgPieFailed)
	}

	return utils.JSONResponse(c, http.StatusOK, result)
}

// BarChart handles GET /bar
func (h *TransactionsHandler) BarChart(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Transactions.BarChart")

	month := c.QueryParam("month")
	nrpkg.AddTransactionAttribute(txn, "month", month)

	result, err := h.transactionUC.BarChart(c.Request().Context(), month)
	if err != nil {
		return h.handleError(c, txn, err, month, msgBarFailed)
	}

	return utils.JSONResponse(c, http.StatusOK, result)
}

// Statistics handles GET /statistics
func (h *TransactionsHandler) Statistics(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Transactions.Statistics")

	month := c.QueryParam("month")
	nrpkg.AddTransactionAttribute(txn, "month", month)

	result, err := h.transactionUC.Statistics(c.Request().Context(), month)
	if err != nil {
		return h.handleError(c, txn, err, month, msgStatisticsFailed)
	}

	return utils.JSONResponse(c, http.StatusOK, result)
}

// ListTransactions handles GET /transactions
func (h *TransactionsHandler) ListTransactions(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Transactions.ListTransactions")

	params := models.ListParams{
		Month:   c.QueryParam("month"),
		Search:  c.QueryParam("search"),
		Page:    c.QueryParam("page"),
		PerPage: c.QueryParam("perPage"),
	}
	nrpkg.AddTransactionAttribute(txn, "month", params.Month)
	nrpkg.AddTransactionAttribute(txn, "search.present", params.Search != "")

	result, err := h.transactionUC.ListTransactions(c.Request().Context(), params)
	if err != nil {
		return h.handleError(c, txn, err, params.Month, msgTransactionsFailed)
	}

	return utils.JSONResponse(c, http.StatusOK, result)
}

// Combined handles GET /combined
func (h *TransactionsHandler) Combined(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Transactions.Combined")

	month := c.QueryParam("month")
	nrpkg.AddTransactionAttribute(txn, "month", month)

	result, err := h.transactionUC.Combined(c.Request().Context(), month)
	if err != nil {
		return h.handleError(c, txn, err, month, msgCombinedFailed)
	}

	return utils.JSONResponse(c, http.StatusOK, result)
}

// handleError maps month validation errors to 400 and everything else to 500
func (h *TransactionsHandler) handleError(c echo.Context, txn *newrelic.Transaction, err error, month, failureMsg string) error {
	if models.IsValidationError(err) {
		if errors.Is(err, models.ErrMonthRequired) {
			return utils.BadRequestResponse(c, msgMonthRequired)
		}
		return utils.BadRequestResponse(c, msgInvalidMonth)
	}

	logger.ErrorCtx(c.Request().Context(), failureMsg,
		logger.String("month", month),
		logger.String("path", c.Path()),
		logger.Err(err))
	nrpkg.NoticeTransactionError(txn, err)

	return utils.InternalServerErrorResponse(c, failureMsg)
}

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/salesdash/internal/pkg/logger"
	"github.com/piresc/salesdash/internal/pkg/models"
	"github.com/piresc/salesdash/services/transactions/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStore = errors.New("server selection timeout")

func setup(t *testing.T) (*TransactionsHandler, *mocks.MockTransactionUC) {
	logger.SetGlobalLogger(logger.NewNopLogger())
	t.Cleanup(func() { logger.SetGlobalLogger(nil) })

	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockTransactionUC(ctrl)
	return NewTransactionsHandler(mockUC), mockUC
}

func serve(handler echo.HandlerFunc, target string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = handler(c)
	return rec
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestPieChart(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		h, mockUC := setup(t)
		mockUC.EXPECT().PieChart(gomock.Any(), "2022-03").Return([]models.CategoryCount{
			{Category: "electronics", ItemCount: 3},
		}, nil)

		rec := serve(h.PieChart, "/pie?month=2022-03")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[{"category":"electronics","itemCount":3}]`, rec.Body.String())
	})

	t.Run("Empty result is an empty array", func(t *testing.T) {
		h, mockUC := setup(t)
		mockUC.EXPECT().PieChart(gomock.Any(), "2022-03").Return([]models.CategoryCount{}, nil)

		rec := serve(h.PieChart, "/pie?month=2022-03")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("Store failure", func(t *testing.T) {
		h, mockUC := setup(t)
		mockUC.EXPECT().PieChart(gomock.Any(), "2022-03").Return(nil, errStore)

		rec := serve(h.PieChart, "/pie?month=2022-03")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, map[string]string{"error": "Failed to fetch pie chart data."}, errorBody(t, rec))
	})
}

func TestBarChart(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		h, mockUC := setup(t)
		mockUC.EXPECT().BarChart(gomock.Any(), "2022-03-01").Return([]models.PriceRangeCount{
			{Range: "0-100", Count: 2},
			{Range: "901-Infinity", Count: 1},
		}, nil)

		rec := serve(h.BarChart, "/bar?month=2022-03-01")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[{"range":"0-100","count":2},{"range":"901-Infinity","count":1}]`, rec.Body.String())
	})

	t.Run("Store failure", func(t *testing.T) {
		h, mockUC := setup(t)
		mockUC.EXPECT().BarChart(gomock.Any(), "2022-03").Return(nil, errStore)

		rec := serve(h.BarChart, "/bar?month=2022-03")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Failed to fetch bar chart data.", errorBody(t, rec)["error"])
	})
}

func TestStatistics(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		h, mockUC := setup(t)
		mockUC.EXPECT().Statistics(gomock.Any(), "2022-03").Return(models.Statistics{
			TotalSaleAmount:   350.5,
			TotalSoldItems:    3,
			TotalNotSoldItems: 2,
		}, nil)

		rec := serve(h.Statistics, "/statistics?month=2022-03")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"totalSaleAmount":350.5,"totalSoldItems":3,"totalNotSoldItems":2}`, rec.Body.String())
	})

	t.Run("Store failure", func(t *testing.T) {
		h, mockUC := setup(t)
		mockUC.EXPECT().Statistics(gomock.Any(), "2022-03").Return(models.Statistics{}, errStore)

		rec := serve(h.Statistics, "/statistics?month=2022-03")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Failed to calculate statistics.", errorBody(t, rec)["error"])
	})
}

func TestListTransactions(t *testing.T) {
	t.Run("Passes query parameters through", func(t *testing.T) {
		h, mockUC := setup(t)
		mockUC.EXPECT().
			ListTransactions(gomock.Any(), models.ListParams{Month: "2022-03", Search: "widget", Page: "2", PerPage: "5"}).
			Return(models.TransactionPage{
				TotalCount:   6,
				Page:         2,
				PerPage:      5,
				Transactions: []models.Transaction{{Title: "Widget"}},
			}, nil)

		rec := serve(h.ListTransactions, "/transactions?month=2022-03&search=widget&page=2&perPage=5")

		assert.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			TotalCount   int64                `json:"totalCount"`
			Page         int                  `json:"page"`
			PerPage      int                  `json:"perPage"`
			Transactions []models.Transaction `json:"transactions"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, int64(6), body.TotalCount)
		assert.Equal(t, 2, body.Page)
		assert.Equal(t, 5, body.PerPage)
		require.Len(t, body.Transactions, 1)
		assert.Equal(t, "Widget", body.Transactions[0].Title)
	})

	t.Run("Store failure", func(t *testing.T) {
		h, mockUC := setup(t)
		mockUC.EXPECT().ListTransactions(gomock.Any(), gomock.Any()).Return(models.TransactionPage{}, errStore)

		rec := serve(h.ListTransactions, "/transactions?month=2022-03")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Failed to fetch transactions.", errorBody(t, rec)["error"])
	})
}

func TestCombined(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		h, mockUC := setup(t)
		mockUC.EXPECT().Combined(gomock.Any(), "2022-03").Return(models.CombinedReport{
			Pie:        []models.CategoryCount{},
			Bar:        []models.PriceRangeCount{{Range: "0-100", Count: 1}},
			Statistics: models.Statistics{TotalSoldItems: 1},
		}, nil)

		rec := serve(h.Combined, "/combined?month=2022-03")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{
			"pie": [],
			"bar": [{"range":"0-100","count":1}],
			"statistics": {"totalSaleAmount":0,"totalSoldItems":1,"totalNotSoldItems":0}
		}`, rec.Body.String())
	})

	t.Run("Store failure", func(t *testing.T) {
		h, mockUC := setup(t)
		mockUC.EXPECT().Combined(gomock.Any(), "2022-03").Return(models.CombinedReport{}, errStore)

		rec := serve(h.Combined, "/combined?month=2022-03")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Failed to fetch combined data.", errorBody(t, rec)["error"])
	})
}

func TestMonthValidationErrors(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedMessage string
	}{
		{name: "Missing month", err: models.ErrMonthRequired, expectedMessage: "Month parameter is required."},
		{name: "Invalid month", err: models.ErrInvalidMonth, expectedMessage: "Invalid month format."},
		{name: "Wrapped missing month", err: fmt.Errorf("pie chart: %w", models.ErrMonthRequired), expectedMessage: "Month parameter is required."},
		{name: "Wrapped invalid month", err: fmt.Errorf("bar chart: %w", models.ErrInvalidMonth), expectedMessage: "Invalid month format."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mockUC := setup(t)
			mockUC.EXPECT().PieChart(gomock.Any(), gomock.Any()).Return(nil, tt.err)
			mockUC.EXPECT().BarChart(gomock.Any(), gomock.Any()).Return(nil, tt.err)
			mockUC.EXPECT().Statistics(gomock.Any(), gomock.Any()).Return(models.Statistics{}, tt.err)
			mockUC.EXPECT().ListTransactions(gomock.Any(), gomock.Any()).Return(models.TransactionPage{}, tt.err)
			mockUC.EXPECT().Combined(gomock.Any(), gomock.Any()).Return(models.CombinedReport{}, tt.err)

			handlers := map[string]echo.HandlerFunc{
				"/pie":          h.PieChart,
				"/bar":          h.BarChart,
				"/statistics":   h.Statistics,
				"/transactions": h.ListTransactions,
				"/combined":     h.Combined,
			}

			for path, handler := range handlers {
				rec := serve(handler, path+"?month=bogus")

				assert.Equal(t, http.StatusBadRequest, rec.Code, path)
				assert.Equal(t, map[string]string{"error": tt.expectedMessage}, errorBody(t, rec), path)
			}
		})
	}
}

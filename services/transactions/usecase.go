package transactions

import (
	"context"

	"github.com/piresc/salesdash/internal/pkg/models"
)

// TransactionUC defines the dashboard business logic
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/salesdash/services/transactions TransactionUC
type TransactionUC interface {
	PieChart(ctx context.Context, month string) ([]models.CategoryCount, error)
	BarChart(ctx context.Context, month string) ([]models.PriceRangeCount, error)
	Statistics(ctx context.Context, month string) (models.Statistics, error)
	ListTransactions(ctx context.Context, params models.ListParams) (models.TransactionPage, error)
	Combined(ctx context.Context, month string) (models.CombinedReport, error)
}

package transactions

import (
	"context"

	"github.com/piresc/salesdash/internal/pkg/models"
)

// TransactionRepo defines the read operations over the transactions collection
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/salesdash/services/transactions TransactionRepo
type TransactionRepo interface {
	CountByCategory(ctx context.Context, month models.MonthRange) ([]models.CategoryCount, error)
	CountInPriceRange(ctx context.Context, month models.MonthRange, bucket models.PriceBucket) (int64, error)
	SumSoldPrice(ctx context.Context, month models.MonthRange) (float64, error)
	CountBySold(ctx context.Context, month models.MonthRange, sold bool) (int64, error)
	Find(ctx context.Context, query models.TransactionQuery) ([]models.Transaction, int64, error)
}

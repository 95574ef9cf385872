package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/salesdash/internal/pkg/logger"
	"github.com/piresc/salesdash/internal/pkg/models"
	nrpkg "github.com/piresc/salesdash/internal/pkg/newrelic"
	"github.com/piresc/salesdash/internal/utils"
	"github.com/piresc/salesdash/services/transactions"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	defaultQueryTimeout = 10 * time.Second
	defaultPerPage      = 10
)

// transactionUC implements the transactions.TransactionUC interface
type transactionUC struct {
	cfg             *models.Config
	transactionRepo transactions.TransactionRepo
	flights         singleflight.Group
}

// NewTransactionUC creates a new transaction use case
func NewTransactionUC(
	cfg *models.Config,
	transactionRepo transactions.TransactionRepo,
) (transactions.TransactionUC, error) {
	if transactionRepo == nil {
		return nil, fmt.Errorf("transaction repository is required")
	}
	return &transactionUC{
		cfg:             cfg,
		transactionRepo: transactionRepo,
	}, nil
}

// PieChart returns the number of records per category for the month
func (uc *transactionUC) PieChart(ctx context.Context, month string) ([]models.CategoryCount, error) {
	monthRange, err := models.ParseMonthRange(month)
	if err != nil {
		return nil, err
	}

	v, err := uc.shared(ctx, "pie", monthRange, func(ctx context.Context) (interface{}, error) {
		return uc.pieChart(ctx, monthRange)
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.CategoryCount), nil
}

// BarChart returns the number of records in each fixed price bucket, in bucket order
func (uc *transactionUC) BarChart(ctx context.Context, month string) ([]models.PriceRangeCount, error) {
	monthRange, err := models.ParseMonthRange(month)
	if err != nil {
		return nil, err
	}

	v, err := uc.shared(ctx, "bar", monthRange, func(ctx context.Context) (interface{}, error) {
		return uc.barChart(ctx, monthRange)
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.PriceRangeCount), nil
}

// Statistics returns the month's sale amount and sold/unsold counts
func (uc *transactionUC) Statistics(ctx context.Context, month string) (models.Statistics, error) {
	monthRange, err := models.ParseMonthRange(month)
	if err != nil {
		return models.Statistics{}, err
	}

	v, err := uc.shared(ctx, "statistics", monthRange, func(ctx context.Context) (interface{}, error) {
		return uc.statistics(ctx, monthRange)
	})
	if err != nil {
		return models.Statistics{}, err
	}
	return v.(models.Statistics), nil
}

// ListTransactions returns one page of the month's records matching the search text
func (uc *transactionUC) ListTransactions(ctx context.Context, params models.ListParams) (models.TransactionPage, error) {
	monthRange, err := models.ParseMonthRange(params.Month)
	if err != nil {
		return models.TransactionPage{}, err
	}

	perPageDefault := uc.cfg.Pagination.DefaultPerPage
	if perPageDefault <= 0 {
		perPageDefault = defaultPerPage
	}
	page, perPage := utils.ParsePagination(params.Page, params.PerPage, perPageDefault, uc.cfg.Pagination.MaxPerPage)

	ctx, cancel := uc.withQueryTimeout(ctx)
	defer cancel()

	records, total, err := uc.transactionRepo.Find(ctx, models.TransactionQuery{
		Range:   monthRange,
		Search:  params.Search,
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		return models.TransactionPage{}, err
	}
	if records == nil {
		records = []models.Transaction{}
	}

	return models.TransactionPage{
		TotalCount:   total,
		Page:         page,
		PerPage:      perPage,
		Transactions: records,
	}, nil
}

// Combined computes the pie chart, bar chart and statistics for one month concurrently
func (uc *transactionUC) Combined(ctx context.Context, month string) (models.CombinedReport, error) {
	monthRange, err := models.ParseMonthRange(month)
	if err != nil {
		return models.CombinedReport{}, err
	}

	ctx, cancel := uc.withQueryTimeout(ctx)
	defer cancel()

	var report models.CombinedReport
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		pie, err := uc.pieChart(gctx, monthRange)
		report.Pie = pie
		return err
	})
	g.Go(func() error {
		bar, err := uc.barChart(gctx, monthRange)
		report.Bar = bar
		return err
	})
	g.Go(func() error {
		stats, err := uc.statistics(gctx, monthRange)
		report.Statistics = stats
		return err
	})

	if err := g.Wait(); err != nil {
		return models.CombinedReport{}, err
	}

	return report, nil
}

func (uc *transactionUC) pieChart(ctx context.Context, monthRange models.MonthRange) ([]models.CategoryCount, error) {
	counts, err := uc.transactionRepo.CountByCategory(ctx, monthRange)
	if err != nil {
		return nil, err
	}
	if counts == nil {
		counts = []models.CategoryCount{}
	}
	return counts, nil
}

func (uc *transactionUC) barChart(ctx context.Context, monthRange models.MonthRange) ([]models.PriceRangeCount, error) {
	return nrpkg.WithSegmentAndReturn(ctx, "Transactions.BarChart.Buckets", func() ([]models.PriceRangeCount, error) {
		buckets := models.PriceBuckets()
		result := make([]models.PriceRangeCount, len(buckets))

		g, gctx := errgroup.WithContext(ctx)
		if limit := uc.cfg.Query.Concurrency; limit > 0 {
			g.SetLimit(limit)
		}

		for i, bucket := range buckets {
			i, bucket := i, bucket
			g.Go(func() error {
				count, err := uc.transactionRepo.CountInPriceRange(gctx, monthRange, bucket)
				if err != nil {
					return err
				}
				result[i] = models.PriceRangeCount{Range: bucket.Label(), Count: count}
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			logger.ErrorCtx(ctx, "Price bucket count failed",
				logger.Time("month_start", monthRange.Start),
				logger.Err(err))
			return nil, err
		}

		return result, nil
	})
}

func (uc *transactionUC) statistics(ctx context.Context, monthRange models.MonthRange) (models.Statistics, error) {
	var stats models.Statistics

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		total, err := uc.transactionRepo.SumSoldPrice(gctx, monthRange)
		stats.TotalSaleAmount = total
		return err
	})
	g.Go(func() error {
		sold, err := uc.transactionRepo.CountBySold(gctx, monthRange, true)
		stats.TotalSoldItems = sold
		return err
	})
	g.Go(func() error {
		notSold, err := uc.transactionRepo.CountBySold(gctx, monthRange, false)
		stats.TotalNotSoldItems = notSold
		return err
	})

	if err := g.Wait(); err != nil {
		return models.Statistics{}, err
	}

	return stats, nil
}

// shared runs fn once for concurrent callers asking for the same aggregate and month.
// The store call is detached from any single caller's cancellation; each caller
// still stops waiting when its own ctx is done.
func (uc *transactionUC) shared(ctx context.Context, op string, monthRange models.MonthRange, fn func(ctx context.Context) (interface{}, error)) (interface{}, error) {
	key := op + ":" + monthRange.Start.Format(time.RFC3339Nano)

	ch := uc.flights.DoChan(key, func() (interface{}, error) {
		qctx, cancel := uc.withQueryTimeout(context.WithoutCancel(ctx))
		defer cancel()
		return fn(qctx)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		return res.Val, res.Err
	}
}

func (uc *transactionUC) withQueryTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := time.Duration(uc.cfg.Mongo.QueryTimeout) * time.Second
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

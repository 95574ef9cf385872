package repository

import (
	"context"
	"fmt"

	"github.com/piresc/salesdash/internal/pkg/models"
	nrpkg "github.com/piresc/salesdash/internal/pkg/newrelic"
	"github.com/piresc/salesdash/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TransactionRepo reads sales records from MongoDB
type TransactionRepo struct {
	cfg  *models.Config
	coll *mongo.Collection
}

// NewTransactionRepository creates a repository over the given collection
func NewTransactionRepository(cfg *models.Config, coll *mongo.Collection) *TransactionRepo {
	return &TransactionRepo{
		cfg:  cfg,
		coll: coll,
	}
}

// CountByCategory groups the month's records by category
func (r *TransactionRepo) CountByCategory(ctx context.Context, month models.MonthRange) ([]models.CategoryCount, error) {
	defer nrpkg.StartMongoSegment(ctx, r.coll.Name(), "aggregate")()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: monthFilter(month)}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$category"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate categories: %w", err)
	}
	defer cursor.Close(ctx)

	counts := make([]models.CategoryCount, 0)
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, fmt.Errorf("failed to decode category counts: %w", err)
	}

	return counts, nil
}

// CountInPriceRange counts the month's records whose price falls in bucket
func (r *TransactionRepo) CountInPriceRange(ctx context.Context, month models.MonthRange, bucket models.PriceBucket) (int64, error) {
	defer nrpkg.StartMongoSegment(ctx, r.coll.Name(), "countDocuments")()

	filter := monthFilter(month)
	filter = append(filter, bson.E{Key: "price", Value: priceFilter(bucket)})

	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count price range %s: %w", bucket.Label(), err)
	}

	return count, nil
}

// SumSoldPrice totals the price of the month's sold records
func (r *TransactionRepo) SumSoldPrice(ctx context.Context, month models.MonthRange) (float64, error) {
	defer nrpkg.StartMongoSegment(ctx, r.coll.Name(), "aggregate")()

	match := monthFilter(month)
	match = append(match, bson.E{Key: "sold", Value: true})

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalAmount", Value: bson.D{{Key: "$sum", Value: "$price"}}},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate sale amount: %w", err)
	}
	defer cursor.Close(ctx)

	var result []struct {
		TotalAmount float64 `bson:"totalAmount"`
	}
	if err := cursor.All(ctx, &result); err != nil {
		return 0, fmt.Errorf("failed to decode sale amount: %w", err)
	}
	if len(result) == 0 {
		return 0, nil
	}

	return result[0].TotalAmount, nil
}

// CountBySold counts the month's records with the given sold flag
func (r *TransactionRepo) CountBySold(ctx context.Context, month models.MonthRange, sold bool) (int64, error) {
	defer nrpkg.StartMongoSegment(ctx, r.coll.Name(), "countDocuments")()

	filter := monthFilter(month)
	filter = append(filter, bson.E{Key: "sold", Value: sold})

	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count sold=%t records: %w", sold, err)
	}

	return count, nil
}

// Find returns one page of the month's records, newest sale first, and the total number of matches
func (r *TransactionRepo) Find(ctx context.Context, query models.TransactionQuery) ([]models.Transaction, int64, error) {
	filter := listFilter(query)

	endCount := nrpkg.StartMongoSegment(ctx, r.coll.Name(), "countDocuments")
	total, err := r.coll.CountDocuments(ctx, filter)
	endCount()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	defer nrpkg.StartMongoSegment(ctx, r.coll.Name(), "find")()

	opts := options.Find().
		SetSort(bson.D{{Key: "dateOfSale", Value: -1}}).
		SetSkip(query.Skip()).
		SetLimit(int64(query.PerPage))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find transactions: %w", err)
	}
	defer cursor.Close(ctx)

	records := make([]models.Transaction, 0, query.PerPage)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, 0, fmt.Errorf("failed to decode transactions: %w", err)
	}

	return records, total, nil
}

func monthFilter(month models.MonthRange) bson.D {
	return bson.D{
		{Key: "dateOfSale", Value: bson.D{
			{Key: "$gte", Value: month.Start},
			{Key: "$lt", Value: month.End},
		}},
	}
}

func priceFilter(bucket models.PriceBucket) bson.D {
	price := bson.D{{Key: "$gte", Value: bucket.Min}}
	if !bucket.Unbounded() {
		price = append(price, bson.E{Key: "$lte", Value: bucket.Max})
	}
	return price
}

func listFilter(query models.TransactionQuery) bson.D {
	filter := monthFilter(query.Range)

	pattern := utils.SearchPattern(query.Search)
	if pattern == "" {
		return filter
	}

	regex := primitive.Regex{Pattern: pattern, Options: "i"}
	return append(filter, bson.E{Key: "$or", Value: bson.A{
		bson.D{{Key: "title", Value: regex}},
		bson.D{{Key: "description", Value: regex}},
	}})
}

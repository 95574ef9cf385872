package models

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Transaction is a product sale record as stored in the transactions collection.
// Records are seeded externally and never modified by this service.
type Transaction struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	ProductID   int64              `json:"id,omitempty" bson:"id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Price       float64            `json:"price" bson:"price"`
	Category    string             `json:"category" bson:"category"`
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`
	Sold        bool               `json:"sold" bson:"sold"`
	DateOfSale  time.Time          `json:"dateOfSale" bson:"dateOfSale"`
}

// TransactionQuery is a resolved listing request
type TransactionQuery struct {
	Range   MonthRange
	Search  string
	Page    int
	PerPage int
}

// Skip returns the number of records preceding the requested page.
// Pages too far out to count saturate at math.MaxInt64 and read as empty.
func (q TransactionQuery) Skip() int64 {
	if q.Page < 1 || q.PerPage < 1 {
		return 0
	}
	before, per := int64(q.Page-1), int64(q.PerPage)
	if before > math.MaxInt64/per {
		return math.MaxInt64
	}
	return before * per
}

// ListParams carries raw listing parameters as received from the query string
type ListParams struct {
	Month   string
	Search  string
	Page    string
	PerPage string
}

// TransactionPage is the paginated listing response
type TransactionPage struct {
	TotalCount   int64         `json:"totalCount"`
	Page         int           `json:"page"`
	PerPage      int           `json:"perPage"`
	Transactions []Transaction `json:"transactions"`
}

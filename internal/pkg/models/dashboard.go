package models

import (
	"math"
	"strconv"
)

// CategoryCount is one pie chart slice
type CategoryCount struct {
	Category  string `json:"category" bson:"_id"`
	ItemCount int64  `json:"itemCount" bson:"count"`
}

// PriceRangeCount is one bar chart column
type PriceRangeCount struct {
	Range string `json:"range"`
	Count int64  `json:"count"`
}

// Statistics summarises sales for a month
type Statistics struct {
	TotalSaleAmount   float64 `json:"totalSaleAmount"`
	TotalSoldItems    int64   `json:"totalSoldItems"`
	TotalNotSoldItems int64   `json:"totalNotSoldItems"`
}

// CombinedReport bundles the three chart payloads for a single month
type CombinedReport struct {
	Pie        []CategoryCount   `json:"pie"`
	Bar        []PriceRangeCount `json:"bar"`
	Statistics Statistics        `json:"statistics"`
}

// PriceBucket is an inclusive price interval. Max is +Inf for the last bucket.
type PriceBucket struct {
	Min float64
	Max float64
}

// Unbounded reports whether the bucket has no upper limit
func (b PriceBucket) Unbounded() bool {
	return math.IsInf(b.Max, 1)
}

// Label renders the bucket as "<min>-<max>"
func (b PriceBucket) Label() string {
	max := "Infinity"
	if !b.Unbounded() {
		max = strconv.FormatFloat(b.Max, 'f', -1, 64)
	}
	return strconv.FormatFloat(b.Min, 'f', -1, 64) + "-" + max
}

// Contains reports whether price falls in the bucket
func (b PriceBucket) Contains(price float64) bool {
	return price >= b.Min && (b.Unbounded() || price <= b.Max)
}

// PriceBuckets returns the fixed bar chart buckets in display order
func PriceBuckets() []PriceBucket {
	return []PriceBucket{
		{Min: 0, Max: 100},
		{Min: 101, Max: 200},
		{Min: 201, Max: 300},
		{Min: 301, Max: 400},
		{Min: 401, Max: 500},
		{Min: 501, Max: 600},
		{Min: 601, Max: 700},
		{Min: 701, Max: 800},
		{Min: 801, Max: 900},
		{Min: 901, Max: math.Inf(1)},
	}
}

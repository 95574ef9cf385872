package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceBuckets_Labels(t *testing.T) {
	expected := []string{
		"0-100", "101-200", "201-300", "301-400", "401-500",
		"501-600", "601-700", "701-800", "801-900", "901-Infinity",
	}

	buckets := PriceBuckets()
	assert.Len(t, buckets, len(expected))
	for i, b := range buckets {
		assert.Equal(t, expected[i], b.Label())
	}
	assert.True(t, buckets[len(buckets)-1].Unbounded())
}

func TestPriceBucket_Boundaries(t *testing.T) {
	buckets := PriceBuckets()

	tests := []struct {
		price          float64
		expectedBucket int
	}{
		{price: 0, expectedBucket: 0},
		{price: 100, expectedBucket: 0},
		{price: 101, expectedBucket: 1},
		{price: 200, expectedBucket: 1},
		{price: 900, expectedBucket: 8},
		{price: 901, expectedBucket: 9},
		{price: 1e9, expectedBucket: 9},
	}

	for _, tt := range tests {
		matches := 0
		for i, b := range buckets {
			if b.Contains(tt.price) {
				matches++
				assert.Equal(t, tt.expectedBucket, i, "price %v", tt.price)
			}
		}
		assert.Equal(t, 1, matches, "price %v must land in exactly one bucket", tt.price)
	}
}

func TestTransactionQuery_Skip(t *testing.T) {
	assert.Equal(t, int64(0), TransactionQuery{Page: 1, PerPage: 10}.Skip())
	assert.Equal(t, int64(20), TransactionQuery{Page: 3, PerPage: 10}.Skip())
	assert.Equal(t, int64(0), TransactionQuery{Page: 0, PerPage: 10}.Skip())
	assert.Equal(t, int64(0), TransactionQuery{Page: 4, PerPage: 0}.Skip())

	// Huge pages saturate instead of wrapping negative
	assert.Equal(t, int64(math.MaxInt64), TransactionQuery{Page: math.MaxInt64, PerPage: 100}.Skip())
	assert.Equal(t, int64(math.MaxInt64), TransactionQuery{Page: math.MaxInt64/100 + 2, PerPage: 100}.Skip())
	assert.Equal(t, int64(math.MaxInt64/100)*100, TransactionQuery{Page: math.MaxInt64/100 + 1, PerPage: 100}.Skip())
}

package newrelic

import (
	"context"

	"github.com/newrelic/go-agent/v3/newrelic"
)

// StartMongoSegment opens a datastore segment for a MongoDB operation.
// The returned function ends the segment and is safe to call without a transaction.
func StartMongoSegment(ctx context.Context, collection, operation string) func() {
	txn := FromContext(ctx)
	if txn == nil {
		return func() {}
	}

	seg := &newrelic.DatastoreSegment{
		StartTime:  txn.StartSegmentNow(),
		Product:    newrelic.DatastoreMongoDB,
		Collection: collection,
		Operation:  operation,
	}
	return seg.End
}

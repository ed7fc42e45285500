package newrelic

import (
	"context"

	"github.com/newrelic/go-agent/v3/newrelic"
)

// WithExternalSegment records fn as a call to an external service
func WithExternalSegment(ctx context.Context, library, procedure, target string, fn func() error) error {
	txn := FromContext(ctx)
	if txn == nil {
		return fn()
	}

	segment := &newrelic.ExternalSegment{
		StartTime: txn.StartSegmentNow(),
		Host:      target,
		Procedure: procedure,
		Library:   library,
	}
	defer segment.End()

	err := fn()
	if err != nil {
		txn.NoticeError(err)
	}
	return err
}

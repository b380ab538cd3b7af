package storage

import (
	"context"

	"bikeshare/domain/business/queryresponse"
)

// ReportWriter is the interface any report sink must satisfy.
type ReportWriter interface {
	Write(ctx context.Context, report *queryresponse.QueryResponse) error
	Close() error
}

// ReportReader is implemented by the sinks that can read back what they stored.
type ReportReader interface {
	FetchAll(ctx context.Context) ([]*queryresponse.QueryResponse, error)
}

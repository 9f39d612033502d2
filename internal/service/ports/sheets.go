package ports

import (
	"context"

	"github.com/istvanv2/giwedding/internal/domain"
)

type SheetAppender interface {
	AppendRecords(ctx context.Context, records []domain.Record) error
}

package ports

import (
	"context"

	"github.com/istvanv2/giwedding/internal/domain"
)

type RecordStore interface {
	InsertRecords(ctx context.Context, records []domain.Record) error
	List(ctx context.Context) ([]*domain.Record, error)
	Update(ctx context.Context, record *domain.Record) error
	Delete(ctx context.Context, ids []int64) (int64, error)
}

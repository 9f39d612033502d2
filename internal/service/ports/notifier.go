package ports

import (
	"context"

	"github.com/istvanv2/giwedding/internal/domain"
)

type RSVPNotifier interface {
	NotifyRSVPReceived(ctx context.Context, records []domain.Record)
}

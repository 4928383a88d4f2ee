package newsletter

import (
	"context"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

type Service interface {
	Subscribe(ctx context.Context, req *SubscribeRequest) (*Subscriber, error)
	Unsubscribe(ctx context.Context, req *UnsubscribeRequest) (*Subscriber, error)

	List(ctx context.Context) ([]Subscriber, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Subscriber, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// Export builds a workbook with one row per subscriber. Callers close it.
	Export(ctx context.Context) (*excelize.File, error)
}

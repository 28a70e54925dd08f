package handlers

import "context"

// Store is the persistence surface the handlers depend on. The concrete
// implementation is store.PostgresStore; tests substitute a mock.
type Store interface {
	Ping(ctx context.Context) error
	InsertRawIngest(ctx context.Context, source, kind string, shopID *string, occurredAtMs, receivedAtMs int64, payload map[string]interface{}) (int64, error)
	InsertAdChangeEvent(ctx context.Context, shopID *string, campaignID, action, actor string, occurredAtMs int64, meta map[string]interface{}) (int64, error)
}

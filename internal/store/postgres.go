package store

import (
	"context"
	_ "embed"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaSQL is embedded so the service can self-bootstrap its database schema.
//
//go:embed schema.sql
var schemaSQL string

// PostgresStore is the durable persistence layer for ingested events.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a connection pool and fails fast if DB is unreachable.
func NewPostgresStore(dbURL string) (*PostgresStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresStore{pool: pool}, nil
}

// EnsureSchema verifies connectivity with a round-trip query and applies
// schema.sql. Everything in the schema uses IF NOT EXISTS, so repeated runs
// (every restart) are safe.
func (p *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := p.pool.Exec(ctx, "SELECT 1"); err != nil {
		return err
	}
	_, err := p.pool.Exec(ctx, schemaSQL)
	return err
}

// Ping is used by the health endpoint to validate DB connectivity.
func (p *PostgresStore) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// Close shuts down the connection pool.
func (p *PostgresStore) Close() {
	p.pool.Close()
}

// InsertRawIngest persists one opaque event row and returns the generated id.
// The payload is stored verbatim as JSONB; its internal shape is not inspected.
func (p *PostgresStore) InsertRawIngest(
	ctx context.Context,
	source string,
	kind string,
	shopID *string,
	occurredAtMs int64,
	receivedAtMs int64,
	payload map[string]interface{},
) (int64, error) {

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return 0, err
	}

	var id int64
	err = p.pool.QueryRow(ctx, `
		INSERT INTO raw_ingest(source, kind, shop_id, occurred_at_ms, received_at_ms, payload)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id
	`, source, kind, shopID, occurredAtMs, receivedAtMs, payloadJSON).Scan(&id)

	return id, err
}

// InsertAdChangeEvent persists one campaign action row and returns the
// generated id. The caller validates the action before getting here.
func (p *PostgresStore) InsertAdChangeEvent(
	ctx context.Context,
	shopID *string,
	campaignID string,
	action string,
	actor string,
	occurredAtMs int64,
	meta map[string]interface{},
) (int64, error) {

	if meta == nil {
		meta = map[string]interface{}{}
	}

	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return 0, err
	}

	var id int64
	err = p.pool.QueryRow(ctx, `
		INSERT INTO ad_change_events(shop_id, campaign_id, action, actor, occurred_at_ms, meta)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id
	`, shopID, campaignID, action, actor, occurredAtMs, metaJSON).Scan(&id)

	return id, err
}

package models

// RawIngestRequest is the POST /ingest/raw payload. The payload document is
// stored verbatim; its internal shape is never validated.
type RawIngestRequest struct {
	Source       string                 `json:"source"`
	Kind         string                 `json:"kind"`
	ShopID       *string                `json:"shop_id,omitempty"`
	OccurredAtMs *int64                 `json:"occurred_at_ms,omitempty"`
	Payload      map[string]interface{} `json:"payload"`
}

// RawIngestResponse is returned by POST /ingest/raw.
type RawIngestResponse struct {
	ID           int64 `json:"id"`
	ReceivedAtMs int64 `json:"received_at_ms"`
}

// AdChangeEventRequest is the POST /ads/change_event payload.
// occurred_at_ms is optional and defaults to server receipt time.
type AdChangeEventRequest struct {
	ShopID       *string                `json:"shop_id,omitempty"`
	CampaignID   string                 `json:"campaign_id"`
	Action       string                 `json:"action"`
	Actor        string                 `json:"actor"`
	OccurredAtMs *int64                 `json:"occurred_at_ms,omitempty"`
	Meta         map[string]interface{} `json:"meta,omitempty"`
}

// AdChangeEventResponse is returned by POST /ads/change_event.
type AdChangeEventResponse struct {
	ID           int64 `json:"id"`
	OccurredAtMs int64 `json:"occurred_at_ms"`
}

// HealthResponse is returned by GET /health. DB reachability is reported as
// data in the db field, never as a transport error.
type HealthResponse struct {
	OK   bool   `json:"ok"`
	TsMs int64  `json:"ts_ms"`
	DB   string `json:"db"`
}

// validActions is the fixed set of campaign actions accepted at write time.
var validActions = map[string]struct{}{
	"enable":    {},
	"disable":   {},
	"bid_set":   {},
	"kw_add":    {},
	"kw_remove": {},
}

// IsValidAction reports whether action is one of the enumerated campaign
// actions (enable, disable, bid_set, kw_add, kw_remove).
func IsValidAction(action string) bool {
	_, ok := validActions[action]
	return ok
}

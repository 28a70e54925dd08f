package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// mockStore records insert arguments and returns canned results.
type mockStore struct {
	pingErr error

	rawID  int64
	rawErr error
	adID   int64
	adErr  error

	rawCalls    int
	rawSource   string
	rawKind     string
	rawShopID   *string
	rawOccurred int64
	rawReceived int64
	rawPayload  map[string]interface{}

	adCalls    int
	adShopID   *string
	adCampaign string
	adAction   string
	adActor    string
	adOccurred int64
	adMeta     map[string]interface{}
}

func (m *mockStore) Ping(ctx context.Context) error {
	return m.pingErr
}

func (m *mockStore) InsertRawIngest(ctx context.Context, source, kind string, shopID *string, occurredAtMs, receivedAtMs int64, payload map[string]interface{}) (int64, error) {
	m.rawCalls++
	m.rawSource = source
	m.rawKind = kind
	m.rawShopID = shopID
	m.rawOccurred = occurredAtMs
	m.rawReceived = receivedAtMs
	m.rawPayload = payload
	return m.rawID, m.rawErr
}

func (m *mockStore) InsertAdChangeEvent(ctx context.Context, shopID *string, campaignID, action, actor string, occurredAtMs int64, meta map[string]interface{}) (int64, error) {
	m.adCalls++
	m.adShopID = shopID
	m.adCampaign = campaignID
	m.adAction = action
	m.adActor = actor
	m.adOccurred = occurredAtMs
	m.adMeta = meta
	return m.adID, m.adErr
}

// newTestRouter builds a router with all gateway routes against the mock.
func newTestRouter(st Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterHealthRoutes(r, st)
	RegisterIngestRoutes(r, st, zerolog.Nop())
	RegisterAdRoutes(r, st, zerolog.Nop())
	return r
}

// postJSON performs a POST with a JSON-encoded body and returns the recorder.
func postJSON(t *testing.T, r *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	b, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}

	req := httptest.NewRequest("POST", path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

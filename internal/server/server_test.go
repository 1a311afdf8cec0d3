package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StanleyPangaruy/valorant-lootbox/internal/catalog"
	"github.com/StanleyPangaruy/valorant-lootbox/internal/domain"
	"github.com/StanleyPangaruy/valorant-lootbox/internal/lootbox"
	"github.com/StanleyPangaruy/valorant-lootbox/internal/sse"
)

const fixturePath = "../catalog/testdata/catalog.yaml"

func newTestServer(t *testing.T, pool domain.SkinPool, delay time.Duration) *Server {
	t.Helper()

	hub := sse.NewHub()
	hub.Start()

	svc, err := lootbox.NewService(pool, hub, lootbox.Config{
		RevealDelay: delay,
		RNG:         lootbox.NewSeededRandomSource(1),
	})
	require.NoError(t, err)

	srv := NewServer(Options{Version: "test", RateLimit: 100000}, svc, hub)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Stop(ctx)
	})
	return srv
}

func fixturePool(t *testing.T) domain.SkinPool {
	t.Helper()
	pool := catalog.NewLoader(catalog.NewFileSource(fixturePath)).Load(context.Background())
	require.False(t, pool.IsEmpty())
	return pool
}

func do(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func createSession(t *testing.T, h http.Handler) string {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/api/v1/sessions", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		SessionID string `json:"session_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.SessionID)
	return resp.SessionID
}

func TestServer_HealthRoutes(t *testing.T) {
	h := newTestServer(t, fixturePool(t), 0).Handler()

	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/healthz", nil).Code)
	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/readyz", nil).Code)

	rec := do(t, h, http.MethodGet, "/version", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"version":"test"`)

	assert.Equal(t, "nosniff", rec.Header().Get(HeaderContentType))
}

func TestServer_NotReadyWithEmptyPool(t *testing.T) {
	h := newTestServer(t, domain.NewSkinPool(), 0).Handler()

	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/healthz", nil).Code)
	assert.Equal(t, http.StatusServiceUnavailable, do(t, h, http.MethodGet, "/readyz", nil).Code)
}

func TestServer_OpenFlow(t *testing.T) {
	h := newTestServer(t, fixturePool(t), 0).Handler()
	id := createSession(t, h)

	rec := do(t, h, http.MethodPost, "/api/v1/lootbox/open", map[string]string{"session_id": id})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))

	var draw struct {
		Resolved bool         `json:"resolved"`
		Revealed bool         `json:"revealed"`
		Skin     *domain.Skin `json:"skin"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &draw))

	rec = do(t, h, http.MethodGet, "/api/v1/lootbox/state?session_id="+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var st lootbox.State
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
	if draw.Resolved {
		require.NotNil(t, draw.Skin)
		require.NotNil(t, st.Current)
		assert.Equal(t, *draw.Skin, *st.Current)
		assert.Len(t, st.History, 1)
	} else {
		assert.Empty(t, st.History)
	}
}

func TestServer_OpenErrors(t *testing.T) {
	h := newTestServer(t, fixturePool(t), time.Hour).Handler()

	rec := do(t, h, http.MethodPost, "/api/v1/lootbox/open", map[string]string{"session_id": "not-a-uuid"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/v1/lootbox/open", map[string]string{"session_id": "6f1c1d7e-3f5a-4d5e-9c2a-0b1e2f3a4b5c"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// A pool with every bucket filled guarantees the first open resolves and goes pending
	pool := domain.NewSkinPool()
	for _, r := range domain.AllRarities() {
		pool[r] = []domain.Skin{{Name: "Skin " + string(r), Weapon: "Vandal", Rarity: r, Icon: "i"}}
	}
	h = newTestServer(t, pool, time.Hour).Handler()
	id := createSession(t, h)

	rec = do(t, h, http.MethodPost, "/api/v1/lootbox/open", map[string]string{"session_id": id})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = do(t, h, http.MethodPost, "/api/v1/lootbox/open", map[string]string{"session_id": id})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestServer_CatalogRoutes(t *testing.T) {
	h := newTestServer(t, fixturePool(t), 0).Handler()

	rec := do(t, h, http.MethodGet, "/api/v1/odds", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"rarity":"exclusive"`)

	rec = do(t, h, http.MethodGet, "/api/v1/pool", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":6`)
}

func TestServer_MetricsAndSwagger(t *testing.T) {
	h := newTestServer(t, fixturePool(t), 0).Handler()
	do(t, h, http.MethodGet, "/api/v1/odds", nil)

	rec := do(t, h, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")

	rec = do(t, h, http.MethodGet, "/swagger/doc.json", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/v1/lootbox/open")
}

func TestServer_WebSocketFeedThroughMiddleware(t *testing.T) {
	pool := domain.NewSkinPool()
	pool[domain.RaritySelect] = []domain.Skin{{Name: "Standard Classic", Weapon: "Classic", Rarity: domain.RaritySelect, Icon: "i"}}
	pool[domain.RarityDeluxe] = pool[domain.RaritySelect]
	pool[domain.RarityPremium] = pool[domain.RaritySelect]
	pool[domain.RarityUltra] = pool[domain.RaritySelect]
	pool[domain.RarityExclusive] = pool[domain.RaritySelect]

	srv := newTestServer(t, pool, 0)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	id := createSession(t, srv.Handler())

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/api/v1/ws?types=" + domain.EventDropRevealed + "&session_id=" + id
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	defer conn.Close()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	var evt sse.Event
	require.NoError(t, conn.ReadJSON(&evt))
	require.Equal(t, sse.EventTypeConnected, evt.Type)

	require.Eventually(t, func() bool { return srv.hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	rec := do(t, srv.Handler(), http.MethodPost, "/api/v1/lootbox/open", map[string]string{"session_id": id})
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Type    string            `json:"type"`
		Payload lootbox.DropEvent `json:"payload"`
	}
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, domain.EventDropRevealed, got.Type)
	assert.Equal(t, id, got.Payload.SessionID)
	assert.Equal(t, "Standard Classic", got.Payload.Skin.Name)
}

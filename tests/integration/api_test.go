package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpHandler "lottery-awards/internal/adapter/http/handler"
	"lottery-awards/internal/adapter/http/middleware"
	"lottery-awards/internal/adapter/metrics"
	redisStorage "lottery-awards/internal/adapter/storage/redis"
	"lottery-awards/internal/core/domain"
	"lottery-awards/internal/core/ports"
	"lottery-awards/internal/service"
	"lottery-awards/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires the real HTTP layer, services, Redis stores (on miniredis) and
// metrics over an in-memory draw repository.
type testApp struct {
	server *httptest.Server
	redis  *miniredis.Miniredis
	draws  *inMemoryDrawRepo
	idemp  *inMemoryIdempotencyRepo
	audit  *inMemoryAuditRepo
	token  string
}

type appOptions struct {
	rateLimit bool
}

func newTestApp(t *testing.T, opts appOptions) *testApp {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	log := logger.New("error", false)
	drawRepo := newInMemoryDrawRepo()
	idempRepo := newInMemoryIdempotencyRepo()
	auditRepo := &inMemoryAuditRepo{}
	drawCache := redisStorage.NewDrawCache(rdb)
	collector := metrics.NewCollector()

	tokenSvc := service.NewJWTTokenService("integration-secret-at-least-32-bytes", time.Hour, "lottery-awards-test")
	token, _, err := tokenSvc.Generate("operator-1")
	require.NoError(t, err)

	drawSvc := service.NewDrawService(
		drawRepo,
		drawCache,
		idempRepo,
		redisStorage.NewIdempotencyCache(rdb),
		auditRepo,
		newInMemoryTransactor(),
		collector,
		10*time.Minute,
		log,
	)
	awardSvc := service.NewAwardService(drawRepo, drawCache, collector, 10*time.Minute, 4, log)

	var store middleware.RateLimitStore
	if opts.rateLimit {
		store = redisStorage.NewRateLimitStore(rdb)
	}

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		DrawSvc:        drawSvc,
		AwardSvc:       awardSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: store,
		Metrics:        collector,
		HealthCheckers: []ports.HealthChecker{redisStorage.NewHealthCheck(rdb)},
		Logger:         log,
	})

	app := &testApp{
		server: httptest.NewServer(router),
		redis:  mr,
		draws:  drawRepo,
		idemp:  idempRepo,
		audit:  auditRepo,
		token:  token,
	}
	t.Cleanup(func() {
		app.server.Close()
		rdb.Close()
		mr.Close()
	})
	return app
}

func (a *testApp) request(t *testing.T, method, path string, body interface{}, auth bool) (int, map[string]interface{}) {
	t.Helper()
	return a.requestWithHeaders(t, method, path, body, auth, nil)
}

func (a *testApp) requestWithHeaders(t *testing.T, method, path string, body interface{}, auth bool, headers map[string]string) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, a.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if auth {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, decoded
}

func (a *testApp) publish(t *testing.T, name string, numbers ...map[string]interface{}) string {
	t.Helper()
	status, body := a.request(t, http.MethodPost, "/api/v1/draws", map[string]interface{}{
		"name":    name,
		"held_on": "2025-12-22",
		"numbers": numbers,
	}, true)
	require.Equal(t, http.StatusCreated, status, "publish: %v", body)
	return body["data"].(map[string]interface{})["id"].(string)
}

func winning(tier string, number int) map[string]interface{} {
	return map[string]interface{}{"tier": tier, "number": number}
}

func data(body map[string]interface{}) map[string]interface{} {
	return body["data"].(map[string]interface{})
}

func cents(v interface{}) int64 {
	return int64(v.(map[string]interface{})["cents"].(float64))
}

// --- Integration Tests ---

func TestIntegration_HealthCheck(t *testing.T) {
	app := newTestApp(t, appOptions{})

	status, body := app.request(t, http.MethodGet, "/health", nil, false)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "healthy", body["status"])
}

func TestIntegration_PublishAndCheckTicket(t *testing.T) {
	app := newTestApp(t, appOptions{})
	id := app.publish(t, "Christmas 2025", winning("first", 12345), winning("little", 7))

	status, body := app.request(t, http.MethodGet, "/api/v1/draws/"+id, nil, false)
	require.Equal(t, http.StatusOK, status)
	numbers := data(body)["numbers"].([]interface{})
	require.Len(t, numbers, 2)
	assert.Equal(t, "12345", numbers[0].(map[string]interface{})["number"])

	tests := []struct {
		name       string
		body       map[string]interface{}
		wantCents  int64
		wantResult int
	}{
		{"exact first prize", map[string]interface{}{"number": 12345}, 400_000_000, 1},
		{"adjacent and same hundred", map[string]interface{}{"number": 12346}, 2_100_000, 1},
		{"half stake", map[string]interface{}{"number": 12346, "stake_cents": 10_000}, 1_050_000, 1},
		{"little prize with leading zeros", map[string]interface{}{"number": 7}, 100_000, 1},
		{"last digit only", map[string]interface{}{"number": 99_995}, 20_000, 1},
		{"nothing", map[string]interface{}{"number": 50_000}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := app.request(t, http.MethodPost, "/api/v1/draws/"+id+"/check", tt.body, false)

			require.Equal(t, http.StatusOK, status, "%v", body)
			d := data(body)
			assert.Equal(t, tt.wantCents, cents(d["total"]))
			assert.Len(t, d["results"], tt.wantResult)
		})
	}
}

func TestIntegration_PublishReplayReturnsFirstDraw(t *testing.T) {
	app := newTestApp(t, appOptions{})
	body := map[string]interface{}{
		"name":    "Retried",
		"held_on": "2025-12-22",
		"numbers": []map[string]interface{}{winning("first", 12345)},
	}
	key := map[string]string{middleware.HeaderIdempotencyKey: "publish-retry-1"}

	status, first := app.requestWithHeaders(t, http.MethodPost, "/api/v1/draws", body, true, key)
	require.Equal(t, http.StatusCreated, status, "%v", first)
	firstID := data(first)["id"].(string)
	assert.True(t, app.redis.Exists("idempotency:operator-1:publish-retry-1"))

	status, replay := app.requestWithHeaders(t, http.MethodPost, "/api/v1/draws", body, true, key)
	require.Equal(t, http.StatusCreated, status, "%v", replay)
	assert.Equal(t, firstID, data(replay)["id"])
	assert.Equal(t, 1, app.draws.count())

	// Redis lost the key; the PostgreSQL layer still deduplicates.
	app.redis.FlushAll()
	status, replay = app.requestWithHeaders(t, http.MethodPost, "/api/v1/draws", body, true, key)
	require.Equal(t, http.StatusCreated, status, "%v", replay)
	assert.Equal(t, firstID, data(replay)["id"])
	assert.Equal(t, 1, app.draws.count())

	// Without a key every publish stores a new draw.
	app.publish(t, "Retried", winning("first", 12345))
	assert.Equal(t, 2, app.draws.count())
}

func TestIntegration_PublishWritesAuditLog(t *testing.T) {
	app := newTestApp(t, appOptions{})
	id := app.publish(t, "Audited", winning("first", 1), winning("second", 2))

	entries := app.audit.all()
	require.Len(t, entries, 1)
	assert.Equal(t, "operator-1", entries[0].OperatorID)
	assert.Equal(t, domain.AuditActionPublishDraw, entries[0].Action)
	assert.Equal(t, id, entries[0].ResourceID)
	assert.JSONEq(t, `{"name":"Audited","held_on":"2025-12-22","numbers":2}`, entries[0].Details)

	app.request(t, http.MethodPost, "/api/v1/draws", map[string]interface{}{
		"name":    "Rejected",
		"held_on": "2025-12-22",
		"numbers": []map[string]interface{}{winning("first", 1), winning("first", 2)},
	}, true)
	assert.Len(t, app.audit.all(), 1, "rejected publishes leave no audit entry")
}

func TestIntegration_PayoutReport(t *testing.T) {
	app := newTestApp(t, appOptions{})
	id := app.publish(t, "First prize only", winning("first", 12345))

	status, body := app.request(t, http.MethodGet, "/api/v1/draws/"+id+"/payout", nil, true)
	require.Equal(t, http.StatusOK, status, "%v", body)
	d := data(body)
	assert.Equal(t, float64(100_000), d["numbers_checked"])
	assert.Equal(t, float64(10_090), d["winning_tickets"])
	assert.Equal(t, int64(713_780_000), cents(d["total"]))
	assert.Equal(t, int64(400_000_000), cents(d["largest"]))
	assert.Equal(t, "12345", d["largest_number"])

	status, body = app.request(t, http.MethodGet, "/api/v1/draws/"+id+"/payout?stake_cents=10000", nil, true)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(356_890_000), cents(data(body)["total"]))
}

func TestIntegration_PayoutRequiresOperator(t *testing.T) {
	app := newTestApp(t, appOptions{})
	id := app.publish(t, "Draw", winning("first", 1))

	status, body := app.request(t, http.MethodGet, "/api/v1/draws/"+id+"/payout", nil, false)

	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "AUTH_001", body["error_code"])
}

func TestIntegration_RejectsInvalidDraws(t *testing.T) {
	app := newTestApp(t, appOptions{})

	status, body := app.request(t, http.MethodPost, "/api/v1/draws", map[string]interface{}{
		"name":    "Two firsts",
		"held_on": "2025-12-22",
		"numbers": []map[string]interface{}{winning("first", 1), winning("first", 2)},
	}, true)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "DRAW_003", body["error_code"])

	status, body = app.request(t, http.MethodPost, "/api/v1/draws", map[string]interface{}{
		"name":    "Duplicate number",
		"held_on": "2025-12-22",
		"numbers": []map[string]interface{}{winning("first", 1), winning("second", 1)},
	}, true)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "DRAW_002", body["error_code"])

	assert.Zero(t, app.draws.count())
}

func TestIntegration_UnknownDraw(t *testing.T) {
	app := newTestApp(t, appOptions{})

	status, body := app.request(t, http.MethodPost, "/api/v1/draws/00000000-0000-0000-0000-000000000001/check",
		map[string]interface{}{"number": 1}, false)

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "DRAW_001", body["error_code"])
}

func TestIntegration_DrawServedFromCache(t *testing.T) {
	app := newTestApp(t, appOptions{})
	id := app.publish(t, "Cached", winning("first", 12345))

	assert.True(t, app.redis.Exists("draw:"+id))
	app.draws.remove(uuid.MustParse(id))

	status, body := app.request(t, http.MethodPost, "/api/v1/draws/"+id+"/check",
		map[string]interface{}{"number": 12345}, false)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(400_000_000), cents(data(body)["total"]))

	app.redis.FastForward(11 * time.Minute)
	status, _ = app.request(t, http.MethodGet, "/api/v1/draws/"+id, nil, false)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestIntegration_ListDraws(t *testing.T) {
	app := newTestApp(t, appOptions{})
	for i := 0; i < 3; i++ {
		app.publish(t, fmt.Sprintf("Draw %d", i), winning("first", i))
	}

	status, body := app.request(t, http.MethodGet, "/api/v1/draws?page=1&page_size=2", nil, false)

	require.Equal(t, http.StatusOK, status)
	d := data(body)
	assert.Equal(t, float64(3), d["total"])
	assert.Equal(t, float64(2), d["total_pages"])
	assert.Len(t, d["items"], 2)
}

func TestIntegration_PublishRateLimited(t *testing.T) {
	app := newTestApp(t, appOptions{rateLimit: true})
	limit := middleware.DefaultRateLimitRules()["publish"].Limit

	for i := int64(0); i < limit; i++ {
		app.publish(t, fmt.Sprintf("Draw %d", i), winning("first", int(i)))
	}

	status, body := app.request(t, http.MethodPost, "/api/v1/draws", map[string]interface{}{
		"name":    "One too many",
		"held_on": "2025-12-22",
		"numbers": []map[string]interface{}{winning("first", 1)},
	}, true)
	assert.Equal(t, http.StatusTooManyRequests, status)
	assert.Equal(t, "RATE_001", body["error_code"])
}

func TestIntegration_MetricsExposed(t *testing.T) {
	app := newTestApp(t, appOptions{})
	id := app.publish(t, "Metrics", winning("first", 12345))
	app.request(t, http.MethodPost, "/api/v1/draws/"+id+"/check", map[string]interface{}{"number": 12346}, false)

	resp, err := http.Get(app.server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), `lottery_awards_draws_winning_numbers_published_total{tier="first"} 1`)
	assert.Contains(t, string(raw), `lottery_awards_tickets_awarded_cents_total 2.1e+06`)
	assert.Contains(t, string(raw), `route="/api/v1/draws/:id/check"`)
}

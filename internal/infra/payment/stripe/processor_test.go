package stripe

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"marketplace/config"
	"marketplace/internal/domain/service"
	"marketplace/internal/infra/metrics"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method string
	Path   string
	Form   url.Values
	Header http.Header
}

type fakeStripe struct {
	mu       sync.Mutex
	requests []recordedRequest
	routes   map[string]func(w http.ResponseWriter)
}

func (f *fakeStripe) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	form, _ := url.ParseQuery(string(body))

	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{Method: r.Method, Path: r.URL.Path, Form: form, Header: r.Header.Clone()})
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	handler, ok := f.routes[r.Method+" "+r.URL.Path]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		writeJSON(w, map[string]any{"error": map[string]any{
			"type": "invalid_request_error", "code": "resource_missing", "message": "No such route",
		}})

		return
	}
	handler(w)
}

func (f *fakeStripe) last() recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.requests[len(f.requests)-1]
}

func writeJSON(w http.ResponseWriter, v any) {
	_ = json.NewEncoder(w).Encode(v)
}

func respond(v any) func(w http.ResponseWriter) {
	return func(w http.ResponseWriter) { writeJSON(w, v) }
}

func cardJSON(id string) map[string]any {
	return map[string]any{
		"id": id, "object": "card", "brand": "Visa", "exp_month": 12, "exp_year": 2030,
		"last4": "4242", "name": "Jane Doe",
	}
}

func newTestProcessor(t *testing.T, routes map[string]func(w http.ResponseWriter)) (*processor, *fakeStripe) {
	t.Helper()

	fake := &fakeStripe{routes: routes}
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	cfg := &config.Config{Payment: &config.PaymentConfig{
		Provider:   "stripe",
		SecretKey:  "sk_test_123",
		BackendURL: server.URL,
	}}

	svc, err := NewPaymentProcessor(Params{
		Config:  cfg,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Metrics: metrics.New(),
	})
	require.NoError(t, err)

	p, ok := svc.(*processor)
	require.True(t, ok)

	return p, fake
}

func TestNewPaymentProcessor_RequiresSecretKey(t *testing.T) {
	_, err := NewPaymentProcessor(Params{Config: &config.Config{}, Logger: slog.Default()})
	assert.Error(t, err)

	_, err = NewPaymentProcessor(Params{
		Config: &config.Config{Payment: &config.PaymentConfig{Provider: "paypal", SecretKey: "x"}},
		Logger: slog.Default(),
	})
	assert.Error(t, err)
}

func TestProcessor_CreateCustomer(t *testing.T) {
	p, fake := newTestProcessor(t, map[string]func(w http.ResponseWriter){
		"POST /v1/customers": respond(map[string]any{"id": "cus_123", "object": "customer"}),
	})

	id, err := p.CreateCustomer(context.Background(), service.CustomerInput{
		UserID: "user-1", Email: "jane@example.com", Name: "Jane",
	})
	require.NoError(t, err)
	assert.Equal(t, "cus_123", id)

	req := fake.last()
	assert.Equal(t, "jane@example.com", req.Form.Get("email"))
	assert.Equal(t, "Jane", req.Form.Get("name"))
	assert.Equal(t, "user-1", req.Form.Get("metadata[userId]"))
	assert.Equal(t, "customer-user-1", req.Header.Get("Idempotency-Key"))
	assert.InDelta(t, 1, testutil.ToFloat64(p.metrics.ProcessorCalls.WithLabelValues("create_customer", metrics.OutcomeSuccess)), 0)
}

func TestProcessor_GetDefaultSource(t *testing.T) {
	p, _ := newTestProcessor(t, map[string]func(w http.ResponseWriter){
		"GET /v1/customers/cus_1": respond(map[string]any{"id": "cus_1", "object": "customer", "default_source": "card_9"}),
		"GET /v1/customers/cus_2": respond(map[string]any{"id": "cus_2", "object": "customer", "default_source": nil}),
	})

	source, err := p.GetDefaultSource(context.Background(), "cus_1")
	require.NoError(t, err)
	assert.Equal(t, "card_9", source)

	source, err = p.GetDefaultSource(context.Background(), "cus_2")
	require.NoError(t, err)
	assert.Empty(t, source)
}

func TestProcessor_CountCards(t *testing.T) {
	p, fake := newTestProcessor(t, map[string]func(w http.ResponseWriter){
		"GET /v1/payment_methods": respond(map[string]any{
			"object": "list", "url": "/v1/payment_methods", "has_more": false,
			"data": []any{
				map[string]any{"id": "card_1", "object": "payment_method", "type": "card"},
			},
		}),
	})

	count, err := p.CountCards(context.Background(), "cus_1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	req := fake.last()
	assert.Equal(t, http.MethodGet, req.Method)
}

func TestProcessor_AttachAndGetCard(t *testing.T) {
	p, fake := newTestProcessor(t, map[string]func(w http.ResponseWriter){
		"POST /v1/customers/cus_1/sources":       respond(cardJSON("card_1")),
		"GET /v1/customers/cus_1/sources/card_1": respond(cardJSON("card_1")),
	})

	card, err := p.AttachCard(context.Background(), "cus_1", "tok_visa")
	require.NoError(t, err)
	assert.Equal(t, "card_1", card.CardID)
	assert.Equal(t, "4242", card.Last4)
	assert.Equal(t, "Visa", card.Brand)
	assert.Equal(t, int64(12), card.ExpiryMonth)
	assert.Equal(t, int64(2030), card.ExpiryYear)
	assert.Equal(t, "tok_visa", fake.last().Form.Get("source"))

	card, err = p.GetCard(context.Background(), "cus_1", "card_1")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", card.Name)
}

func TestProcessor_UpdateCard(t *testing.T) {
	p, fake := newTestProcessor(t, map[string]func(w http.ResponseWriter){
		"POST /v1/customers/cus_1/sources/card_1": respond(cardJSON("card_1")),
	})

	name := "Jane Doe"
	month, year := 11, 2031
	_, err := p.UpdateCard(context.Background(), "cus_1", "card_1", service.CardUpdate{
		Name: &name, ExpiryMonth: &month, ExpiryYear: &year,
	})
	require.NoError(t, err)

	form := fake.last().Form
	assert.Equal(t, "Jane Doe", form.Get("name"))
	assert.Equal(t, "11", form.Get("exp_month"))
	assert.Equal(t, "2031", form.Get("exp_year"))
}

func TestProcessor_DeleteCard(t *testing.T) {
	p, _ := newTestProcessor(t, map[string]func(w http.ResponseWriter){
		"DELETE /v1/customers/cus_1/sources/card_1": respond(map[string]any{"id": "card_1", "object": "card", "deleted": true}),
		"DELETE /v1/customers/cus_1/sources/card_2": respond(map[string]any{"id": "card_2", "object": "card"}),
	})

	deleted, err := p.DeleteCard(context.Background(), "cus_1", "card_1")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = p.DeleteCard(context.Background(), "cus_1", "card_2")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestProcessor_SetDefaultCard(t *testing.T) {
	p, fake := newTestProcessor(t, map[string]func(w http.ResponseWriter){
		"POST /v1/customers/cus_1": respond(map[string]any{"id": "cus_1", "object": "customer", "default_source": "card_1"}),
	})

	require.NoError(t, p.SetDefaultCard(context.Background(), "cus_1", "card_1"))
	assert.Equal(t, "card_1", fake.last().Form.Get("default_source"))
}

func TestProcessor_TranslatesErrors(t *testing.T) {
	p, _ := newTestProcessor(t, map[string]func(w http.ResponseWriter){
		"POST /v1/customers/cus_1/sources": func(w http.ResponseWriter) {
			w.WriteHeader(http.StatusPaymentRequired)
			writeJSON(w, map[string]any{"error": map[string]any{
				"type": "card_error", "code": "card_declined", "message": "Your card was declined.",
			}})
		},
		"GET /v1/customers/cus_1": func(w http.ResponseWriter) {
			w.WriteHeader(http.StatusInternalServerError)
			writeJSON(w, map[string]any{"error": map[string]any{"type": "api_error", "message": "boom"}})
		},
	})

	_, err := p.AttachCard(context.Background(), "cus_1", "tok_chargeDeclined")
	assert.True(t, errors.Is(err, service.ErrProcessorCardRejected))

	_, err = p.GetCard(context.Background(), "cus_1", "card_missing")
	assert.True(t, errors.Is(err, service.ErrProcessorResourceMissing))

	_, err = p.GetDefaultSource(context.Background(), "cus_1")
	require.Error(t, err)
	assert.False(t, errors.Is(err, service.ErrProcessorCardRejected))
	assert.False(t, errors.Is(err, service.ErrProcessorResourceMissing))
	assert.InDelta(t, 1, testutil.ToFloat64(p.metrics.ProcessorCalls.WithLabelValues("get_customer", metrics.OutcomeError)), 0)
}

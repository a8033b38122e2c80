package checkout

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/CryptoCardia/pilotroom-web/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStripe struct {
	srv    *httptest.Server
	calls  atomic.Int32
	mu     sync.Mutex
	form   url.Values
	status int
	body   string
}

func newFakeStripe(t *testing.T, status int, body string) *fakeStripe {
	t.Helper()
	f := &fakeStripe{status: status, body: body}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.calls.Add(1)
		if r.URL.Path != "/v1/checkout/sessions" || r.Method != http.MethodPost {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err := r.ParseForm(); err == nil {
			f.mu.Lock()
			f.form = r.PostForm
			f.mu.Unlock()
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(f.status)
		_, _ = w.Write([]byte(f.body))
	}))
	t.Cleanup(f.srv.Close)
	return f
}

const sessionJSON = `{"id":"cs_test_1","object":"checkout.session","mode":"payment","url":"https://checkout.stripe.com/c/pay/cs_test_1"}`

func newTestHandler(svc *Service) *Handler {
	return NewHandler(svc, validation.New(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func postCheckout(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/pilot/checkout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Create(rec, req)
	return rec
}

func TestCreateSessionParams(t *testing.T) {
	fake := newFakeStripe(t, http.StatusOK, sessionJSON)
	svc := NewService(Config{SecretKey: "sk_test_123", BaseURL: "https://pilotroom.dev/", APIURL: fake.srv.URL})

	got, err := svc.CreateSession(context.Background(), "Acme")
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_1", got)
	assert.Equal(t, int32(1), fake.calls.Load())

	fake.mu.Lock()
	form := fake.form
	fake.mu.Unlock()
	assert.Equal(t, "payment", form.Get("mode"))
	assert.Equal(t, "card", form.Get("payment_method_types[0]"))
	assert.Equal(t, "usd", form.Get("line_items[0][price_data][currency]"))
	assert.Equal(t, "4900", form.Get("line_items[0][price_data][unit_amount]"))
	assert.Equal(t, "1", form.Get("line_items[0][quantity]"))
	assert.Equal(t, "PilotRoom — Pilot Listing", form.Get("line_items[0][price_data][product_data][name]"))
	assert.Equal(t, "Pilot listing for Acme", form.Get("line_items[0][price_data][product_data][description]"))
	assert.Equal(t, "https://pilotroom.dev/success", form.Get("success_url"))
	assert.Equal(t, "https://pilotroom.dev/create", form.Get("cancel_url"))
}

func TestCreateSessionNotConfigured(t *testing.T) {
	fake := newFakeStripe(t, http.StatusOK, sessionJSON)
	svc := NewService(Config{BaseURL: "https://pilotroom.dev", APIURL: fake.srv.URL})

	_, err := svc.CreateSession(context.Background(), "Acme")
	assert.True(t, errors.Is(err, ErrNotConfigured))
	assert.Equal(t, int32(0), fake.calls.Load())
}

func TestCreateSessionFailureIsNotRetried(t *testing.T) {
	fake := newFakeStripe(t, http.StatusInternalServerError, `{"error":{"type":"api_error","message":"boom"}}`)
	svc := NewService(Config{SecretKey: "sk_test_123", BaseURL: "https://pilotroom.dev", APIURL: fake.srv.URL})

	_, err := svc.CreateSession(context.Background(), "Acme")
	require.Error(t, err)
	assert.Equal(t, int32(1), fake.calls.Load())
}

func TestHandlerNotConfigured(t *testing.T) {
	fake := newFakeStripe(t, http.StatusOK, sessionJSON)
	h := newTestHandler(NewService(Config{BaseURL: "https://pilotroom.dev", APIURL: fake.srv.URL}))

	rec := postCheckout(h, `{"company":"Acme"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Stripe not configured"}`, rec.Body.String())
	assert.Equal(t, int32(0), fake.calls.Load())
}

func TestHandlerCreatesSession(t *testing.T) {
	fake := newFakeStripe(t, http.StatusOK, sessionJSON)
	h := newTestHandler(NewService(Config{SecretKey: "sk_test_123", BaseURL: "https://pilotroom.dev", APIURL: fake.srv.URL}))

	rec := postCheckout(h, `{"company":"Acme"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"url":"https://checkout.stripe.com/c/pay/cs_test_1"}`, rec.Body.String())
}

func TestHandlerRejectsBadInput(t *testing.T) {
	fake := newFakeStripe(t, http.StatusOK, sessionJSON)
	h := newTestHandler(NewService(Config{SecretKey: "sk_test_123", BaseURL: "https://pilotroom.dev", APIURL: fake.srv.URL}))

	rec := postCheckout(h, `{"company":"   "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"validation error","details":{"Company":"notblank"}}`, rec.Body.String())

	rec = postCheckout(h, `[`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"invalid json"}`, rec.Body.String())
	assert.Equal(t, int32(0), fake.calls.Load())
}

func TestHandlerIgnoresExtraFields(t *testing.T) {
	fake := newFakeStripe(t, http.StatusOK, sessionJSON)
	h := newTestHandler(NewService(Config{SecretKey: "sk_test_123", BaseURL: "https://pilotroom.dev", APIURL: fake.srv.URL}))

	rec := postCheckout(h, `{"company":"Acme","pilotTitle":"Ledger sync","amount":1}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"url":"https://checkout.stripe.com/c/pay/cs_test_1"}`, rec.Body.String())
	assert.Equal(t, int32(1), fake.calls.Load())

	fake.mu.Lock()
	form := fake.form
	fake.mu.Unlock()
	assert.Equal(t, "Pilot listing for Acme", form.Get("line_items[0][price_data][product_data][description]"))
}

func TestHandlerCollaboratorFailure(t *testing.T) {
	fake := newFakeStripe(t, http.StatusBadRequest, `{"error":{"type":"invalid_request_error","message":"No such price"}}`)
	h := newTestHandler(NewService(Config{SecretKey: "sk_test_123", BaseURL: "https://pilotroom.dev", APIURL: fake.srv.URL}))

	rec := postCheckout(h, `{"company":"Acme"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Checkout failed"}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "No such price")
}

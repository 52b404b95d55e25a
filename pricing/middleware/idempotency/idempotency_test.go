package idempotency

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"encore.dev"
	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/storage/cache"

	"logistics.app/pricing/model"
)

func newRequest(ctx context.Context, method, path string, headers http.Header, payload any) middleware.Request {
	return middleware.NewRequest(ctx, &encore.Request{
		Method:  method,
		Path:    path,
		Headers: headers,
		Payload: payload,
	})
}

func TestExtractKey(t *testing.T) {
	testCases := []struct {
		name          string
		headers       http.Header
		expectedKey   string
		expectedError string
	}{
		{
			name:        "valid_key",
			headers:     http.Header{Header: []string{"zone-batch-7"}},
			expectedKey: "zone-batch-7",
		},
		{
			name:        "surrounding_whitespace_trimmed",
			headers:     http.Header{Header: []string{"  key-1  "}},
			expectedKey: "key-1",
		},
		{
			name:          "missing_header",
			headers:       http.Header{},
			expectedError: "X-Idempotency-Key header is required",
		},
		{
			name:          "whitespace_only",
			headers:       http.Header{Header: []string{"   "}},
			expectedError: "X-Idempotency-Key header is required",
		},
		{
			name:        "first_value_wins",
			headers:     http.Header{Header: []string{"first", "second"}},
			expectedKey: "first",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := newRequest(context.Background(), "PUT", "/v1/pricing/global-defaults", tc.headers, nil)

			key, err := extractKey(req)
			if tc.expectedError != "" {
				if assert.NotNil(t, err) {
					assert.Contains(t, err.Error(), tc.expectedError)
				}
				assert.Empty(t, key)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tc.expectedKey, key)
		})
	}
}

func TestCacheKeyFor(t *testing.T) {
	headers := http.Header{Header: []string{"k1"}, ActorHeader: []string{"admin-42"}}
	req := newRequest(context.Background(), "PUT", "/v1/pricing/zones/beirut", headers, nil)

	got := cacheKeyFor(req, "k1")
	assert.Equal(t, model.IdempotencyKey{Resource: "PUT /v1/pricing/zones/beirut", Key: "admin-42:k1"}, got)

	anonymous := newRequest(context.Background(), "", "/v1/pricing/zones/beirut", http.Header{}, nil)
	assert.Equal(t, model.IdempotencyKey{Resource: "/v1/pricing/zones/beirut", Key: "k1"}, cacheKeyFor(anonymous, "k1"))
}

func TestHashing(t *testing.T) {
	assert.Equal(t, "", hashing(nil))
	assert.Equal(t, "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08", hashing([]byte("test")))

	a := hashing([]byte(`{"fee":{"usd":"1.5","lbp":"50000"}}`))
	b := hashing([]byte(`{"fee":{"usd":"2","lbp":"50000"}}`))
	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}

func TestValidateBodyHash(t *testing.T) {
	testCases := []struct {
		name        string
		cached      string
		incoming    string
		expectError bool
	}{
		{name: "matching", cached: "abc", incoming: "abc"},
		{name: "no_cached_hash", cached: "", incoming: "abc"},
		{name: "no_incoming_body", cached: "abc", incoming: ""},
		{name: "conflict", cached: "abc", incoming: "xyz", expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateBodyHash(model.IdempotencyCacheEntry{RequestBodyHash: tc.cached}, tc.incoming)
			if tc.expectError {
				if assert.NotNil(t, err) {
					assert.Contains(t, err.Error(), "idempotency key conflict")
				}
				return
			}
			assert.Nil(t, err)
		})
	}
}

func TestReplay_ProcessingEntryAborts(t *testing.T) {
	req := newRequest(context.Background(), "PUT", "/v1/pricing/global-defaults", http.Header{}, nil)

	nextCalled := false
	next := func(middleware.Request) middleware.Response {
		nextCalled = true
		return middleware.Response{}
	}

	resp := replay(req, next, model.IdempotencyCacheEntry{Status: model.IdempotencyStatusProcessing}, "", "k1")
	if assert.NotNil(t, resp.Err) {
		assert.Contains(t, resp.Err.Error(), "still being processed")
	}
	assert.False(t, nextCalled)
}

func TestReplay_ConflictingBody(t *testing.T) {
	req := newRequest(context.Background(), "PUT", "/v1/pricing/global-defaults", http.Header{}, nil)
	next := func(middleware.Request) middleware.Response {
		t.Fatal("next must not run for a conflicting body")
		return middleware.Response{}
	}

	entry := model.IdempotencyCacheEntry{Status: model.IdempotencyStatusCompleted, RequestBodyHash: "abc"}
	resp := replay(req, next, entry, "xyz", "k1")
	assert.NotNil(t, resp.Err)
}

func TestMiddleware_MissingKey(t *testing.T) {
	req := newRequest(context.Background(), "PUT", "/v1/pricing/global-defaults", http.Header{}, map[string]any{"fee": 1})

	nextCalled := false
	next := func(middleware.Request) middleware.Response {
		nextCalled = true
		return middleware.Response{Payload: map[string]any{"ok": true}}
	}

	resp := Middleware(req, next)
	if assert.NotNil(t, resp.Err) {
		assert.Contains(t, resp.Err.Error(), "X-Idempotency-Key header is required")
	}
	assert.False(t, nextCalled)
	assert.Nil(t, resp.Payload)
}

type memEntries struct {
	mu   sync.Mutex
	data map[model.IdempotencyKey]model.IdempotencyCacheEntry
}

func newMemEntries() *memEntries {
	return &memEntries{data: map[model.IdempotencyKey]model.IdempotencyCacheEntry{}}
}

func (m *memEntries) Get(_ context.Context, key model.IdempotencyKey) (model.IdempotencyCacheEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.data[key]
	if !ok {
		return model.IdempotencyCacheEntry{}, cache.Miss
	}
	return entry, nil
}

func (m *memEntries) Set(_ context.Context, key model.IdempotencyKey, val model.IdempotencyCacheEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = val
	return nil
}

func (m *memEntries) SetIfNotExists(_ context.Context, key model.IdempotencyKey, val model.IdempotencyCacheEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.data[key]; ok {
		return cache.KeyExists
	}
	m.data[key] = val
	return nil
}

func (m *memEntries) Delete(_ context.Context, keys ...model.IdempotencyKey) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	deleted := 0
	for _, key := range keys {
		if _, ok := m.data[key]; ok {
			delete(m.data, key)
			deleted++
		}
	}
	return deleted, nil
}

func TestHandle_SameKeyWhileInFlightAborts(t *testing.T) {
	ctx := context.Background()
	entries := newMemEntries()
	headers := http.Header{Header: []string{"batch-1"}, ActorHeader: []string{"admin-1"}}
	payload := map[string]any{"fee": 1}

	calls := 0
	var inner middleware.Response
	next := func(req middleware.Request) middleware.Response {
		calls++
		// A retry arriving before the first call finishes.
		inner = handle(newRequest(ctx, "PUT", "/v1/pricing/global-defaults", headers, payload), func(middleware.Request) middleware.Response {
			calls++
			return middleware.Response{}
		}, entries)
		return middleware.Response{}
	}

	resp := handle(newRequest(ctx, "PUT", "/v1/pricing/global-defaults", headers, payload), next, entries)

	assert.Nil(t, resp.Err)
	assert.Equal(t, 1, calls)
	require.NotNil(t, inner.Err)
	assert.Equal(t, errs.Aborted, errs.Code(inner.Err))

	stored, err := entries.Get(ctx, model.IdempotencyKey{Resource: "PUT /v1/pricing/global-defaults", Key: "admin-1:batch-1"})
	require.NoError(t, err)
	assert.Equal(t, model.IdempotencyStatusCompleted, stored.Status)
}

func TestHandle_CompletedKeyReplaysWithoutRunning(t *testing.T) {
	ctx := context.Background()
	entries := newMemEntries()
	headers := http.Header{Header: []string{"batch-2"}}
	payload := map[string]any{"fee": 2}

	calls := 0
	next := func(middleware.Request) middleware.Response {
		calls++
		return middleware.Response{}
	}

	first := handle(newRequest(ctx, "PUT", "/v1/pricing/global-defaults", headers, payload), next, entries)
	second := handle(newRequest(ctx, "PUT", "/v1/pricing/global-defaults", headers, payload), next, entries)

	assert.Nil(t, first.Err)
	assert.Nil(t, second.Err)
	assert.Equal(t, 1, calls)
}

func TestHandle_FailedMutationReleasesKey(t *testing.T) {
	ctx := context.Background()
	entries := newMemEntries()
	headers := http.Header{Header: []string{"batch-3"}}

	calls := 0
	failing := func(middleware.Request) middleware.Response {
		calls++
		return middleware.Response{Err: &errs.Error{Code: errs.Internal, Message: "boom"}}
	}
	succeeding := func(middleware.Request) middleware.Response {
		calls++
		return middleware.Response{}
	}

	first := handle(newRequest(ctx, "PUT", "/v1/pricing/global-defaults", headers, nil), failing, entries)
	second := handle(newRequest(ctx, "PUT", "/v1/pricing/global-defaults", headers, nil), succeeding, entries)

	assert.NotNil(t, first.Err)
	assert.Nil(t, second.Err)
	assert.Equal(t, 2, calls)
}

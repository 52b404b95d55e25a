// Package idempotency replays admin mutations that carry a repeated
// X-Idempotency-Key instead of applying them twice.
package idempotency

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/rlog"
	"encore.dev/storage/cache"

	"logistics.app/pricing/model"
)

const (
	Header      = "X-Idempotency-Key"
	ActorHeader = "X-Actor-ID"
)

// entryStore is the part of the Entries keyspace the middleware relies on.
type entryStore interface {
	Get(ctx context.Context, key model.IdempotencyKey) (model.IdempotencyCacheEntry, error)
	Set(ctx context.Context, key model.IdempotencyKey, val model.IdempotencyCacheEntry) error
	SetIfNotExists(ctx context.Context, key model.IdempotencyKey, val model.IdempotencyCacheEntry) error
	Delete(ctx context.Context, keys ...model.IdempotencyKey) (int, error)
}

//encore:middleware target=tag:idempotency
func Middleware(req middleware.Request, next middleware.Next) middleware.Response {
	return handle(req, next, Entries)
}

func handle(req middleware.Request, next middleware.Next, entries entryStore) middleware.Response {
	key, err := extractKey(req)
	if err != nil {
		return middleware.Response{Err: err}
	}

	ctx := req.Context()
	cacheKey := cacheKeyFor(req, key)
	bodyHash := bodyHashOf(req)

	// Reserving the key is a single atomic write, so only one of several
	// concurrent requests with the same key runs the mutation.
	reserved, reserveErr := reserve(ctx, entries, cacheKey, bodyHash)
	if reserveErr != nil {
		return middleware.Response{Err: reserveErr}
	}
	if !reserved {
		entry, getErr := entries.Get(ctx, cacheKey)
		switch {
		case getErr == nil:
			return replay(req, next, entry, bodyHash, key)
		case errors.Is(getErr, cache.Miss):
			// The holder failed and released the key between our two calls.
			return middleware.Response{Err: stillProcessing()}
		default:
			rlog.Error("failed to read idempotency entry", "error", getErr, "key", key)
			return middleware.Response{Err: &errs.Error{Code: errs.Unavailable, Message: "failed to check idempotency key"}}
		}
	}

	resp := next(req)
	if resp.Err != nil {
		// Failed mutations leave nothing behind so the caller may retry.
		forget(ctx, entries, cacheKey)
		return resp
	}

	markCompleted(ctx, entries, cacheKey, bodyHash, resp)
	return resp
}

func extractKey(req middleware.Request) (string, *errs.Error) {
	var key string
	if headers := req.Data().Headers; headers != nil {
		key = strings.TrimSpace(headers.Get(Header))
	}
	if key == "" {
		return "", &errs.Error{Code: errs.InvalidArgument, Message: Header + " header is required"}
	}
	return key, nil
}

// cacheKeyFor scopes the client key to the endpoint and the acting admin.
func cacheKeyFor(req middleware.Request, key string) model.IdempotencyKey {
	data := req.Data()
	resource := data.Path
	if data.Method != "" {
		resource = data.Method + " " + data.Path
	}
	if data.Headers != nil {
		if actor := strings.TrimSpace(data.Headers.Get(ActorHeader)); actor != "" {
			key = actor + ":" + key
		}
	}
	return model.IdempotencyKey{Resource: resource, Key: key}
}

func bodyHashOf(req middleware.Request) string {
	payload := req.Data().Payload
	if payload == nil {
		return ""
	}
	body, err := json.Marshal(payload)
	if err != nil {
		rlog.Error("failed to marshal request payload", "error", err)
		return ""
	}
	return hashing(body)
}

func replay(req middleware.Request, next middleware.Next, entry model.IdempotencyCacheEntry, bodyHash, key string) middleware.Response {
	if err := validateBodyHash(entry, bodyHash); err != nil {
		return middleware.Response{Err: err}
	}

	switch entry.Status {
	case model.IdempotencyStatusProcessing:
		rlog.Info("concurrent request with same idempotency key", "key", key)
		return middleware.Response{Err: stillProcessing()}
	case model.IdempotencyStatusCompleted:
		if payload, ok := decodeCached(req, entry, key); ok {
			rlog.Info("replaying cached response", "key", key)
			return middleware.Response{Payload: payload}
		}
		return next(req)
	default:
		rlog.Warn("unknown idempotency entry status, processing as new request", "key", key, "status", entry.Status)
		return next(req)
	}
}

// decodeCached rebuilds the typed response. Endpoints without a response
// body replay as an empty success.
func decodeCached(req middleware.Request, entry model.IdempotencyCacheEntry, key string) (any, bool) {
	api := req.Data().API
	if api == nil || api.ResponseType == nil {
		return nil, true
	}
	if len(entry.Response) == 0 {
		return nil, false
	}

	payload := reflect.New(api.ResponseType.Elem()).Interface()
	if err := json.Unmarshal(entry.Response, payload); err != nil {
		rlog.Error("failed to decode cached response", "error", err, "key", key)
		return nil, false
	}
	return payload, true
}

func validateBodyHash(entry model.IdempotencyCacheEntry, bodyHash string) *errs.Error {
	if bodyHash != "" && entry.RequestBodyHash != "" && bodyHash != entry.RequestBodyHash {
		return &errs.Error{Code: errs.InvalidArgument, Message: "idempotency key conflict: request body does not match previous request"}
	}
	return nil
}

func stillProcessing() *errs.Error {
	return &errs.Error{Code: errs.Aborted, Message: "request with this idempotency key is still being processed"}
}

// reserve claims the key with a processing entry. It reports false when
// another request already holds the key.
func reserve(ctx context.Context, entries entryStore, cacheKey model.IdempotencyKey, bodyHash string) (bool, *errs.Error) {
	now := time.Now()
	err := entries.SetIfNotExists(ctx, cacheKey, model.IdempotencyCacheEntry{
		Status:          model.IdempotencyStatusProcessing,
		RequestBodyHash: bodyHash,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, cache.KeyExists):
		return false, nil
	}
	rlog.Error("failed to reserve idempotency key", "error", err)
	return false, &errs.Error{Code: errs.Unavailable, Message: "failed to reserve idempotency key"}
}

func forget(ctx context.Context, entries entryStore, cacheKey model.IdempotencyKey) {
	if _, err := entries.Delete(ctx, cacheKey); err != nil {
		rlog.Error("failed to clear idempotency entry", "error", err)
	}
}

func markCompleted(ctx context.Context, entries entryStore, cacheKey model.IdempotencyKey, bodyHash string, resp middleware.Response) {
	entry := model.IdempotencyCacheEntry{
		Status:          model.IdempotencyStatusCompleted,
		RequestBodyHash: bodyHash,
		UpdatedAt:       time.Now(),
	}
	if resp.Payload != nil {
		body, err := json.Marshal(resp.Payload)
		if err != nil {
			rlog.Error("failed to marshal response for caching", "error", err)
			forget(ctx, entries, cacheKey)
			return
		}
		entry.Response = body
	}

	if err := entries.Set(ctx, cacheKey, entry); err != nil {
		rlog.Error("failed to cache response", "error", err)
	}
}

// hashing returns the hex sha256 of body, or "" for an empty body.
func hashing(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}

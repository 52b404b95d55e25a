// Package apierr maps pricing failures onto Encore error codes.
//
//	ValidationError -> errs.InvalidArgument (with FieldErrors details)
//	ConflictError   -> errs.AlreadyExists, or errs.Aborted for stale versions
//	NotFoundError   -> errs.NotFound
//	RepositoryError -> errs.Internal wrapping the storage error
package apierr

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"encore.dev/beta/errs"
)

type Kind string

const (
	KindNone       Kind = ""
	KindValidation Kind = "validation"
	KindConflict   Kind = "conflict"
	KindNotFound   Kind = "not_found"
	KindRepository Kind = "repository"
	KindUnknown    Kind = "unknown"
)

// FieldErrors maps a request field to a human readable message.
type FieldErrors map[string]string

func (FieldErrors) ErrDetails() {}

// Validation rejects malformed input. fields may be nil.
func Validation(message string, fields FieldErrors) error {
	e := &errs.Error{Code: errs.InvalidArgument, Message: message}
	if len(fields) > 0 {
		e.Details = fields
	}
	return e
}

// InvalidAmount reports CurrencyAmount violations under the given field prefix.
func InvalidAmount(field string, violations map[string]string) error {
	fields := make(FieldErrors, len(violations))
	keys := slices.Sorted(maps.Keys(violations))
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		fields[field+"."+k] = violations[k]
		parts = append(parts, k+" "+violations[k])
	}
	return Validation(fmt.Sprintf("invalid %s: %s", field, strings.Join(parts, ", ")), fields)
}

// FromValidator converts go-playground validation failures into a ValidationError.
func FromValidator(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Validation(err.Error(), nil)
	}

	fields := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = "failed on " + fe.Tag()
	}
	return Validation(err.Error(), fields)
}

// Conflict rejects a write that would break a uniqueness or overlap rule.
func Conflict(message string) error {
	return &errs.Error{Code: errs.AlreadyExists, Message: message}
}

// StaleVersion rejects a write made against an outdated row version.
func StaleVersion(entity string, expected, actual int32) error {
	return &errs.Error{
		Code:    errs.Aborted,
		Message: fmt.Sprintf("%s was modified concurrently: expected version %d, found %d", entity, expected, actual),
	}
}

func NotFound(entity, id string) error {
	return &errs.Error{Code: errs.NotFound, Message: fmt.Sprintf("%s %q not found", entity, id)}
}

// Repository wraps a storage failure. Errors that already carry an Encore
// code pass through unchanged.
func Repository(op string, err error) error {
	if err == nil {
		return nil
	}
	var e *errs.Error
	if errors.As(err, &e) {
		return err
	}
	return errs.WrapCode(err, errs.Internal, op+": storage failure")
}

// IsUniqueViolation reports whether err is a postgres unique constraint failure.
func IsUniqueViolation(err error) bool {
	var e *pgconn.PgError
	return errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation
}

// KindOf classifies err into the pricing error taxonomy.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	switch errs.Code(err) {
	case errs.InvalidArgument:
		return KindValidation
	case errs.AlreadyExists, errs.Aborted:
		return KindConflict
	case errs.NotFound:
		return KindNotFound
	case errs.Internal, errs.Unavailable:
		return KindRepository
	}
	return KindUnknown
}

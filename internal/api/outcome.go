// Package api wraps the HackAgent platform API behind a classified-outcome
// surface: every call produces exactly one Outcome and never an error value,
// so callers match on Kind instead of unwinding error chains.
package api

import "fmt"

// Kind identifies which variant of an Outcome holds.
type Kind int

const (
	// KindPending means no fetch has completed yet.
	KindPending Kind = iota
	// KindSuccess carries a non-empty item collection.
	KindSuccess
	// KindEmpty is a successful response with zero items.
	KindEmpty
	// KindConfigMissing means no API key is configured; no request was made.
	KindConfigMissing
	// KindAuthFailed is HTTP 401.
	KindAuthFailed
	// KindForbidden is HTTP 403.
	KindForbidden
	// KindNotFound is HTTP 404.
	KindNotFound
	// KindServerError is any other non-2xx status; Status holds the code.
	KindServerError
	// KindTimeout is a transport failure that was time-bound.
	KindTimeout
	// KindNetworkError is any other transport failure before a response.
	KindNetworkError
	// KindUnexpectedError is a decode failure on a nominally good response.
	KindUnexpectedError
)

// String returns a short lower-case name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPending:
		return "pending"
	case KindSuccess:
		return "success"
	case KindEmpty:
		return "empty"
	case KindConfigMissing:
		return "config-missing"
	case KindAuthFailed:
		return "auth-failed"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not-found"
	case KindServerError:
		return "server-error"
	case KindTimeout:
		return "timeout"
	case KindNetworkError:
		return "network-error"
	case KindUnexpectedError:
		return "unexpected-error"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Outcome is the classified result of one remote call attempt.
// Exactly one variant holds: Kind selects it, and Items/Status/Message are
// populated only for the kinds that carry them.
type Outcome[T any] struct {
	Kind    Kind
	Items   []T    // Success only
	Status  int    // ServerError only
	Message string // NetworkError and UnexpectedError only
}

// Pending returns the zero outcome, before any fetch has completed.
func Pending[T any]() Outcome[T] { return Outcome[T]{Kind: KindPending} }

// Collected classifies a successful response body: non-empty collections
// become Success, empty ones become Empty.
func Collected[T any](items []T) Outcome[T] {
	if len(items) == 0 {
		return Outcome[T]{Kind: KindEmpty}
	}
	return Outcome[T]{Kind: KindSuccess, Items: items}
}

// ConfigMissing reports absent credentials.
func ConfigMissing[T any]() Outcome[T] { return Outcome[T]{Kind: KindConfigMissing} }

// AuthFailed reports HTTP 401.
func AuthFailed[T any]() Outcome[T] { return Outcome[T]{Kind: KindAuthFailed} }

// Forbidden reports HTTP 403.
func Forbidden[T any]() Outcome[T] { return Outcome[T]{Kind: KindForbidden} }

// NotFound reports HTTP 404.
func NotFound[T any]() Outcome[T] { return Outcome[T]{Kind: KindNotFound} }

// ServerError reports any other non-success status.
func ServerError[T any](status int) Outcome[T] {
	return Outcome[T]{Kind: KindServerError, Status: status}
}

// Timeout reports a time-bound transport failure.
func Timeout[T any]() Outcome[T] { return Outcome[T]{Kind: KindTimeout} }

// NetworkError reports a non-timeout transport failure.
func NetworkError[T any](msg string) Outcome[T] {
	return Outcome[T]{Kind: KindNetworkError, Message: TruncateMessage(msg)}
}

// UnexpectedError reports a failure decoding a nominally good response.
func UnexpectedError[T any](msg string) Outcome[T] {
	return Outcome[T]{Kind: KindUnexpectedError, Message: TruncateMessage(msg)}
}

// Failed reports whether the outcome is any failure variant.
func (o Outcome[T]) Failed() bool {
	switch o.Kind {
	case KindPending, KindSuccess, KindEmpty:
		return false
	default:
		return true
	}
}

// RecastFailure carries a failure outcome across item types. Panics are not
// possible: success variants simply map to Pending, but callers only pass
// failures.
func RecastFailure[T, U any](o Outcome[T]) Outcome[U] {
	if !o.Failed() {
		return Outcome[U]{Kind: KindPending}
	}
	return Outcome[U]{Kind: o.Kind, Status: o.Status, Message: o.Message}
}

// maxMessageLen bounds diagnostic messages so a pathological transport
// error cannot flood the display.
const maxMessageLen = 200

// TruncateMessage caps a diagnostic message at a display-safe length.
func TruncateMessage(msg string) string {
	runes := []rune(msg)
	if len(runes) <= maxMessageLen {
		return msg
	}
	return string(runes[:maxMessageLen-1]) + "…"
}

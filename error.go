package bale

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Kind partitions the errors produced by this client into a closed set of
// categories. The zero value is the generic API error.
type Kind uint8

const (
	// KindAPI is an API rejection which matched no specific category.
	KindAPI Kind = iota
	// KindInvalidToken means the bot token was rejected.
	KindInvalidToken
	// KindNotFound means the requested chat, user or message does not exist.
	KindNotFound
	// KindForbidden means the bot lacks the rights for the operation.
	KindForbidden
	// KindBadRequest means the request was malformed.
	KindBadRequest
	// KindRateLimited means the platform asked to slow down.
	KindRateLimited
	// KindNetwork is a connection-level failure before any response arrived.
	KindNetwork
	// KindTimeout means the request did not complete in time.
	KindTimeout
	// KindHTTP is a non-2xx response which did not carry an API envelope.
	KindHTTP
)

func (k Kind) String() string {
	switch k {
	case KindAPI:
		return "api"
	case KindInvalidToken:
		return "invalid_token"
	case KindNotFound:
		return "not_found"
	case KindForbidden:
		return "forbidden"
	case KindBadRequest:
		return "bad_request"
	case KindRateLimited:
		return "rate_limited"
	case KindNetwork:
		return "network"
	case KindTimeout:
		return "timeout"
	case KindHTTP:
		return "http"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Error is a classified failure of an API call.
type Error struct {
	Kind        Kind
	ErrorCode   int
	Description string

	// RetryAfter is the cooldown suggested by the platform. Zero unless
	// Kind is KindRateLimited and the response carried retry_after.
	RetryAfter time.Duration
}

func (e Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	if e.ErrorCode != 0 {
		fmt.Fprintf(&b, " %d", e.ErrorCode)
	}
	if e.Description != "" {
		b.WriteString(" (")
		b.WriteString(e.Description)
		b.WriteString(")")
	}
	if e.RetryAfter > 0 {
		fmt.Fprintf(&b, " [retry after %s]", e.RetryAfter)
	}
	return b.String()
}

// Description values known to be produced by the platform.
const (
	descriptionTokenNotFound    = "token not found"
	descriptionNoSuchGroupUser  = "no such group or user"
	descriptionBotLimitExceed   = "bot limit exceed"
	descriptionLocalRateLimited = "local_rate_limited"
	descriptionPermissionDenied = "permission_denied"
	prefixForbidden             = "Forbidden:"
	prefixBadRequest            = "Bad Request:"
)

// classifications map response descriptions to error kinds.
// Order matters: the first matching rule wins.
var classifications = []struct {
	kind    Kind
	matches func(description string) bool
}{
	{KindInvalidToken, func(d string) bool {
		return strings.Contains(strings.ToLower(d), descriptionTokenNotFound)
	}},
	{KindNotFound, func(d string) bool {
		return strings.Contains(d, descriptionNoSuchGroupUser)
	}},
	{KindRateLimited, func(d string) bool {
		return d == descriptionBotLimitExceed || d == descriptionLocalRateLimited
	}},
	{KindForbidden, func(d string) bool {
		return strings.HasPrefix(d, prefixForbidden) || d == descriptionPermissionDenied
	}},
	{KindBadRequest, func(d string) bool {
		return strings.HasPrefix(d, prefixBadRequest)
	}},
}

// ClassifyDescription maps a response description to an error kind using
// the description alone.
func ClassifyDescription(description string) Kind {
	for _, c := range classifications {
		if c.matches(description) {
			return c.kind
		}
	}
	return KindAPI
}

// classify builds an Error from a decoded error envelope. The HTTP status
// code takes precedence over the description rules, which in turn apply in
// a fixed order so that overlapping descriptions classify deterministically.
func classify(errorCode int, description string, retryAfter time.Duration) Error {
	err := Error{
		ErrorCode:   errorCode,
		Description: description,
		RetryAfter:  retryAfter,
	}

	switch errorCode {
	case http.StatusNotFound:
		err.Kind = KindNotFound
		return err
	case http.StatusForbidden:
		err.Kind = KindForbidden
		return err
	case http.StatusTooManyRequests:
		err.Kind = KindRateLimited
		return err
	}

	if retryAfter > 0 {
		err.Kind = KindRateLimited
		return err
	}

	err.Kind = ClassifyDescription(description)
	return err
}

// Package ratelimit detects overload and rate-limit signals in provider
// error messages and provides the context-aware backoff wait.
package ratelimit

import "strings"

// Signal is the kind of throttling a provider message reports.
type Signal int

const (
	// None means the message carries no throttling signal.
	None Signal = iota
	// Overloaded means the provider reported it is overloaded.
	Overloaded
	// RateLimited means the caller hit a provider rate limit.
	RateLimited
)

// Phrases matched case-insensitively against provider messages.
const (
	OverloadedPhrase  = "overloaded"
	RateLimitedPhrase = "rate limit"
)

// String returns a short name for the signal.
func (s Signal) String() string {
	switch s {
	case Overloaded:
		return "overloaded"
	case RateLimited:
		return "rate_limited"
	default:
		return "none"
	}
}

// Detect reports which throttling signal, if any, the message contains.
// Matching is a case-insensitive substring search; an overload phrase wins
// when both are present.
func Detect(message string) Signal {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, OverloadedPhrase):
		return Overloaded
	case strings.Contains(lower, RateLimitedPhrase):
		return RateLimited
	default:
		return None
	}
}

// IsThrottled returns true when message reports overload or rate limiting.
func IsThrottled(message string) bool {
	return Detect(message) != None
}

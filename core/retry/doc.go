// Package retry implements the HTTP delivery used by every outbound call.
//
// A Client sends a request and, on any transport error or non-2xx status, logs
// the error body, waits a fixed delay and tries again until the attempt budget
// (20 by default) is spent. There is no exponential backoff, no jitter and no
// distinction between retryable and permanent HTTP failures. The loop itself is
// driven by cenkalti/backoff with a constant policy.
//
// Exhaustion is reported as a nil *Response together with an error wrapping
// ErrExhausted; callers treat that as "the operation did not happen".
//
// SendOnce performs a single attempt and is used where the sync deliberately
// does not retry (achievement lookups, storefront scraping).
package retry

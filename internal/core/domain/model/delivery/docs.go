// Package delivery contains the Delivery aggregate root and its Status state
// machine. It is the core of the lifecycle engine: the transition table
// enumerates every legal (current, target) status pair together with its
// timeline side effect, and the aggregate enforces ownership and the
// destination-change rules.
//
// Ordering of checks matters for information disclosure: use cases consult
// IsOwnedBy before any transition legality question, so an unauthorized
// caller always sees "forbidden" and can never probe which transitions a
// foreign delivery would accept.
package delivery

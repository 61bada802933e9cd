// Package client owns the session/protocol state machine: it sequences the
// handshake, game creation or join, initial state fetch and live event
// subscription, keeps the authoritative local mirror of the game state, and
// discards stale events by their monotonic counter.
//
// Exactly one goroutine, the run loop, ever touches the session state; the
// presentation surface talks back through the intent channel only.
package client

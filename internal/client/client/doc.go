// Package client is the transport side of the sync API.
//
// # Overview
//
//  1. A transport-agnostic contract (see the Client interface): Fetch and
//     FetchSince issue read queries, Apply issues a write query carrying a
//     batch of commands.
//  2. A concrete HTTP implementation (see HTTPClient) that sends the query
//     built by package query to a single endpoint, applies a bounded timeout
//     and decodes the body into a models.Envelope.
//
// # Error Handling
//
// Every failure is one of two kinds, matched with errors.Is or errors.As:
//
//   - ErrTransport / *TransportError: the request never produced a response
//     (dial failure, timeout, broken body, open circuit breaker). The server
//     state is unknown, so the identical request, with the same command
//     uuids, is safe to resend.
//   - ErrMalformedResponse / *MalformedResponseError: the server replied, but
//     not with a valid envelope (non-2xx status, invalid JSON, missing
//     full_sync / temp_id_mapping / sync_token, undecodable records). Inspect
//     before retrying; it may indicate a protocol mismatch. 401/403 replies
//     also match ErrUnauthorized.
//
// The package never retries, logs errors or swallows them.
//
// # Concurrency
//
// One call is one HTTP round trip. An HTTPClient keeps no per-request state
// and may be reused for sequential requests; queries and command batches are
// request scoped.
package client

// Package qrz implements the client for the QRZ-style XML callsign
// lookup service.
//
// The client is a small session state machine:
//
//	Unauthenticated ──login──▶ Authenticating ──▶ Authenticated
//	                                  │
//	                                  └──▶ Failed (remote rejected login)
//
// Login exchanges the credentials for a session key via HTTP GET;
// FetchCallsign issues an authenticated single-callsign lookup,
// transparently logging in first when no session is held (at most one
// implicit login per call, no retry loop). A remote error on a lookup
// surfaces as a LOOKUP_FAILED error and leaves the session state alone;
// recovering from a stale session is the caller's decision.
//
// The response is a flat XML document. Element lookup ignores the
// document namespace because the remote's namespace is not guaranteed
// stable across calls.
package qrz

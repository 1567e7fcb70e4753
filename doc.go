// Package shelf is a Go client for the Shelf API v2.
//
// Generated namespace packages (files, users, common) hold the API's data
// types and route functions; this package holds what they share: the
// Transport capability that carries one request to the service, a default
// HTTP implementation of it, the route invocation helpers, and the client
// error taxonomy.
//
// Route functions take the Transport as an explicit argument, so any
// implementation can be injected: the default client, a test double, or a
// wrapper adding retries or instrumentation. The codec layer underneath
// (packages wire and codec) is pure and safe for concurrent use; all I/O,
// timeouts and cancellation live in the Transport.
package shelf

// Package client is the CLI's view of the GophAuth HTTP API.
//
// Client is the API contract: Ping, Register, Login and Profile. HTTPClient
// implements it over net/http with JSON bodies and bearer tokens.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable and 401 answers wrap
// ErrUnauthorized; match them with errors.Is. Any other non-2xx answer is an
// *APIError carrying the status code and the server's message.
package client

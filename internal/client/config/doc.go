// Package config loads runtime configuration for the GophAuth CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. GOPHAUTH_SERVER_URL and GOPHAUTH_REQUEST_TIMEOUT.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string       base URL of the server API
//	-timeout int    request timeout (seconds)
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "http://127.0.0.1:8080",
//	  "request_timeout": "5s"
//	}
package config

// Package cli implements the interactive GophAuth command-line client.
//
// Given a command (register, login, profile, ping) the client runs it once
// and exits; "profile" logs in first. Without a command it starts a REPL
// that keeps the access token between commands until logout or exit.
//
// Passwords are read without echo when stdin is a terminal and wiped from
// memory after use.
package cli

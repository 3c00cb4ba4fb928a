// Package cli is the interactive accountdesk client.
//
// Each command is one account page: home, login, register, forgot and
// logout. Forms are validated locally (package forms) before anything is
// sent to the server, and results are shown as success or danger alerts.
// A successful login is persisted through package session, so the next
// start of the client resumes it after the server confirms the token.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli

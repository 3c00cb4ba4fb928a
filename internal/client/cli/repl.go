package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
type execIface interface {
	isLoggedIn() bool
	Home(ctx context.Context) error
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	ForgotPassword(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL reads commands from reader until EOF or exit|quit. The prompt
// carries statusFn's navbar text.
//
//	Not logged in: home, login, register, forgot, help, exit
//	Logged in:     home, logout, help, exit
//
// Handlers report their own failures, so their errors are dropped here.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(strings.TrimSpace("accountdesk "+statusFn()) + " >")
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: home, logout, exit")
			} else {
				printlnFn("Available commands: home, login, register, forgot, exit")
			}

		case "home", "/":
			_ = a.Home(ctx)

		case "login":
			if a.isLoggedIn() {
				printlnFn("Already logged in, use logout first")
				continue
			}
			_ = a.Login(ctx)

		case "register":
			if a.isLoggedIn() {
				printlnFn("Already logged in, use logout first")
				continue
			}
			_ = a.Register(ctx)

		case "forgot", "forgot-password":
			_ = a.ForgotPassword(ctx)

		case "logout":
			if !a.isLoggedIn() {
				printlnFn("Not logged in")
				continue
			}
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

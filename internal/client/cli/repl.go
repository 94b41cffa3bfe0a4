package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isAdmin() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Search(ctx context.Context) error
	Category(ctx context.Context) error
	Open(ctx context.Context) error
	Show(ctx context.Context) error
	New(ctx context.Context) error
	Edit(ctx context.Context) error
	Delete(ctx context.Context) error
	Settings(ctx context.Context) error
	EditSettings(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the storefront CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Browsing commands are always available; mutating commands (new, edit,
// del, editsettings) additionally require an admin credential, which the
// handlers enforce themselves.
//
// Any errors returned by command handlers are ignored here; handlers log
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("catalogo> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			printlnFn("Available commands: (l)ist, search, cat, open, show, settings, login, logout, exit")
			if a.isAdmin() {
				printlnFn("Admin commands: new, edit, del, editsettings")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "search":
			_ = a.Search(ctx)

		case "cat":
			_ = a.Category(ctx)

		case "open":
			_ = a.Open(ctx)

		case "show":
			_ = a.Show(ctx)

		case "new":
			_ = a.New(ctx)

		case "edit":
			_ = a.Edit(ctx)

		case "del":
			_ = a.Delete(ctx)

		case "settings":
			_ = a.Settings(ctx)

		case "editsettings":
			_ = a.EditSettings(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

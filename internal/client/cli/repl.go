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
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Refresh(ctx context.Context) error
	Logout(ctx context.Context) error
	UploadFace(ctx context.Context) error
	Artists(ctx context.Context) error
	Publications(ctx context.Context) error
	AddPublication(ctx context.Context) error
	Comments(ctx context.Context) error
	CommentSummary(ctx context.Context) error
	Reports(ctx context.Context) error
	AddReport(ctx context.Context) error
	Complaints(ctx context.Context) error
	AddComplaint(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the Artfolio CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate (password, then face if required)
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - whoami         — show the current profile
//	  - refresh        — re-fetch the profile
//	  - uploadface     — enroll a face image
//	  - artists        — list platform users
//	  - pubs           — list publications
//	  - addpub         — create a publication
//	  - comments       — list comments of a publication
//	  - summary        — show the comment digest of a publication
//	  - reports        — list reports
//	  - addreport      — create a report and wait for its result
//	  - complaints     — list complaints
//	  - addcomplaint   — file a complaint
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("artfolio %s > ", statusFn()))
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
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, refresh, uploadface, artists, pubs, addpub, comments, summary, reports, addreport, complaints, addcomplaint, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "uploadface":
			_ = a.UploadFace(ctx)

		case "artists":
			_ = a.Artists(ctx)

		case "pubs", "publications":
			_ = a.Publications(ctx)

		case "addpub":
			_ = a.AddPublication(ctx)

		case "comments":
			_ = a.Comments(ctx)

		case "summary":
			_ = a.CommentSummary(ctx)

		case "reports":
			_ = a.Reports(ctx)

		case "addreport":
			_ = a.AddReport(ctx)

		case "complaints":
			_ = a.Complaints(ctx)

		case "addcomplaint":
			_ = a.AddComplaint(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

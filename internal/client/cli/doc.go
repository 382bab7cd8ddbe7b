// Package cli provides the interactive Artfolio command-line client.
//
// It wires configuration, the persistent session store, the API client and
// an interactive REPL. Typical flow: restore the persisted session, show the
// prompt, and execute user commands.
//
// Key features:
//   - Register / Login / Logout (password flow with an optional face step)
//   - Face enrollment for two-step login
//   - Browse publications, comments and their generated summaries
//   - Create reports and wait for the generated result
//   - File and browse complaints
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli

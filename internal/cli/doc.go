// Package cli parses command-line arguments and environment defaults into an
// app.Config, and maps run errors to process exit codes.
package cli

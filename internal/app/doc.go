// Package app wires the maze loader, search engine, renderers and reports
// into one command-line run.
package app

// Package tui is an interactive terminal viewer that advances a maze search
// one frontier removal at a time.
//
// Keys:
//
//	n, space   take one step
//	r          toggle autoplay
//	enter      run to the end
//	q, ctrl+c  quit
package tui

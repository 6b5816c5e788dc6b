// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, the note synchronizer, and the background
// refresh job into a single process lifecycle.
package client

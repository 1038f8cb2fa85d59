// Package tui provides the Bubble Tea front end: the board renderer, the game,
// menu and results screens, and the SSH server that serves them.
package tui

// Package ui holds the contracts shared by every rendering target.
package ui

// Renderable is anything that can draw itself for the terminal.
type Renderable interface {
	View() string
}

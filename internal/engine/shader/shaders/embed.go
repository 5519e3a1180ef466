// Package shaders provides embedded GLSL shader sources.
package shaders

import (
	"embed"
)

// FS holds every built-in shader, named <program>.vert and <program>.frag.
//
//go:embed *.vert *.frag
var FS embed.FS

// Program names.
const (
	Planet     = "planet"
	Orbit      = "orbit"
	Background = "background"
	Text       = "text"
)

// Names lists every built-in program.
var Names = []string{Planet, Orbit, Background, Text}

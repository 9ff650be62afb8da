// Package meme statically extracts meme metadata from Lua declaration files.
// Declarations are parsed, never executed.
package meme

import "time"

// Info holds the metadata declared by a module's registration call.
// Pointer fields are nil when the declaration omits them.
type Info struct {
	Keywords     []string
	MinImages    *int
	MinTexts     *int
	DefaultTexts []string
	DateCreated  *time.Time
}

// Module is a meme module identified by its directory name.
type Module struct {
	Name string
	Info Info
}

// Package internal contains the graphical shell's infrastructure: SDL
// setup, window and fonts, input mapping, texture caching and logging.
// Types and functions in this package are not part of the public API.
package internal

// Package app wires the contactplot pipeline for the CLI.
//
// It builds the loader, renderer and artifact store from Config, exposing
// them via the Wire struct, and runs the single forward pass
// load → filter → annotate → aggregate → render → save.
package app

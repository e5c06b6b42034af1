// Package app wires settings, logging, the game session and the text
// renderer into one command-line run.
package app

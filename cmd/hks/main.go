// Package main provides the entry point for the HKS CLI.
//
// HKS serves the HACK SOLANA site: the marketing page, the simulated token
// risk scanner and the contact form. The same binary runs the simulator
// from the terminal.
//
// Usage:
//
//	hks serve
//	hks scan <address>...
//
// See --help for all available options.
package main

func main() {
	Execute()
}

// Package app wires application dependencies for the CLI and the daemon.
//
// It reads Config from the environment, then builds the concrete stores,
// relay client and sum service, exposing them via the Wire struct for
// commands to use. NewServer does the same for bigsumd.
package app

// Package commands defines the bigsum CLI and wires dependencies for subcommands.
//
// Commands
//
//   - add <a> <b>     Print the exact sum of two decimal numerals
//   - history         Print recent computations
//   - history clear   Forget all recorded computations
//
// # Implementation
//
// The root command loads Config from the environment, applies flag overrides
// and builds the dependency graph (history store, sum service, optional relay
// client) before any subcommand runs. Results go to stdout; logs go to stderr.
package commands

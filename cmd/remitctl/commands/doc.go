// Package commands defines the remitctl CLI, an operator tool over the
// corridor registry, the quote engine and the validation rules.
//
// Commands
//
//   - corridors   List the corridor registry
//   - rates       Print destination rates from a source currency
//   - quote       Compute a transfer quote
//   - validate    Check a single value against a validation rule
//
// The root command loads the registry (built-in or --corridors file) before
// any subcommand runs so every command shares the same quote service.
package commands

// Package argv is a command-line argument parser built around descriptor
// objects. A Parser owns a set of registered arguments (switches, key/value
// options, positionals, help and version triggers) plus constraints over
// them, and runs passes over token lists.
//
// Registration mistakes (duplicate keys, bad patterns, impossible
// cardinalities) are programmer errors and panic with a *SetupError, the way
// regexp.MustCompile treats bad patterns. Parse-time problems never interrupt
// a pass: they accumulate as error flags on the parser and its arguments,
// queryable afterwards.
//
// A minimal parser:
//
//	p := argv.NewParser("copy", "copies files")
//	p.AddHelpArgument("-h", "--help")
//	verbose := p.AddKeyArgument("-v", "--verbose").SetDescription("verbose output")
//	var count int
//	argv.Bind(p.AddKeyValueArgument("-c", "--count"), &count)
//	p.AddPositionalArgument("source")
//	p.ParseOSArgs()
//
//	if verbose.WasFound() {
//		// ...
//	}
//	src, _ := argv.FrontAs[string](p, "source")
//
// Values are validated at acceptance time against per-position regexes and
// casters; typed access afterwards goes through the generic helpers
// (FrontAs, AtAs, AllAs and their Or/Try variants) or through bound holders.
package argv

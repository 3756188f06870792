package argv

// ArgFlag configures the behavior of a single registered argument. Flags are
// combinable; every descriptor kind ships with a default set.
type ArgFlag uint32

const (
	// Mandatory requires the argument to appear in every parse pass.
	Mandatory ArgFlag = 1 << iota
	// UniqueInstance rejects a second occurrence of the argument.
	UniqueInstance
	// ValuesWithPrefix lets the argument consume values that carry a
	// configured key prefix (e.g. negative numbers with a "-" prefix).
	ValuesWithPrefix
	// KeysAsValues lets the argument consume tokens that are registered keys.
	KeysAsValues
	// Grouping allows a single-character short key to be chained with other
	// grouping keys in one token ("-abc").
	Grouping
	// AssignmentOperator enables "key=value" tokens for the argument.
	AssignmentOperator
	// Hidden keeps the argument out of help menu output.
	Hidden
)

// Default flag sets applied at registration.
const (
	DefaultKeyArgFlags        = UniqueInstance | Grouping
	DefaultKeyValueArgFlags   = UniqueInstance | AssignmentOperator
	DefaultPositionalArgFlags = Mandatory
	DefaultHelpArgFlags       = UniqueInstance
	DefaultVersionArgFlags    = UniqueInstance
)

// ArgError is a per-argument parse-state error. Errors accumulate in a set;
// they never interrupt parsing.
type ArgError uint32

const (
	// ErrArgRequired is set on mandatory arguments absent after a pass.
	ErrArgRequired ArgError = 1 << iota
	// ErrArgRepeated is set when a UniqueInstance argument is found twice.
	ErrArgRepeated
	// ErrArgMinValues is set when a found argument holds fewer values than
	// its minimum cardinality.
	ErrArgMinValues
	// ErrArgMaxValues is set when values beyond the maximum cardinality were
	// offered; the excess is trimmed from the back.
	ErrArgMaxValues
	// ErrArgValues is set when at least one stored value failed validation.
	ErrArgValues
)

// ValueError is a per-value validation error.
type ValueError uint32

const (
	// ErrValueRegex is set when the raw text does not match the bound regex.
	ErrValueRegex ValueError = 1 << iota
	// ErrValueCast is set when the bound caster rejected the text.
	ErrValueCast
	// ErrValuePath is additionally set when the cast failure was a
	// filesystem path error.
	ErrValuePath
)

// ParserFlag configures parser-level behavior.
type ParserFlag uint32

const (
	// AutoPrintErrors prints the aggregated error report after a pass that
	// ended with errors.
	AutoPrintErrors ParserFlag = 1 << iota
	// HelpOnError prints the default help menu after the error report.
	HelpOnError
	// ExitOnError terminates the process with the usage-error status after a
	// pass that ended with errors.
	ExitOnError
	// ExitOnHelp terminates the process with the success status after the
	// help argument triggered.
	ExitOnHelp
	// ExitOnVersion terminates the process with the success status after the
	// version argument triggered.
	ExitOnVersion
	// ColoredOutput enables colorized help and error rendering.
	ColoredOutput
	// Suggestions attaches "did you mean" hints to unrecognized tokens.
	Suggestions
)

// DefaultParserFlags is the flag set installed by NewParser.
const DefaultParserFlags = ExitOnHelp | ExitOnVersion | ColoredOutput | Suggestions

// ParserError is an aggregated parser-level error flag.
type ParserError uint32

const (
	// ErrParserArgs is set when any registered argument reports errors.
	ErrParserArgs ParserError = 1 << iota
	// ErrParserUnrecognized is set when unrecognized tokens were seen.
	ErrParserUnrecognized
	// ErrParserConstraints is set when any constraint is violated.
	ErrParserConstraints
)

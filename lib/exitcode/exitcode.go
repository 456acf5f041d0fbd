// Package exitcode exports the exit status numbers of the bases command.
package exitcode

const (
	// Success is returned when the command finished without error.
	Success = iota
	// UsageError is returned when there was a syntax or usage error in the arguments.
	UsageError
	// CodecError is returned when input could not be encoded or decoded.
	CodecError
	// UncategorizedError is returned for any error not categorised otherwise.
	UncategorizedError
)

package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"

	// Domain codes
	CodeInvalidDiceNotation Code = "INVALID_DICE_NOTATION"
	CodeUnknownSkill        Code = "UNKNOWN_SKILL"
	CodeProfileLoad         Code = "PROFILE_LOAD"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// ExitCode returns the process exit status the CLI reports for the code
func (c Code) ExitCode() int {
	switch c {
	case CodeOK:
		return 0
	case CodeInvalidArgument, CodeInvalidDiceNotation, CodeUnknownSkill:
		return 2
	case CodeNotFound:
		return 3
	case CodeFailedPrecondition:
		return 4
	case CodeProfileLoad, CodeUnavailable:
		return 5
	case CodeInternal:
		return 1
	default:
		return 1
	}
}

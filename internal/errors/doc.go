// Package errors provides the structured error type shared by every layer of
// the dice companion.
//
// Errors carry a Code, a user-facing message, an optional cause and metadata.
// Wrapping preserves the code of the innermost *Error so callers can classify
// failures without string matching.
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("profile not found")
//	err := errors.InvalidDiceNotationf("invalid dice notation: %q", s)
//
// Adding metadata:
//
//	err := errors.UnknownSkillf("unknown skill: %s", name).
//	    WithMeta("skill", name)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to get profile")
//	}
//
// # Error Checking
//
//	if errors.IsInvalidDiceNotation(err) {
//	    // weapon data is corrupt
//	}
//
//	os.Exit(errors.GetCode(err).ExitCode())
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", profile.Name, vb)
//	errors.ValidateMin("level", profile.Level, 1, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return NotFound for missing profiles
//   - Wrap storage failures with context
//
// Orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Return FailedPrecondition when no character is active
//   - Wrap repository failures with ProfileLoad
//
// CLI layer:
//   - Print the message and exit with Code.ExitCode()
//
// # Error Codes
//
//   - InvalidArgument: Invalid input provided
//   - NotFound: Profile not found
//   - FailedPrecondition: Operation requirements not met
//   - Internal: Unexpected failure
//   - Unavailable: Backing store unreachable
//   - InvalidDiceNotation: Malformed "<count>d<sides>" string
//   - UnknownSkill: Name outside the 18-skill table
//   - ProfileLoad: Profile store failure while activating a character
package errors

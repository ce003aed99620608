// Package profile provides storage for character profiles
package profile

import (
	"context"
	"strings"
	"unicode"

	"github.com/KirkDiggler/dice-companion/internal/calculators"
	"github.com/KirkDiggler/dice-companion/internal/entities/dnd5e"
	"github.com/KirkDiggler/dice-companion/internal/errors"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=profilemock github.com/KirkDiggler/dice-companion/internal/repositories/profile Repository

const (
	// Layout of backup timestamps, e.g. 20240504_193000
	backupTimeLayout = "20060102_150405"

	// Error messages
	errProfileNil   = "profile cannot be nil"
	errNameEmpty    = "profile name cannot be empty"
	errNameUnusable = "profile name has no usable characters"
)

// GetInput contains parameters for loading a profile
type GetInput struct {
	Name string
}

// GetOutput contains the loaded profile
type GetOutput struct {
	Profile *dnd5e.Profile
}

// ListInput contains parameters for listing profiles
type ListInput struct{}

// ListOutput contains the stored profile names, sorted
type ListOutput struct {
	Names []string
}

// SaveInput contains the profile to store
type SaveInput struct {
	Profile *dnd5e.Profile
}

// SaveOutput contains the stored profile after normalization
type SaveOutput struct {
	Profile *dnd5e.Profile

	// BackupCreated is true when a previous version was kept
	BackupCreated bool
}

// DeleteInput contains parameters for deleting a profile
type DeleteInput struct {
	Name string
}

// DeleteOutput contains the result of deleting a profile
type DeleteOutput struct{}

// Repository defines the interface for profile storage. Each profile is a
// single record keyed by its name.
type Repository interface {
	// Get loads a profile by name
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns the names of all stored profiles
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Save validates, normalizes and writes a profile, keeping a timestamped
	// backup of any previous version
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete removes a profile
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// SafeName turns a profile name into a storage key. It keeps letters,
// digits, spaces, hyphens and underscores and trims trailing whitespace.
func SafeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	return strings.TrimRightFunc(b.String(), unicode.IsSpace)
}

func keyFor(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", errors.InvalidArgument(errNameEmpty)
	}

	safe := SafeName(name)
	if strings.TrimSpace(safe) == "" {
		return "", errors.InvalidArgumentf("%s: %q", errNameUnusable, name)
	}

	return safe, nil
}

// prepare validates a profile and brings its scores into range
func prepare(p *dnd5e.Profile) (string, error) {
	if p == nil {
		return "", errors.InvalidArgument(errProfileNil)
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", p.Name, vb)
	errors.ValidateMin("level", p.Level, 1, vb)
	for _, a := range p.SavingThrowProficiencies {
		if _, ok := dnd5e.ParseAbility(string(a)); !ok {
			vb.InvalidField("saving_throw_proficiencies", "unknown ability "+string(a))
		}
	}
	for _, s := range p.SkillProficiencies {
		if _, ok := dnd5e.ParseSkill(string(s)); !ok {
			vb.InvalidField("skill_proficiencies", "unknown skill "+string(s))
		}
	}
	if err := vb.Build(); err != nil {
		return "", err
	}

	key, err := keyFor(p.Name)
	if err != nil {
		return "", err
	}

	calculators.NormalizeProfile(p)
	return key, nil
}

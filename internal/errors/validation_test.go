package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dice-companion/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("name", "is required")
	ve.AddFieldError("email", "is invalid")
	ve.AddFieldErrorf("age", "must be at least %d", 18)

	s.Assert().True(ve.HasErrors())
	s.Assert().Contains(ve.Error(), "name: is required")
	s.Assert().Contains(ve.Error(), "email: is invalid")
	s.Assert().Contains(ve.Error(), "age: must be at least 18")

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("name", "is required").
		Fieldf("level", "must be at least %d", 1).
		RequiredField("abilities").
		InvalidField("damage_dice", "not a dice notation")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	err := vb.Build()
	s.Assert().Nil(err)
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "test", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"valid with spaces", "  test  ", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("field", tc.value, vb)
			err := vb.Build()
			if tc.shouldErr {
				s.Assert().NotNil(err)
			} else {
				s.Assert().Nil(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateMin() {
	vb := errors.NewValidationBuilder()
	errors.ValidateMin("level", 0, 1, vb)
	errors.ValidateMin("count", 3, 1, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["level"][0], "must be at least 1")
	s.Assert().NotContains(validationErrors, "count")
}

func (s *ValidationTestSuite) TestErrorListsFieldsInOrder() {
	err := errors.NewValidationBuilder().
		InvalidField("weapons", "no name").
		RequiredField("name").
		Field("level", "must be at least 1").
		Build()

	s.Require().NotNil(err)
	s.Assert().Equal(
		"INVALID_ARGUMENT: validation failed: level: must be at least 1; name: is required; weapons: is invalid: no name",
		err.Error(),
	)
}

func (s *ValidationTestSuite) TestValidateEnum() {
	allowedStores := []string{"file", "redis"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("store", "postgres", allowedStores, vb)
	errors.ValidateEnum("backup_store", "file", allowedStores, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["store"][0], "must be one of: file, redis")
	s.Assert().NotContains(validationErrors, "backup_store")
}

func (s *ValidationTestSuite) TestComplexValidation() {
	// Validating a character profile before it is stored
	type ProfileInput struct {
		Name      string
		Level     int
		Store     string
		Abilities map[string]int
	}

	input := ProfileInput{
		Name:  "",
		Level: 0,
		Store: "sqlite",
		Abilities: map[string]int{
			"STR": 31,
			"DEX": 15,
			"CON": 14,
		},
	}

	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("name", input.Name, vb)
	errors.ValidateMin("level", input.Level, 1, vb)
	errors.ValidateEnum("store", input.Store, []string{"file", "redis"}, vb)
	for ability, score := range input.Abilities {
		if score > 30 {
			vb.Fieldf(ability, "must be at most %d", 30)
		}
	}

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors, "name")
	s.Assert().Contains(validationErrors, "level")
	s.Assert().Contains(validationErrors, "store")
	s.Assert().Contains(validationErrors, "STR")
	s.Assert().NotContains(validationErrors, "DEX")
}

package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/pvm-hub/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("title", "is required")
	ve.AddFieldErrorf("name", "must be no more than %d characters", 100)

	s.True(ve.HasErrors())
	s.Contains(ve.Error(), "title: is required")
	s.Contains(ve.Error(), "name: must be no more than 100 characters")

	err := ve.ToError()
	s.Equal(errors.CodeInvalidArgument, err.Code)
	s.NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationErrorIsSorted() {
	ve := errors.NewValidationError()
	ve.AddFieldError("title", "is required")
	ve.AddFieldError("boss", "is required")
	ve.AddFieldError("content", "is required")

	s.Equal([]string{"boss", "content", "title"}, ve.FieldNames())
	s.Equal("validation failed: boss: is required; content: is required; title: is required", ve.Error())
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("title", "is required").
		RequiredField("boss").
		InvalidField("slot", "not an equip slot")

	err := vb.Build()
	s.Require().NotNil(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	s.Nil(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "Telos melee", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"valid with spaces", "  Vorago  ", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("field", tc.value, vb)
			err := vb.Build()
			if tc.shouldErr {
				s.NotNil(err)
			} else {
				s.Nil(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateMaxLength() {
	vb := errors.NewValidationBuilder()
	errors.ValidateMaxLength("name", "a preset name that is far too long", 20, vb)
	errors.ValidateMaxLength("description", "short", 5, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	validationErrors := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Contains(validationErrors["name"][0], "must be no more than 20 characters")
	s.NotContains(validationErrors, "description")
}

func (s *ValidationTestSuite) TestValidateRange() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("grpc_port", 70000, 1, 65535, vb)
	errors.ValidateRange("max_output_tokens", 1500, 1, 8192, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	validationErrors := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Contains(validationErrors["grpc_port"][0], "must be between 1 and 65535")
	s.NotContains(validationErrors, "max_output_tokens")
}

func (s *ValidationTestSuite) TestValidateEnum() {
	backends := []string{"memory", "redis", "postgres", "sqlite"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("storage.backend", "mongo", backends, vb)
	errors.ValidateEnum("catalog.backend", "redis", backends, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	validationErrors := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Contains(validationErrors["storage.backend"][0], "must be one of: memory, redis, postgres, sqlite")
	s.NotContains(validationErrors, "catalog.backend")
}

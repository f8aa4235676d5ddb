package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/portfoliohub/hub-server/internal/errors"
)

type sampleRequest struct {
	Title  string `json:"title" validate:"required,max=200"`
	Status string `json:"status" validate:"omitempty,oneof=reading completed paused abandoned"`
}

func TestValidatePasses(t *testing.T) {
	v := New()
	assert.NoError(t, v.Validate(sampleRequest{Title: "Dune", Status: "reading"}))
}

func TestValidateMissingRequired(t *testing.T) {
	v := New()
	err := v.Validate(sampleRequest{})
	require.Error(t, err)

	var domainErr *domainerrors.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domainerrors.CodeValidation, domainErr.Code)

	// Field errors keyed by JSON tag, not struct field name.
	details, ok := domainErr.Details.(map[string]string)
	require.True(t, ok)
	assert.Contains(t, details, "title")
}

func TestValidateBadEnum(t *testing.T) {
	v := New()
	err := v.Validate(sampleRequest{Title: "Dune", Status: "someday"})
	require.Error(t, err)

	var domainErr *domainerrors.Error
	require.ErrorAs(t, err, &domainErr)
	details, ok := domainErr.Details.(map[string]string)
	require.True(t, ok)
	assert.Contains(t, details["status"], "must be one of")
}

package serverutils

import (
	"testing"

	"noteverse-be/internal/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Title  string `validate:"required"`
	PdfUrl string `validate:"required,url"`
	Page   int    `validate:"omitempty,min=1"`
}

func TestValidateRequest_Valid(t *testing.T) {
	err := ValidateRequest(sampleRequest{
		Title:  "Linear Algebra",
		PdfUrl: "https://example.com/notes.pdf",
	})
	assert.NoError(t, err)
}

func TestValidateRequest_MissingField(t *testing.T) {
	err := ValidateRequest(sampleRequest{PdfUrl: "https://example.com/notes.pdf"})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Validation))
	assert.Contains(t, err.Error(), "title is required")
}

func TestValidateRequest_CombinesFieldErrors(t *testing.T) {
	err := ValidateRequest(sampleRequest{PdfUrl: "not-a-url"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title is required")
	assert.Contains(t, err.Error(), "pdfurl is url")
}

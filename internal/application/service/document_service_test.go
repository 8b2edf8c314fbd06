package service

import (
	"testing"

	"github.com/mercibizhub/bizhub-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateUnknownForm(t *testing.T) {
	svc := NewDocumentService()

	_, err := svc.Generate(&GenerateInput{Slug: "no-such-form"})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestGenerateValidationFailsBeforeRender(t *testing.T) {
	svc := NewDocumentService()

	// Missing required fields must fail before the template is touched,
	// so no template is needed here.
	_, err := svc.Generate(&GenerateInput{
		Slug:   "change-of-name",
		Values: map[string]string{"wrongName": "john doe"},
	})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 422, appErr.Code)
	assert.NotEmpty(t, appErr.Errors)
}

func TestGenerateMissingTemplate(t *testing.T) {
	svc := NewDocumentService()

	_, err := svc.Generate(&GenerateInput{
		Slug: "change-of-name",
		Values: map[string]string{
			"wrongName": "john doe", "correctName": "jonathan doe",
			"authority": "gtb", "gender": "male", "lga": "ikeja",
			"state": "lagos", "nationality": "nigerian", "religion": "christianity",
		},
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestListForms(t *testing.T) {
	svc := NewDocumentService()
	forms := svc.ListForms()
	assert.NotEmpty(t, forms)
}

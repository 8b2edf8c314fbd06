package service

import (
	"errors"

	"github.com/mercibizhub/bizhub-api/internal/domain/document"
	"github.com/mercibizhub/bizhub-api/pkg/apperror"
	"github.com/mercibizhub/bizhub-api/pkg/docrender"
)

// DocumentService runs the affidavit generation pipeline: look up the
// form variant, validate the submitted values, normalize them, then fill
// the uploaded template's placeholders.
type DocumentService struct{}

// NewDocumentService creates a new document service
func NewDocumentService() *DocumentService {
	return &DocumentService{}
}

// ListForms returns every known document form
func (s *DocumentService) ListForms() []document.FormSpec {
	return document.Registry()
}

// GenerateInput represents the generate document input
type GenerateInput struct {
	Slug           string
	Template       []byte
	Values         map[string]string
	OutputFileName string
}

// GenerateOutput is the rendered document ready for download
type GenerateOutput struct {
	FileName    string
	ContentType string
	Content     []byte
}

// Generate validates and normalizes the form values, then substitutes
// them into the template. A failed render produces no file at all.
func (s *DocumentService) Generate(input *GenerateInput) (*GenerateOutput, error) {
	spec, ok := document.Lookup(input.Slug)
	if !ok {
		return nil, apperror.NewNotFoundError("Document form")
	}

	if errs := spec.Validate(input.Values); len(errs) > 0 {
		return nil, apperror.NewValidationError(errs)
	}

	normalized := spec.Normalize(input.Values)

	content, err := docrender.Render(input.Template, normalized)
	if err != nil {
		switch {
		case errors.Is(err, docrender.ErrNoTemplate):
			return nil, apperror.NewBadRequestError("A template file is required")
		case errors.Is(err, docrender.ErrInvalidTemplate):
			return nil, apperror.NewTemplateError("the uploaded file is not a valid document template")
		default:
			return nil, apperror.NewTemplateError(err.Error())
		}
	}

	fileName := docrender.OutputFileName(input.OutputFileName, spec.OutputName(normalized))

	return &GenerateOutput{
		FileName:    fileName,
		ContentType: docrender.MIMEType,
		Content:     content,
	}, nil
}

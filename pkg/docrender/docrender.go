// Package docrender fills {placeholder} slots in an uploaded .docx
// template with form field values and returns the finished document.
// It is a thin wrapper around the go-docx library.
package docrender

import (
	"bytes"
	"errors"
	"strings"

	docx "github.com/lukasjarosch/go-docx"
)

// MIMEType is the content type of the generated document.
const MIMEType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// Extension is appended to the user supplied output file name.
const Extension = ".docx"

var (
	// ErrNoTemplate is returned when no template file was supplied.
	ErrNoTemplate = errors.New("no template file supplied")
	// ErrInvalidTemplate is returned when the upload is not a readable
	// document archive.
	ErrInvalidTemplate = errors.New("template is not a valid document archive")
)

// Render binds the flat data map into the template's placeholders and
// serializes a new document. Placeholders present in the template but
// missing from data are left intact; the render does not fail on them.
// On any error no partial output is produced.
func Render(template []byte, data map[string]string) ([]byte, error) {
	if len(template) == 0 {
		return nil, ErrNoTemplate
	}

	doc, err := docx.OpenBytes(template)
	if err != nil {
		return nil, ErrInvalidTemplate
	}

	placeholders := make(docx.PlaceholderMap, len(data))
	for key, value := range data {
		placeholders[key] = value
	}

	if err := doc.ReplaceAll(placeholders); err != nil &&
		!errors.Is(err, docx.ErrPlaceholderNotFound) {
		return nil, err
	}

	var out bytes.Buffer
	if err := doc.Write(&out); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// OutputFileName resolves the download name for a generated document. An
// empty user value falls back to the per-document-type default, path
// separators are stripped, and the docx extension is appended.
func OutputFileName(name, fallback string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = fallback
	}
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':':
			return '-'
		}
		return r
	}, name)
	return name + Extension
}

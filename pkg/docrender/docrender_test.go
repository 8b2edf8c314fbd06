package docrender

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const documentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>I, {wrongName}, of {lga} wish to be known as {correctName}. Gender: {gender}.</w:t></w:r></w:p>
</w:body>
</w:document>`

func buildTemplate(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	files := map[string]string{
		"[Content_Types].xml": contentTypesXML,
		"_rels/.rels":         relsXML,
		"word/document.xml":   documentXML,
	}
	for name, body := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	return buf.Bytes()
}

func extractDocumentXML(t *testing.T, doc []byte) string {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(doc), int64(len(doc)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		body, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(body)
	}
	t.Fatal("word/document.xml missing from rendered output")
	return ""
}

func TestRenderSubstitutesPlaceholders(t *testing.T) {
	out, err := Render(buildTemplate(t), map[string]string{
		"wrongName":   "JOHN DOE",
		"correctName": "JONATHAN DOE",
		"gender":      "Male",
		"lga":         "Jos South",
	})
	require.NoError(t, err)

	body := extractDocumentXML(t, out)
	assert.Contains(t, body, "JOHN DOE")
	assert.Contains(t, body, "JONATHAN DOE")
	assert.Contains(t, body, "Male")
	assert.Contains(t, body, "Jos South")
	assert.NotContains(t, body, "{wrongName}")
	assert.NotContains(t, body, "{correctName}")
}

func TestRenderLeavesUnresolvedPlaceholders(t *testing.T) {
	out, err := Render(buildTemplate(t), map[string]string{
		"wrongName": "JOHN DOE",
	})
	require.NoError(t, err)

	body := extractDocumentXML(t, out)
	assert.Contains(t, body, "JOHN DOE")
	// Placeholders without data stay in place rather than failing the render.
	assert.Contains(t, body, "{correctName}")
}

func TestRenderNoTemplate(t *testing.T) {
	_, err := Render(nil, map[string]string{"a": "b"})
	assert.ErrorIs(t, err, ErrNoTemplate)
}

func TestRenderInvalidArchive(t *testing.T) {
	_, err := Render([]byte("definitely not a zip archive"), nil)
	assert.ErrorIs(t, err, ErrInvalidTemplate)
}

func TestOutputFileName(t *testing.T) {
	assert.Equal(t, "Affidavit.docx", OutputFileName("", "Affidavit"))
	assert.Equal(t, "Affidavit.docx", OutputFileName("  ", "Affidavit"))
	assert.Equal(t, "My Affidavit.docx", OutputFileName("My Affidavit", "Affidavit"))
	assert.False(t, strings.ContainsAny(OutputFileName("a/b\\c:d", "x"), "/\\:"))
}

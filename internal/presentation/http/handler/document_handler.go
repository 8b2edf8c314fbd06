package handler

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/mercibizhub/bizhub-api/internal/application/service"
	"github.com/mercibizhub/bizhub-api/internal/presentation/http/dto/response"
)

// DocumentHandler handles document generation HTTP requests
type DocumentHandler struct {
	documentService *service.DocumentService
	maxTemplateSize int64
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentService *service.DocumentService, maxTemplateSize int64) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
		maxTemplateSize: maxTemplateSize,
	}
}

// ListForms returns every known document form and its fields
func (h *DocumentHandler) ListForms(c *gin.Context) {
	forms := h.documentService.ListForms()

	payload := make([]gin.H, 0, len(forms))
	for i := range forms {
		payload = append(payload, gin.H{
			"slug":   forms[i].Slug,
			"title":  forms[i].Title,
			"fields": forms[i].FieldNames(),
		})
	}

	response.OK(c, "Document forms retrieved successfully", payload)
}

// Generate fills an uploaded template with the submitted form values and
// streams the result back as a download. The request is multipart: a
// "template" file part plus one value part per form field.
func (h *DocumentHandler) Generate(c *gin.Context) {
	fileHeader, err := c.FormFile("template")
	if err != nil {
		response.BadRequest(c, "A template file is required")
		return
	}
	if fileHeader.Size > h.maxTemplateSize {
		response.BadRequest(c, "Template file is too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "Could not read the template file")
		return
	}
	defer file.Close()

	template, err := io.ReadAll(io.LimitReader(file, h.maxTemplateSize))
	if err != nil {
		response.BadRequest(c, "Could not read the template file")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		response.BadRequest(c, "Invalid multipart form")
		return
	}

	values := make(map[string]string, len(form.Value))
	for key, vals := range form.Value {
		if len(vals) > 0 {
			values[key] = vals[0]
		}
	}

	out, err := h.documentService.Generate(&service.GenerateInput{
		Slug:           c.Param("slug"),
		Template:       template,
		Values:         values,
		OutputFileName: values["outputFileName"],
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+out.FileName+`"`)
	c.Data(200, out.ContentType, out.Content)
}

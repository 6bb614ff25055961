package importer

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Operator uploads a catalog CSV
// --------------------------------------------------
func (h *Handler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("csv_file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "csv_file is required"})
		return
	}
	defer file.Close()

	if err := ValidateFileExtension(header.Filename); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	generateImages := c.PostForm("generate_images") == "true"

	report, err := h.service.Run(c.Request.Context(), file, generateImages)
	if err != nil {
		// Batch rejected: nothing was written
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}

// --------------------------------------------------
// Downloadable CSV template with one sample row
// --------------------------------------------------
func (h *Handler) Template(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="catalog_import_template.csv"`)
	c.Data(http.StatusOK, "text/csv", TemplateCSV())
}

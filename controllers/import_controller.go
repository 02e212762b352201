package controllers

import (
	"errors"
	"io"
	"strings"

	"mobile-order/services/importer"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ImportController struct {
	DB *gorm.DB
}

func NewImportController(DB *gorm.DB) *ImportController {
	return &ImportController{DB: DB}
}

// ImportMenu accepts a CSV upload (multipart "file" field or raw body) and
// runs the batch importer. Spreadsheet files (.xlsx, .xls) take the excelize
// path into the same pipeline. Always 200 with per-row detail once the
// payload itself is acceptable, 400 otherwise.
func (c *ImportController) ImportMenu(ctx *fiber.Ctx) error {
	imp := importer.NewImporter(importer.NewGormStore(c.DB))

	contentType := ctx.Get("Content-Type")
	if strings.Contains(contentType, "multipart/form-data") {
		file, err := ctx.FormFile("file")
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No file provided"})
		}

		if file.Size > importer.MaxPayloadBytes {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "File too large (max 5MB)"})
		}

		fileContent, err := file.Open()
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to open file"})
		}
		defer fileContent.Close()

		name := strings.ToLower(file.Filename)
		if strings.HasSuffix(name, ".xlsx") || strings.HasSuffix(name, ".xls") {
			records, err := importer.ParseWorkbook(fileContent)
			if err != nil {
				return structuralResponse(ctx, err)
			}
			return ctx.Status(fiber.StatusOK).JSON(imp.ImportRecords(records))
		}

		raw, err := io.ReadAll(fileContent)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to read file"})
		}

		result, err := imp.ImportCSV(string(raw))
		if err != nil {
			return structuralResponse(ctx, err)
		}
		return ctx.Status(fiber.StatusOK).JSON(result)
	}

	result, err := imp.ImportCSV(string(ctx.Body()))
	if err != nil {
		return structuralResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(result)
}

func structuralResponse(ctx *fiber.Ctx, err error) error {
	var structural *importer.StructuralError
	if errors.As(err, &structural) {
		body := fiber.Map{"error": structural.Message}
		if len(structural.Details) > 0 {
			body["details"] = structural.Details
		}
		return ctx.Status(fiber.StatusBadRequest).JSON(body)
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

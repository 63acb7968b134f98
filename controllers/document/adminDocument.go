package controllers

import (
	"time"

	"formadmin/database"
	"formadmin/middleware"
	"formadmin/models"
	"formadmin/utils"
	documentValidator "formadmin/validators/document"

	"github.com/gofiber/fiber/v2"
)

func parseDocumentDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil
	}
	return &t
}

// AdminCreateDocument registers a new legal document
func AdminCreateDocument(c *fiber.Ctx) error {
	userId, _ := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedDocument").(*documentValidator.DocumentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var existing models.LegalDocument
	if err := database.Database.Db.Where("reference = ? AND is_deleted = ?", reqData.Reference, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "A document with this reference already exists!", nil)
	}

	document := models.LegalDocument{
		Title:       reqData.Title,
		Reference:   reqData.Reference,
		Category:    reqData.Category,
		DocumentURL: reqData.DocumentURL,
		ValidFrom:   parseDocumentDate(reqData.ValidFrom),
		ValidUntil:  parseDocumentDate(reqData.ValidUntil),
	}

	if err := database.Database.Db.Create(&document).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create document!", nil)
	}

	utils.RecordAudit(utils.NewRequestContext(c, userId), "DOCUMENT_CREATE", "legal_document", document.ID, document.Reference)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Document created successfully!", document)
}

// AdminUpdateDocument updates an existing legal document
func AdminUpdateDocument(c *fiber.Ctx) error {
	userId, _ := c.Locals("userId").(uint)
	documentID := c.Locals("documentID").(int)

	var document models.LegalDocument
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", documentID, false).First(&document).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Document not found!", nil)
	}

	reqData, ok := c.Locals("validatedDocument").(*documentValidator.DocumentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Reference != document.Reference {
		var existing models.LegalDocument
		if err := database.Database.Db.Where("reference = ? AND is_deleted = ?", reqData.Reference, false).First(&existing).Error; err == nil {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "A document with this reference already exists!", nil)
		}
	}

	document.Title = reqData.Title
	document.Reference = reqData.Reference
	document.Category = reqData.Category
	document.DocumentURL = reqData.DocumentURL
	document.ValidFrom = parseDocumentDate(reqData.ValidFrom)
	document.ValidUntil = parseDocumentDate(reqData.ValidUntil)

	if err := database.Database.Db.Save(&document).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update document!", nil)
	}

	utils.RecordAudit(utils.NewRequestContext(c, userId), "DOCUMENT_UPDATE", "legal_document", document.ID, document.Reference)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Document updated successfully!", document)
}

// AdminDeleteDocument soft deletes a legal document
func AdminDeleteDocument(c *fiber.Ctx) error {
	userId, _ := c.Locals("userId").(uint)
	documentID := c.Locals("documentID").(int)

	var document models.LegalDocument
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", documentID, false).First(&document).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Document not found!", nil)
	}

	document.IsDeleted = true
	if err := database.Database.Db.Save(&document).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete document!", nil)
	}

	utils.RecordAudit(utils.NewRequestContext(c, userId), "DOCUMENT_DELETE", "legal_document", document.ID, document.Reference)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Document deleted successfully!", nil)
}

// AdminGetAllDocuments lists legal documents with pagination and optional category filter
func AdminGetAllDocuments(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.LegalDocument{}).Where("is_deleted = ?", false)

	if category := c.Query("category"); category != "" {
		db = db.Where("category = ?", category)
	}

	// expired=false keeps only documents still in validity
	if c.Query("expired") == "false" {
		db = db.Where("valid_until IS NULL OR valid_until >= ?", time.Now())
	}

	var total int64
	db.Count(&total)

	var documents []models.LegalDocument
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&documents).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch documents!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Documents fetched successfully!", fiber.Map{
		"documents": documents,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// AdminGetDocumentDetails gets a single legal document
func AdminGetDocumentDetails(c *fiber.Ctx) error {
	documentID := c.Locals("documentID").(int)

	var document models.LegalDocument
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", documentID, false).First(&document).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Document not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Document fetched successfully!", document)
}

package controllers

import (
	"formadmin/database"
	"formadmin/middleware"
	catalogModels "formadmin/models/catalog"
	"formadmin/utils"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateFormation creates a new formation. The stored duration starts at
// the optional estimate; from then on only the duration engine writes it.
func AdminCreateFormation(c *fiber.Ctx) error {
	userId, _ := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedFormation").(*struct {
		Title                   string `json:"title"`
		Code                    string `json:"code"`
		Description             string `json:"description"`
		EstimatedDurationMinute int    `json:"estimated_duration_minutes"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	formation := catalogModels.Formation{
		Title:           reqData.Title,
		Code:            reqData.Code,
		Description:     reqData.Description,
		DurationMinutes: reqData.EstimatedDurationMinute,
		IsActive:        true,
	}

	if err := database.Database.Db.Create(&formation).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create formation!", nil)
	}

	utils.RecordAudit(utils.NewRequestContext(c, userId), "FORMATION_CREATE", "formation", formation.ID, formation.Title)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Formation created successfully!", formation)
}

// AdminUpdateFormation updates an existing formation. DurationMinutes is
// deliberately not updatable here.
func AdminUpdateFormation(c *fiber.Ctx) error {
	userId, _ := c.Locals("userId").(uint)
	formationID := c.Locals("formationID").(int)

	var formation catalogModels.Formation
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", formationID, false).First(&formation).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Formation not found!", nil)
	}

	reqData, ok := c.Locals("validatedFormationUpdate").(*struct {
		Title       string `json:"title"`
		Code        string `json:"code"`
		Description string `json:"description"`
		IsActive    *bool  `json:"is_active"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Update only provided fields
	if reqData.Title != "" {
		formation.Title = reqData.Title
	}
	if reqData.Code != "" {
		formation.Code = reqData.Code
	}
	if reqData.Description != "" {
		formation.Description = reqData.Description
	}
	if reqData.IsActive != nil {
		formation.IsActive = *reqData.IsActive
	}

	if err := database.Database.Db.Save(&formation).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update formation!", nil)
	}

	utils.RecordAudit(utils.NewRequestContext(c, userId), "FORMATION_UPDATE", "formation", formation.ID, formation.Title)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Formation updated successfully!", formation)
}

// AdminDeleteFormation soft deletes a formation
func AdminDeleteFormation(c *fiber.Ctx) error {
	userId, _ := c.Locals("userId").(uint)
	formationID := c.Locals("formationID").(int)

	var formation catalogModels.Formation
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", formationID, false).First(&formation).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Formation not found!", nil)
	}

	formation.IsDeleted = true
	if err := database.Database.Db.Save(&formation).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete formation!", nil)
	}

	utils.RecordAudit(utils.NewRequestContext(c, userId), "FORMATION_DELETE", "formation", formation.ID, formation.Title)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Formation deleted successfully!", nil)
}

// AdminGetAllFormations lists all formations with pagination
func AdminGetAllFormations(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAdminList").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})

	page := 1
	limit := 10
	if ok && reqData.Page != nil && *reqData.Page > 0 {
		page = *reqData.Page
	}
	if ok && reqData.Limit != nil && *reqData.Limit > 0 {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	var formations []catalogModels.Formation
	var total int64

	db := database.Database.Db.Model(&catalogModels.Formation{}).Where("is_deleted = ?", false)
	db.Count(&total)

	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&formations).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch formations!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Formations fetched successfully!", fiber.Map{
		"formations": formations,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// AdminGetFormationDetails gets a single formation with its modules and the
// current duration drift
func AdminGetFormationDetails(c *fiber.Ctx) error {
	formationID := c.Locals("formationID").(int)

	var formation catalogModels.Formation
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", formationID, false).First(&formation).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Formation not found!", nil)
	}

	var modules []catalogModels.Module
	database.Database.Db.Where("formation_id = ? AND is_deleted = ?", formationID, false).Order("order_index asc").Find(&modules)

	computed := 0
	for _, m := range modules {
		if m.IsActive {
			computed += m.DurationMinutes
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Formation details fetched successfully!", fiber.Map{
		"formation": formation,
		"modules":   modules,
		"duration": fiber.Map{
			"stored":       formation.DurationMinutes,
			"computed":     computed,
			"needs_update": formation.DurationMinutes != computed,
		},
	})
}

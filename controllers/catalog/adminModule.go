package controllers

import (
	"formadmin/database"
	"formadmin/middleware"
	catalogModels "formadmin/models/catalog"
	"formadmin/utils"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateModule creates a module inside a formation
func AdminCreateModule(c *fiber.Ctx) error {
	userId, _ := c.Locals("userId").(uint)
	formationID := c.Locals("formationID").(int)

	var formation catalogModels.Formation
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", formationID, false).First(&formation).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Formation not found!", nil)
	}

	reqData, ok := c.Locals("validatedModule").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		OrderIndex  int    `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	module := catalogModels.Module{
		FormationID: uint(formationID),
		Title:       reqData.Title,
		Description: reqData.Description,
		OrderIndex:  reqData.OrderIndex,
		IsActive:    true,
	}

	if err := database.Database.Db.Create(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create module!", nil)
	}

	utils.RecordAudit(utils.NewRequestContext(c, userId), "MODULE_CREATE", "module", module.ID, module.Title)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module created successfully!", module)
}

// AdminUpdateModule updates a module (title, description, order, activation)
func AdminUpdateModule(c *fiber.Ctx) error {
	userId, _ := c.Locals("userId").(uint)
	moduleID := c.Locals("moduleID").(int)

	var module catalogModels.Module
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", moduleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	reqData, ok := c.Locals("validatedModuleUpdate").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		OrderIndex  *int   `json:"order_index"`
		IsActive    *bool  `json:"is_active"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		module.Title = reqData.Title
	}
	if reqData.Description != "" {
		module.Description = reqData.Description
	}
	if reqData.OrderIndex != nil {
		module.OrderIndex = *reqData.OrderIndex
	}
	if reqData.IsActive != nil {
		module.IsActive = *reqData.IsActive
	}

	if err := database.Database.Db.Save(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update module!", nil)
	}

	utils.RecordAudit(utils.NewRequestContext(c, userId), "MODULE_UPDATE", "module", module.ID, module.Title)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module updated successfully!", module)
}

// AdminDeleteModule soft deletes a module
func AdminDeleteModule(c *fiber.Ctx) error {
	userId, _ := c.Locals("userId").(uint)
	moduleID := c.Locals("moduleID").(int)

	var module catalogModels.Module
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", moduleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	module.IsDeleted = true
	if err := database.Database.Db.Save(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete module!", nil)
	}

	utils.RecordAudit(utils.NewRequestContext(c, userId), "MODULE_DELETE", "module", module.ID, module.Title)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module deleted successfully!", nil)
}

// AdminListModules lists the modules of a formation
func AdminListModules(c *fiber.Ctx) error {
	formationID := c.Locals("formationID").(int)

	var formation catalogModels.Formation
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", formationID, false).First(&formation).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Formation not found!", nil)
	}

	var modules []catalogModels.Module
	if err := database.Database.Db.Where("formation_id = ? AND is_deleted = ?", formationID, false).
		Order("order_index asc").Find(&modules).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch modules!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules fetched successfully!", fiber.Map{
		"formation": formation,
		"modules":   modules,
	})
}

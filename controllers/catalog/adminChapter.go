package controllers

import (
	"formadmin/database"
	"formadmin/middleware"
	catalogModels "formadmin/models/catalog"
	"formadmin/utils"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateChapter creates a chapter inside a module
func AdminCreateChapter(c *fiber.Ctx) error {
	userId, _ := c.Locals("userId").(uint)
	moduleID := c.Locals("moduleID").(int)

	var module catalogModels.Module
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", moduleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	reqData, ok := c.Locals("validatedChapter").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		OrderIndex  int    `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	chapter := catalogModels.Chapter{
		ModuleID:    uint(moduleID),
		Title:       reqData.Title,
		Description: reqData.Description,
		OrderIndex:  reqData.OrderIndex,
		IsActive:    true,
	}

	if err := database.Database.Db.Create(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create chapter!", nil)
	}

	utils.RecordAudit(utils.NewRequestContext(c, userId), "CHAPTER_CREATE", "chapter", chapter.ID, chapter.Title)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Chapter created successfully!", chapter)
}

// AdminUpdateChapter updates a chapter
func AdminUpdateChapter(c *fiber.Ctx) error {
	userId, _ := c.Locals("userId").(uint)
	chapterID := c.Locals("chapterID").(int)

	var chapter catalogModels.Chapter
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", chapterID, false).First(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found!", nil)
	}

	reqData, ok := c.Locals("validatedChapterUpdate").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		OrderIndex  *int   `json:"order_index"`
		IsActive    *bool  `json:"is_active"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		chapter.Title = reqData.Title
	}
	if reqData.Description != "" {
		chapter.Description = reqData.Description
	}
	if reqData.OrderIndex != nil {
		chapter.OrderIndex = *reqData.OrderIndex
	}
	if reqData.IsActive != nil {
		chapter.IsActive = *reqData.IsActive
	}

	if err := database.Database.Db.Save(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update chapter!", nil)
	}

	utils.RecordAudit(utils.NewRequestContext(c, userId), "CHAPTER_UPDATE", "chapter", chapter.ID, chapter.Title)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter updated successfully!", chapter)
}

// AdminDeleteChapter soft deletes a chapter
func AdminDeleteChapter(c *fiber.Ctx) error {
	userId, _ := c.Locals("userId").(uint)
	chapterID := c.Locals("chapterID").(int)

	var chapter catalogModels.Chapter
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", chapterID, false).First(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found!", nil)
	}

	chapter.IsDeleted = true
	if err := database.Database.Db.Save(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete chapter!", nil)
	}

	utils.RecordAudit(utils.NewRequestContext(c, userId), "CHAPTER_DELETE", "chapter", chapter.ID, chapter.Title)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter deleted successfully!", nil)
}

// AdminListChapters lists the chapters of a module
func AdminListChapters(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(int)

	var module catalogModels.Module
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", moduleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	var chapters []catalogModels.Chapter
	if err := database.Database.Db.Where("module_id = ? AND is_deleted = ?", moduleID, false).
		Order("order_index asc").Find(&chapters).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch chapters!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapters fetched successfully!", fiber.Map{
		"module":   module,
		"chapters": chapters,
	})
}

package controllers

import (
	"fmt"

	"formadmin/database"
	"formadmin/middleware"
	catalogModels "formadmin/models/catalog"
	"formadmin/utils"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateCourse creates a course inside a chapter. The course duration is
// the ground truth the whole hierarchy aggregates from.
func AdminCreateCourse(c *fiber.Ctx) error {
	userId, _ := c.Locals("userId").(uint)
	chapterID := c.Locals("chapterID").(int)

	var chapter catalogModels.Chapter
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", chapterID, false).First(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*struct {
		Title           string `json:"title"`
		Description     string `json:"description"`
		DurationMinutes int    `json:"duration_minutes"`
		ContentURL      string `json:"content_url"`
		OrderIndex      int    `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := catalogModels.Course{
		ChapterID:       uint(chapterID),
		Title:           reqData.Title,
		Description:     reqData.Description,
		DurationMinutes: reqData.DurationMinutes,
		ContentURL:      reqData.ContentURL,
		OrderIndex:      reqData.OrderIndex,
		IsActive:        true,
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	utils.RecordAudit(utils.NewRequestContext(c, userId), "COURSE_CREATE", "course", course.ID,
		fmt.Sprintf("%s (%d min)", course.Title, course.DurationMinutes))

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// AdminUpdateCourse updates a course, including its authoritative duration
func AdminUpdateCourse(c *fiber.Ctx) error {
	userId, _ := c.Locals("userId").(uint)
	courseID := c.Locals("courseID").(int)

	var course catalogModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*struct {
		Title           string `json:"title"`
		Description     string `json:"description"`
		DurationMinutes *int   `json:"duration_minutes"`
		ContentURL      string `json:"content_url"`
		OrderIndex      *int   `json:"order_index"`
		IsActive        *bool  `json:"is_active"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		course.Title = reqData.Title
	}
	if reqData.Description != "" {
		course.Description = reqData.Description
	}
	if reqData.DurationMinutes != nil {
		course.DurationMinutes = *reqData.DurationMinutes
	}
	if reqData.ContentURL != "" {
		course.ContentURL = reqData.ContentURL
	}
	if reqData.OrderIndex != nil {
		course.OrderIndex = *reqData.OrderIndex
	}
	if reqData.IsActive != nil {
		course.IsActive = *reqData.IsActive
	}

	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	utils.RecordAudit(utils.NewRequestContext(c, userId), "COURSE_UPDATE", "course", course.ID,
		fmt.Sprintf("%s (%d min)", course.Title, course.DurationMinutes))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// AdminDeleteCourse soft deletes a course
func AdminDeleteCourse(c *fiber.Ctx) error {
	userId, _ := c.Locals("userId").(uint)
	courseID := c.Locals("courseID").(int)

	var course catalogModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	course.IsDeleted = true
	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	utils.RecordAudit(utils.NewRequestContext(c, userId), "COURSE_DELETE", "course", course.ID, course.Title)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// AdminListCourses lists the courses of a chapter
func AdminListCourses(c *fiber.Ctx) error {
	chapterID := c.Locals("chapterID").(int)

	var chapter catalogModels.Chapter
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", chapterID, false).First(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found!", nil)
	}

	var courses []catalogModels.Course
	if err := database.Database.Db.Where("chapter_id = ? AND is_deleted = ?", chapterID, false).
		Order("order_index asc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"chapter": chapter,
		"courses": courses,
	})
}

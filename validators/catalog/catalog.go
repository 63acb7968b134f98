package catalogValidator

import (
	"strconv"
	"strings"

	"formadmin/middleware"

	"github.com/gofiber/fiber/v2"
)

func parseIDParam(c *fiber.Ctx, name string) (int, bool) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ============ Formation Validators ============

// CreateFormation validates formation creation request
func CreateFormation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title                   string `json:"title"`
			Code                    string `json:"code"`
			Description             string `json:"description"`
			EstimatedDurationMinute int    `json:"estimated_duration_minutes"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Code = strings.TrimSpace(reqData.Code)
		reqData.Description = strings.TrimSpace(reqData.Description)

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		} else if len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if reqData.Code == "" {
			errors["code"] = "Code is required!"
		}

		if reqData.EstimatedDurationMinute < 0 {
			errors["estimated_duration_minutes"] = "Estimated duration cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedFormation", reqData)
		return c.Next()
	}
}

// UpdateFormation validates formation update request
func UpdateFormation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		formationID, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Formation ID!", nil)
		}

		reqData := new(struct {
			Title       string `json:"title"`
			Code        string `json:"code"`
			Description string `json:"description"`
			IsActive    *bool  `json:"is_active"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Code = strings.TrimSpace(reqData.Code)
		reqData.Description = strings.TrimSpace(reqData.Description)

		if reqData.Title != "" && len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("formationID", formationID)
		c.Locals("validatedFormationUpdate", reqData)
		return c.Next()
	}
}

// FormationID validates the formation id path parameter
func FormationID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		formationID, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Formation ID!", nil)
		}

		c.Locals("formationID", formationID)
		return c.Next()
	}
}

// AdminList validates pagination query for admin listings
func AdminList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `json:"page"`
			Limit *int `json:"limit"`
		})

		if page, err := strconv.Atoi(c.Query("page")); err == nil {
			reqData.Page = &page
		}
		if limit, err := strconv.Atoi(c.Query("limit")); err == nil {
			reqData.Limit = &limit
		}

		c.Locals("validatedAdminList", reqData)
		return c.Next()
	}
}

// ============ Module Validators ============

// CreateModule validates module creation within a formation
func CreateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		formationID, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Formation ID!", nil)
		}

		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			OrderIndex  int    `json:"order_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		} else if len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if reqData.OrderIndex < 0 {
			errors["order_index"] = "Order index cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("formationID", formationID)
		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}

// UpdateModule validates module update request
func UpdateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleID, ok := parseIDParam(c, "module_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}

		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			OrderIndex  *int   `json:"order_index"`
			IsActive    *bool  `json:"is_active"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)
		if reqData.Title != "" && len(reqData.Title) < 3 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"title": "Title must be at least 3 characters long!",
			})
		}

		c.Locals("moduleID", moduleID)
		c.Locals("validatedModuleUpdate", reqData)
		return c.Next()
	}
}

// ModuleID validates the module id path parameter
func ModuleID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleID, ok := parseIDParam(c, "module_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}

		c.Locals("moduleID", moduleID)
		return c.Next()
	}
}

// ============ Chapter Validators ============

// CreateChapter validates chapter creation within a module
func CreateChapter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleID, ok := parseIDParam(c, "module_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}

		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			OrderIndex  int    `json:"order_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		} else if len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("moduleID", moduleID)
		c.Locals("validatedChapter", reqData)
		return c.Next()
	}
}

// UpdateChapter validates chapter update request
func UpdateChapter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		chapterID, ok := parseIDParam(c, "chapter_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Chapter ID!", nil)
		}

		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			OrderIndex  *int   `json:"order_index"`
			IsActive    *bool  `json:"is_active"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)
		if reqData.Title != "" && len(reqData.Title) < 3 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"title": "Title must be at least 3 characters long!",
			})
		}

		c.Locals("chapterID", chapterID)
		c.Locals("validatedChapterUpdate", reqData)
		return c.Next()
	}
}

// ChapterID validates the chapter id path parameter
func ChapterID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		chapterID, ok := parseIDParam(c, "chapter_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Chapter ID!", nil)
		}

		c.Locals("chapterID", chapterID)
		return c.Next()
	}
}

// ============ Course Validators ============

// CreateCourse validates course creation within a chapter. The duration is the
// authoritative leaf value and must be a non-negative number of minutes.
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		chapterID, ok := parseIDParam(c, "chapter_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Chapter ID!", nil)
		}

		reqData := new(struct {
			Title           string `json:"title"`
			Description     string `json:"description"`
			DurationMinutes int    `json:"duration_minutes"`
			ContentURL      string `json:"content_url"`
			OrderIndex      int    `json:"order_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		} else if len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if reqData.DurationMinutes < 0 {
			errors["duration_minutes"] = "Duration cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("chapterID", chapterID)
		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourse validates course update request
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parseIDParam(c, "course_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		reqData := new(struct {
			Title           string `json:"title"`
			Description     string `json:"description"`
			DurationMinutes *int   `json:"duration_minutes"`
			ContentURL      string `json:"content_url"`
			OrderIndex      *int   `json:"order_index"`
			IsActive        *bool  `json:"is_active"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		if reqData.Title != "" && len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if reqData.DurationMinutes != nil && *reqData.DurationMinutes < 0 {
			errors["duration_minutes"] = "Duration cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

// CourseID validates the course id path parameter
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parseIDParam(c, "course_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

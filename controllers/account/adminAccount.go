package controllers

import (
	"formadmin/database"
	"formadmin/middleware"
	"formadmin/models"
	"formadmin/utils"

	"github.com/gofiber/fiber/v2"
)

// AdminGetAllUsers lists user accounts with pagination and optional role filter
func AdminGetAllUsers(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.User{}).Where("is_deleted = ?", false)

	if role, _ := c.Locals("roleFilter").(string); role != "" {
		db = db.Where("role = ?", role)
	}
	if search := c.Query("search"); search != "" {
		db = db.Where("name ILIKE ? OR email ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	db.Count(&total)

	var users []models.User
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", fiber.Map{
		"users": users,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// AdminGetUserDetails gets a single user account
func AdminGetUserDetails(c *fiber.Ctx) error {
	targetUserID := c.Locals("targetUserID").(int)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", targetUserID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched successfully!", user)
}

// AdminAssignRole changes a user's role
func AdminAssignRole(c *fiber.Ctx) error {
	userId, _ := c.Locals("userId").(uint)
	targetUserID := c.Locals("targetUserID").(int)
	role := c.Locals("validatedRole").(string)

	if uint(targetUserID) == userId {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You cannot change your own role!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", targetUserID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	previous := user.Role
	user.Role = role
	if err := database.Database.Db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user role!", nil)
	}

	utils.RecordAudit(utils.NewRequestContext(c, userId), "USER_ROLE_CHANGE", "user", user.ID, previous+" -> "+role)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User role updated successfully!", user)
}

// AdminActivateUser reactivates a deactivated account
func AdminActivateUser(c *fiber.Ctx) error {
	return setUserActive(c, true)
}

// AdminDeactivateUser deactivates an account without deleting it
func AdminDeactivateUser(c *fiber.Ctx) error {
	return setUserActive(c, false)
}

func setUserActive(c *fiber.Ctx, active bool) error {
	userId, _ := c.Locals("userId").(uint)
	targetUserID := c.Locals("targetUserID").(int)

	if uint(targetUserID) == userId {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You cannot change your own account status!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", targetUserID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	user.IsActive = active
	if err := database.Database.Db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user status!", nil)
	}

	event := "USER_DEACTIVATE"
	message := "User deactivated successfully!"
	if active {
		event = "USER_ACTIVATE"
		message = "User activated successfully!"
	}

	utils.RecordAudit(utils.NewRequestContext(c, userId), event, "user", user.ID, user.Email)

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, user)
}

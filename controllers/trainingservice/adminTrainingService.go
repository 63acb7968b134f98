package controllers

import (
	"formadmin/database"
	"formadmin/middleware"
	"formadmin/models"
	"formadmin/utils"
	trainingServiceValidator "formadmin/validators/trainingservice"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateService creates a new billable training service
func AdminCreateService(c *fiber.Ctx) error {
	userId, _ := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedService").(*trainingServiceValidator.ServiceRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	service := models.TrainingService{
		Name:        reqData.Name,
		Description: reqData.Description,
		PriceCents:  reqData.PriceCents,
		IsActive:    true,
	}
	if reqData.IsActive != nil {
		service.IsActive = *reqData.IsActive
	}

	if err := database.Database.Db.Create(&service).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create service!", nil)
	}

	utils.RecordAudit(utils.NewRequestContext(c, userId), "SERVICE_CREATE", "training_service", service.ID, service.Name)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Service created successfully!", service)
}

// AdminUpdateService updates a training service
func AdminUpdateService(c *fiber.Ctx) error {
	userId, _ := c.Locals("userId").(uint)
	serviceID := c.Locals("serviceID").(int)

	var service models.TrainingService
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", serviceID, false).First(&service).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Service not found!", nil)
	}

	reqData, ok := c.Locals("validatedService").(*trainingServiceValidator.ServiceRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	service.Name = reqData.Name
	service.Description = reqData.Description
	service.PriceCents = reqData.PriceCents
	if reqData.IsActive != nil {
		service.IsActive = *reqData.IsActive
	}

	if err := database.Database.Db.Save(&service).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update service!", nil)
	}

	utils.RecordAudit(utils.NewRequestContext(c, userId), "SERVICE_UPDATE", "training_service", service.ID, service.Name)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Service updated successfully!", service)
}

// AdminDeleteService soft deletes a training service
func AdminDeleteService(c *fiber.Ctx) error {
	userId, _ := c.Locals("userId").(uint)
	serviceID := c.Locals("serviceID").(int)

	var service models.TrainingService
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", serviceID, false).First(&service).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Service not found!", nil)
	}

	service.IsDeleted = true
	if err := database.Database.Db.Save(&service).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete service!", nil)
	}

	utils.RecordAudit(utils.NewRequestContext(c, userId), "SERVICE_DELETE", "training_service", service.ID, service.Name)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Service deleted successfully!", nil)
}

// AdminGetAllServices lists training services with pagination
func AdminGetAllServices(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.TrainingService{}).Where("is_deleted = ?", false)

	if c.Query("active") == "true" {
		db = db.Where("is_active = ?", true)
	}

	var total int64
	db.Count(&total)

	var services []models.TrainingService
	if err := db.Offset(offset).Limit(limit).Order("name asc").Find(&services).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch services!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Services fetched successfully!", fiber.Map{
		"services": services,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// AdminGetServiceDetails gets a single training service
func AdminGetServiceDetails(c *fiber.Ctx) error {
	serviceID := c.Locals("serviceID").(int)

	var service models.TrainingService
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", serviceID, false).First(&service).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Service not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Service fetched successfully!", service)
}

package controllers

import (
	"formadmin/database"
	"formadmin/middleware"
	"formadmin/models"
	"formadmin/utils"
	crmValidator "formadmin/validators/crm"

	"github.com/gofiber/fiber/v2"
)

// CreateContact creates a new contact
func CreateContact(c *fiber.Ctx) error {
	userId, _ := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedContact").(*crmValidator.ContactRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	contact := models.Contact{
		FirstName: reqData.FirstName,
		LastName:  reqData.LastName,
		Email:     reqData.Email,
		Phone:     reqData.Phone,
		Company:   reqData.Company,
		Position:  reqData.Position,
		Notes:     reqData.Notes,
	}

	if err := database.Database.Db.Create(&contact).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create contact!", nil)
	}

	utils.RecordAudit(utils.NewRequestContext(c, userId), "CONTACT_CREATE", "contact", contact.ID,
		contact.FirstName+" "+contact.LastName)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Contact created successfully!", contact)
}

// UpdateContact updates an existing contact
func UpdateContact(c *fiber.Ctx) error {
	userId, _ := c.Locals("userId").(uint)
	contactID := c.Locals("contactID").(int)

	var contact models.Contact
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", contactID, false).First(&contact).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Contact not found!", nil)
	}

	reqData, ok := c.Locals("validatedContact").(*crmValidator.ContactRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	contact.FirstName = reqData.FirstName
	contact.LastName = reqData.LastName
	contact.Email = reqData.Email
	contact.Phone = reqData.Phone
	contact.Company = reqData.Company
	contact.Position = reqData.Position
	contact.Notes = reqData.Notes

	if err := database.Database.Db.Save(&contact).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update contact!", nil)
	}

	utils.RecordAudit(utils.NewRequestContext(c, userId), "CONTACT_UPDATE", "contact", contact.ID,
		contact.FirstName+" "+contact.LastName)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Contact updated successfully!", contact)
}

// DeleteContact soft deletes a contact
func DeleteContact(c *fiber.Ctx) error {
	userId, _ := c.Locals("userId").(uint)
	contactID := c.Locals("contactID").(int)

	var contact models.Contact
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", contactID, false).First(&contact).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Contact not found!", nil)
	}

	contact.IsDeleted = true
	if err := database.Database.Db.Save(&contact).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete contact!", nil)
	}

	utils.RecordAudit(utils.NewRequestContext(c, userId), "CONTACT_DELETE", "contact", contact.ID, "")

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Contact deleted successfully!", nil)
}

// GetAllContacts lists contacts with pagination and optional company filter
func GetAllContacts(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Contact{}).Where("is_deleted = ?", false)

	if company := c.Query("company"); company != "" {
		db = db.Where("company ILIKE ?", "%"+company+"%")
	}

	var total int64
	db.Count(&total)

	var contacts []models.Contact
	if err := db.Offset(offset).Limit(limit).Order("last_name asc").Find(&contacts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch contacts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Contacts fetched successfully!", fiber.Map{
		"contacts": contacts,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetContactDetails gets a single contact
func GetContactDetails(c *fiber.Ctx) error {
	contactID := c.Locals("contactID").(int)

	var contact models.Contact
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", contactID, false).First(&contact).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Contact not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Contact fetched successfully!", contact)
}

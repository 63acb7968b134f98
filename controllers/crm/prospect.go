package controllers

import (
	"time"

	"formadmin/database"
	"formadmin/middleware"
	"formadmin/models"
	"formadmin/utils"
	crmValidator "formadmin/validators/crm"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// CreateProspect registers a new CRM lead
func CreateProspect(c *fiber.Ctx) error {
	userId, _ := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedProspect").(*crmValidator.ProspectRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	followUp, err := crmValidator.ParseFollowUpDate(reqData.FollowUpAt)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid follow-up date!", nil)
	}
	if followUp != nil {
		// Follow-ups are day-granular
		day := now.New(*followUp).BeginningOfDay()
		followUp = &day
	}

	prospect := models.Prospect{
		FirstName:  reqData.FirstName,
		LastName:   reqData.LastName,
		Email:      reqData.Email,
		Phone:      reqData.Phone,
		Company:    reqData.Company,
		Source:     reqData.Source,
		Status:     models.ProspectNew,
		AssignedTo: reqData.AssignedTo,
		FollowUpAt: followUp,
		Notes:      reqData.Notes,
	}

	if err := database.Database.Db.Create(&prospect).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create prospect!", nil)
	}

	utils.RecordAudit(utils.NewRequestContext(c, userId), "PROSPECT_CREATE", "prospect", prospect.ID,
		prospect.FirstName+" "+prospect.LastName)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Prospect created successfully!", prospect)
}

// UpdateProspect updates a prospect's identity and follow-up data
func UpdateProspect(c *fiber.Ctx) error {
	userId, _ := c.Locals("userId").(uint)
	prospectID := c.Locals("prospectID").(int)

	var prospect models.Prospect
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", prospectID, false).First(&prospect).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Prospect not found!", nil)
	}

	reqData, ok := c.Locals("validatedProspect").(*crmValidator.ProspectRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	followUp, err := crmValidator.ParseFollowUpDate(reqData.FollowUpAt)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid follow-up date!", nil)
	}
	if followUp != nil {
		day := now.New(*followUp).BeginningOfDay()
		followUp = &day
	}

	prospect.FirstName = reqData.FirstName
	prospect.LastName = reqData.LastName
	prospect.Email = reqData.Email
	prospect.Phone = reqData.Phone
	prospect.Company = reqData.Company
	if reqData.Source != "" {
		prospect.Source = reqData.Source
	}
	if reqData.AssignedTo > 0 {
		prospect.AssignedTo = reqData.AssignedTo
	}
	if followUp != nil {
		prospect.FollowUpAt = followUp
	}
	prospect.Notes = reqData.Notes

	if err := database.Database.Db.Save(&prospect).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update prospect!", nil)
	}

	utils.RecordAudit(utils.NewRequestContext(c, userId), "PROSPECT_UPDATE", "prospect", prospect.ID,
		prospect.FirstName+" "+prospect.LastName)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Prospect updated successfully!", prospect)
}

// ChangeProspectStatus moves a prospect through the pipeline. Converting
// creates a contact from the prospect's identity.
func ChangeProspectStatus(c *fiber.Ctx) error {
	userId, _ := c.Locals("userId").(uint)
	prospectID := c.Locals("prospectID").(int)

	var prospect models.Prospect
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", prospectID, false).First(&prospect).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Prospect not found!", nil)
	}

	reqData := c.Locals("validatedProspectStatus").(*struct {
		Status string `json:"status"`
		Note   string `json:"note"`
	})

	if prospect.Status == models.ProspectConverted {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Prospect is already converted!", nil)
	}

	prospect.Status = reqData.Status
	if reqData.Note != "" {
		prospect.Notes = prospect.Notes + "\n" + time.Now().Format("2006-01-02") + ": " + reqData.Note
	}

	if reqData.Status == models.ProspectConverted {
		contact := models.Contact{
			FirstName: prospect.FirstName,
			LastName:  prospect.LastName,
			Email:     prospect.Email,
			Phone:     prospect.Phone,
			Company:   prospect.Company,
			Notes:     prospect.Notes,
		}
		if err := database.Database.Db.Create(&contact).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to convert prospect!", nil)
		}
		prospect.ContactID = &contact.ID
	}

	if err := database.Database.Db.Save(&prospect).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update prospect status!", nil)
	}

	utils.RecordAudit(utils.NewRequestContext(c, userId), "PROSPECT_STATUS", "prospect", prospect.ID, reqData.Status)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Prospect status updated successfully!", prospect)
}

// DeleteProspect soft deletes a prospect
func DeleteProspect(c *fiber.Ctx) error {
	userId, _ := c.Locals("userId").(uint)
	prospectID := c.Locals("prospectID").(int)

	var prospect models.Prospect
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", prospectID, false).First(&prospect).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Prospect not found!", nil)
	}

	prospect.IsDeleted = true
	if err := database.Database.Db.Save(&prospect).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete prospect!", nil)
	}

	utils.RecordAudit(utils.NewRequestContext(c, userId), "PROSPECT_DELETE", "prospect", prospect.ID, "")

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Prospect deleted successfully!", nil)
}

// GetAllProspects lists prospects with pagination, status filter and a
// follow-up-due filter for the daily CRM worklist
func GetAllProspects(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Prospect{}).Where("is_deleted = ?", false)

	if status := c.Query("status"); status != "" {
		db = db.Where("status = ?", status)
	}
	if c.Query("due") == "today" {
		endOfDay := now.EndOfDay()
		db = db.Where("follow_up_at IS NOT NULL AND follow_up_at <= ?", endOfDay)
	}

	var total int64
	db.Count(&total)

	var prospects []models.Prospect
	if err := db.Offset(offset).Limit(limit).Order("follow_up_at asc nulls last, created_at desc").Find(&prospects).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch prospects!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Prospects fetched successfully!", fiber.Map{
		"prospects": prospects,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

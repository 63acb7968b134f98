package controllers

import (
	"formadmin/database"
	"formadmin/middleware"
	"formadmin/models"
	catalogModels "formadmin/models/catalog"
	"formadmin/utils"
	questionnaireValidator "formadmin/validators/questionnaire"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdminCreateQuestionnaire creates a questionnaire, optionally attached to a formation
func AdminCreateQuestionnaire(c *fiber.Ctx) error {
	userId, _ := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedQuestionnaire").(*questionnaireValidator.QuestionnaireRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.FormationID != nil {
		var formation catalogModels.Formation
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", *reqData.FormationID, false).First(&formation).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Formation not found!", nil)
		}
	}

	questionnaire := models.Questionnaire{
		Title:       reqData.Title,
		Description: reqData.Description,
		FormationID: reqData.FormationID,
		IsActive:    true,
	}
	if reqData.IsActive != nil {
		questionnaire.IsActive = *reqData.IsActive
	}

	if err := database.Database.Db.Create(&questionnaire).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create questionnaire!", nil)
	}

	utils.RecordAudit(utils.NewRequestContext(c, userId), "QUESTIONNAIRE_CREATE", "questionnaire", questionnaire.ID, questionnaire.Title)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Questionnaire created successfully!", questionnaire)
}

// AdminUpdateQuestionnaire updates a questionnaire
func AdminUpdateQuestionnaire(c *fiber.Ctx) error {
	userId, _ := c.Locals("userId").(uint)
	questionnaireID := c.Locals("questionnaireID").(int)

	var questionnaire models.Questionnaire
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", questionnaireID, false).First(&questionnaire).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Questionnaire not found!", nil)
	}

	reqData, ok := c.Locals("validatedQuestionnaire").(*questionnaireValidator.QuestionnaireRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.FormationID != nil {
		var formation catalogModels.Formation
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", *reqData.FormationID, false).First(&formation).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Formation not found!", nil)
		}
	}

	questionnaire.Title = reqData.Title
	questionnaire.Description = reqData.Description
	questionnaire.FormationID = reqData.FormationID
	if reqData.IsActive != nil {
		questionnaire.IsActive = *reqData.IsActive
	}

	if err := database.Database.Db.Save(&questionnaire).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update questionnaire!", nil)
	}

	utils.RecordAudit(utils.NewRequestContext(c, userId), "QUESTIONNAIRE_UPDATE", "questionnaire", questionnaire.ID, questionnaire.Title)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Questionnaire updated successfully!", questionnaire)
}

// AdminDeleteQuestionnaire soft deletes a questionnaire and its questions
func AdminDeleteQuestionnaire(c *fiber.Ctx) error {
	userId, _ := c.Locals("userId").(uint)
	questionnaireID := c.Locals("questionnaireID").(int)

	var questionnaire models.Questionnaire
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", questionnaireID, false).First(&questionnaire).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Questionnaire not found!", nil)
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		questionnaire.IsDeleted = true
		if err := tx.Save(&questionnaire).Error; err != nil {
			return err
		}
		return tx.Model(&models.Question{}).
			Where("questionnaire_id = ?", questionnaire.ID).
			Update("is_deleted", true).Error
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete questionnaire!", nil)
	}

	utils.RecordAudit(utils.NewRequestContext(c, userId), "QUESTIONNAIRE_DELETE", "questionnaire", questionnaire.ID, questionnaire.Title)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Questionnaire deleted successfully!", nil)
}

// AdminGetAllQuestionnaires lists questionnaires with pagination
func AdminGetAllQuestionnaires(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Questionnaire{}).Where("is_deleted = ?", false)

	if formationID := c.Query("formation_id"); formationID != "" {
		db = db.Where("formation_id = ?", formationID)
	}

	var total int64
	db.Count(&total)

	var questionnaires []models.Questionnaire
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&questionnaires).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch questionnaires!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Questionnaires fetched successfully!", fiber.Map{
		"questionnaires": questionnaires,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// AdminGetQuestionnaireDetails gets a questionnaire with its questions in order
func AdminGetQuestionnaireDetails(c *fiber.Ctx) error {
	questionnaireID := c.Locals("questionnaireID").(int)

	var questionnaire models.Questionnaire
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", questionnaireID, false).First(&questionnaire).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Questionnaire not found!", nil)
	}

	var questions []models.Question
	database.Database.Db.
		Where("questionnaire_id = ? AND is_deleted = ?", questionnaire.ID, false).
		Order("order_index asc, id asc").
		Find(&questions)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Questionnaire fetched successfully!", fiber.Map{
		"questionnaire": questionnaire,
		"questions":     questions,
	})
}

// AdminAddQuestion appends a question to a questionnaire
func AdminAddQuestion(c *fiber.Ctx) error {
	userId, _ := c.Locals("userId").(uint)
	questionnaireID := c.Locals("questionnaireID").(int)

	var questionnaire models.Questionnaire
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", questionnaireID, false).First(&questionnaire).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Questionnaire not found!", nil)
	}

	reqData, ok := c.Locals("validatedQuestion").(*questionnaireValidator.QuestionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	question := models.Question{
		QuestionnaireID: questionnaire.ID,
		Text:            reqData.Text,
		Kind:            reqData.Kind,
		OrderIndex:      reqData.OrderIndex,
	}

	if err := database.Database.Db.Create(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add question!", nil)
	}

	utils.RecordAudit(utils.NewRequestContext(c, userId), "QUESTION_CREATE", "question", question.ID, "")

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Question added successfully!", question)
}

// AdminUpdateQuestion updates a question
func AdminUpdateQuestion(c *fiber.Ctx) error {
	userId, _ := c.Locals("userId").(uint)
	questionID := c.Locals("questionID").(int)

	var question models.Question
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", questionID, false).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	reqData, ok := c.Locals("validatedQuestion").(*questionnaireValidator.QuestionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	question.Text = reqData.Text
	question.Kind = reqData.Kind
	question.OrderIndex = reqData.OrderIndex

	if err := database.Database.Db.Save(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update question!", nil)
	}

	utils.RecordAudit(utils.NewRequestContext(c, userId), "QUESTION_UPDATE", "question", question.ID, "")

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question updated successfully!", question)
}

// AdminDeleteQuestion soft deletes a question
func AdminDeleteQuestion(c *fiber.Ctx) error {
	userId, _ := c.Locals("userId").(uint)
	questionID := c.Locals("questionID").(int)

	var question models.Question
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", questionID, false).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	question.IsDeleted = true
	if err := database.Database.Db.Save(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete question!", nil)
	}

	utils.RecordAudit(utils.NewRequestContext(c, userId), "QUESTION_DELETE", "question", question.ID, "")

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question deleted successfully!", nil)
}

// AdminReorderQuestions rewrites the order of a questionnaire's questions
func AdminReorderQuestions(c *fiber.Ctx) error {
	userId, _ := c.Locals("userId").(uint)
	questionnaireID := c.Locals("questionnaireID").(int)

	var questionnaire models.Questionnaire
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", questionnaireID, false).First(&questionnaire).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Questionnaire not found!", nil)
	}

	questionIDs, ok := c.Locals("validatedReorder").([]uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var count int64
	database.Database.Db.Model(&models.Question{}).
		Where("questionnaire_id = ? AND is_deleted = ? AND id IN ?", questionnaire.ID, false, questionIDs).
		Count(&count)
	if count != int64(len(questionIDs)) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Some questions do not belong to this questionnaire!", nil)
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		for index, qid := range questionIDs {
			if err := tx.Model(&models.Question{}).
				Where("id = ?", qid).
				Update("order_index", index).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reorder questions!", nil)
	}

	utils.RecordAudit(utils.NewRequestContext(c, userId), "QUESTION_REORDER", "questionnaire", questionnaire.ID, questionnaire.Title)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Questions reordered successfully!", nil)
}

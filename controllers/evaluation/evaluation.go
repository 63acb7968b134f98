package controllers

import (
	"time"

	"formadmin/database"
	"formadmin/middleware"
	"formadmin/models"
	evaluationModels "formadmin/models/evaluation"
	"formadmin/utils"
	evaluationValidator "formadmin/validators/evaluation"

	"github.com/gofiber/fiber/v2"
)

// CreateEvaluation files a work-study evaluation for a student
func CreateEvaluation(c *fiber.Ctx) error {
	userId, _ := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedEvaluation").(*evaluationValidator.EvaluationRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var student models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.StudentID, false).First(&student).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	periodStart, _ := time.Parse("2006-01-02", reqData.PeriodStart)
	periodEnd, _ := time.Parse("2006-01-02", reqData.PeriodEnd)
	if periodEnd.Before(periodStart) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Period end must be after period start!", nil)
	}

	eval := evaluationModels.Evaluation{
		StudentID:   reqData.StudentID,
		TutorID:     reqData.TutorID,
		FormationID: reqData.FormationID,
		Kind:        reqData.Kind,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		Score:       reqData.Score,
		MaxScore:    reqData.MaxScore,
		Comments:    reqData.Comments,
		Status:      evaluationModels.StatusPending,
	}

	if err := database.Database.Db.Create(&eval).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create evaluation!", nil)
	}

	utils.RecordAudit(utils.NewRequestContext(c, userId), "EVALUATION_CREATE", "evaluation", eval.ID, eval.Kind)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Evaluation submitted successfully!", eval)
}

// UpdateEvaluation edits a pending evaluation
func UpdateEvaluation(c *fiber.Ctx) error {
	userId, _ := c.Locals("userId").(uint)
	evaluationID := c.Locals("evaluationID").(int)

	var eval evaluationModels.Evaluation
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", evaluationID, false).First(&eval).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Evaluation not found!", nil)
	}

	if eval.Status != evaluationModels.StatusPending {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Only pending evaluations can be edited!", nil)
	}

	reqData, ok := c.Locals("validatedEvaluation").(*evaluationValidator.EvaluationRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	periodStart, _ := time.Parse("2006-01-02", reqData.PeriodStart)
	periodEnd, _ := time.Parse("2006-01-02", reqData.PeriodEnd)
	if periodEnd.Before(periodStart) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Period end must be after period start!", nil)
	}

	eval.TutorID = reqData.TutorID
	eval.FormationID = reqData.FormationID
	eval.Kind = reqData.Kind
	eval.PeriodStart = periodStart
	eval.PeriodEnd = periodEnd
	eval.Score = reqData.Score
	eval.MaxScore = reqData.MaxScore
	eval.Comments = reqData.Comments

	if err := database.Database.Db.Save(&eval).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update evaluation!", nil)
	}

	utils.RecordAudit(utils.NewRequestContext(c, userId), "EVALUATION_UPDATE", "evaluation", eval.ID, eval.Kind)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Evaluation updated successfully!", eval)
}

// ApproveEvaluation approves a pending evaluation
func ApproveEvaluation(c *fiber.Ctx) error {
	return reviewEvaluation(c, evaluationModels.StatusApproved)
}

// RejectEvaluation rejects a pending evaluation
func RejectEvaluation(c *fiber.Ctx) error {
	return reviewEvaluation(c, evaluationModels.StatusRejected)
}

func reviewEvaluation(c *fiber.Ctx, status string) error {
	userId, _ := c.Locals("userId").(uint)
	evaluationID := c.Locals("evaluationID").(int)

	var eval evaluationModels.Evaluation
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", evaluationID, false).First(&eval).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Evaluation not found!", nil)
	}

	if eval.Status != evaluationModels.StatusPending {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Evaluation has already been reviewed!", nil)
	}

	reqData := c.Locals("validatedReview").(*struct {
		Note string `json:"note"`
	})

	reviewedAt := time.Now()
	eval.Status = status
	eval.ReviewedBy = userId
	eval.ReviewedAt = &reviewedAt
	eval.ReviewNote = reqData.Note

	if err := database.Database.Db.Save(&eval).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to review evaluation!", nil)
	}

	utils.RecordAudit(utils.NewRequestContext(c, userId), "EVALUATION_"+status, "evaluation", eval.ID, reqData.Note)

	// Notify the student (Async)
	go func(e evaluationModels.Evaluation) {
		var student models.User
		if err := database.Database.Db.Select("name, email").First(&student, e.StudentID).Error; err != nil || student.Email == "" {
			return
		}
		formationTitle := "your formation"
		var row struct{ Title string }
		if err := database.Database.Db.Table("formations").Select("title").Where("id = ?", e.FormationID).Scan(&row).Error; err == nil && row.Title != "" {
			formationTitle = row.Title
		}
		utils.SendEvaluationDecisionEmail(student.Email, student.Name, formationTitle, e.Status, e.ReviewNote)
	}(eval)

	message := "Evaluation approved successfully!"
	if status == evaluationModels.StatusRejected {
		message = "Evaluation rejected successfully!"
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, eval)
}

// GetAllEvaluations lists evaluations with status/formation/student filters
func GetAllEvaluations(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&evaluationModels.Evaluation{}).Where("is_deleted = ?", false)

	if status := c.Query("status"); status != "" {
		db = db.Where("status = ?", status)
	}
	if formationID := c.QueryInt("formation_id", 0); formationID > 0 {
		db = db.Where("formation_id = ?", formationID)
	}
	if studentID := c.QueryInt("student_id", 0); studentID > 0 {
		db = db.Where("student_id = ?", studentID)
	}

	var total int64
	db.Count(&total)

	var evaluations []evaluationModels.Evaluation
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&evaluations).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch evaluations!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Evaluations fetched successfully!", fiber.Map{
		"evaluations": evaluations,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetEvaluationDetails gets a single evaluation with student and tutor names
func GetEvaluationDetails(c *fiber.Ctx) error {
	evaluationID := c.Locals("evaluationID").(int)

	var eval evaluationModels.Evaluation
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", evaluationID, false).First(&eval).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Evaluation not found!", nil)
	}

	var student, tutor models.User
	database.Database.Db.Select("id, name, email").First(&student, eval.StudentID)
	database.Database.Db.Select("id, name, email").First(&tutor, eval.TutorID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Evaluation fetched successfully!", fiber.Map{
		"evaluation": eval,
		"student":    fiber.Map{"id": student.ID, "name": student.Name, "email": student.Email},
		"tutor":      fiber.Map{"id": tutor.ID, "name": tutor.Name, "email": tutor.Email},
	})
}

// DeleteEvaluation soft deletes an evaluation
func DeleteEvaluation(c *fiber.Ctx) error {
	userId, _ := c.Locals("userId").(uint)
	evaluationID := c.Locals("evaluationID").(int)

	var eval evaluationModels.Evaluation
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", evaluationID, false).First(&eval).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Evaluation not found!", nil)
	}

	eval.IsDeleted = true
	if err := database.Database.Db.Save(&eval).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete evaluation!", nil)
	}

	utils.RecordAudit(utils.NewRequestContext(c, userId), "EVALUATION_DELETE", "evaluation", eval.ID, "")

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Evaluation deleted successfully!", nil)
}

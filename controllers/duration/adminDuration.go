package controllers

import (
	"fmt"

	"formadmin/database"
	"formadmin/middleware"
	"formadmin/models"
	"formadmin/services/duration"
	"formadmin/utils"

	"github.com/gofiber/fiber/v2"
)

var durationService *duration.Service

// Service returns the shared duration engine, bound to the global database
func Service() *duration.Service {
	if durationService == nil {
		durationService = duration.NewService(duration.NewGormStore(database.Database.Db))
	}
	return durationService
}

// AdminDurationHome lists the levels and operations of the duration engine
func AdminDurationHome(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != "ADMIN" {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Duration administration", fiber.Map{
		"levels": duration.SyncOrder,
		"endpoints": fiber.Map{
			"statistics":  "/admin/duration/statistics",
			"analyze":     "/admin/duration/analyze/:entityType",
			"update":      "/admin/duration/update/:entityType/:entityId",
			"sync_all":    "/admin/duration/sync-all",
			"clear_cache": "/admin/duration/clear-cache",
		},
	})
}

// AdminDurationStatistics returns drift statistics for every level
func AdminDurationStatistics(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != "ADMIN" {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	stats, err := Service().AllStats()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute statistics!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Duration statistics fetched successfully!", fiber.Map{
		"statistics": stats,
	})
}

// AdminDurationAnalyze returns the per-node drift report of one level
func AdminDurationAnalyze(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != "ADMIN" {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	level := c.Locals("entityLevel").(duration.Level)

	analysis, err := Service().AnalyzeLevel(level)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to analyze durations!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Duration analysis fetched successfully!", analysis)
}

// AdminDurationUpdate recomputes and persists one node
func AdminDurationUpdate(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != "ADMIN" {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	level := c.Locals("entityLevel").(duration.Level)
	entityID := c.Locals("entityID").(int)

	stats, err := Service().UpdateNode(level, uint(entityID))
	if err == duration.ErrNotFound {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Entity not found!", nil)
	}
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update duration!", nil)
	}

	if stats.Changed {
		Service().ClearCache()
	}

	utils.RecordAudit(utils.NewRequestContext(c, userId), "DURATION_UPDATE", string(level), uint(entityID),
		fmt.Sprintf("previous=%d computed=%d changed=%t", stats.Previous, stats.Computed, stats.Changed))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Duration updated successfully!", fiber.Map{
		"stats": stats,
	})
}

// AdminDurationSyncAll runs a batched bulk sync over the filtered levels
func AdminDurationSyncAll(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != "ADMIN" {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	filter := c.Locals("syncFilter").(duration.Level)
	batchSize := c.Locals("syncBatchSize").(int)

	result, err := Service().SyncAll(filter, batchSize)

	utils.RecordAudit(utils.NewRequestContext(c, userId), "DURATION_SYNC_ALL", string(filter), 0,
		fmt.Sprintf("batch_size=%d synced=%d errors=%d", batchSize, result.Synced, len(result.Errors)))

	go utils.NotifySyncCompleted(utils.SyncWebhookPayload{
		EntityType: string(filter),
		Synced:     result.Synced,
		Errors:     result.Errors,
		Partial:    err != nil || len(result.Errors) > 0,
	})

	if err != nil {
		// A batch commit failed; earlier batches stay committed
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Synchronization aborted: "+err.Error(), fiber.Map{
			"count":  result.Synced,
			"errors": result.Errors,
		})
	}

	if len(result.Errors) > 0 {
		return middleware.JsonResponse(c, fiber.StatusPartialContent, false,
			fmt.Sprintf("Synchronized %d entities with %d errors.", result.Synced, len(result.Errors)), fiber.Map{
				"count":  result.Synced,
				"errors": result.Errors,
			})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true,
		fmt.Sprintf("Synchronized %d entities successfully!", result.Synced), fiber.Map{
			"count": result.Synced,
		})
}

// AdminDurationClearCache drops the cached statistics
func AdminDurationClearCache(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != "ADMIN" {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	Service().ClearCache()

	utils.RecordAudit(utils.NewRequestContext(c, userId), "DURATION_CLEAR_CACHE", "statistics", 0, "")

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Statistics cache cleared successfully!", nil)
}

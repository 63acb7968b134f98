package utils

import (
	"log"
	"time"

	"formadmin/database"
	"formadmin/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestContext carries the request metadata attached to every audit entry.
// It is built once per request and passed down explicitly.
type RequestContext struct {
	UserID    uint
	IP        string
	UserAgent string
	At        time.Time
}

// NewRequestContext captures the calling request's context
func NewRequestContext(c *fiber.Ctx, userID uint) RequestContext {
	return RequestContext{
		UserID:    userID,
		IP:        c.IP(),
		UserAgent: c.Get("User-Agent"),
		At:        time.Now(),
	}
}

// RecordAudit writes one audit row and mirrors it to the application log.
// Auditing is informational; a failed write never fails the request.
func RecordAudit(ctx RequestContext, action, entityType string, entityID uint, details string) {
	entry := models.AuditLog{
		EventID:    uuid.NewString(),
		UserID:     ctx.UserID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
		IP:         ctx.IP,
		UserAgent:  ctx.UserAgent,
		OccurredAt: ctx.At,
	}

	if err := database.Database.Db.Create(&entry).Error; err != nil {
		log.Printf("[AUDIT] failed to persist entry: %v", err)
	}

	log.Printf("[AUDIT %s] user=%d ip=%s action=%s entity=%s/%d %s",
		entry.EventID, ctx.UserID, ctx.IP, action, entityType, entityID, details)
}

// internal/interfaces/http/handlers/store.go
package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gokhanazp/riversideburger-sub000/internal/config"
	"github.com/gokhanazp/riversideburger-sub000/internal/domain/store"
	"gorm.io/gorm"
)

// StoreHandler handles store availability endpoints
type StoreHandler struct {
	storeService *store.Service
	config       *config.Config
}

// NewStoreHandler creates a new store handler
func NewStoreHandler(db *gorm.DB, cfg *config.Config) *StoreHandler {
	return &StoreHandler{
		storeService: store.NewService(db, cfg),
		config:       cfg,
	}
}

// GetStatus handles GET /store/status
func (h *StoreHandler) GetStatus(c *gin.Context) {
	status, err := h.storeService.GetStatus()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve store status",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Store status retrieved successfully",
		"data": gin.H{
			"is_open_now":        store.IsOpenNow(status, time.Now()),
			"is_open":            status.IsOpen,
			"auto_close_enabled": status.AutoCloseEnabled,
			"schedule":           status.Schedule,
		},
	})
}

// UpdateSettings handles PUT /admin/store/settings
func (h *StoreHandler) UpdateSettings(c *gin.Context) {
	var req store.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	settings, err := h.storeService.UpdateSettings(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Store settings updated successfully",
		"data":    settings,
	})
}

// UpdateDaySchedule handles PUT /admin/store/schedule/:weekday
func (h *StoreHandler) UpdateDaySchedule(c *gin.Context) {
	weekdayValue, err := strconv.Atoi(c.Param("weekday"))
	if err != nil || weekdayValue < 0 || weekdayValue > 6 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid weekday, expected 0 (Sunday) through 6 (Saturday)",
		})
		return
	}

	var req store.UpdateDayScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	day, err := h.storeService.UpdateDaySchedule(time.Weekday(weekdayValue), &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Day schedule updated successfully",
		"data":    day,
	})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type WorkingHoursHandler struct {
	db *gorm.DB
}

func NewWorkingHoursHandler(db *gorm.DB) *WorkingHoursHandler {
	return &WorkingHoursHandler{db: db}
}

type WorkingBreakConfig struct {
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

type WorkingDayConfig struct {
	Weekday   int                  `json:"weekday" binding:"min=0,max=6"`
	Active    bool                 `json:"active"`
	StartTime string               `json:"start_time"`
	EndTime   string               `json:"end_time"`
	Breaks    []WorkingBreakConfig `json:"breaks"`
}

type WorkingHoursUpdateRequest struct {
	SlotStepMin int                `json:"slot_step_min" binding:"required,min=1"`
	Days        []WorkingDayConfig `json:"days" binding:"required"`
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	var hours []models.WorkingHours
	if err := h.db.
		Where("barber_id = ?", barberID).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_working_hours"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"configured": len(hours) > 0,
		"days":       hours,
	})
}

func (h *WorkingHoursHandler) Update(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	// valida antes de apagar o que existe
	for _, d := range req.Days {
		if !d.Active {
			continue
		}

		startMin, err := domain.ParseHM(d.StartTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_start_time"})
			return
		}
		endMin, err := domain.ParseHM(d.EndTime)
		if err != nil || endMin <= startMin {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_end_time"})
			return
		}

		for _, br := range d.Breaks {
			bs, err1 := domain.ParseHM(br.Start)
			be, err2 := domain.ParseHM(br.End)
			if err1 != nil || err2 != nil || be <= bs || bs < startMin || be > endMin {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_break"})
				return
			}
		}
	}

	toCreate := make([]models.WorkingHours, 0, len(req.Days))
	for _, d := range req.Days {
		wh := models.WorkingHours{
			BarberID:    barberID,
			Weekday:     d.Weekday,
			Active:      d.Active,
			StartTime:   d.StartTime,
			EndTime:     d.EndTime,
			SlotStepMin: req.SlotStepMin,
		}
		for _, br := range d.Breaks {
			wh.Breaks = append(wh.Breaks, models.BreakWindow{
				Start: br.Start,
				End:   br.End,
			})
		}
		toCreate = append(toCreate, wh)
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("barber_id = ?", barberID).
			Delete(&models.WorkingHours{}).Error; err != nil {
			return err
		}

		if len(toCreate) > 0 {
			return tx.Create(&toCreate).Error
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_working_hours"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

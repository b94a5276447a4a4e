package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// ======================================================
// HANDLER (clientes atendidos pelo barbeiro)
// ======================================================

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

type clientRow struct {
	UserID      uint      `json:"user_id"`
	UserName    string    `json:"user_name"`
	UserPhone   string    `json:"user_phone"`
	Visits      int64     `json:"visits"`
	LastVisitAt time.Time `json:"last_visit_at"`
}

// List agrega o espelho do barbeiro: uma linha por cliente, com total
// de visitas e a data da última. Cancelados não contam como visita.
func (h *ClientHandler) List(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	var rows []clientRow
	err := h.db.
		Model(&models.BarberAppointment{}).
		Select("user_id, MAX(user_name) AS user_name, MAX(user_phone) AS user_phone, COUNT(*) AS visits, MAX(start_at) AS last_visit_at").
		Where("barber_id = ? AND status <> ?", barberID, "CANCELED").
		Group("user_id").
		Order("last_visit_at DESC").
		Scan(&rows).Error
	if err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Erro ao buscar clientes.")
		return
	}

	httpresp.List(c, rows)
}

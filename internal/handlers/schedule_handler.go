package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
)

// ======================================================
// HANDLER (agenda do barbeiro)
// ======================================================

type ScheduleHandler struct {
	db *gorm.DB

	listUC    *ucAppointment.ListBarberSchedule
	confirmUC *ucAppointment.ConfirmAppointment
	cancelUC  *ucAppointment.CancelAppointment
	rebuildUC *ucAppointment.RebuildMirrors
}

func NewScheduleHandler(
	db *gorm.DB,
	listUC *ucAppointment.ListBarberSchedule,
	confirmUC *ucAppointment.ConfirmAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	rebuildUC *ucAppointment.RebuildMirrors,
) *ScheduleHandler {
	return &ScheduleHandler{
		db:        db,
		listUC:    listUC,
		confirmUC: confirmUC,
		cancelUC:  cancelUC,
		rebuildUC: rebuildUC,
	}
}

// ======================================================
// LISTAGENS (espelho do barbeiro)
// ======================================================

// ByDate lista os agendamentos do dia informado em ?date=YYYY-MM-DD
// (timezone da barbearia do barbeiro logado).
func (h *ScheduleHandler) ByDate(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	shopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var shop models.Barbershop
	if err := h.db.First(&shop, shopID).Error; err != nil {
		httperr.Internal(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		dateStr = timezone.NowIn(shop.Timezone).Format("2006-01-02")
	}

	date, err := parseDateInShop(&shop, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida. Use YYYY-MM-DD.")
		return
	}

	views, err := h.listUC.ByDate(c.Request.Context(), barberID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_schedule", "Erro ao buscar agenda.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":         dateStr,
		"appointments": views,
	})
}

// ByMonth lista o mês em ?year=2026&month=8. Sem parâmetros, mês atual.
func (h *ScheduleHandler) ByMonth(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	shopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var shop models.Barbershop
	if err := h.db.First(&shop, shopID).Error; err != nil {
		httperr.Internal(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	loc := locationFromShop(&shop)
	now := timezone.NowIn(shop.Timezone)

	year := now.Year()
	month := int(now.Month())

	if v := c.Query("year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 2000 || n > 2100 {
			httperr.BadRequest(c, "invalid_year", "Ano inválido.")
			return
		}
		year = n
	}
	if v := c.Query("month"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 12 {
			httperr.BadRequest(c, "invalid_month", "Mês inválido.")
			return
		}
		month = n
	}

	views, err := h.listUC.ByMonth(c.Request.Context(), barberID, year, month, loc)
	if err != nil {
		httperr.Internal(c, "failed_to_list_schedule", "Erro ao buscar agenda.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":         year,
		"month":        month,
		"appointments": views,
	})
}

// ======================================================
// TRANSIÇÕES DE STATUS
// ======================================================

func (h *ScheduleHandler) Confirm(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	publicID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Agendamento inválido.")
		return
	}

	ap, err := h.confirmUC.Execute(c.Request.Context(), barberID, publicID)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *ScheduleHandler) Cancel(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	publicID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Agendamento inválido.")
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), barberID, role, publicID)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// RebuildMirrors reconcilia as projeções de leitura do agendamento
// a partir do registro canônico.
func (h *ScheduleHandler) RebuildMirrors(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	publicID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Agendamento inválido.")
		return
	}

	if err := h.rebuildUC.Execute(c.Request.Context(), barberID, publicID); err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rebuilt": true})
}

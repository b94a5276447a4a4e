package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/payments"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
)

// ======================================================
// HANDLER (fluxo do cliente)
// ======================================================

type BookingHandler struct {
	db *gorm.DB

	createUC     *ucAppointment.CreateAppointment
	cancelUC     *ucAppointment.CancelAppointment
	rescheduleUC *ucAppointment.RescheduleAppointment
	listUC       *ucAppointment.ListUserAppointments

	payments *payments.Client
}

func NewBookingHandler(
	db *gorm.DB,
	createUC *ucAppointment.CreateAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	rescheduleUC *ucAppointment.RescheduleAppointment,
	listUC *ucAppointment.ListUserAppointments,
	payments *payments.Client,
) *BookingHandler {
	return &BookingHandler{
		db:           db,
		createUC:     createUC,
		cancelUC:     cancelUC,
		rescheduleUC: rescheduleUC,
		listUC:       listUC,
		payments:     payments,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	BarbershopID uint   `json:"barbershop_id" binding:"required"`
	BarberID     uint   `json:"barber_id" binding:"required"`
	ServiceID    uint   `json:"service_id" binding:"required"`
	Date         string `json:"date" binding:"required"` // YYYY-MM-DD
	Time         string `json:"time" binding:"required"` // HH:mm
}

type RescheduleBookingRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var shop models.Barbershop
	if err := h.db.First(&shop, req.BarbershopID).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	start, err := parseDateTimeInShop(&shop, req.Date, req.Time)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		BarbershopID: req.BarbershopID,
		UserID:       userID,
		BarberID:     req.BarberID,
		ServiceID:    req.ServiceID,
		StartAt:      start,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// CANCEL / RESCHEDULE
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	publicID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Agendamento inválido.")
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), userID, role, publicID)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *BookingHandler) Reschedule(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	publicID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Agendamento inválido.")
		return
	}

	var req RescheduleBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	// timezone da barbearia do agendamento
	var ap models.Appointment
	if err := h.db.Where("public_id = ?", publicID).First(&ap).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	var shop models.Barbershop
	if err := h.db.First(&shop, ap.BarbershopID).Error; err != nil {
		httperr.Internal(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	newStart, err := parseDateTimeInShop(&shop, req.Date, req.Time)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	updated, err := h.rescheduleUC.Execute(c.Request.Context(), userID, publicID, newStart)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// ======================================================
// LISTAGENS (espelho do cliente)
// ======================================================

func (h *BookingHandler) Upcoming(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	view, err := h.listUC.Upcoming(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao buscar agendamentos.")
		return
	}

	if view == nil {
		c.JSON(http.StatusOK, gin.H{"appointment": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": view})
}

func (h *BookingHandler) Past(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	limit := 10
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 50 {
			limit = n
		}
	}

	views, err := h.listUC.Past(c.Request.Context(), userID, limit)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao buscar agendamentos.")
		return
	}

	httpresp.List(c, views)
}

// ======================================================
// PAGAMENTO (link de checkout opcional)
// ======================================================

func (h *BookingHandler) PaymentLink(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	if h.payments == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "payments_disabled"})
		return
	}

	publicID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Agendamento inválido.")
		return
	}

	var ap models.Appointment
	if err := h.db.
		Where("public_id = ? AND user_id = ?", publicID, userID).
		First(&ap).Error; err != nil {

		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	link, err := h.payments.CreateBookingPreference(c.Request.Context(), &ap)
	if err != nil {
		httperr.Internal(c, "failed_to_create_payment", "Erro ao gerar link de pagamento.")
		return
	}

	c.JSON(http.StatusOK, link)
}

// ======================================================
// ERROS DE NEGÓCIO → HTTP
// ======================================================

// A resposta sempre diz POR QUE falhou: a próxima ação do usuário
// muda conforme o motivo (escolher outro horário x tentar de novo).
func writeBookingError(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "booking_failed", "Erro ao processar agendamento.")
		return
	}

	switch code {
	case "slot_no_longer_available":
		httperr.Conflict(c, code, "Esse horário acabou de ser reservado. Escolha outro.")
	case "slot_in_the_past":
		httperr.BadRequest(c, code, "Esse horário já passou.")
	case "outside_working_hours":
		httperr.BadRequest(c, code, "Fora do horário de atendimento.")
	case "working_hours_not_configured":
		httperr.BadRequest(c, code, "O barbeiro ainda não configurou o expediente.")
	case "invalid_state":
		httperr.BadRequest(c, code, "Esse agendamento não permite essa operação.")
	case "appointment_not_found":
		httperr.NotFound(c, code, "Agendamento não encontrado.")
	case "service_not_found":
		httperr.BadRequest(c, code, "Serviço inválido.")
	case "barber_not_found":
		httperr.BadRequest(c, code, "Barbeiro não encontrado.")
	case "barbershop_not_found":
		httperr.NotFound(c, code, "Barbearia não encontrada.")
	case "user_not_found":
		httperr.BadRequest(c, code, "Usuário inválido.")
	default:
		httperr.BadRequest(c, code, "Não foi possível concluir o agendamento.")
	}
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
)

// ======================================================
// HANDLER (vitrine pública por slug, sem autenticação)
// ======================================================

type PublicHandler struct {
	db             *gorm.DB
	availabilityUC *ucAppointment.GetAvailability
}

func NewPublicHandler(db *gorm.DB, availabilityUC *ucAppointment.GetAvailability) *PublicHandler {
	return &PublicHandler{db: db, availabilityUC: availabilityUC}
}

func (h *PublicHandler) findShop(c *gin.Context) (*models.Barbershop, bool) {
	slug := c.Param("slug")

	var shop models.Barbershop
	if err := h.db.Where("slug = ?", slug).First(&shop).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return nil, false
	}
	return &shop, true
}

// ======================================================
// PERFIL + SERVIÇOS
// ======================================================

func (h *PublicHandler) Profile(c *gin.Context) {
	shop, ok := h.findShop(c)
	if !ok {
		return
	}

	var barbers []models.User
	h.db.
		Where("barbershop_id = ? AND role <> ?", shop.ID, models.RoleClient).
		Order("id asc").
		Find(&barbers)

	barberList := make([]gin.H, 0, len(barbers))
	for _, b := range barbers {
		barberList = append(barberList, gin.H{
			"id":        b.ID,
			"name":      b.Name,
			"surname":   b.Surname,
			"image_url": b.ImageURL,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"barbershop": shopJSON(shop),
		"barbers":    barberList,
	})
}

func (h *PublicHandler) Services(c *gin.Context) {
	shop, ok := h.findShop(c)
	if !ok {
		return
	}

	var services []models.Service
	if err := h.db.
		Where("barbershop_id = ? AND active = ?", shop.ID, true).
		Order("name asc").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Erro ao buscar serviços.")
		return
	}

	httpresp.List(c, services)
}

// ======================================================
// DISPONIBILIDADE
// ======================================================

// Availability monta a grade do dia: ?date=YYYY-MM-DD&service_id=N[&barber_id=N].
// Sem barber_id, vale apenas quando a barbearia tem um único barbeiro.
func (h *PublicHandler) Availability(c *gin.Context) {
	shop, ok := h.findShop(c)
	if !ok {
		return
	}

	date, err := parseDateInShop(shop, c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida. Use YYYY-MM-DD.")
		return
	}

	serviceID, err := strconv.ParseUint(c.Query("service_id"), 10, 64)
	if err != nil || serviceID == 0 {
		httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
		return
	}

	barberID, ok := h.resolveBarber(c, shop)
	if !ok {
		return
	}

	result, err := h.availabilityUC.Execute(c.Request.Context(), ucAppointment.AvailabilityInput{
		BarbershopID: shop.ID,
		BarberID:     barberID,
		ServiceID:    uint(serviceID),
		Date:         date,
	})
	if err != nil {
		if code, isBiz := httperr.BusinessCode(err); isBiz {
			httperr.BadRequest(c, code, "Não foi possível montar a grade de horários.")
			return
		}
		httperr.Internal(c, "failed_to_get_availability", "Erro ao buscar horários.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":      c.Query("date"),
		"day_state": string(rune(result.DayState)),
		"slots":     result.Slots,
	})
}

func (h *PublicHandler) resolveBarber(c *gin.Context, shop *models.Barbershop) (uint, bool) {
	if v := c.Query("barber_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil || id == 0 {
			httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
			return 0, false
		}
		return uint(id), true
	}

	var barbers []models.User
	h.db.
		Where("barbershop_id = ? AND role <> ?", shop.ID, models.RoleClient).
		Limit(2).
		Find(&barbers)

	if len(barbers) != 1 {
		httperr.BadRequest(c, "barber_required", "Informe o barbeiro desejado.")
		return 0, false
	}
	return barbers[0].ID, true
}

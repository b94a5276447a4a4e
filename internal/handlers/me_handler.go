package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/storage"
)

// ======================================================
// HANDLER (perfil do usuário logado)
// ======================================================

type MeHandler struct {
	db     *gorm.DB
	images *storage.ImageStore
}

func NewMeHandler(db *gorm.DB, images *storage.ImageStore) *MeHandler {
	return &MeHandler{db: db, images: images}
}

func (h *MeHandler) Get(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	out := gin.H{"user": userJSON(&user)}

	if user.BarbershopID != nil {
		var shop models.Barbershop
		if err := h.db.First(&shop, *user.BarbershopID).Error; err == nil {
			out["barbershop"] = shopJSON(&shop)
		}
	}

	c.JSON(http.StatusOK, out)
}

type UpdateMeRequest struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Phone   string `json:"phone"`
}

func (h *MeHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Surname != "" {
		user.Surname = req.Surname
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}

	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user", "Erro ao atualizar perfil.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userJSON(&user)})
}

// UploadImage troca a foto de perfil (multipart, campo "image").
func (h *MeHandler) UploadImage(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	if h.images == nil || !h.images.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image_storage_disabled"})
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Envie o arquivo no campo 'image'.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Não foi possível ler a imagem.")
		return
	}
	defer file.Close()

	key := fmt.Sprintf("userImages/%d.webp", user.ID)

	url, err := h.images.UploadImage(c.Request.Context(), key, file)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_image", "Erro ao enviar imagem.")
		return
	}

	user.ImageURL = url
	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user", "Erro ao salvar imagem.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"image_url": url})
}

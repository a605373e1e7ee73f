package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	domain "github.com/fsw-barber/booking-api/internal/domain/booking"
	"github.com/fsw-barber/booking-api/internal/httperr"
	"github.com/fsw-barber/booking-api/internal/media"
	"github.com/fsw-barber/booking-api/internal/middleware"
	"github.com/fsw-barber/booking-api/internal/models"
)

type BarbershopHandler struct {
	db       *gorm.DB
	uploader *media.Uploader // nil when S3 is not configured
	views    domain.ViewCache
	log      *zap.Logger
}

func NewBarbershopHandler(
	db *gorm.DB,
	uploader *media.Uploader,
	views domain.ViewCache,
	log *zap.Logger,
) *BarbershopHandler {
	return &BarbershopHandler{
		db:       db,
		uploader: uploader,
		views:    views,
		log:      log,
	}
}

func (h *BarbershopHandler) GetMine(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var shop models.Barbershop
	if err := h.db.First(&shop, barbershopID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_barbershop", "Erro ao buscar dados da barbearia.")
		return
	}

	c.JSON(http.StatusOK, shop)
}

// UploadImage re-encodes the uploaded picture as webp and stores it in
// the object bucket; the shop's image URL feeds the home listing, so
// that view goes stale.
func (h *BarbershopHandler) UploadImage(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	if h.uploader == nil {
		httperr.Internal(c, "uploads_disabled", "Upload de imagens não configurado.")
		return
	}

	var shop models.Barbershop
	if err := h.db.First(&shop, barbershopID).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Envie uma imagem.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Imagem inválida.")
		return
	}
	defer src.Close()

	payload, err := media.Reencode(src)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Imagem inválida.")
		return
	}

	key := fmt.Sprintf("barbershops/%d/cover.webp", shop.ID)

	url, err := h.uploader.Put(c.Request.Context(), key, payload)
	if err != nil {
		h.log.Error("image upload failed",
			zap.Uint("barbershop_id", shop.ID),
			zap.Error(err))
		httperr.Internal(c, "upload_failed", "Erro ao enviar imagem.")
		return
	}

	shop.ImageURL = url
	if err := h.db.Save(&shop).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barbershop", "Erro ao salvar imagem.")
		return
	}

	if err := h.views.Invalidate(c.Request.Context(), domain.ViewHome); err != nil {
		h.log.Warn("home view invalidation failed", zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"image_url": url})
}

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	domain "github.com/fsw-barber/booking-api/internal/domain/booking"
	"github.com/fsw-barber/booking-api/internal/httperr"
	"github.com/fsw-barber/booking-api/internal/httpresp"
	"github.com/fsw-barber/booking-api/internal/locale"
	"github.com/fsw-barber/booking-api/internal/models"
	ucBooking "github.com/fsw-barber/booking-api/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db       *gorm.DB
	views    domain.ViewCache
	dayTimes *ucBooking.DayTimes
	log      *zap.Logger
}

func NewPublicHandler(
	db *gorm.DB,
	views domain.ViewCache,
	dayTimes *ucBooking.DayTimes,
	log *zap.Logger,
) *PublicHandler {
	return &PublicHandler{
		db:       db,
		views:    views,
		dayTimes: dayTimes,
		log:      log,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type ServiceDTO struct {
	ID             uint    `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Price          float64 `json:"price"`
	PriceFormatted string  `json:"price_formatted"`
	ImageURL       string  `json:"image_url"`
}

////////////////////////////////////////////////////////
// HOME LISTING (cached under the "/" view)
////////////////////////////////////////////////////////

func (h *PublicHandler) ListBarbershops(c *gin.Context) {
	ctx := c.Request.Context()

	if cached, err := h.views.Get(ctx, domain.ViewHome); err == nil && cached != nil {
		c.Data(http.StatusOK, "application/json", cached)
		return
	}

	var shops []models.Barbershop
	if err := h.db.Order("name ASC").Find(&shops).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbershops", "Erro ao listar barbearias.")
		return
	}

	payload, err := json.Marshal(httpresp.ListResponse[models.Barbershop]{
		Data:  shops,
		Total: len(shops),
	})
	if err != nil {
		httperr.Internal(c, "failed_to_list_barbershops", "Erro ao listar barbearias.")
		return
	}

	if err := h.views.Put(ctx, domain.ViewHome, payload); err != nil {
		h.log.Warn("home view cache write failed", zap.Error(err))
	}

	c.Data(http.StatusOK, "application/json", payload)
}

////////////////////////////////////////////////////////
// BARBERSHOP DETAIL + SERVICES
////////////////////////////////////////////////////////

func (h *PublicHandler) GetBarbershop(c *gin.Context) {
	slug := c.Param("slug")

	var shop models.Barbershop
	if err := h.db.Where("slug = ?", slug).First(&shop).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	var services []models.Service
	if err := h.db.
		Where("barbershop_id = ? AND active = true", shop.ID).
		Order("id ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	out := make([]ServiceDTO, 0, len(services))
	for _, svc := range services {
		price, err := locale.FormatCurrency(svc.Price)
		if err != nil {
			httperr.Internal(c, "invalid_price", "Erro ao formatar preço.")
			return
		}

		out = append(out, ServiceDTO{
			ID:             svc.ID,
			Name:           svc.Name,
			Description:    svc.Description,
			Price:          svc.Price,
			PriceFormatted: price,
			ImageURL:       svc.ImageURL,
		})
	}

	httpresp.OK(c, gin.H{
		"barbershop": shop,
		"services":   out,
	})
}

////////////////////////////////////////////////////////
// DAY TIMES
////////////////////////////////////////////////////////

func (h *PublicHandler) DayTimes(c *gin.Context) {
	slug := c.Param("slug")
	dateStr := c.Query("date")

	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	var shop models.Barbershop
	if err := h.db.Where("slug = ?", slug).First(&shop).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	date, err := parseDateInShop(&shop, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	times, err := h.dayTimes.Execute(c.Request.Context(), shop.ID, date)
	if err != nil {
		httperr.Internal(c, "day_times_failed", "Erro ao calcular horários.")
		return
	}

	httpresp.OK(c, gin.H{
		"date":  dateStr,
		"times": times,
	})
}

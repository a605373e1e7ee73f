package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/fsw-barber/booking-api/internal/domain/booking"
	"github.com/fsw-barber/booking-api/internal/httperr"
	"github.com/fsw-barber/booking-api/internal/httpresp"
	"github.com/fsw-barber/booking-api/internal/middleware"
	ucBooking "github.com/fsw-barber/booking-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	submit *ucBooking.Submit
	list   *ucBooking.ListForUser
	cancel *ucBooking.Cancel
}

func NewBookingHandler(
	submit *ucBooking.Submit,
	list *ucBooking.ListForUser,
	cancel *ucBooking.Cancel,
) *BookingHandler {
	return &BookingHandler{
		submit: submit,
		list:   list,
		cancel: cancel,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	BarbershopID uint    `json:"barbershop_id" binding:"required"`
	ServiceID    uint    `json:"service_id" binding:"required"`
	Date         *string `json:"date"` // YYYY-MM-DD
	Time         *string `json:"time"` // HH:mm, from the day-times listing
}

// ======================================================
// CREATE
// ======================================================

// Create runs under optional auth on purpose: the submitter itself
// rejects unauthenticated attempts so the client can redirect to
// sign-in instead of silently losing the booking.
func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	sel := domain.Selection{
		BarbershopID: req.BarbershopID,
		ServiceID:    req.ServiceID,
		Hour:         req.Time,
	}

	if userIDVal, ok := c.Get(middleware.ContextUserID); ok {
		sel.UserID = userIDVal.(uint)
		sel.Authenticated = true
	}

	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		sel.Date = &date
	}

	conf, err := h.submit.Execute(c.Request.Context(), domain.NewAttempt(sel))
	if err != nil {
		h.mapSubmitError(c, err)
		return
	}

	httpresp.Created(c, conf)
}

func (h *BookingHandler) mapSubmitError(c *gin.Context, err error) {
	switch httperr.BusinessCode(err) {
	case domain.CodeAuthenticationRequired:
		c.JSON(http.StatusUnauthorized, gin.H{
			"error_code": domain.CodeAuthenticationRequired,
			"message":    "Faça login para reservar.",
			"sign_in":    "/api/auth/login",
		})
	case domain.CodeIncompleteSelection, domain.CodeInvalidTime:
		httperr.BadRequest(c, httperr.BusinessCode(err), "Escolha uma data e um horário.")
	case domain.CodeTimeConflict:
		httperr.BadRequest(c, domain.CodeTimeConflict, "Horário indisponível.")
	case domain.CodeBarbershopNotFound, domain.CodeServiceNotFound:
		httperr.BadRequest(c, httperr.BusinessCode(err), "Barbearia ou serviço inválido.")
	case domain.CodeSubmissionInProgress:
		httperr.BadRequest(c, domain.CodeSubmissionInProgress, "Reserva já em andamento.")
	default:
		httperr.Internal(c, domain.CodePersistenceFailure, "Não foi possível concluir a reserva.")
	}
}

// ======================================================
// LIST (mine)
// ======================================================

func (h *BookingHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	bookings, err := h.list.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Erro ao listar reservas.")
		return
	}

	httpresp.List(c, bookings)
}

// ======================================================
// CANCEL
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Reserva inválida.")
		return
	}

	bk, err := h.cancel.Execute(c.Request.Context(), userID, uint(id))
	if err != nil {
		switch httperr.BusinessCode(err) {
		case domain.CodeBookingNotFound:
			httperr.NotFound(c, domain.CodeBookingNotFound, "Reserva não encontrada.")
		case domain.CodeInvalidState:
			httperr.BadRequest(c, domain.CodeInvalidState, "Reserva não pode ser cancelada.")
		default:
			httperr.Internal(c, "failed_to_cancel_booking", "Erro ao cancelar reserva.")
		}
		return
	}

	httpresp.OK(c, bk)
}

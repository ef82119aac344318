package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mamede573/BarberManager/internal/civil"
	domain "github.com/mamede573/BarberManager/internal/domain/appointment"
	"github.com/mamede573/BarberManager/internal/httperr"
	"github.com/mamede573/BarberManager/internal/httpresp"
	"github.com/mamede573/BarberManager/internal/middleware"
	"github.com/mamede573/BarberManager/internal/redisx"
	ucAppointment "github.com/mamede573/BarberManager/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	repo           domain.Repository
	availabilityUC *ucAppointment.GetAvailability
	createUC       *ucAppointment.CreateAppointment
	rescheduleUC   *ucAppointment.RescheduleAppointment
	cancelUC       *ucAppointment.CancelAppointment
	confirmUC      *ucAppointment.ConfirmAppointment
	completeUC     *ucAppointment.CompleteAppointment
	payUC          *ucAppointment.MarkAppointmentPaid
	listUC         *ucAppointment.ListMyAppointments
}

func NewAppointmentHandler(
	repo domain.Repository,
	availabilityUC *ucAppointment.GetAvailability,
	createUC *ucAppointment.CreateAppointment,
	rescheduleUC *ucAppointment.RescheduleAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	confirmUC *ucAppointment.ConfirmAppointment,
	completeUC *ucAppointment.CompleteAppointment,
	payUC *ucAppointment.MarkAppointmentPaid,
	listUC *ucAppointment.ListMyAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		repo:           repo,
		availabilityUC: availabilityUC,
		createUC:       createUC,
		rescheduleUC:   rescheduleUC,
		cancelUC:       cancelUC,
		confirmUC:      confirmUC,
		completeUC:     completeUC,
		payUC:          payUC,
		listUC:         listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	BarberID      string   `json:"barber_id" binding:"required"`
	ServiceIDs    []string `json:"service_ids" binding:"required"`
	Date          string   `json:"date" binding:"required"` // YYYY-MM-DD
	Time          string   `json:"time" binding:"required"` // HH:mm
	TotalPrice    float64  `json:"total_price" binding:"required"`
	PaymentMethod string   `json:"payment_method"`
}

type RescheduleAppointmentRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

type PayAppointmentRequest struct {
	PaymentMethod string `json:"payment_method"`
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	barberID := c.Param("id")
	dateStr := c.Query("date")
	serviceIDsStr := c.Query("service_ids")

	if dateStr == "" || serviceIDsStr == "" {
		httperr.BadRequest(c, "missing_params", "Data e serviços obrigatórios.")
		return
	}

	date, err := civil.ParseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	serviceIDs := splitIDs(serviceIDsStr)
	if len(serviceIDs) == 0 {
		httperr.BadRequest(c, "empty_service_list", "Informe ao menos um serviço.")
		return
	}

	if _, err := h.repo.GetBarber(c.Request.Context(), barberID); err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	slots, err := h.availabilityUC.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			BarberID:   barberID,
			Date:       date,
			ServiceIDs: serviceIDs,
		},
	)

	if err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			httperr.BadRequest(c, code, "Parâmetros inválidos.")
			return
		}

		// falha de leitura ≠ "sem horários": aqui é 500, lista vazia é 200
		httperr.Internal(c, "availability_failed", "Erro ao calcular horários.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  date.String(),
		"slots": slots,
	})
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(string)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.createUC.Execute(
		c.Request.Context(),
		ucAppointment.CreateAppointmentInput{
			ClientID:      clientID,
			BarberID:      req.BarberID,
			ServiceIDs:    req.ServiceIDs,
			Date:          req.Date,
			Time:          req.Time,
			TotalPrice:    req.TotalPrice,
			PaymentMethod: req.PaymentMethod,
		},
	)

	if err != nil {
		mapAppointmentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// RESCHEDULE
// ======================================================

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	var req RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.rescheduleUC.Execute(
		c.Request.Context(),
		ucAppointment.RescheduleAppointmentInput{
			ClientID:      clientID,
			AppointmentID: id,
			Date:          req.Date,
			Time:          req.Time,
		},
	)

	if err != nil {
		mapAppointmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// LIST / GET
// ======================================================

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(string)

	out, err := h.listUC.Execute(c.Request.Context(), clientID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) GetMine(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	ap, err := h.repo.GetAppointmentForClient(c.Request.Context(), id, clientID)
	if err != nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// CANCEL / PAY
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	ap, err := h.cancelUC.Execute(c.Request.Context(), clientID, id)
	if err != nil {
		mapAppointmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) Pay(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	var req PayAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.payUC.Execute(c.Request.Context(), clientID, id, req.PaymentMethod)
	if err != nil {
		mapAppointmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// CONFIRM / COMPLETE (lado admin)
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	id := c.Param("id")

	ap, err := h.confirmUC.Execute(c.Request.Context(), id)
	if err != nil {
		mapAppointmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	id := c.Param("id")

	ap, err := h.completeUC.Execute(c.Request.Context(), id)
	if err != nil {
		mapAppointmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// HELPERS
// ======================================================

func splitIDs(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func mapAppointmentError(c *gin.Context, err error) {
	if errors.Is(err, redisx.ErrLockNotAcquired) {
		httperr.Conflict(c, "booking_busy", "Agenda ocupada, tente novamente.")
		return
	}

	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	switch code {
	case "time_conflict":
		httperr.Conflict(c, code, "Horário indisponível.")
	case "appointment_not_found":
		httperr.NotFound(c, code, "Agendamento não encontrado.")
	case "barber_not_found":
		httperr.NotFound(c, code, "Barbeiro não encontrado.")
	case "invalid_state":
		httperr.BadRequest(c, code, "Agendamento não permite essa operação.")
	case "empty_service_list":
		httperr.BadRequest(c, code, "Informe ao menos um serviço.")
	case "invalid_date", "invalid_time", "invalid_duration":
		httperr.BadRequest(c, code, "Data ou hora inválida.")
	case "already_paid":
		httperr.BadRequest(c, code, "Agendamento já pago.")
	default:
		httperr.BadRequest(c, code, "Requisição inválida.")
	}
}

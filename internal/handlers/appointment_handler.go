package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/appointment-api/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-api/internal/dto"
	"github.com/BruksfildServices01/appointment-api/internal/httperr"
	"github.com/BruksfildServices01/appointment-api/internal/httpresp"
	"github.com/BruksfildServices01/appointment-api/internal/metrics"
	"github.com/BruksfildServices01/appointment-api/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/appointment-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	list   *ucAppointment.ListAppointments
	create *ucAppointment.CreateAppointment
	update *ucAppointment.UpdateAppointment
	delete *ucAppointment.DeleteAppointment

	policy  httperr.Policy
	metrics *metrics.Collector
}

func NewAppointmentHandler(
	list *ucAppointment.ListAppointments,
	create *ucAppointment.CreateAppointment,
	update *ucAppointment.UpdateAppointment,
	remove *ucAppointment.DeleteAppointment,
	policy httperr.Policy,
	collector *metrics.Collector,
) *AppointmentHandler {
	return &AppointmentHandler{
		list:    list,
		create:  create,
		update:  update,
		delete:  remove,
		policy:  policy,
		metrics: collector,
	}
}

func (h *AppointmentHandler) fail(c *gin.Context, operation string, err error) {
	h.metrics.ObserveOperation(operation, err)
	h.policy.Respond(c, err)
}

func bindFields(c *gin.Context) (domain.Fields, error) {
	var fields domain.Fields
	if err := c.ShouldBindJSON(&fields); err != nil {
		return nil, httperr.Validation("invalid_request", "Request body must be a JSON object.")
	}
	return fields, nil
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	apps, err := h.list.Execute(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		h.fail(c, "list", err)
		return
	}

	h.metrics.ObserveOperation("list", nil)
	httpresp.OK(c, apps)
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	payload, err := bindFields(c)
	if err != nil {
		h.fail(c, "create", err)
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), middleware.CallerID(c), payload)
	if err != nil {
		h.fail(c, "create", err)
		return
	}

	h.metrics.ObserveOperation("create", nil)
	httpresp.Created(c, ap)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	patch, err := bindFields(c)
	if err != nil {
		h.fail(c, "update", err)
		return
	}

	ap, err := h.update.Execute(
		c.Request.Context(),
		middleware.CallerID(c),
		c.Param("id"),
		patch,
	)
	if err != nil {
		h.fail(c, "update", err)
		return
	}

	h.metrics.ObserveOperation("update", nil)
	httpresp.OK(c, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, err := h.delete.Execute(
		c.Request.Context(),
		middleware.CallerID(c),
		c.Param("id"),
	)
	if err != nil {
		h.fail(c, "delete", err)
		return
	}

	h.metrics.ObserveOperation("delete", nil)
	httpresp.OK(c, dto.AppointmentDeletedDTO{ID: id})
}

package identity

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hms/hms/internal/access"
	"github.com/hms/hms/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	// HEAD /patients doubles as the client's availability probe.
	api.HEAD("/patients", h.PingPatients)
	api.GET("/patients", h.ListPatients)
	api.GET("/patients/:id", h.GetPatient)
	api.POST("/patients", h.CreatePatient, auth.RequireCapability(access.CanEditPatients))
	api.PUT("/patients/:id", h.UpdatePatient, auth.RequireCapability(access.CanEditPatients))
	api.DELETE("/patients/:id", h.DeletePatient, auth.RequireCapability(access.CanDeletePatients))

	api.GET("/physicians", h.ListPhysicians)
	api.GET("/physicians/:id", h.GetPhysician)
	api.POST("/physicians", h.CreatePhysician, auth.RequireCapability(access.CanEditPhysicians))
	api.PUT("/physicians/:id", h.UpdatePhysician, auth.RequireCapability(access.CanEditPhysicians))
	api.DELETE("/physicians/:id", h.DeletePhysician, auth.RequireCapability(access.CanEditPhysicians))
}

func jsonError(c echo.Context, err error) error {
	status := http.StatusBadRequest
	if errors.Is(err, ErrNotFound) {
		status = http.StatusNotFound
	}
	return c.JSON(status, map[string]interface{}{"error": err.Error()})
}

func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// -- Patient Handlers --

func (h *Handler) PingPatients(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func (h *Handler) ListPatients(c echo.Context) error {
	patients, err := h.svc.ListPatients(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, patients)
}

func (h *Handler) GetPatient(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return jsonError(c, err)
	}
	p, err := h.svc.GetPatient(c.Request().Context(), id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) CreatePatient(c echo.Context) error {
	var p Patient
	if err := c.Bind(&p); err != nil {
		return jsonError(c, err)
	}
	if err := h.svc.CreatePatient(c.Request().Context(), &p); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success":   true,
		"PatientID": p.PatientID,
		"message":   "Patient added successfully",
	})
}

func (h *Handler) UpdatePatient(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return jsonError(c, err)
	}
	var p Patient
	if err := c.Bind(&p); err != nil {
		return jsonError(c, err)
	}
	p.PatientID = id
	if err := h.svc.UpdatePatient(c.Request().Context(), &p); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Patient updated successfully",
	})
}

func (h *Handler) DeletePatient(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return jsonError(c, err)
	}
	if err := h.svc.DeletePatient(c.Request().Context(), id); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Patient deleted successfully",
	})
}

// -- Physician Handlers --

func (h *Handler) ListPhysicians(c echo.Context) error {
	physicians, err := h.svc.ListPhysicians(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, physicians)
}

func (h *Handler) GetPhysician(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return jsonError(c, err)
	}
	p, err := h.svc.GetPhysician(c.Request().Context(), id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) CreatePhysician(c echo.Context) error {
	var p Physician
	if err := c.Bind(&p); err != nil {
		return jsonError(c, err)
	}
	if err := h.svc.CreatePhysician(c.Request().Context(), &p); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success":     true,
		"PhysicianID": p.PhysicianID,
		"message":     "Physician added successfully",
	})
}

func (h *Handler) UpdatePhysician(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return jsonError(c, err)
	}
	var p Physician
	if err := c.Bind(&p); err != nil {
		return jsonError(c, err)
	}
	p.PhysicianID = id
	if err := h.svc.UpdatePhysician(c.Request().Context(), &p); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Physician updated successfully",
	})
}

func (h *Handler) DeletePhysician(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return jsonError(c, err)
	}
	if err := h.svc.DeletePhysician(c.Request().Context(), id); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Physician deleted successfully",
	})
}

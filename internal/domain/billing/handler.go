package billing

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
	edit := auth.RequireCapability(access.CanEditBilling)

	api.GET("/billing", h.ListInvoices)
	api.GET("/billing/:id", h.GetInvoice)
	api.POST("/billing", h.CreateInvoice, edit)
	api.PUT("/billing/:id", h.UpdateInvoice, edit)
	api.DELETE("/billing/:id", h.DeleteInvoice, edit)

	api.GET("/insurance", h.ListInsurance)
	api.GET("/insurance/:id", h.GetInsurance)
	api.POST("/insurance", h.CreateInsurance, edit)
	api.PUT("/insurance/:id", h.UpdateInsurance, edit)
	api.DELETE("/insurance/:id", h.DeleteInsurance, edit)

	api.GET("/claims", h.ListClaims)
	api.GET("/claims/:id", h.GetClaim)
	api.POST("/claims", h.CreateClaim, edit)
	api.PUT("/claims/:id", h.UpdateClaim, edit)
	api.DELETE("/claims/:id", h.DeleteClaim, edit)
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

// -- Invoice Handlers --

func (h *Handler) ListInvoices(c echo.Context) error {
	invoices, err := h.svc.ListInvoices(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, invoices)
}

func (h *Handler) GetInvoice(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return jsonError(c, err)
	}
	inv, err := h.svc.GetInvoice(c.Request().Context(), id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, inv)
}

func (h *Handler) CreateInvoice(c echo.Context) error {
	var inv Invoice
	if err := c.Bind(&inv); err != nil {
		return jsonError(c, err)
	}
	if err := h.svc.CreateInvoice(c.Request().Context(), &inv); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success":   true,
		"BillingID": inv.BillingID,
		"message":   "Invoice added successfully",
	})
}

func (h *Handler) UpdateInvoice(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return jsonError(c, err)
	}
	var inv Invoice
	if err := c.Bind(&inv); err != nil {
		return jsonError(c, err)
	}
	inv.BillingID = id
	if err := h.svc.UpdateInvoice(c.Request().Context(), &inv); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Invoice updated successfully",
	})
}

func (h *Handler) DeleteInvoice(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return jsonError(c, err)
	}
	if err := h.svc.DeleteInvoice(c.Request().Context(), id); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Invoice deleted successfully",
	})
}

// -- Insurance Handlers --

func (h *Handler) ListInsurance(c echo.Context) error {
	providers, err := h.svc.ListInsurance(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, providers)
}

func (h *Handler) GetInsurance(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return jsonError(c, err)
	}
	ins, err := h.svc.GetInsurance(c.Request().Context(), id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, ins)
}

func (h *Handler) CreateInsurance(c echo.Context) error {
	var ins Insurance
	if err := c.Bind(&ins); err != nil {
		return jsonError(c, err)
	}
	if err := h.svc.CreateInsurance(c.Request().Context(), &ins); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success":     true,
		"InsuranceID": ins.InsuranceID,
		"message":     "Insurance provider added successfully",
	})
}

func (h *Handler) UpdateInsurance(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return jsonError(c, err)
	}
	var ins Insurance
	if err := c.Bind(&ins); err != nil {
		return jsonError(c, err)
	}
	ins.InsuranceID = id
	if err := h.svc.UpdateInsurance(c.Request().Context(), &ins); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Insurance provider updated successfully",
	})
}

func (h *Handler) DeleteInsurance(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return jsonError(c, err)
	}
	if err := h.svc.DeleteInsurance(c.Request().Context(), id); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Insurance provider deleted successfully",
	})
}

// -- Claim Handlers --

func (h *Handler) ListClaims(c echo.Context) error {
	claims, err := h.svc.ListClaims(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, claims)
}

func (h *Handler) GetClaim(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return jsonError(c, err)
	}
	cl, err := h.svc.GetClaim(c.Request().Context(), id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, cl)
}

func (h *Handler) CreateClaim(c echo.Context) error {
	var cl InsuranceClaim
	if err := c.Bind(&cl); err != nil {
		return jsonError(c, err)
	}
	if err := h.svc.CreateClaim(c.Request().Context(), &cl); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success":          true,
		"InsuranceClaimID": cl.InsuranceClaimID,
		"message":          "Insurance claim added successfully",
	})
}

func (h *Handler) UpdateClaim(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return jsonError(c, err)
	}
	var cl InsuranceClaim
	if err := c.Bind(&cl); err != nil {
		return jsonError(c, err)
	}
	cl.InsuranceClaimID = id
	if err := h.svc.UpdateClaim(c.Request().Context(), &cl); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Insurance claim updated successfully",
	})
}

func (h *Handler) DeleteClaim(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return jsonError(c, err)
	}
	if err := h.svc.DeleteClaim(c.Request().Context(), id); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Insurance claim deleted successfully",
	})
}

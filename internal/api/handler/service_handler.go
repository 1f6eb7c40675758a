package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/salonhq/salon-system/internal/core/ports"
)

// ServiceHandler handles HTTP requests for the service catalog.
type ServiceHandler struct {
	catalog ports.CatalogService
}

func NewServiceHandler(catalog ports.CatalogService) *ServiceHandler {
	return &ServiceHandler{catalog: catalog}
}

type serviceRequest struct {
	Name            string  `json:"name"             validate:"required"`
	DurationMinutes int     `json:"duration_minutes" validate:"required,gt=0"`
	Category        *string `json:"category"`
}

type patchServiceRequest struct {
	Name            *string `json:"name"`
	DurationMinutes *int    `json:"duration_minutes"`
	Category        *string `json:"category"`
}

// Create handles POST /services.
//
// @Summary      Add a catalog service
// @Tags         services
// @Accept       json
// @Produce      json
// @Param        body  body      serviceRequest  true  "Service details"
// @Success      201   {object}  domain.Service
// @Failure      400   {object}  errorResponse
// @Router       /services [post]
func (h *ServiceHandler) Create(c echo.Context) error {
	var req serviceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	svc, err := h.catalog.Create(c.Request().Context(), ports.CreateServiceInput{
		Name:            req.Name,
		DurationMinutes: req.DurationMinutes,
		Category:        req.Category,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, svc)
}

// List handles GET /services, returning active catalog entries only.
//
// @Summary      List active services
// @Tags         services
// @Produce      json
// @Success      200  {array}  domain.Service
// @Router       /services [get]
func (h *ServiceHandler) List(c echo.Context) error {
	services, err := h.catalog.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, services)
}

// Get handles GET /services/:id.
//
// @Summary      Get a service by id
// @Tags         services
// @Produce      json
// @Param        id   path      int  true  "Service id"
// @Success      200  {object}  domain.Service
// @Failure      404  {object}  errorResponse
// @Router       /services/{id} [get]
func (h *ServiceHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	svc, err := h.catalog.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, svc)
}

// Update handles PUT /services/:id (full replacement).
//
// @Summary      Update a service
// @Tags         services
// @Accept       json
// @Produce      json
// @Param        id    path      int             true  "Service id"
// @Param        body  body      serviceRequest  true  "New details"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /services/{id} [put]
func (h *ServiceHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req serviceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if err := h.catalog.Update(c.Request().Context(), id, ports.CreateServiceInput{
		Name:            req.Name,
		DurationMinutes: req.DurationMinutes,
		Category:        req.Category,
	}); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Service updated successfully"})
}

// Patch handles PATCH /services/:id (partial update, at least one field).
//
// @Summary      Partially update a service
// @Tags         services
// @Accept       json
// @Produce      json
// @Param        id    path      int                  true  "Service id"
// @Param        body  body      patchServiceRequest  true  "Fields to change"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /services/{id} [patch]
func (h *ServiceHandler) Patch(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req patchServiceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if req.Name == nil && req.DurationMinutes == nil && req.Category == nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "no fields to update"})
	}
	if req.DurationMinutes != nil && *req.DurationMinutes <= 0 {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "duration_minutes must be greater than 0"})
	}

	if err := h.catalog.Patch(c.Request().Context(), id, ports.PatchServiceInput{
		Name:            req.Name,
		DurationMinutes: req.DurationMinutes,
		Category:        req.Category,
	}); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Service updated successfully"})
}

// Delete handles DELETE /services/:id. The record is deactivated, not removed.
//
// @Summary      Deactivate a service
// @Tags         services
// @Produce      json
// @Param        id   path      int  true  "Service id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /services/{id} [delete]
func (h *ServiceHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.catalog.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Service deactivated"})
}

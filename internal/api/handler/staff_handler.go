package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/salonhq/salon-system/internal/core/ports"
)

// StaffHandler handles HTTP requests for staff management.
type StaffHandler struct {
	service ports.StaffService
}

func NewStaffHandler(service ports.StaffService) *StaffHandler {
	return &StaffHandler{service: service}
}

type staffRequest struct {
	Name string `json:"name" validate:"required"`
	Role string `json:"role" validate:"required"`
}

type patchStaffRequest struct {
	Name *string `json:"name"`
	Role *string `json:"role"`
}

// Create handles POST /staff.
//
// @Summary      Add a staff member
// @Tags         staff
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      staffRequest  true  "Staff member details"
// @Success      201   {object}  domain.StaffMember
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /staff [post]
func (h *StaffHandler) Create(c echo.Context) error {
	var req staffRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	member, err := h.service.Create(c.Request().Context(), req.Name, req.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, member)
}

// List handles GET /staff, returning active staff only.
//
// @Summary      List active staff members
// @Tags         staff
// @Produce      json
// @Success      200  {array}  domain.StaffMember
// @Router       /staff [get]
func (h *StaffHandler) List(c echo.Context) error {
	members, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, members)
}

// Get handles GET /staff/:id.
//
// @Summary      Get a staff member by id
// @Tags         staff
// @Produce      json
// @Param        id   path      int  true  "Staff member id"
// @Success      200  {object}  domain.StaffMember
// @Failure      404  {object}  errorResponse
// @Router       /staff/{id} [get]
func (h *StaffHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	member, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, member)
}

// Update handles PUT /staff/:id (full replacement of name and role).
//
// @Summary      Update a staff member
// @Tags         staff
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int           true  "Staff member id"
// @Param        body  body      staffRequest  true  "New details"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /staff/{id} [put]
func (h *StaffHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req staffRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if err := h.service.Update(c.Request().Context(), id, req.Name, req.Role); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Staff member updated successfully"})
}

// Patch handles PATCH /staff/:id (partial update, at least one field).
//
// @Summary      Partially update a staff member
// @Tags         staff
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "Staff member id"
// @Param        body  body      patchStaffRequest  true  "Fields to change"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /staff/{id} [patch]
func (h *StaffHandler) Patch(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req patchStaffRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if req.Name == nil && req.Role == nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "no fields to update"})
	}

	if err := h.service.Patch(c.Request().Context(), id, ports.PatchStaffInput{
		Name: req.Name,
		Role: req.Role,
	}); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Staff member updated successfully"})
}

// Delete handles DELETE /staff/:id. The record is deactivated, not removed.
//
// @Summary      Deactivate a staff member
// @Tags         staff
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Staff member id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /staff/{id} [delete]
func (h *StaffHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Staff member deactivated"})
}

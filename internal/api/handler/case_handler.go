package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fastlegal/case-service/internal/core/ports"
)

// CaseHandler handles HTTP requests for case records. All routes sit behind
// the auth gate; failures beyond validation bubble up to the central error
// handler.
type CaseHandler struct {
	service ports.CaseService
}

func NewCaseHandler(service ports.CaseService) *CaseHandler {
	return &CaseHandler{service: service}
}

type caseRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// Create handles POST /api/cases.
//
// @Summary      Create a case record
// @Tags         cases
// @Accept       json
// @Produce      json
// @Param        x-auth-token  header    string       true  "Session token"
// @Param        body          body      caseRequest  true  "Case fields"
// @Success      200           {object}  domain.Case
// @Failure      400           {object}  msgResponse
// @Failure      401           {object}  msgResponse
// @Failure      500           {object}  msgResponse
// @Router       /api/cases [post]
func (h *CaseHandler) Create(c echo.Context) error {
	var req caseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, msgResponse{Msg: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		var fe *FieldErrors
		if errors.As(err, &fe) {
			return c.JSON(http.StatusBadRequest, fe)
		}
		return c.JSON(http.StatusBadRequest, msgResponse{Msg: err.Error()})
	}

	created, err := h.service.Create(c.Request().Context(), req.Title, req.Content)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, created)
}

// Update handles PUT /api/cases/:id.
//
// @Summary      Update a case record
// @Tags         cases
// @Accept       json
// @Produce      json
// @Param        x-auth-token  header    string       true  "Session token"
// @Param        id            path      string       true  "Case id"
// @Param        body          body      caseRequest  true  "Case fields"
// @Success      200           {object}  domain.Case
// @Failure      400           {object}  msgResponse
// @Failure      401           {object}  msgResponse
// @Failure      404           {object}  msgResponse
// @Failure      500           {object}  msgResponse
// @Router       /api/cases/{id} [put]
func (h *CaseHandler) Update(c echo.Context) error {
	var req caseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, msgResponse{Msg: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		var fe *FieldErrors
		if errors.As(err, &fe) {
			return c.JSON(http.StatusBadRequest, fe)
		}
		return c.JSON(http.StatusBadRequest, msgResponse{Msg: err.Error()})
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), req.Title, req.Content)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/cases/:id. Deleting an unknown id still
// returns 204.
//
// @Summary      Delete a case record
// @Tags         cases
// @Param        x-auth-token  header  string  true  "Session token"
// @Param        id            path    string  true  "Case id"
// @Success      204
// @Failure      401  {object}  msgResponse
// @Failure      500  {object}  msgResponse
// @Router       /api/cases/{id} [delete]
func (h *CaseHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// List handles GET /api/cases.
//
// @Summary      List all case records
// @Tags         cases
// @Produce      json
// @Param        x-auth-token  header    string  true  "Session token"
// @Success      200           {array}   domain.Case
// @Failure      401           {object}  msgResponse
// @Failure      500           {object}  msgResponse
// @Router       /api/cases [get]
func (h *CaseHandler) List(c echo.Context) error {
	cases, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cases)
}

// Get handles GET /api/cases/:id.
//
// @Summary      Get a case record by id
// @Tags         cases
// @Produce      json
// @Param        x-auth-token  header    string  true  "Session token"
// @Param        id            path      string  true  "Case id"
// @Success      200           {object}  domain.Case
// @Failure      401           {object}  msgResponse
// @Failure      404           {object}  msgResponse
// @Failure      500           {object}  msgResponse
// @Router       /api/cases/{id} [get]
func (h *CaseHandler) Get(c echo.Context) error {
	found, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, found)
}

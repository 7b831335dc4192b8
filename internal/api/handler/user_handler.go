package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fastlegal/case-service/internal/core/ports"
)

// UserHandler handles account management for authenticated users.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type countResponse struct {
	Count int64 `json:"count"`
}

// UpdateProfile handles PUT /user. The target account is the one asserted by
// the caller's own token.
//
// @Summary      Update the authenticated user's profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        x-auth-token  header    string              true  "Session token"
// @Param        body          body      credentialsRequest  true  "New username and password"
// @Success      200           {object}  msgResponse
// @Failure      400           {object}  msgResponse
// @Failure      401           {object}  msgResponse
// @Failure      404           {object}  msgResponse
// @Failure      500           {object}  msgResponse
// @Router       /user [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req credentialsRequest
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

	if err := h.service.UpdateProfile(c.Request().Context(), userID, req.Username, req.Password); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msgResponse{Msg: "User updated successfully"})
}

// List handles GET /api/users. Password hashes never appear in the response;
// the domain type excludes them from serialization.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Param        x-auth-token  header    string  true  "Session token"
// @Success      200           {array}   domain.User
// @Failure      401           {object}  msgResponse
// @Failure      500           {object}  msgResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Count handles GET /api/users/count.
//
// @Summary      Count registered users
// @Tags         users
// @Produce      json
// @Param        x-auth-token  header    string  true  "Session token"
// @Success      200           {object}  countResponse
// @Failure      401           {object}  msgResponse
// @Failure      500           {object}  msgResponse
// @Router       /api/users/count [get]
func (h *UserHandler) Count(c echo.Context) error {
	n, err := h.service.Count(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, countResponse{Count: n})
}

// Delete handles DELETE /api/users/:id. Deleting an unknown id still
// returns 204.
//
// @Summary      Delete a user by id
// @Tags         users
// @Param        x-auth-token  header  string  true  "Session token"
// @Param        id            path    string  true  "User id"
// @Success      204
// @Failure      401  {object}  msgResponse
// @Failure      500  {object}  msgResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

package vehicle

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	vs "github.com/guburchardt/kingsystem-backoffice/service/vehicle"
)

type Controller struct {
	Svc vs.Service
	V   *validator.Validate
	Log *slog.Logger
}

type createReq struct {
	Name     string `json:"name" validate:"required"`
	Category string `json:"category" validate:"required"`
	Plate    string `json:"plate"`
	Seats    int64  `json:"seats" validate:"required,gt=0"`
}

// GET /v1/vehicles
func (h *Controller) List(c echo.Context) error {
	out, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("vehicle list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": out})
}

// GET /v1/vehicles/:id
func (h *Controller) Detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	v, err := h.Svc.Detail(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "vehicle not found"})
		}
		h.Log.Error("vehicle detail", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, v)
}

// POST /v1/vehicles
func (h *Controller) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	id, err := h.Svc.Create(c.Request().Context(), req.Name, req.Category, req.Plate, req.Seats)
	if err != nil {
		h.Log.Error("vehicle create", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

package courtesy

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	cs "github.com/guburchardt/kingsystem-backoffice/service/courtesy"
)

type Controller struct {
	Svc cs.Service
	V   *validator.Validate
	Log *slog.Logger
}

type grantReq struct {
	ItemID   int64 `json:"item_id" validate:"required,gt=0"`
	Quantity int64 `json:"quantity" validate:"required,gt=0"`
}

// GET /v1/courtesy-items
func (h *Controller) Items(c echo.Context) error {
	items, err := h.Svc.Items(c.Request().Context())
	if err != nil {
		h.Log.Error("courtesy items", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": items})
}

// GET /v1/rentals/:id/courtesies
func (h *Controller) ByRental(c echo.Context) error {
	rentalID, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	out, err := h.Svc.ByRental(c.Request().Context(), rentalID)
	if err != nil {
		h.Log.Error("courtesy list", "err", err)
		if cs.Code(err) == cs.ErrRentalNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "rental not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, out)
}

// POST /v1/rentals/:id/courtesies
func (h *Controller) Grant(c echo.Context) error {
	rentalID, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	var req grantReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	out, err := h.Svc.Grant(c.Request().Context(), rentalID, req.ItemID, req.Quantity)
	if err != nil {
		h.Log.Error("courtesy grant", "err", err)
		switch cs.Code(err) {
		case cs.ErrRentalNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "rental not found"})
		case cs.ErrItemNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "courtesy item not found"})
		case cs.ErrBadQuantity:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "quantity must be positive"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, out)
}

// DELETE /v1/rentals/:id/courtesies/:grantId
func (h *Controller) Revoke(c echo.Context) error {
	rentalID, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	grantID, err := paramID(c, "grantId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid grant id"})
	}

	out, err := h.Svc.Revoke(c.Request().Context(), rentalID, grantID)
	if err != nil {
		h.Log.Error("courtesy revoke", "err", err)
		switch cs.Code(err) {
		case cs.ErrGrantNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "courtesy not found"})
		case cs.ErrRentalNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "rental not found"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, out)
}

func paramID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.ErrBadRequest
	}
	return id, nil
}

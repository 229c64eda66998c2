package payment

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/guburchardt/kingsystem-backoffice/app/echoServer/jwtx"
	ps "github.com/guburchardt/kingsystem-backoffice/service/payment"
)

type Controller struct {
	Svc ps.Service
	Log *slog.Logger
}

type rejectReq struct {
	Reason string `json:"reason"`
}

// GET /v1/rentals/:id/payments
func (h *Controller) ListByRental(c echo.Context) error {
	rentalID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || rentalID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	rows, err := h.Svc.ListByRental(c.Request().Context(), rentalID)
	if err != nil {
		h.Log.Error("payment list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// PUT /v1/payments/:id/confirm
func (h *Controller) Confirm(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	if err := h.Svc.Confirm(c.Request().Context(), id); err != nil {
		h.Log.Error("payment confirm", "err", err)
		switch ps.Code(err) {
		case ps.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "installment not found"})
		case ps.ErrNotPendente:
			return c.JSON(http.StatusConflict, echo.Map{"message": "installment has no receipt awaiting confirmation"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}

	adminID, _ := jwtx.UserIDFromContext(c)
	h.Log.Info("installment confirmed", "installment_id", id, "admin_id", adminID)
	return c.JSON(http.StatusOK, echo.Map{"message": "confirmed"})
}

// PUT /v1/payments/:id/reject
func (h *Controller) Reject(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	var req rejectReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}

	if err := h.Svc.Reject(c.Request().Context(), id, req.Reason); err != nil {
		h.Log.Error("payment reject", "err", err)
		switch ps.Code(err) {
		case ps.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "installment not found"})
		case ps.ErrNotPendente:
			return c.JSON(http.StatusConflict, echo.Map{"message": "installment has no receipt awaiting confirmation"})
		case ps.ErrMissingReason:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "reason is required"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}

	adminID, _ := jwtx.UserIDFromContext(c)
	h.Log.Info("installment rejected", "installment_id", id, "admin_id", adminID, "reason", req.Reason)
	return c.JSON(http.StatusOK, echo.Map{"message": "rejected"})
}

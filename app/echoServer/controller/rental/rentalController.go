package rental

import (
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/guburchardt/kingsystem-backoffice/app/echoServer/jwtx"
	"github.com/guburchardt/kingsystem-backoffice/repository/contractpdf"
	rs "github.com/guburchardt/kingsystem-backoffice/service/rental"
)

type Controller struct {
	Svc rs.Service
	Pdf contractpdf.Repo
	V   *validator.Validate
	Log *slog.Logger
}

// GET /v1/rentals?year=&month=&filter=
func (h *Controller) Agenda(c echo.Context) error {
	var req AgendaQuery
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid query"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	now := time.Now()
	year, month := req.Year, time.Month(req.Month)
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = now.Month()
	}

	filter := rs.CategoryAll
	if req.Filter != "" && req.Filter != string(rs.CategoryAll) {
		f := rs.Category(req.Filter)
		if !slices.Contains(rs.Categories, f) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "unknown filter"})
		}
		filter = f
	}

	view, err := h.Svc.Agenda(c.Request().Context(), year, month, filter)
	if err != nil {
		h.Log.Error("rental agenda", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, view)
}

// GET /v1/rentals/:id
func (h *Controller) Detail(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	out, err := h.Svc.Detail(c.Request().Context(), id)
	if err != nil {
		h.Log.Error("rental detail", "err", err)
		if rs.Code(err) == rs.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "rental not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, out)
}

// PUT /v1/rentals/:id/toggle-status
func (h *Controller) ToggleStatus(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	if err := h.Svc.ToggleStatus(c.Request().Context(), id); err != nil {
		h.Log.Error("rental toggle-status", "err", err)
		switch rs.Code(err) {
		case rs.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "rental not found"})
		case rs.ErrNotPendingApproval:
			return c.JSON(http.StatusConflict, echo.Map{"message": "rental is not awaiting approval"})
		case rs.ErrInsufficientCoverage:
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"message": err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}

	adminID, _ := jwtx.UserIDFromContext(c)
	h.Log.Info("rental approved", "rental_id", id, "admin_id", adminID)
	return c.JSON(http.StatusOK, echo.Map{"message": "approved"})
}

// PUT /v1/rentals/:id/pending-issues
func (h *Controller) PendingIssues(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	var req PendingIssuesReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	if err := h.Svc.SetPendingIssues(c.Request().Context(), id, *req.HasPendingIssues); err != nil {
		h.Log.Error("rental pending-issues", "err", err)
		if rs.Code(err) == rs.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "rental not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"has_pending_issues": *req.HasPendingIssues})
}

// POST /v1/rentals/:id/recalculate
func (h *Controller) Recalculate(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	status, err := h.Svc.RecalculatePayment(c.Request().Context(), id)
	if err != nil {
		h.Log.Error("rental recalculate", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"payment_status": status})
}

// GET /v1/rentals/:id/contract
func (h *Controller) Contract(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	pdf, err := h.Pdf.RenderContract(c.Request().Context(), id)
	if err != nil {
		h.Log.Error("contract render", "err", err)
		return c.JSON(http.StatusBadGateway, echo.Map{"message": "contract renderer unavailable"})
	}
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}

func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.ErrBadRequest
	}
	return id, nil
}

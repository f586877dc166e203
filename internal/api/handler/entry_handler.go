package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/diary/internal/api/metrics"
	"github.com/99minutos/diary/internal/core/domain"
	"github.com/99minutos/diary/internal/core/ports"
)

// EntryHandler handles HTTP requests for diary entries. Every route is
// session-gated by the service; a missing session surfaces as
// domain.ErrAuthRequired and is turned into a redirect by the error handler.
type EntryHandler struct {
	service ports.EntryService
}

func NewEntryHandler(service ports.EntryService) *EntryHandler {
	return &EntryHandler{service: service}
}

// Dashboard handles GET /dashboard.
//
// @Summary      List the signed-in user's entries, newest first
// @Tags         entries
// @Produce      json
// @Success      200  {object}  dashboardResponse
// @Success      303  {object}  navigationResponse
// @Router       /dashboard [get]
func (h *EntryHandler) Dashboard(c echo.Context) error {
	res, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if res.LoadFailed {
		metrics.EntryErrorsTotal.WithLabelValues("persistence").Inc()
	}
	return c.JSON(http.StatusOK, toDashboardResponse(res))
}

// CreateForm handles GET /create.
//
// @Summary      Empty entry form
// @Tags         entries
// @Produce      json
// @Success      200  {object}  entryFormResponse
// @Success      303  {object}  navigationResponse
// @Router       /create [get]
func (h *EntryHandler) CreateForm(c echo.Context) error {
	p, err := h.service.Principal(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toFormResponse(formModeCreate, "", p, entryRequest{}))
}

// Create handles POST /create.
//
// @Summary      Create an entry
// @Tags         entries
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        body  body      entryRequest  true  "Entry title and content"
// @Success      303   {object}  navigationResponse
// @Failure      422   {object}  entryFormResponse
// @Failure      500   {object}  entryFormResponse
// @Router       /create [post]
func (h *EntryHandler) Create(c echo.Context) error {
	var req entryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	res, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return h.formError(c, res, err, formModeCreate, "", req)
	}

	metrics.EntryWritesTotal.WithLabelValues(string(domain.ActivityCreated)).Inc()
	return redirectWith(c, navigationResponse{Redirect: PathDashboard, EntryID: res.Entry.ID})
}

// Preview handles POST /preview.
//
// @Summary      Live preview and character counter of a form
// @Tags         entries
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        body  body      entryRequest  true  "Form as typed"
// @Success      200   {object}  previewResponse
// @Router       /preview [post]
func (h *EntryHandler) Preview(c echo.Context) error {
	var req entryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	res, err := h.service.Preview(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPreviewResponse(res))
}

// Detail handles GET /diary/:id.
//
// @Summary      Show one entry
// @Tags         entries
// @Produce      json
// @Param        id   path      string  true  "Entry ID"
// @Success      200  {object}  entryDetailResponse
// @Success      303  {object}  navigationResponse
// @Router       /diary/{id} [get]
func (h *EntryHandler) Detail(c echo.Context) error {
	res, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.lookupError(c, err)
	}
	return c.JSON(http.StatusOK, toEntryDetailResponse(res))
}

// DeleteConfirm handles GET /diary/:id/delete.
//
// @Summary      Ask for delete confirmation
// @Tags         entries
// @Produce      json
// @Param        id   path      string  true  "Entry ID"
// @Success      200  {object}  deleteConfirmResponse
// @Success      303  {object}  navigationResponse
// @Router       /diary/{id}/delete [get]
func (h *EntryHandler) DeleteConfirm(c echo.Context) error {
	conf, err := h.service.ConfirmDelete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.lookupError(c, err)
	}
	return c.JSON(http.StatusOK, toDeleteConfirmResponse(conf))
}

// Delete handles POST /diary/:id/delete. Nothing is removed unless the
// body carries confirm=true.
//
// @Summary      Delete an entry
// @Tags         entries
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        id    path      string         true  "Entry ID"
// @Param        body  body      deleteRequest  true  "Confirmation"
// @Success      303   {object}  navigationResponse
// @Failure      409   {object}  deleteConfirmResponse
// @Failure      500   {object}  deleteFailedResponse
// @Router       /diary/{id}/delete [post]
func (h *EntryHandler) Delete(c echo.Context) error {
	id := c.Param("id")

	var req deleteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	conf, err := h.service.Delete(c.Request().Context(), id, req.Confirm)
	switch {
	case err == nil:
		metrics.EntryWritesTotal.WithLabelValues(string(domain.ActivityDeleted)).Inc()
		return redirectWith(c, navigationResponse{Redirect: PathDashboard, EntryID: id})
	case errors.Is(err, domain.ErrConfirmationRequired):
		return c.JSON(http.StatusConflict, toDeleteConfirmResponse(conf))
	case errors.Is(err, domain.ErrPersistence):
		metrics.EntryErrorsTotal.WithLabelValues("persistence").Inc()
		return c.JSON(http.StatusInternalServerError, deleteFailedResponse{EntryID: id, Alert: msgDeleteFailed})
	default:
		return h.lookupError(c, err)
	}
}

// EditForm handles GET /edit/:id.
//
// @Summary      Edit form seeded with the stored entry
// @Tags         entries
// @Produce      json
// @Param        id   path      string  true  "Entry ID"
// @Success      200  {object}  entryFormResponse
// @Success      303  {object}  navigationResponse
// @Router       /edit/{id} [get]
func (h *EntryHandler) EditForm(c echo.Context) error {
	res, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.lookupError(c, err)
	}
	seed := entryRequest{Title: res.Entry.Title, Content: res.Entry.Body}
	return c.JSON(http.StatusOK, toFormResponse(formModeEdit, res.Entry.ID, &res.Principal, seed))
}

// Edit handles POST /edit/:id.
//
// @Summary      Update an entry
// @Tags         entries
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        id    path      string        true  "Entry ID"
// @Param        body  body      entryRequest  true  "New title and content"
// @Success      303   {object}  navigationResponse
// @Failure      422   {object}  entryFormResponse
// @Failure      500   {object}  entryFormResponse
// @Router       /edit/{id} [post]
func (h *EntryHandler) Edit(c echo.Context) error {
	id := c.Param("id")

	var req entryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	res, err := h.service.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		if errors.Is(err, domain.ErrEntryNotFound) {
			return h.lookupError(c, err)
		}
		return h.formError(c, res, err, formModeEdit, id, req)
	}

	metrics.EntryWritesTotal.WithLabelValues(string(domain.ActivityUpdated)).Inc()
	return redirectWith(c, navigationResponse{Redirect: entryPath(res.Entry.ID), EntryID: res.Entry.ID})
}

// formError echoes the submitted form back with an inline message. Errors
// that are not about the form are left to the HTTP error handler.
func (h *EntryHandler) formError(c echo.Context, res *ports.EntryResult, err error, mode, id string, req entryRequest) error {
	var user *domain.Principal
	if res != nil && res.Principal.ID != "" {
		user = &res.Principal
	}
	resp := toFormResponse(mode, id, user, req)

	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		metrics.EntryErrorsTotal.WithLabelValues("validation").Inc()
		resp.Field = ve.Field
		resp.Error = ve.Message
		return c.JSON(http.StatusUnprocessableEntity, resp)
	case errors.Is(err, domain.ErrPersistence):
		metrics.EntryErrorsTotal.WithLabelValues("persistence").Inc()
		resp.Error = msgSaveFailed
		return c.JSON(http.StatusInternalServerError, resp)
	default:
		return err
	}
}

// lookupError sends a missing entry back to the dashboard.
func (h *EntryHandler) lookupError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrEntryNotFound) {
		metrics.EntryErrorsTotal.WithLabelValues("not_found").Inc()
		return Redirect(c, PathDashboard)
	}
	return err
}

package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/RusenAli99/say-nileti-im/internal/logging"
	"github.com/RusenAli99/say-nileti-im/internal/service"
	"github.com/RusenAli99/say-nileti-im/internal/transport"
)

type NoteHTTP struct {
	Svc *service.NoteService
}

func (h *NoteHTTP) GetNotes(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "note.get_notes")

	items, err := h.Svc.GetNotes(ctx)
	if err != nil {
		l.Error("get_notes_failed", "status", 500, "reason", "cannot list notes", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list notes")
	}

	return c.JSON(http.StatusOK, items)
}

func (h *NoteHTTP) CreateNote(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "note.create_note")

	var req transport.NoteRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("note_create_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	note, err := h.Svc.AddNote(ctx, req.Text)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("note_create_failed", "status", 400, "reason", "text required", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "text required")
		}
		l.Error("note_create_failed", "status", 500, "reason", "cannot add note", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot add note")
	}

	l.Info("create_note_success", "note_id", note.ID)
	return c.JSON(http.StatusCreated, note)
}

func (h *NoteHTTP) UpdateNote(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "note.update_note")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req transport.NoteRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("note_update_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	note, err := h.Svc.UpdateNote(ctx, id, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			l.Warn("note_update_failed", "status", 404, "reason", "note not found", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "note not found")
		case errors.Is(err, service.ErrValidation):
			l.Warn("note_update_failed", "status", 400, "reason", "text required", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "text required")
		default:
			l.Error("note_update_failed", "status", 500, "reason", "cannot update note", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot update note")
		}
	}

	l.Info("update_note_success", "note_id", note.ID)
	return c.JSON(http.StatusOK, note)
}

func (h *NoteHTTP) DeleteNote(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "note.delete_note")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.Svc.DeleteNote(ctx, id); err != nil {
		l.Error("note_delete_failed", "status", 500, "reason", "cannot delete note", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete note")
	}

	l.Info("delete_note_success", "note_id", id)
	return c.NoContent(http.StatusNoContent)
}

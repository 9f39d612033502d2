package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/istvanv2/giwedding/internal/domain"
	"github.com/istvanv2/giwedding/internal/handler/dto"
	"github.com/istvanv2/giwedding/internal/i18n"
	"github.com/istvanv2/giwedding/internal/ics"
)

type SubmissionSvc interface {
	Submit(ctx context.Context, sub domain.Submission) error
}

type AdminSvc interface {
	Login(password string) (string, error)
	VerifyToken(token string) error
	ListRecords(ctx context.Context, token string) ([]*domain.Record, error)
	UpdateRecord(ctx context.Context, token string, rec *domain.Record) (*domain.Record, error)
	DeleteRecords(ctx context.Context, token string, ids []int64) (int64, error)
}

type Handler struct {
	submissionService SubmissionSvc
	adminService      AdminSvc
}

func NewHandler(submissionService SubmissionSvc, adminService AdminSvc) *Handler {
	return &Handler{
		submissionService: submissionService,
		adminService:      adminService,
	}
}

// Calendar serves a downloadable ICS invite for one of the two wedding
// events, localized to the requested locale.
func (h *Handler) Calendar(c *ginext.Context) {
	kind := ics.ParseEventKind(c.Query("event"))

	// Encode owns the unknown-locale fallback and names the file to match.
	body, filename := ics.Encode(kind, i18n.Locale(c.Query("locale")))

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", body)
}

func (h *Handler) SubmitRSVP(c *ginext.Context) {
	var req dto.RSVPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.submissionService.Submit(c.Request.Context(), req.ToSubmission()); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func (h *Handler) Auth(c *ginext.Context) {
	var req dto.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	token, err := h.adminService.Login(req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{Token: token})
}

// Data is the dashboard's single data endpoint. The action field selects
// list, update or delete; list is the default for older dashboard builds
// that never sent one.
func (h *Handler) Data(c *ginext.Context) {
	var req dto.DataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	// The token is checked before any request-shape validation so that
	// unauthenticated callers get the same rejection for every action.
	if err := h.adminService.VerifyToken(req.Token); err != nil {
		h.handleError(c, err)
		return
	}

	switch req.Action {
	case "", "list":
		h.listRecords(c, req.Token)
	case "update":
		h.updateRecord(c, req)
	case "delete":
		h.deleteRecords(c, req)
	default:
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "unknown action"})
	}
}

func (h *Handler) listRecords(c *ginext.Context, token string) {
	records, err := h.adminService.ListRecords(c.Request.Context(), token)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RecordPayload, 0, len(records))
	for _, r := range records {
		resp = append(resp, dto.ToRecordPayload(r))
	}

	c.JSON(http.StatusOK, dto.DataResponse{Success: true, Records: resp})
}

func (h *Handler) updateRecord(c *ginext.Context, req dto.DataRequest) {
	if req.Record == nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "record is required"})
		return
	}

	rec, err := h.adminService.UpdateRecord(c.Request.Context(), req.Token, req.Record.ToRecord())
	if err != nil {
		h.handleError(c, err)
		return
	}

	payload := dto.ToRecordPayload(rec)
	c.JSON(http.StatusOK, dto.DataResponse{Success: true, Record: &payload})
}

func (h *Handler) deleteRecords(c *ginext.Context, req dto.DataRequest) {
	deleted, err := h.adminService.DeleteRecords(c.Request.Context(), req.Token, req.IDs)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse{Success: true, Deleted: deleted})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrNameRequired),
		errors.Is(err, domain.ErrMissingContact),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrInvalidPhone),
		errors.Is(err, domain.ErrGuestNameRequired),
		errors.Is(err, domain.ErrNoIDs),
		errors.Is(err, domain.ErrInvalidRecordID),
		errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidPassword),
		errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrSessionExpired):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrServiceUnavailable),
		errors.Is(err, domain.ErrStoreNotConfigured):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

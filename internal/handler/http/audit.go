package http

import (
	"net/http"
	"strconv"

	"github.com/sistema-nomina/nomina-backend-go/internal/domain/audit"
	"github.com/sistema-nomina/nomina-backend-go/internal/handler/http/response"
)

type AuditHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type auditHandlerImpl struct {
	auditService audit.AuditService
}

func NewAuditHandler(auditService audit.AuditService) AuditHandler {
	return &auditHandlerImpl{
		auditService: auditService,
	}
}

func (h *auditHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter audit.Filter

	if v := r.URL.Query().Get("actor"); v != "" {
		filter.Actor = &v
	}
	if v := r.URL.Query().Get("action"); v != "" {
		action := audit.Action(v)
		filter.Action = &action
	}
	if v := r.URL.Query().Get("entity_id"); v != "" {
		filter.EntityID = &v
	}
	filter.Page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	filter.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := h.auditService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

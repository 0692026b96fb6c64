// Package domains implements the HTTP adapter for the domain registration API.
package domains

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/bnema/zerowrap"

	"github.com/Wrap-pixelz/domain-hoster/internal/adapters/dto"
	"github.com/Wrap-pixelz/domain-hoster/internal/boundaries/in"
	"github.com/Wrap-pixelz/domain-hoster/internal/domain"
)

// maxRequestSize is the maximum allowed size for request bodies.
const maxRequestSize = 64 << 10

// Handler serves /health and /domains.
type Handler struct {
	domainSvc in.DomainService
	log       zerowrap.Logger
}

// NewHandler creates a new domains HTTP handler.
func NewHandler(domainSvc in.DomainService, log zerowrap.Logger) *Handler {
	return &Handler{
		domainSvc: domainSvc,
		log:       log,
	}
}

// RegisterRoutes registers the API routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.handleHealth)
	mux.HandleFunc("GET /domains", h.handleList)
	mux.HandleFunc("POST /domains", h.handleCreate)
	mux.HandleFunc("DELETE /domains/{domain}", h.handleDelete)
}

func (h *Handler) withLogContext(r *http.Request) *http.Request {
	ctx := zerowrap.CtxWithFields(r.Context(), map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "http",
		zerowrap.FieldHandler: "domains",
		zerowrap.FieldMethod:  r.Method,
		zerowrap.FieldPath:    r.URL.Path,
	})
	return r.WithContext(ctx)
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.sendJSON(w, http.StatusOK, dto.HealthResponse{Status: "ok"})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	r = h.withLogContext(r)
	ctx := r.Context()

	registry, err := h.domainSvc.List(ctx)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	resp := make(map[string]dto.DomainEntry, len(registry))
	for name, record := range registry {
		resp[name] = dto.DomainEntry{Port: record.Port, Status: string(record.Status)}
	}
	h.sendJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	r = h.withLogContext(r)
	ctx := r.Context()
	log := zerowrap.FromCtx(ctx)

	req, err := decodeCreateRequest(w, r)
	if err != nil {
		log.Debug().Err(err).Msg("rejected add-domain request")
		h.sendError(w, http.StatusBadRequest, err.Error())
		return
	}

	record, err := h.domainSvc.Add(ctx, req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.sendJSON(w, http.StatusCreated, dto.DomainCreatedResponse{
		Message: "Domain deployed successfully",
		Domain:  domain.NormalizeHostname(req.Domain),
		Port:    record.Port,
	})
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	r = h.withLogContext(r)
	ctx := r.Context()

	name := r.PathValue("domain")
	if err := h.domainSvc.Remove(ctx, name); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.sendJSON(w, http.StatusOK, dto.DomainRemovedResponse{
		Message: "Domain removed",
		Domain:  domain.NormalizeHostname(name),
	})
}

// handleServiceError maps use case errors to HTTP responses.
func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := zerowrap.FromCtx(r.Context())

	var provErr *domain.ProvisionError
	switch {
	case errors.As(err, &provErr):
		log.Error().Err(err).Str("step", string(provErr.Step)).Msg("deployment failed")
		h.sendJSON(w, http.StatusInternalServerError, dto.ErrorResponse{
			Error:   domain.ErrProvisioningFailed.Error(),
			Details: provErr.Diagnostics(),
		})
	case errors.Is(err, domain.ErrFieldsRequired),
		errors.Is(err, domain.ErrPortNotInteger),
		errors.Is(err, domain.ErrPortOutOfRange),
		errors.Is(err, domain.ErrInvalidHostname),
		errors.Is(err, domain.ErrOwnershipMismatch):
		h.sendError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrDomainExists):
		h.sendError(w, http.StatusConflict, domain.ErrDomainExists.Error())
	case errors.Is(err, domain.ErrDomainNotFound):
		h.sendError(w, http.StatusNotFound, domain.ErrDomainNotFound.Error())
	default:
		log.Error().Err(err).Msg("request failed")
		h.sendError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// decodeCreateRequest parses the add-domain body. Errors carry the message
// returned to the client.
func decodeCreateRequest(w http.ResponseWriter, r *http.Request) (domain.AddDomainRequest, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestSize)

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil || len(raw) == 0 {
		return domain.AddDomainRequest{}, domain.ErrInvalidJSON
	}

	var body dto.CreateDomainRequest
	if v, ok := raw["domain"]; ok && !isNull(v) {
		if err := json.Unmarshal(v, &body.Domain); err != nil {
			return domain.AddDomainRequest{}, domain.ErrFieldsRequired
		}
	}
	body.Port = raw["port"]

	if strings.TrimSpace(body.Domain) == "" || isEmptyPort(body.Port) {
		return domain.AddDomainRequest{}, domain.ErrFieldsRequired
	}

	port, err := coercePort(body.Port)
	if err != nil {
		return domain.AddDomainRequest{}, err
	}

	return domain.AddDomainRequest{Domain: body.Domain, Port: port}, nil
}

func isNull(v json.RawMessage) bool {
	return len(v) == 0 || bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}

// isEmptyPort reports a missing, null, zero or empty-string port.
func isEmptyPort(v json.RawMessage) bool {
	if isNull(v) {
		return true
	}
	switch string(bytes.TrimSpace(v)) {
	case "0", `""`, "false":
		return true
	}
	return false
}

// coercePort accepts a JSON integer, an integral float, or a string holding
// an integer. Integral values beyond the int range saturate, so they fail the
// range check like any other out-of-range port.
func coercePort(v json.RawMessage) (int, error) {
	var n json.Number
	if err := json.Unmarshal(v, &n); err == nil {
		if i, err := strconv.Atoi(n.String()); err == nil || errors.Is(err, strconv.ErrRange) {
			return i, nil
		}
		f, err := n.Float64()
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0, domain.ErrPortNotInteger
		}
		return integralPort(f)
	}

	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		i, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0, domain.ErrPortNotInteger
		}
		return i, nil
	}

	return 0, domain.ErrPortNotInteger
}

func integralPort(f float64) (int, error) {
	switch {
	case math.IsInf(f, 1) || f >= math.MaxInt:
		return math.MaxInt, nil
	case math.IsInf(f, -1) || f <= math.MinInt:
		return math.MinInt, nil
	case f != math.Trunc(f):
		return 0, domain.ErrPortNotInteger
	}
	return int(f), nil
}

// sendJSON sends a JSON response.
func (h *Handler) sendJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// sendError sends an error response.
func (h *Handler) sendError(w http.ResponseWriter, status int, message string) {
	h.sendJSON(w, status, dto.ErrorResponse{Error: message})
}

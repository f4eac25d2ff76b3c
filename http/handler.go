package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"todod"
	"todod/auth"
)

// Service is the todo list contract the handler dispatches into.
type Service interface {
	List(ctx context.Context) ([]todod.Item, error)
	Create(ctx context.Context, req todod.CreateItemRequest) (todod.Item, error)
	SetCompleted(ctx context.Context, req todod.UpdateItemRequest) (todod.Item, error)
	Delete(ctx context.Context, req todod.DeleteItemRequest) (todod.DeleteResult, error)
}

// HandlerConfig configures the HTTP surface.
type HandlerConfig struct {
	Verifier auth.Verifier
	CORS     CORSConfig
}

// Handler provides the method-discriminated todo route.
type Handler struct {
	config  HandlerConfig
	service Service
}

// NewHandler creates a new Handler with the given configuration and service.
func NewHandler(config *HandlerConfig, service Service) *Handler {
	return &Handler{
		config:  *config,
		service: service,
	}
}

// Router returns an http.Handler with the todo route mounted at /.
// OPTIONS is answered by the CORS middleware before the verifier runs;
// everything else passes the credential check first. Any verb outside the
// five recognized ones gets the fixed unsupported-method error.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(CORSMiddleware(h.config.CORS))
	r.Use(AuthMiddleware(h.config.Verifier))

	r.MethodNotAllowed(handleUnsupportedMethod)

	r.Get("/", h.handleList)
	r.Post("/", h.handleCreate)
	r.Put("/", h.handleUpdate)
	r.Delete("/", h.handleDelete)

	return r
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		HandleError(w, err)
		return
	}

	_ = WriteJSON(w, http.StatusOK, items)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req todod.CreateItemRequest
	if err := decodeBody(r, &req); err != nil {
		HandleError(w, err)
		return
	}

	item, err := h.service.Create(r.Context(), req)
	if err != nil {
		HandleError(w, err)
		return
	}

	_ = WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var req todod.UpdateItemRequest
	if err := decodeBody(r, &req); err != nil {
		HandleError(w, err)
		return
	}

	item, err := h.service.SetCompleted(r.Context(), req)
	if err != nil {
		HandleError(w, err)
		return
	}

	_ = WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	var req todod.DeleteItemRequest
	if err := decodeBody(r, &req); err != nil {
		HandleError(w, err)
		return
	}

	result, err := h.service.Delete(r.Context(), req)
	if err != nil {
		HandleError(w, err)
		return
	}

	_ = WriteJSON(w, http.StatusOK, result)
}

func handleUnsupportedMethod(w http.ResponseWriter, _ *http.Request) {
	WriteError(w, http.StatusBadRequest, "Unsupported method", "")
}

// decodeBody parses the request body as the expected JSON record. A parse
// failure never propagates raw; it is reported as a malformed-body error.
func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("decode body: %v: %w", err, ErrMalformedBody)
	}
	return nil
}

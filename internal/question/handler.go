package question

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/onia-prep/questgen/internal/aigen"
	"github.com/onia-prep/questgen/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GenerateBatch(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto GenerateBatchDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para gerar questões")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(dto.Topic) == "" {
		config.Error(w, http.StatusBadRequest, "topic é obrigatório")
		return
	}

	saved, failures, err := h.service.GenerateAndSave(r.Context(), dto)
	if err != nil {
		if errors.Is(err, aigen.ErrMissingCredential) {
			log.Warn("geração em lote indisponível sem credencial configurada")
			config.Error(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		log.WithError(err).Error("Erro ao gerar e persistir questões")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if len(failures) > 0 {
		config.JSON(w, http.StatusBadRequest, map[string]any{
			"error":    "uma ou mais questões falharam na geração",
			"failures": failures,
		})
		return
	}

	config.JSON(w, http.StatusCreated, map[string]any{"saved": saved})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		limit = DefaultListLimit
	}

	items, err := h.service.ListRecent(r.Context(), limit)
	if err != nil {
		log.WithError(err).Error("Erro ao listar questões")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, ListResponse{Count: len(items), Items: items})
}

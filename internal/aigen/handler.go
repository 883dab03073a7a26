package aigen

import (
	"errors"
	"net/http"

	"github.com/onia-prep/questgen/internal/config"
)

const defaultTopic = "Inteligência Artificial"

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// GetQuestion gera uma única questão de forma síncrona, sem persistir.
// Sem credencial configurada, responde a questão local determinística para
// que a rota sempre responda algo útil.
func (h *Handler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	query := r.URL.Query()
	topic := query.Get("topic")
	if topic == "" {
		topic = defaultTopic
	}
	fase := NormalizeFase(query.Get("fase"))

	req := QuestionRequest{
		Topic:     topic,
		Fase:      fase,
		Categoria: query.Get("categoria"),
		Model:     query.Get("model"),
	}

	question, err := h.service.GenerateQuestion(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrMissingCredential) {
			log.Warn("nenhuma credencial configurada, servindo questão local")
			config.JSON(w, http.StatusOK, map[string]any{
				"question": PlaceholderQuestion(topic, fase, err.Error()),
			})
			return
		}

		var verr *ValidationError
		if errors.As(err, &verr) {
			log.WithError(err).Warn("geração de questão falhou na validação")
			config.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		var terr *TransportError
		if errors.As(err, &terr) || errors.Is(err, ErrEmptyResponse) {
			log.WithError(err).Error("falha de transporte com o provedor de inferência")
			config.Error(w, http.StatusBadGateway, err.Error())
			return
		}

		log.WithError(err).Error("erro inesperado ao gerar questão")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, map[string]any{"question": question})
}

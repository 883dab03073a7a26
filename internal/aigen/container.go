package aigen

import (
	"context"
	"errors"

	"github.com/onia-prep/questgen/internal/config"
)

type AIGenContainer struct {
	Handler *Handler
	Service Service
}

func NewAIGenContainer(ctx context.Context, cfg *config.Config) *AIGenContainer {
	log := config.WithContext(ctx)

	provider, err := NewProvider(ctx, cfg)
	if err != nil {
		if errors.Is(err, ErrMissingCredential) {
			log.Warn("nenhuma credencial de inferência configurada; apenas a questão local estará disponível")
		} else {
			log.WithError(err).Error("falha ao inicializar provedor de inferência")
		}
		provider = nil
	}

	service := NewService(provider)
	handler := NewHandler(service)

	return &AIGenContainer{
		Handler: handler,
		Service: service,
	}
}

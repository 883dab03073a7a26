package aigen

import (
	"context"
	"errors"

	"github.com/onia-prep/questgen/internal/config"
)

// maxBatch limita o tamanho de um lote de geração, como no prompt original.
const maxBatch = 10

type Service interface {
	GenerateQuestion(ctx context.Context, req QuestionRequest) (*GeneratedQuestion, error)
	GenerateBatch(ctx context.Context, req QuestionRequest, quantidade int) []BatchResult
}

type service struct {
	provider Provider
}

// NewService aceita provider nil quando nenhuma credencial foi configurada;
// nesse caso toda geração falha com ErrMissingCredential.
func NewService(provider Provider) Service {
	return &service{provider: provider}
}

func (s *service) GenerateQuestion(ctx context.Context, req QuestionRequest) (*GeneratedQuestion, error) {
	log := config.WithContext(ctx)

	if s.provider == nil {
		return nil, ErrMissingCredential
	}

	fase := NormalizeFaseInt(req.Fase)
	numAlts := NumAlternativas(fase)
	prompt := BuildPrompt(req.Topic, fase, req.Categoria)

	raw, err := s.provider.SendPrompt(ctx, prompt, req.Model)
	if err != nil {
		return nil, err
	}
	log.Debugf("resposta bruta do modelo:\n%s", raw)

	parsed, ok := FindJSON(raw)
	if !ok {
		log.Warn("nenhum objeto JSON válido na resposta do modelo")
		return nil, &ValidationError{Reason: "nenhum objeto JSON válido encontrado", Raw: raw}
	}

	question, err := FormatQuestion(parsed, numAlts)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) && verr.Raw == "" {
			verr.Raw = raw
		}
		log.WithError(err).Warn("resposta do modelo fora do contrato")
		return nil, err
	}

	log.Infof("questão gerada com sucesso sobre %q", req.Topic)
	return question, nil
}

// GenerateBatch invoca o pipeline quantidade vezes em sequência. Cada falha é
// registrada na posição em que ocorreu, sem abortar o restante do lote.
func (s *service) GenerateBatch(ctx context.Context, req QuestionRequest, quantidade int) []BatchResult {
	if quantidade <= 0 {
		quantidade = 1
	}
	if quantidade > maxBatch {
		quantidade = maxBatch
	}

	results := make([]BatchResult, quantidade)
	for i := range results {
		question, err := s.GenerateQuestion(ctx, req)
		results[i] = BatchResult{Index: i, Question: question, Err: err}
		if err != nil {
			results[i].Error = err.Error()
		}
	}
	return results
}

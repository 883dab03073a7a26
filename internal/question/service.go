package question

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/onia-prep/questgen/internal/aigen"
	"github.com/onia-prep/questgen/internal/config"
	"gorm.io/datatypes"
)

type Service interface {
	GenerateAndSave(ctx context.Context, dto GenerateBatchDTO) ([]QuestionResponse, []BatchError, error)
	ListRecent(ctx context.Context, limit int) ([]QuestionResponse, error)
}

type service struct {
	repo      Repository
	generator aigen.Service
}

func NewService(repo Repository, generator aigen.Service) Service {
	return &service{
		repo:      repo,
		generator: generator,
	}
}

// GenerateAndSave roda o lote de geração e persiste tudo ou nada: qualquer
// posição com falha é relatada com seu índice e nenhuma linha é gravada.
func (s *service) GenerateAndSave(ctx context.Context, dto GenerateBatchDTO) ([]QuestionResponse, []BatchError, error) {
	log := config.WithContext(ctx)

	req := aigen.QuestionRequest{
		Topic:     dto.Topic,
		Fase:      dto.Fase,
		Categoria: dto.Categoria,
		Model:     dto.Model,
	}
	results := s.generator.GenerateBatch(ctx, req, dto.Quantidade)

	var failures []BatchError
	missingCredential := true
	rows := make([]*Question, 0, len(results))
	for _, res := range results {
		if res.Err != nil {
			if !errors.Is(res.Err, aigen.ErrMissingCredential) {
				missingCredential = false
			}
			failures = append(failures, BatchError{Index: res.Index, Error: res.Error})
			continue
		}
		missingCredential = false
		rows = append(rows, toRow(res.Question))
	}

	if len(failures) == len(results) && missingCredential {
		return nil, nil, aigen.ErrMissingCredential
	}
	if len(failures) > 0 {
		log.Warnf("lote de geração com %d falha(s), nada será persistido", len(failures))
		return nil, failures, nil
	}

	if err := s.repo.SaveAll(rows); err != nil {
		log.WithError(err).Error("erro ao persistir lote de questões")
		return nil, nil, fmt.Errorf("erro ao persistir questões: %w", err)
	}

	saved := make([]QuestionResponse, 0, len(rows))
	for _, row := range rows {
		saved = append(saved, toResponse(row))
	}
	log.Infof("%d questões persistidas com sucesso", len(saved))
	return saved, nil, nil
}

func (s *service) ListRecent(ctx context.Context, limit int) ([]QuestionResponse, error) {
	log := config.WithContext(ctx)

	rows, err := s.repo.ListRecent(limit)
	if err != nil {
		log.WithError(err).Error("erro ao listar questões")
		return nil, err
	}

	items := make([]QuestionResponse, 0, len(rows))
	for i := range rows {
		items = append(items, toResponse(&rows[i]))
	}
	return items, nil
}

func toRow(q *aigen.GeneratedQuestion) *Question {
	alts, _ := json.Marshal(q.Alternativas)

	row := &Question{
		Enunciado:    q.Pergunta,
		Alternativas: datatypes.JSON(alts),
		Correta:      q.RespostaCorreta,
	}
	if q.Explicacao != "" {
		feedback := q.Explicacao
		row.Feedback = &feedback
	}
	return row
}

func toResponse(row *Question) QuestionResponse {
	var alts []string
	// coluna gravada por nós; um erro aqui indica dado corrompido e devolve
	// a lista vazia em vez de derrubar a listagem
	_ = json.Unmarshal(row.Alternativas, &alts)

	resp := QuestionResponse{
		ID:           row.ID,
		Enunciado:    row.Enunciado,
		Alternativas: alts,
		Correta:      row.Correta,
	}
	if row.Feedback != nil {
		resp.Feedback = *row.Feedback
	}
	return resp
}

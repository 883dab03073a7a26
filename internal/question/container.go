package question

import (
	"github.com/onia-prep/questgen/internal/aigen"
	"gorm.io/gorm"
)

type QuestionContainer struct {
	Handler *Handler
	Service Service
}

func NewQuestionContainer(db *gorm.DB, generator aigen.Service) *QuestionContainer {
	repo := NewRepository(db)
	service := NewService(repo, generator)
	handler := NewHandler(service)

	return &QuestionContainer{
		Handler: handler,
		Service: service,
	}
}

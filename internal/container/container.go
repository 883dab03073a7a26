package container

import (
	"context"
	"log"

	"github.com/onia-prep/questgen/internal/aigen"
	"github.com/onia-prep/questgen/internal/config"
	"github.com/onia-prep/questgen/internal/question"
)

type Container struct {
	Config            *config.Config
	AIGenContainer    *aigen.AIGenContainer
	QuestionContainer *question.QuestionContainer
}

func New() *Container {
	config.Init()
	cfg := config.Load()

	ctx := context.Background()
	if err := config.Connect(ctx, cfg.DatabaseDSN); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	if err := config.DB.AutoMigrate(&question.Question{}); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	aiGenContainer := aigen.NewAIGenContainer(ctx, cfg)
	questionContainer := question.NewQuestionContainer(config.DB, aiGenContainer.Service)

	return &Container{
		Config:            cfg,
		AIGenContainer:    aiGenContainer,
		QuestionContainer: questionContainer,
	}
}

package aigen

// GeneratedQuestion é a questão validada que sai do pipeline de geração.
// Existe apenas em memória; a persistência fica a cargo do pacote question.
type GeneratedQuestion struct {
	Categoria          string   `json:"categoria,omitempty"`
	Topico             string   `json:"topico,omitempty"`
	Pergunta           string   `json:"pergunta"`
	Alternativas       []string `json:"alternativas"`
	RespostaCorreta    string   `json:"resposta_correta"`
	Explicacao         string   `json:"explicacao,omitempty"`
	ExplicacoesErradas []string `json:"explicacoes_erradas,omitempty"`
}

type QuestionRequest struct {
	Topic     string
	Fase      int
	Categoria string
	Model     string
}

// BatchResult relata o resultado de uma posição do lote: questão ou falha.
type BatchResult struct {
	Index    int                `json:"index"`
	Question *GeneratedQuestion `json:"question,omitempty"`
	Error    string             `json:"error,omitempty"`

	Err error `json:"-"`
}

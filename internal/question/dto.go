package question

type GenerateBatchDTO struct {
	Topic      string `json:"topic"`
	Quantidade int    `json:"quantidade"`
	Fase       int    `json:"fase"`
	Categoria  string `json:"categoria"`
	Model      string `json:"model"`
}

type QuestionResponse struct {
	ID           int      `json:"id"`
	Enunciado    string   `json:"enunciado"`
	Alternativas []string `json:"alternativas"`
	Correta      string   `json:"correta"`
	Feedback     string   `json:"feedback,omitempty"`
}

type ListResponse struct {
	Count int                `json:"count"`
	Items []QuestionResponse `json:"items"`
}

// BatchError relata a falha de uma posição do lote de geração.
type BatchError struct {
	Index int    `json:"index"`
	Error string `json:"error"`
}

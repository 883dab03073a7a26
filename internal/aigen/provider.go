package aigen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/onia-prep/questgen/internal/config"
	"google.golang.org/genai"
)

const (
	geminiModel     = "gemini-2.0-flash"
	maxOutputTokens = 400
	inferenceURL    = "https://api-inference.huggingface.co/models/%s"
	requestTimeout  = 60 * time.Second
)

type Provider interface {
	SendPrompt(ctx context.Context, prompt, model string) (string, error)
}

// NewProvider escolhe o transporte conforme as credenciais configuradas:
// cliente Gemini quando há chave da API; senão, POST direto na API de
// inferência da Hugging Face quando há token ou endpoint próprio. Sem nenhuma
// credencial, ErrMissingCredential. Os caminhos são mutuamente exclusivos: uma
// falha do Gemini é a falha da requisição, sem repasse silencioso ao outro
// transporte.
func NewProvider(ctx context.Context, cfg *config.Config) (Provider, error) {
	if cfg.GeminiAPIKey != "" {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.GeminiAPIKey})
		if err != nil {
			return nil, fmt.Errorf("erro ao criar cliente Gemini: %w", err)
		}
		return &geminiProvider{client: client}, nil
	}
	if cfg.HuggingFaceToken != "" || cfg.HuggingFaceEndpoint != "" {
		return &hfProvider{
			cfg:    cfg,
			client: &http.Client{Timeout: requestTimeout},
		}, nil
	}
	return nil, ErrMissingCredential
}

type geminiProvider struct {
	client *genai.Client
}

func (p *geminiProvider) SendPrompt(ctx context.Context, prompt, model string) (string, error) {
	log := config.WithContext(ctx)

	if model == "" {
		model = geminiModel
	}

	result, err := p.client.Models.GenerateContent(ctx, model, genai.Text(prompt),
		&genai.GenerateContentConfig{MaxOutputTokens: maxOutputTokens})
	if err != nil {
		log.WithError(err).Error("falha ao gerar conteúdo do Gemini")
		return "", &TransportError{Err: err}
	}

	raw := result.Text()
	if raw == "" {
		return "", ErrEmptyResponse
	}
	return raw, nil
}

type hfProvider struct {
	cfg    *config.Config
	client *http.Client
}

type inferencePayload struct {
	Inputs string `json:"inputs"`
}

type inferenceCandidate struct {
	GeneratedText string `json:"generated_text"`
	Text          string `json:"text"`
}

func (p *hfProvider) SendPrompt(ctx context.Context, prompt, model string) (string, error) {
	log := config.WithContext(ctx)

	if model == "" {
		model = p.cfg.HuggingFaceModel
	}
	url := p.cfg.HuggingFaceEndpoint
	if url == "" {
		url = fmt.Sprintf(inferenceURL, model)
	}

	body, err := json.Marshal(inferencePayload{Inputs: prompt})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("erro ao montar requisição de inferência: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.cfg.HuggingFaceToken != "" {
		req.Header.Set("Authorization", "Bearer "+p.cfg.HuggingFaceToken)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		log.WithError(err).Error("erro de conexão com a API de inferência")
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		log.Errorf("API de inferência retornou HTTP %d", resp.StatusCode)
		return "", &TransportError{Status: resp.StatusCode, Body: string(data)}
	}

	return decodeInferenceBody(data)
}

// decodeInferenceBody aceita os três formatos observados da API de inferência:
// lista de candidatos com generated_text/text, objeto único no mesmo formato,
// ou texto puro (JSON string ou corpo sem JSON).
func decodeInferenceBody(data []byte) (string, error) {
	if text, ok := decodeCandidateList(data); ok {
		return text, nil
	}
	if text, ok := decodeCandidate(data); ok {
		return text, nil
	}
	if text, ok := decodeBareString(data); ok {
		return text, nil
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

func decodeCandidateList(data []byte) (string, bool) {
	var list []inferenceCandidate
	if err := json.Unmarshal(data, &list); err != nil || len(list) == 0 {
		return "", false
	}
	return candidateText(list[0])
}

func decodeCandidate(data []byte) (string, bool) {
	var c inferenceCandidate
	if err := json.Unmarshal(data, &c); err != nil {
		return "", false
	}
	return candidateText(c)
}

func decodeBareString(data []byte) (string, bool) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil || s == "" {
		return "", false
	}
	return s, true
}

func candidateText(c inferenceCandidate) (string, bool) {
	if c.GeneratedText != "" {
		return c.GeneratedText, true
	}
	if c.Text != "" {
		return c.Text, true
	}
	return "", false
}

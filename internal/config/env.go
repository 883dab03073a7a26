package config

import "os"

const DefaultHuggingFaceModel = "meta-llama/Llama-4-Scout-17B-16E-Instruct"

// Config reúne toda a configuração lida do ambiente na inicialização.
// O valor é imutável depois de criado; nenhum componente lê variáveis de
// ambiente durante uma requisição.
type Config struct {
	GeminiAPIKey        string
	HuggingFaceToken    string
	HuggingFaceModel    string
	HuggingFaceEndpoint string
	DatabaseDSN         string
	Port                string
}

func Load() *Config {
	cfg := &Config{
		GeminiAPIKey:        firstEnv("GEMINI_API_KEY", "GOOGLE_API_KEY"),
		HuggingFaceToken:    firstEnv("HF_TOKEN", "HF_API_KEY", "HUGGINGFACE_API_KEY"),
		HuggingFaceModel:    os.Getenv("HUGGINGFACE_MODEL"),
		HuggingFaceEndpoint: os.Getenv("HUGGINGFACE_ENDPOINT"),
		DatabaseDSN:         os.Getenv("DATABASE_DSN"),
		Port:                os.Getenv("PORT"),
	}
	if cfg.HuggingFaceModel == "" {
		cfg.HuggingFaceModel = DefaultHuggingFaceModel
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	return cfg
}

func firstEnv(names ...string) string {
	for _, name := range names {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

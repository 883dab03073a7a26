package aigen

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCredential indica que nenhuma credencial de inferência foi
	// configurada. A camada HTTP decide entre falhar ou servir a questão local.
	ErrMissingCredential = errors.New("nenhuma credencial de inferência configurada")

	ErrEmptyResponse = errors.New("resposta vazia do modelo")
)

// TransportError representa uma falha de rede ou um status não-200 do provedor.
type TransportError struct {
	Status int
	Body   string
	Err    error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("erro de conexão com o provedor de inferência: %v", e.Err)
	}
	return fmt.Sprintf("provedor de inferência retornou HTTP %d: %s", e.Status, e.Body)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ValidationError descreve uma resposta do modelo fora do contrato esperado.
// Raw carrega o texto bruto para diagnóstico.
type ValidationError struct {
	Reason string
	Raw    string
}

func (e *ValidationError) Error() string {
	if e.Raw != "" {
		return fmt.Sprintf("resposta inválida do modelo: %s (texto: %s)", e.Reason, e.Raw)
	}
	return fmt.Sprintf("resposta inválida do modelo: %s", e.Reason)
}

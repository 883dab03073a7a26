package aigen_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/onia-prep/questgen/internal/aigen"
)

func candidato(numAlts int) map[string]any {
	alts := make([]any, numAlts)
	for i := range alts {
		alts[i] = "opção"
	}
	return map[string]any{
		"pergunta":         "Qual é a resposta?",
		"alternativas":     alts,
		"resposta_correta": "b",
		"explicacao":       "porque sim",
	}
}

func TestFormatQuestion(t *testing.T) {
	t.Run("PrefixaAlternativas", func(t *testing.T) {
		q, err := aigen.FormatQuestion(candidato(5), 5)
		if err != nil {
			t.Fatalf("FormatQuestion falhou: %v", err)
		}

		want := []string{"A) opção", "B) opção", "C) opção", "D) opção", "E) opção"}
		for i, alt := range q.Alternativas {
			if alt != want[i] {
				t.Errorf("alternativa %d = %q, esperado %q", i, alt, want[i])
			}
		}
	})

	t.Run("NormalizaRespostaCorreta", func(t *testing.T) {
		parsed := candidato(4)
		parsed["resposta_correta"] = " c "

		q, err := aigen.FormatQuestion(parsed, 4)
		if err != nil {
			t.Fatalf("FormatQuestion falhou: %v", err)
		}
		if q.RespostaCorreta != "C" {
			t.Errorf("resposta_correta = %q, esperado C", q.RespostaCorreta)
		}
	})

	t.Run("QuantidadeErrada", func(t *testing.T) {
		_, err := aigen.FormatQuestion(candidato(4), 5)

		var verr *aigen.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("esperado ValidationError para contagem errada, recebeu %v", err)
		}
		if !strings.Contains(verr.Reason, "esperadas 5") {
			t.Errorf("motivo não identifica a contagem esperada: %q", verr.Reason)
		}
	})

	t.Run("AlternativasAusentes", func(t *testing.T) {
		parsed := candidato(4)
		delete(parsed, "alternativas")

		var verr *aigen.ValidationError
		if _, err := aigen.FormatQuestion(parsed, 4); !errors.As(err, &verr) {
			t.Fatalf("esperado ValidationError sem o campo alternativas, recebeu %v", err)
		}
	})

	t.Run("AlternativaNaoTextual", func(t *testing.T) {
		parsed := candidato(4)
		parsed["alternativas"] = []any{"a", "b", 3, "d"}

		var verr *aigen.ValidationError
		if _, err := aigen.FormatQuestion(parsed, 4); !errors.As(err, &verr) {
			t.Fatalf("esperado ValidationError para alternativa não textual, recebeu %v", err)
		}
	})

	t.Run("LetraForaDoIntervalo", func(t *testing.T) {
		parsed := candidato(4)
		parsed["resposta_correta"] = "E"

		var verr *aigen.ValidationError
		if _, err := aigen.FormatQuestion(parsed, 4); !errors.As(err, &verr) {
			t.Fatalf("letra E com 4 alternativas deveria falhar, recebeu %v", err)
		}
	})

	t.Run("PerguntaAusente", func(t *testing.T) {
		parsed := candidato(4)
		delete(parsed, "pergunta")

		var verr *aigen.ValidationError
		if _, err := aigen.FormatQuestion(parsed, 4); !errors.As(err, &verr) {
			t.Fatalf("esperado ValidationError sem o campo pergunta, recebeu %v", err)
		}
	})

	t.Run("SintetizaExplicacoesErradas", func(t *testing.T) {
		q, err := aigen.FormatQuestion(candidato(4), 4)
		if err != nil {
			t.Fatalf("FormatQuestion falhou: %v", err)
		}

		if len(q.ExplicacoesErradas) != 4 {
			t.Fatalf("esperadas 4 explicações sintetizadas, recebidas %d", len(q.ExplicacoesErradas))
		}
		// correta é B: posição 1 vazia, demais com o texto genérico
		for i, e := range q.ExplicacoesErradas {
			if i == 1 && e != "" {
				t.Errorf("posição da resposta correta deveria ser vazia, recebeu %q", e)
			}
			if i != 1 && e == "" {
				t.Errorf("posição %d deveria ter o texto genérico", i)
			}
		}
	})

	t.Run("MantemExplicacoesDoModelo", func(t *testing.T) {
		parsed := candidato(4)
		parsed["explicacoes_erradas"] = []any{"e1", "", "e3", "e4"}

		q, err := aigen.FormatQuestion(parsed, 4)
		if err != nil {
			t.Fatalf("FormatQuestion falhou: %v", err)
		}
		if len(q.ExplicacoesErradas) != 4 || q.ExplicacoesErradas[0] != "e1" {
			t.Errorf("explicações do modelo deveriam ser mantidas: %v", q.ExplicacoesErradas)
		}
	})
}

func TestPlaceholderQuestion(t *testing.T) {
	q := aigen.PlaceholderQuestion("Redes Neurais", 1, "sem credencial")

	if len(q.Alternativas) != 4 {
		t.Fatalf("placeholder da fase 1 deveria ter 4 alternativas, recebeu %d", len(q.Alternativas))
	}
	if !strings.HasPrefix(q.Alternativas[0], "A)") {
		t.Errorf("alternativas do placeholder não são prefixadas: %q", q.Alternativas[0])
	}
	if q.RespostaCorreta != "A" {
		t.Errorf("resposta do placeholder deveria ser A, recebeu %q", q.RespostaCorreta)
	}
	if !strings.Contains(q.Pergunta, "Redes Neurais") {
		t.Errorf("enunciado do placeholder não menciona o tópico: %q", q.Pergunta)
	}
	if !strings.Contains(q.Explicacao, "sem credencial") {
		t.Errorf("feedback do placeholder não menciona o motivo: %q", q.Explicacao)
	}
}

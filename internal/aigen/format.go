package aigen

import (
	"fmt"
	"strings"
)

const placeholderErrada = "Esta alternativa não corresponde à resposta correta."

// FormatQuestion valida o objeto candidato extraído da resposta do modelo e o
// converte em GeneratedQuestion: exige exatamente numAlts alternativas
// textuais, prefixa cada uma com sua letra e normaliza a resposta correta.
// Qualquer divergência de forma falha com ValidationError; nunca trunca nem
// completa a lista.
func FormatQuestion(parsed map[string]any, numAlts int) (*GeneratedQuestion, error) {
	rawAlts, ok := parsed["alternativas"].([]any)
	if !ok {
		return nil, &ValidationError{Reason: "campo 'alternativas' ausente ou não é uma lista"}
	}
	if len(rawAlts) != numAlts {
		return nil, &ValidationError{
			Reason: fmt.Sprintf("esperadas %d alternativas, recebidas %d", numAlts, len(rawAlts)),
		}
	}

	alts := make([]string, numAlts)
	for i, alt := range rawAlts {
		text, ok := alt.(string)
		if !ok {
			return nil, &ValidationError{Reason: fmt.Sprintf("alternativa %d não é texto", i+1)}
		}
		alts[i] = fmt.Sprintf("%s) %s", letters[i], text)
	}

	q := &GeneratedQuestion{
		Categoria:       stringField(parsed, "categoria"),
		Topico:          stringField(parsed, "topico"),
		Pergunta:        stringField(parsed, "pergunta"),
		Alternativas:    alts,
		RespostaCorreta: strings.ToUpper(strings.TrimSpace(stringField(parsed, "resposta_correta"))),
		Explicacao:      stringField(parsed, "explicacao"),
	}

	if q.Pergunta == "" {
		return nil, &ValidationError{Reason: "campo 'pergunta' ausente"}
	}
	if !validLetter(q.RespostaCorreta, numAlts) {
		return nil, &ValidationError{
			Reason: fmt.Sprintf("resposta_correta %q fora das letras válidas %s",
				q.RespostaCorreta, strings.Join(letters[:numAlts], ", ")),
		}
	}

	q.ExplicacoesErradas = wrongExplanations(parsed["explicacoes_erradas"], q.RespostaCorreta, numAlts)
	return q, nil
}

func stringField(parsed map[string]any, key string) string {
	s, _ := parsed[key].(string)
	return s
}

func validLetter(letter string, numAlts int) bool {
	for _, l := range letters[:numAlts] {
		if letter == l {
			return true
		}
	}
	return false
}

// wrongExplanations usa a lista vinda do modelo quando ela é uma lista de
// strings; caso contrário sintetiza uma, vazia na posição da resposta correta
// e genérica nas demais.
func wrongExplanations(raw any, correta string, numAlts int) []string {
	if list, ok := raw.([]any); ok {
		out := make([]string, 0, len(list))
		valid := true
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				valid = false
				break
			}
			out = append(out, s)
		}
		if valid {
			return out
		}
	}

	out := make([]string, numAlts)
	for i := range out {
		if letters[i] != correta {
			out[i] = placeholderErrada
		}
	}
	return out
}

// PlaceholderQuestion gera localmente uma questão determinística para quando o
// provedor externo não está disponível. Nunca deve ser persistida.
func PlaceholderQuestion(topic string, fase int, reason string) *GeneratedQuestion {
	numAlts := NumAlternativas(NormalizeFaseInt(fase))

	alts := make([]string, numAlts)
	for i := range alts {
		alts[i] = fmt.Sprintf("%s) Alternativa %d", letters[i], i+1)
	}

	return &GeneratedQuestion{
		Pergunta:        fmt.Sprintf("(Fallback) Sobre %s: Qual é a alternativa correta?", topic),
		Alternativas:    alts,
		RespostaCorreta: "A",
		Explicacao:      fmt.Sprintf("Questão gerada localmente porque o gerador externo falhou: %s", reason),
	}
}

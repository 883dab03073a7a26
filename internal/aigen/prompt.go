package aigen

import (
	"fmt"
	"strconv"
	"strings"
)

var letters = []string{"A", "B", "C", "D", "E"}

var categorias = map[string]string{
	"logica":     "(Categoria: Lógica/Algoritmo) Questão que exige raciocínio, padrões, sequências, comandos ou grafos.",
	"lógica":     "(Categoria: Lógica/Algoritmo) Questão que exige raciocínio, padrões, sequências, comandos ou grafos.",
	"raciocinio": "(Categoria: Lógica/Algoritmo) Questão que exige raciocínio, padrões, sequências, comandos ou grafos.",
	"raciocínio": "(Categoria: Lógica/Algoritmo) Questão que exige raciocínio, padrões, sequências, comandos ou grafos.",
	"conceitual": "(Categoria: Conceitual) Questão sobre definições, história, fundamentos e tipos de IA.",
	"teorica":    "(Categoria: Conceitual) Questão sobre definições, história, fundamentos e tipos de IA.",
	"teórica":    "(Categoria: Conceitual) Questão sobre definições, história, fundamentos e tipos de IA.",
	"teorico":    "(Categoria: Conceitual) Questão sobre definições, história, fundamentos e tipos de IA.",
	"etica":      "(Categoria: Ética e Sociedade) Questão sobre vieses, riscos sociais, privacidade e implicações éticas.",
	"ética":      "(Categoria: Ética e Sociedade) Questão sobre vieses, riscos sociais, privacidade e implicações éticas.",
	"sociedade":  "(Categoria: Ética e Sociedade) Questão sobre vieses, riscos sociais, privacidade e implicações éticas.",
	"aplicacoes": "(Categoria: Aplicações e História) Questão sobre uso prático da IA em setores diversos ou contexto histórico.",
	"aplicações": "(Categoria: Aplicações e História) Questão sobre uso prático da IA em setores diversos ou contexto histórico.",
}

const categoriaGeral = "(Categoria: Geral) Questão interdisciplinar no estilo ONIA, podendo ser conceitual, lógica, ética ou aplicada."

// NormalizeFase converte a fase recebida na query string; qualquer valor fora
// de {1, 2}, inclusive não numérico, vira 2.
func NormalizeFase(raw string) int {
	fase, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 2
	}
	return NormalizeFaseInt(fase)
}

func NormalizeFaseInt(fase int) int {
	if fase != 1 && fase != 2 {
		return 2
	}
	return fase
}

// NumAlternativas é o número de alternativas exigido pela fase: 4 na fase 1,
// 5 na fase 2.
func NumAlternativas(fase int) int {
	if fase == 1 {
		return 4
	}
	return 5
}

// BuildPrompt monta a instrução enviada ao modelo. Função pura dos argumentos.
func BuildPrompt(topic string, fase int, categoria string) string {
	numAlts := NumAlternativas(NormalizeFaseInt(fase))

	intro := categorias[strings.ToLower(strings.TrimSpace(categoria))]
	if intro == "" {
		intro = categoriaGeral
	}

	return fmt.Sprintf(
		"Você é um gerador de questões da Olimpíada Nacional de Inteligência Artificial (ONIA).\n"+
			"%s\n"+
			"O tópico específico desta questão é: %s.\n\n"+
			"Gere UMA questão de múltipla escolha baseada nesse tópico, "+
			"usando exatamente %d alternativas rotuladas com letras %s.\n\n"+
			"As questões devem seguir 4 pilares obrigatórios:\n"+
			"1. Foco Interdisciplinar e Técnico: incluir conceitos fundamentais de IA (definições, história, algoritmos clássicos como DFS/BFS).\n"+
			"2. Complexidade Algorítmica: explorar raciocínio lógico, padrões, máquinas de estados, big data, vetores, comandos e sequências.\n"+
			"3. Relevância Ética e Social: abordar vieses, direitos autorais, neutralidade, limiares e implicações sociais da IA.\n"+
			"4. Fidelidade ao Formato ONIA: contextualizar o enunciado em cenários realistas, com alternativas consistentes e gabarito claro.\n\n"+
			"Responda SOMENTE com um JSON válido no formato:\n"+
			"{\n"+
			"  \"pergunta\": string,\n"+
			"  \"alternativas\": [string,...],\n"+
			"  \"resposta_correta\": string (uma letra como 'A'),\n"+
			"  \"explicacao\": string (curta, do porquê a correta é correta),\n"+
			"  \"explicacoes_erradas\": [string,...] (opcional, uma por alternativa)\n"+
			"}\n"+
			"Cada alternativa deve conter apenas o texto (sem prefixo de letra).\n"+
			"Responda SOMENTE com JSON válido, sem comentários, sem markdown e sem nada fora da estrutura definida.",
		intro, topic, numAlts, strings.Join(letters[:numAlts], ", "),
	)
}

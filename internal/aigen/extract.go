package aigen

import (
	"encoding/json"
	"regexp"
	"strings"
)

var fencedJSON = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")

// FindJSON extrai o primeiro objeto JSON embutido em texto livre. Procura um
// bloco cercado por crases triplas (com ou sem a tag json); na ausência, usa o
// trecho entre a primeira '{' e a última '}'. Esse recorte pode capturar
// fragmentos não relacionados quando o texto tem vários blocos JSON soltos;
// limitação conhecida, herdada da heurística original.
func FindJSON(s string) (map[string]any, bool) {
	var candidate string
	if m := fencedJSON.FindStringSubmatch(s); m != nil {
		candidate = m[1]
	} else {
		i := strings.Index(s, "{")
		j := strings.LastIndex(s, "}")
		if i == -1 || j == -1 || j < i {
			return nil, false
		}
		candidate = s[i : j+1]
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(candidate), &parsed); err != nil {
		return nil, false
	}
	return parsed, true
}

package parse

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/versodoc/markup/ast"
)

// parsePairs reads metadata fence content as YAML, keeping the key order
// the author wrote. Content YAML cannot make sense of degrades to a
// line-by-line "key: value" split rather than being dropped.
func parsePairs(content string) []ast.Pair {
	var m yaml.MapSlice
	if err := yaml.Unmarshal([]byte(content), &m); err == nil {
		pairs := make([]ast.Pair, 0, len(m))
		for _, item := range m {
			pairs = append(pairs, ast.Pair{
				Key:   fmt.Sprint(item.Key),
				Value: metaValue(item.Value),
			})
		}
		return pairs
	}
	return splitPairs(content)
}

func metaValue(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

func splitPairs(content string) []ast.Pair {
	var pairs []ast.Pair
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		k, v, ok := strings.Cut(line, ":")
		if !ok {
			pairs = append(pairs, ast.Pair{Key: line})
			continue
		}
		pairs = append(pairs, ast.Pair{
			Key:   strings.TrimSpace(k),
			Value: strings.TrimSpace(v),
		})
	}
	return pairs
}

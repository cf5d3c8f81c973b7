package fields

import (
	"strings"

	"autos-converter/internal/core/jsonvalue"
)

// ExtractImageLinks procura links de imagens nas chaves conhecidas e devolve cada URL entre
// aspas duplas, unidas por ", ". Aceita array de URLs, objeto de URLs, URL única ou URLs
// separadas por vírgula.
func ExtractImageLinks(record jsonvalue.Value) string {
	for _, field := range imageFields {
		raw, ok := Resolve(record, []string{field})
		if !ok {
			continue
		}
		if urls := imageURLs(raw); len(urls) > 0 {
			return quoteJoin(urls)
		}
	}
	return ""
}

func imageURLs(raw jsonvalue.Value) []string {
	switch raw.Kind() {
	case jsonvalue.Array:
		var urls []string
		for _, item := range raw.Items() {
			if s := strings.TrimSpace(Display(item)); s != "" {
				urls = append(urls, s)
			}
		}
		return urls
	case jsonvalue.Object:
		var urls []string
		for _, m := range raw.Members() {
			if s, ok := m.Value.Str(); ok && isURL(s) {
				urls = append(urls, s)
			}
		}
		return urls
	case jsonvalue.String:
		s, _ := raw.Str()
		if !strings.Contains(s, "http") && !strings.HasPrefix(s, "data:") {
			return nil
		}
		if isURL(s) && !strings.Contains(s, ",") {
			return []string{strings.TrimSpace(s)}
		}
		var urls []string
		for _, part := range strings.Split(s, ",") {
			if p := strings.TrimSpace(part); p != "" {
				urls = append(urls, p)
			}
		}
		return urls
	}
	return nil
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http") || strings.HasPrefix(s, "data:")
}

func quoteJoin(urls []string) string {
	quoted := make([]string, len(urls))
	for i, u := range urls {
		quoted[i] = `"` + u + `"`
	}
	return strings.Join(quoted, ", ")
}

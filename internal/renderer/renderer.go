// Package renderer bygger HTML-fragmentene som settes inn i malen.
// Funksjonene er rene: konfigurasjon og hentede data inn, HTML ut.
// Tekst fra eksterne kilder (RSS, GitHub) escapes alltid før den settes
// inn; tekst forfattet i konfigurasjonsfilen er eierens egen og escapes
// ikke.
package renderer

import (
	"bytes"
	"log/slog"
	"strings"

	"github.com/yuin/goldmark"
)

// EscapeHTML escaper de fem tegnene som kan åpne markup, slik at
// innhold fra RSS og GitHub aldri blir levende HTML.
func EscapeHTML(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)
	return r.Replace(s)
}

// Substitute bytter ut alle {{NAVN}}-plassholdere i malen i én
// gjennomgang. Plassholdere uten oppføring i values blir stående
// bokstavelig i utdataene.
func Substitute(template string, values map[string]string) string {
	oldnew := make([]string, 0, len(values)*2)
	for name, value := range values {
		oldnew = append(oldnew, "{{"+name+"}}", value)
	}
	return strings.NewReplacer(oldnew...).Replace(template)
}

var markdown = goldmark.New()

// Markdown konverterer konfigurasjonsforfattet markdown til HTML.
// Ved konverteringsfeil returneres teksten uendret.
func Markdown(src string) string {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		slog.Warn("Markdown-konvertering feilet, bruker råtekst", "error", err)
		return src
	}
	return strings.TrimSpace(buf.String())
}

// MarkdownInline er Markdown uten det ytterste avsnittet, for tekst som
// skal inn i et eksisterende element.
func MarkdownInline(src string) string {
	out := Markdown(src)
	if strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") && strings.Count(out, "<p>") == 1 {
		out = strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>")
	}
	return out
}

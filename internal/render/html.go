package render

import (
	"bytes"
	"html/template"
	"io"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"greyhound-backend/internal/content"
	"greyhound-backend/internal/models"
)

var (
	markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))
	policy   = bluemonday.UGCPolicy()
)

// MarkdownHTML converts assistant markdown to sanitised HTML.
func MarkdownHTML(text string) template.HTML {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(text), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(text))
	}
	return template.HTML(policy.SanitizeBytes(buf.Bytes()))
}

type transcriptEntry struct {
	Speaker  string
	Class    string
	Markdown bool
	HTML     template.HTML
	Text     string
}

var transcriptTmpl = template.Must(template.New("transcript").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<h1>{{.Title}}</h1>
<p class="exported">Exported {{.Exported}}</p>
{{range .Entries}}<div class="message {{.Class}}">
<div class="speaker">{{.Speaker}}</div>
{{if .Markdown}}<div class="body markdown">{{.HTML}}</div>{{else}}<div class="body">{{.Text}}</div>{{end}}
</div>
{{end}}</body>
</html>
`))

// WriteTranscript writes the conversation as a standalone HTML page.
func WriteTranscript(w io.Writer, messages []models.Message, exported time.Time) error {
	entries := make([]transcriptEntry, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case models.RoleAssistant:
			class := "assistant"
			if m.IsError {
				class = "assistant error"
			}
			entries = append(entries, transcriptEntry{
				Speaker:  content.AssistantName,
				Class:    class,
				Markdown: true,
				HTML:     MarkdownHTML(m.Content),
			})
		case models.RoleUser:
			entries = append(entries, transcriptEntry{Speaker: "You", Class: "user", Text: m.Content})
		}
	}

	return transcriptTmpl.Execute(w, map[string]interface{}{
		"Title":    content.AssistantName + " conversation",
		"Exported": exported.Format(time.RFC1123),
		"Entries":  entries,
	})
}

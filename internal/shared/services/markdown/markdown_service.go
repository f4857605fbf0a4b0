// Package markdown renders user-written comment bodies for display.
package markdown

import (
	"bytes"
	"html"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// Service is safe for concurrent use.
type Service struct {
	md  goldmark.Markdown
	ugc *bluemonday.Policy
}

func NewService() *Service {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
	)

	ugc := bluemonday.UGCPolicy()
	ugc.RequireNoFollowOnLinks(true)
	ugc.AddTargetBlankToFullyQualifiedLinks(true)

	return &Service{
		md:  md,
		ugc: ugc,
	}
}

// ToHTML renders a comment body. Raw HTML in the source is escaped by goldmark
// and the output is sanitized again, so the result is safe to inject.
func (s *Service) ToHTML(source string) string {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(source), &buf); err != nil {
		return s.ugc.Sanitize("<p>" + html.EscapeString(source) + "</p>")
	}
	return s.ugc.Sanitize(buf.String())
}

// Package site renders the single HKS page and serves its static assets.
//
// The page is server-rendered from embedded html/template files so the copy
// is present without JavaScript. The scanner widget and the contact form
// are driven by static/app.js, and static/background.js draws the
// decorative particle field.
package site

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"time"

	"github.com/hacksolana/hks/internal/content"
)

// DefaultLogoURL is the logo image used in the nav, hero and footer.
const DefaultLogoURL = "https://i.ibb.co/dwm1Xr3K/Gemini-Generated-Image-lu8fd1lu8fd1lu8.jpg"

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Page is the data passed to the page template.
type Page struct {
	Content       *content.Content
	LogoURL       string
	ConfirmMillis int64
	PhoneHref     template.URL
	EmailHref     string
}

// Renderer renders the page. It is safe for concurrent use.
type Renderer struct {
	tmpl *template.Template
	page Page
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithConfirmDelay sets the contact confirmation delay announced to the page script.
func WithConfirmDelay(d time.Duration) RendererOption {
	return func(r *Renderer) {
		r.page.ConfirmMillis = d.Milliseconds()
	}
}

// WithLogoURL overrides the logo image.
func WithLogoURL(url string) RendererOption {
	return func(r *Renderer) {
		if url != "" {
			r.page.LogoURL = url
		}
	}
}

// NewRenderer parses the embedded templates for c.
func NewRenderer(c *content.Content, opts ...RendererOption) (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	r := &Renderer{
		tmpl: tmpl,
		page: Page{
			Content:       c,
			LogoURL:       DefaultLogoURL,
			ConfirmMillis: (3 * time.Second).Milliseconds(),
			// tel: is not on html/template's list of safe schemes.
			PhoneHref: template.URL(c.Contact.PhoneHref()), //nolint:gosec // built from operator content
			EmailHref: c.Contact.EmailHref(),
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Render writes the full page to w. The page is rendered into a buffer first
// so a template error never leaves a half-written response.
func (r *Renderer) Render(w io.Writer) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "index", r.page); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// StaticHandler serves the embedded assets. Mount it under "/static/".
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServerFS(sub))
}

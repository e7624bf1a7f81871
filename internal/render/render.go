// Package render turns assembled views into HTML pages.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/url"
	"strings"

	"github.com/meur/rulesview/internal/view"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Page names
const (
	PageArmies         = "armies"
	PageRegiments      = "regiments"
	PageManifestations = "manifestations"
	PageFAQ            = "faq"
)

var pages = []string{PageArmies, PageRegiments, PageManifestations, PageFAQ}

// Page is the data handed to every page template
type Page struct {
	Title string
	Tab   string
	Info  *view.DataInfo
	Data  interface{}
}

// ArmiesPage is the data of the armies page
type ArmiesPage struct {
	Index   view.ArmyIndex
	Army    *view.ArmyView
	Message string
}

// Links resolves hrefs inside the rendered pages. The server and the static
// site lay pages out differently.
type Links interface {
	Tab(page string) string
	Army(name string) string
	Asset(path string) string
}

// ServerLinks points at the routes of the HTTP server
type ServerLinks struct{}

func (ServerLinks) Tab(page string) string { return "/" + page }
func (ServerLinks) Army(name string) string { return "/armies/" + url.PathEscape(name) }
func (ServerLinks) Asset(path string) string { return "/assets/" + path }

// StaticLinks points at the files written by a static build. All pages sit
// in the same directory so links are relative.
type StaticLinks struct{}

func (StaticLinks) Tab(page string) string { return page + ".html" }
func (StaticLinks) Army(name string) string { return ArmyFile(name) }
func (StaticLinks) Asset(path string) string { return "assets/" + path }

// ArmyFile is the static file name of an army page
func ArmyFile(name string) string {
	return "army-" + view.Slug(name) + ".html"
}

// Renderer executes the page templates
type Renderer struct {
	pages map[string]*template.Template
}

// New parses every page template against links
func New(links Links) (*Renderer, error) {
	funcs := template.FuncMap{
		"tab":   links.Tab,
		"army":  links.Army,
		"asset": links.Asset,
		"rowClass": func(even bool) string {
			if even {
				return "even-row"
			}
			return "odd-row"
		},
		"badgeClass": func(badge string) string {
			return "badge-" + strings.ToLower(badge)
		},
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(pages))}
	for _, p := range pages {
		t, err := template.New(p).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+p+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", p, err)
		}
		r.pages[p] = t
	}
	return r, nil
}

// Render writes page to w. Nothing is written when execution fails.
func (r *Renderer) Render(w io.Writer, page string, data Page) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	if data.Tab == "" {
		data.Tab = page
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("failed to render %s: %w", page, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// Assets returns the bundled stylesheet and icons
func Assets() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

package view

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"movie-watchlist/internal/data/entity"

	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

// pages rendered on top of the base layout
var pages = []string{
	"register.html",
	"login.html",
	"index.html",
	"new_movie.html",
	"edit_movie.html",
	"movie_details.html",
	"not_found.html",
}

// PageData is the contract between handlers and templates.
type PageData struct {
	Title        string
	Theme        string
	Year         int
	LoggedIn     bool
	UserName     string
	CurrentPath  string
	Flashes      []entity.Flash
	Form         any
	Errors       map[string]string
	Data         any
	RecaptchaKey string
}

type Renderer interface {
	Render(w http.ResponseWriter, status int, page string, data *PageData)
}

type TemplateRenderer struct {
	templates map[string]*template.Template
	log       *zap.Logger
}

func NewTemplateRenderer(log *zap.Logger) (*TemplateRenderer, error) {
	templates := make(map[string]*template.Template, len(pages))

	for _, page := range pages {
		tmpl, err := template.ParseFS(templateFS, "templates/base.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		templates[page] = tmpl
	}

	return &TemplateRenderer{
		templates: templates,
		log:       log.With(zap.String("component", "renderer")),
	}, nil
}

func (r *TemplateRenderer) Render(w http.ResponseWriter, status int, page string, data *PageData) {
	tmpl, ok := r.templates[page]
	if !ok {
		r.log.Error("Unknown template requested", zap.String("page", page))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if data == nil {
		data = &PageData{}
	}
	if data.Theme == "" {
		data.Theme = "light"
	}
	if data.Year == 0 {
		data.Year = time.Now().Year()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	if err := tmpl.ExecuteTemplate(w, "base", data); err != nil {
		r.log.Error("Failed to execute template",
			zap.Error(err),
			zap.String("page", page))
	}
}

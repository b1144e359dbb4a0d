// Package site is the HTTP server: page routes, static assets, the optional
// analytics surface and the static exporter.
package site

import (
	"context"
	"errors"
	"log"
	"net/http"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dhruvvakharia/portfolio/internal/analytics"
	"github.com/dhruvvakharia/portfolio/internal/config"
	"github.com/dhruvvakharia/portfolio/internal/content"
)

// RelatedCount is how many other projects a detail page links to.
const RelatedCount = 2

// Options configures New.
type Options struct {
	Config   config.Config
	Renderer *Renderer
	// Store enables visit recording and the admin pages when non-nil.
	Store *analytics.Store
	// Now stamps the footer year. Defaults to time.Now.
	Now func() time.Time
}

// Server is the configured gin engine.
type Server struct {
	cfg      config.Config
	engine   *gin.Engine
	renderer *Renderer
	now      func() time.Time
}

// New builds the router.
func New(opts Options) (*Server, error) {
	if opts.Renderer == nil {
		r, err := NewRenderer(Templates())
		if err != nil {
			return nil, err
		}
		opts.Renderer = r
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	s := &Server{cfg: opts.Config, renderer: opts.Renderer, now: opts.Now}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), RequestID())
	r.HTMLRender = s.renderer

	if opts.Store != nil {
		r.Use(analytics.Middleware(opts.Store))
		a := opts.Config.Analytics
		admin, err := analytics.NewAdmin(opts.Store, a.AdminUser, a.AdminPassword, a.RetentionMonths)
		if err != nil {
			return nil, err
		}
		admin.Register(r)
	}

	r.Static("/static", s.cfg.StaticDir)
	r.Static("/images", s.cfg.ImagesDir)
	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	r.GET("/", s.home)
	r.GET("/projects", s.projects)
	r.GET("/projects/:id", s.project)
	r.GET("/contact", s.contact)
	r.NoRoute(s.notFound)

	s.engine = r
	return s, nil
}

// Handler is the root http.Handler.
func (s *Server) Handler() http.Handler { return s.engine }

// ListenAndServe serves on the configured port until ctx is cancelled, then
// drains open requests for up to five seconds.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		log.Printf("Serving on http://localhost%s", srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// page is the data every template shares: metadata, navigation and footer.
func (s *Server) page(c *gin.Context, title string, extra gin.H) gin.H {
	h := gin.H{
		"title":       title,
		"description": content.Description,
		"keywords":    content.Keywords(),
		"owner":       content.Owner,
		"initials":    content.Initials,
		"role":        content.Role,
		"path":        c.Request.URL.Path,
		"nav":         content.NavLinks(),
		"social":      content.SocialLinks(),
		"year":        s.now().Year(),
	}
	if base := strings.TrimSuffix(s.cfg.BaseURL, "/"); base != "" {
		h["canonical"] = base + c.Request.URL.Path
	}
	for k, v := range extra {
		h[k] = v
	}
	return h
}

func (s *Server) render(c *gin.Context, status int, name string, data gin.H) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := s.renderer.Execute(c.Writer, name, data); err != nil {
		log.Printf("Error rendering %s: %v", name, err)
		c.String(http.StatusInternalServerError, "Internal Server Error")
	}
}

func pageTitle(name string) string {
	return name + " | " + content.Owner
}

func (s *Server) home(c *gin.Context) {
	s.render(c, http.StatusOK, "home.html", s.page(c, content.Title, gin.H{
		"hero":         content.HeroBlock(),
		"about":        content.AboutText(),
		"stats":        content.Stats(),
		"services":     content.Services(),
		"process":      content.Process(),
		"featured":     content.FeaturedProjects(content.DefaultFeatured),
		"testimonials": content.Testimonials(),
		"faq":          content.FAQ(true),
	}))
}

func (s *Server) projects(c *gin.Context) {
	s.render(c, http.StatusOK, "projects.html", s.page(c, pageTitle("Projects"), gin.H{
		"projects": content.Projects(),
	}))
}

func (s *Server) project(c *gin.Context) {
	id := c.Param("id")
	// Project images live under /projects/ alongside the detail pages.
	if path.Ext(id) != "" {
		c.File(filepath.Join(s.cfg.ImagesDir, "projects", id))
		return
	}
	p, err := content.LookupProject(id)
	if err != nil {
		s.notFound(c)
		return
	}
	data := gin.H{
		"project": p,
		"related": content.RelatedProjects(p.ID, RelatedCount),
	}
	cs, err := content.CaseStudyFor(p.ID)
	switch {
	case err == nil:
		data["caseStudy"] = cs
	case !errors.Is(err, content.ErrNotFound):
		log.Printf("Error loading case study %s: %v", p.ID, err)
	}
	s.render(c, http.StatusOK, "project.html", s.page(c, pageTitle(p.Title), data))
}

func (s *Server) contact(c *gin.Context) {
	s.render(c, http.StatusOK, "contact.html", s.page(c, pageTitle("Contact"), gin.H{
		"details": content.ContactDetails(),
		"faq":     content.FAQ(false),
	}))
}

func (s *Server) notFound(c *gin.Context) {
	s.render(c, http.StatusNotFound, "not-found.html", s.page(c, pageTitle("Page Not Found"), nil))
}

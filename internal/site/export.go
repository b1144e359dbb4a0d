package site

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhruvvakharia/portfolio/internal/content"
)

// NotFoundFile is the exported 404 page, the name most static hosts look for.
const NotFoundFile = "404.html"

// Routes lists every page the exporter renders.
func Routes() []string {
	routes := []string{"/", "/projects", "/contact"}
	for _, p := range content.Projects() {
		routes = append(routes, p.Path())
	}
	return routes
}

// Export renders every route to <dir>/<route>/index.html, writes the
// not-found page and copies the static and image directories. dir is
// emptied first.
func (s *Server) Export(ctx context.Context, dir string) error {
	log.Printf("Cleaning output directory: %s", dir)
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to remove output directory '%s': %w", dir, err)
	}
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create output directory '%s': %w", dir, err)
	}

	for _, route := range Routes() {
		if err := ctx.Err(); err != nil {
			return err
		}
		out := filepath.Join(dir, filepath.FromSlash(strings.TrimPrefix(route, "/")), "index.html")
		if err := s.exportPage(ctx, route, http.StatusOK, out); err != nil {
			return err
		}
	}
	if err := s.exportPage(ctx, "/404", http.StatusNotFound, filepath.Join(dir, NotFoundFile)); err != nil {
		return err
	}

	copies := []struct{ src, dst string }{
		{s.cfg.StaticDir, filepath.Join(dir, "static")},
		{s.cfg.ImagesDir, filepath.Join(dir, "images")},
		{filepath.Join(s.cfg.ImagesDir, "projects"), filepath.Join(dir, "projects")},
	}
	for _, c := range copies {
		if _, err := os.Stat(c.src); os.IsNotExist(err) {
			log.Printf("Directory '%s' not found, skipping copy.", c.src)
			continue
		}
		if err := copyDirContents(c.src, c.dst); err != nil {
			return fmt.Errorf("failed to copy %s: %w", c.src, err)
		}
	}
	log.Printf("Exported %d pages to %s", len(Routes())+1, dir)
	return nil
}

func (s *Server) exportPage(ctx context.Context, route string, want int, out string) error {
	req := httptest.NewRequest(http.MethodGet, route, nil).WithContext(ctx)
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	if w.Code != want {
		return fmt.Errorf("export %s: status %d, want %d", route, w.Code, want)
	}
	if err := os.MkdirAll(filepath.Dir(out), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", route, err)
	}
	if err := os.WriteFile(out, w.Body.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	return nil
}

func copyDirContents(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path for %s: %w", path, err)
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, os.ModePerm)
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source file %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create destination file %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy data from %s to %s: %w", src, dst, err)
	}
	return out.Close()
}

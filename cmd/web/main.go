package main

import (
	"flag"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"sardis.io/docs-web/internal/docs"
	"sardis.io/docs-web/internal/format"
	"sardis.io/docs-web/internal/handlers"
	mw "sardis.io/docs-web/internal/middleware"
	"sardis.io/docs-web/internal/status"
)

var (
	templatesDir = "templates"
	publicDir    = "public"
	// devMode is set in main() based on env: SARDIS_DOCS_DEV (preferred) or DEV (fallback)
	devMode   bool
	tmplCache *template.Template

	site         *handlers.Site
	statusClient *status.Client
	logger       *zap.Logger
)

func main() {
	// Flags/environment
	var (
		addr       string
		tmplPath   string
		pubPath    string
		contentDir string
	)
	// Port resolution: prefer SARDIS_DOCS_PORT, then Cloud Run's PORT, else 8080
	port := os.Getenv("SARDIS_DOCS_PORT")
	if port == "" {
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = "8080"
	}
	flag.StringVar(&addr, "addr", ":"+port, "HTTP listen address")
	flag.StringVar(&tmplPath, "templates", templatesDir, "templates directory")
	flag.StringVar(&pubPath, "public", publicDir, "public assets directory")
	defaultContent := os.Getenv("SARDIS_DOCS_CONTENT_DIR")
	if defaultContent == "" {
		defaultContent = "content"
	}
	flag.StringVar(&contentDir, "content", defaultContent, "overlay page directory (missing is fine)")
	flag.Parse()

	templatesDir = tmplPath
	publicDir = pubPath

	// Dev mode: prefer SARDIS_DOCS_DEV, fallback to DEV
	devMode = os.Getenv("SARDIS_DOCS_DEV") != "" || os.Getenv("DEV") != ""

	var err error
	if devMode {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	registry, err := buildRegistry(contentDir)
	if err != nil {
		logger.Fatal("build registry", zap.Error(err))
	}
	site = &handlers.Site{
		Registry:  registry,
		BaseURL:   strings.TrimRight(os.Getenv("SARDIS_DOCS_BASE_URL"), "/"),
		Analytics: handlers.LoadAnalyticsFromEnv(),
	}
	statusClient = status.NewClient(os.Getenv("SARDIS_DOCS_STATUS_URL"))

	if !devMode {
		// Parse templates once in production
		tc, err := parseTemplates()
		if err != nil {
			logger.Fatal("parse templates", zap.Error(err))
		}
		tmplCache = tc
	}

	r := newRouter()

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logger.Info("docs-web listening",
		zap.String("addr", addr),
		zap.Bool("dev", devMode),
		zap.Int("pages", registry.Len()),
	)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("listen", zap.Error(err))
	}
}

// buildRegistry assembles the immutable page set: built-in pages first, then
// any overlay pages from the content directory.
func buildRegistry(contentDir string) (*docs.Registry, error) {
	pages := docs.Builtin()
	overlay, err := docs.LoadDir(contentDir)
	if err != nil {
		return nil, err
	}
	pages = append(pages, overlay...)
	return docs.NewRegistry(pages)
}

func newRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	// If deployed behind a trusted reverse proxy/load balancer, RealIP will use
	// X-Forwarded-For to determine the client IP. Ensure only trusted proxies
	// can set these headers in production environments.
	r.Use(middleware.RealIP)
	r.Use(mw.Logger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(middleware.Timeout(30 * time.Second))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Static assets under /assets/
	assets := http.StripPrefix("/assets", mw.AssetsWithCache(filepath.Join(publicDir, "assets")))
	r.Handle("/assets/*", assets)

	r.Get("/", HomeHandler)
	r.Get("/docs", DocsIndexHandler)
	r.Get("/docs/{slug}", DocPageHandler)
	r.Get("/status", StatusHandler)
	r.Get("/sitemap.xml", SitemapHandler)
	r.NotFound(NotFoundHandler)
	return r
}

func parseTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"now":     time.Now,
		"fmtDate": format.FmtDate,
		// JSON-LD payloads are produced by seo.JSON and already safe JSON.
		"jsonld": func(s string) template.JS { return template.JS(s) },
	}
	// Recursively discover and parse all .tmpl files. Note: ParseGlob doesn't support **.
	var files []string
	if err := filepath.WalkDir(templatesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found under %s", templatesDir)
	}
	return template.New("_root").Funcs(funcMap).ParseFiles(files...)
}

// render executes the base layout. In dev mode, templates are reparsed on
// each request.
func render(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	var t *template.Template
	if devMode {
		tc, err := parseTemplates()
		if err != nil {
			http.Error(w, fmt.Sprintf("template parse error: %v", err), http.StatusInternalServerError)
			return
		}
		t = tc
	} else {
		t = tmplCache
	}
	if t == nil {
		http.Error(w, "template not initialized", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(statusCode)
	if err := t.ExecuteTemplate(w, "base", data); err != nil {
		logger.Error("template exec", zap.Error(err))
	}
}

// HomeHandler renders the landing page.
func HomeHandler(w http.ResponseWriter, r *http.Request) {
	render(w, http.StatusOK, site.BuildHomeData())
}

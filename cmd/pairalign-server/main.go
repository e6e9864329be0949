// Command pairalign-server provides a REST API for pairwise alignment.
//
// Usage:
//
//	pairalign-server [options]
//
// Options:
//
//	-port     Port to listen on (default: server.port, 8080)
//	-host     Host to bind to (default: server.host, localhost)
//
// Defaults come from pairalign.yaml in the working directory when present.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/wasade/pairalign/api/handlers"
	"github.com/wasade/pairalign/api/middleware"
	"github.com/wasade/pairalign/config"
)

func main() {
	cfg := config.New()

	port := flag.Int("port", cfg.Server.Port, "Port to listen on")
	host := flag.String("host", cfg.Server.Host, "Host to bind to")
	flag.Parse()

	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Alignment endpoints
		r.Route("/align", func(r chi.Router) {
			r.Post("/global", handlers.GlobalAlignHandler)
			r.Post("/local", handlers.LocalAlignHandler)
			r.Post("/score", handlers.AlignmentScoreHandler)
		})

		// Profile endpoints
		r.Route("/profile", func(r chi.Router) {
			r.Post("/validate", handlers.ValidateProfileHandler)
		})
	})

	// Home page
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<!DOCTYPE html>
<html>
<head>
    <title>pairalign API</title>
    <style>
        body { font-family: system-ui, sans-serif; max-width: 800px; margin: 2rem auto; padding: 0 1rem; }
        h1 { color: #2563eb; }
        pre { background: #f3f4f6; padding: 1rem; border-radius: 0.5rem; overflow-x: auto; }
        .endpoint { margin: 1rem 0; padding: 1rem; border: 1px solid #e5e7eb; border-radius: 0.5rem; }
        .method { display: inline-block; padding: 0.25rem 0.5rem; background: #10b981; color: white; border-radius: 0.25rem; font-size: 0.875rem; }
    </style>
</head>
<body>
    <h1>pairalign API</h1>
    <p>A REST API for pairwise alignment of sequences and profiles.</p>

    <h2>Endpoints</h2>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/align/global</code>
        <p>Global (Needleman-Wunsch) alignment with affine gap penalties.</p>
        <pre>{"profile_a": ["HEAGAWGHEE"], "profile_b": ["PAWHEAE"], "gap_open": 10, "gap_extend": 5}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/align/local</code>
        <p>Local (Smith-Waterman) alignment of two sequences.</p>
        <pre>{"profile_a": ["HEAGAWGHEE"], "profile_b": ["PAWHEAE"]}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/align/score</code>
        <p>Alignment score only, without a traceback.</p>
        <pre>{"profile_a": ["ACGT"], "profile_b": ["ACGGT"], "alphabet": "nucleotide", "mode": "global"}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/profile/validate</code>
        <p>Check that sequences form a valid profile.</p>
        <pre>{"sequences": ["AWGHE", "AW-HE"]}</pre>
    </div>

    <p>For more information, see the <a href="https://github.com/wasade/pairalign">documentation</a>.</p>
</body>
</html>`))
	})

	addr := fmt.Sprintf("%s:%d", *host, *port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	done := make(chan bool, 1)
	quit := make(chan os.Signal, 1)

	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		server.SetKeepAlivesEnabled(false)
		if err := server.Shutdown(ctx); err != nil {
			log.Fatalf("Could not gracefully shutdown: %v\n", err)
		}
		close(done)
	}()

	log.Printf("pairalign API server starting on http://%s\n", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on %s: %v\n", addr, err)
	}

	<-done
	log.Println("Server stopped")
}

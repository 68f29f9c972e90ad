package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"biblealive/internal/annotations"
	"biblealive/internal/bible"
	"biblealive/internal/chapter"
	"biblealive/internal/history"
	"biblealive/internal/middleware"
	"biblealive/internal/progress"
	"biblealive/internal/provider"
	"biblealive/internal/search"
	synchub "biblealive/internal/sync"
	"biblealive/internal/votd"
	"biblealive/pkg/database"
	"biblealive/pkg/utils"
)

func main() {
	cfg := utils.LoadServerConfig()

	dbCfg := database.DefaultConfig()
	db := database.MustOpen(dbCfg)
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	router := gin.Default()
	router.HandleMethodNotAllowed = true
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	router.Use(middleware.CORS())

	hub := synchub.NewHub()
	router.GET("/ws", synchub.WSHandler(hub))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": dbCfg.Path})
	})

	router.GET("/ready", func(c *gin.Context) {
		stats := hub.Stats()
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":     "not_ready",
				"db_error":   err.Error(),
				"ws_clients": stats.WSClients,
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":     "ready",
			"db":         "ok",
			"ws_clients": stats.WSClients,
		})
	})

	api := router.Group("/api")

	api.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Bible Alive API is running",
			"endpoints": []string{
				"books", "versions", "chapter-improved", "search",
				"verse-of-day", "version-history", "bookmarks",
				"highlights", "notes", "progress", "reading-plans",
			},
		})
	})

	// Static catalogs
	bible.NewHandler().RegisterRoutes(api)

	// Content resolution
	resolver := provider.NewResolver(cfg)
	chapter.NewHandler(resolver).RegisterRoutes(api)
	search.NewHandler(search.NewAggregator(resolver)).RegisterRoutes(api)
	votd.NewHandler(votd.NewSelector(cfg.DatasetURL, cfg.FetchTimeout, resolver.BibleAPI)).RegisterRoutes(api)

	// User data (sqlite-backed)
	annotations.NewHandler(annotations.NewRepo(db), hub).RegisterRoutes(api)
	history.NewHandler(history.NewRepo(db)).RegisterRoutes(api)
	progress.NewHandler(progress.NewRepo(db), hub).RegisterRoutes(api)

	httpSrv := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("HTTP API server listening on %s", cfg.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("shutdown signal received: %s", sig)
	case err := <-errCh:
		log.Printf("server error: %v", err)
	}

	log.Println("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown error: %v", err)
	}
	log.Println("server stopped")
}

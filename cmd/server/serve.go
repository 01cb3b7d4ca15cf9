package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/pprof"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/Yuter777/Which-flag-game/internal/config"
	"github.com/Yuter777/Which-flag-game/internal/countries"
	"github.com/Yuter777/Which-flag-game/internal/game"
	"github.com/Yuter777/Which-flag-game/internal/ws"
	staticserver "github.com/Yuter777/Which-flag-game/static"
)

func serve(ctx context.Context, cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// zerolog setup (human-friendly console)
	zerolog.TimeFieldFormat = time.RFC3339
	cw := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	log.Logger = log.Output(cw)
	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	log.Info().Str("version", releaseVersion).Msg("whichflag starting")

	// Gin setup with custom logger (skip /socket.io noise)
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/socket.io") {
			return
		}
		status := c.Writer.Status()
		dur := time.Since(start)
		log.Info().Str("path", path).Int("status", status).Dur("dur", dur).Msg("http")
	})

	// Flag catalog over the fallback source chain
	loader := countries.NewLoader(countries.DefaultSources(
		cfg.SourceV2URL,
		cfg.SourceV31URL,
		cfg.MirrorURL,
		cfg.SnapshotURL,
		cfg.SourceTimeout,
	)...)
	catalog := countries.NewCatalog(loader)

	games := game.NewManager(catalog, game.Config{
		CountdownTicks: cfg.CountdownTicks,
		TickInterval:   cfg.TickInterval,
		RevealHold:     cfg.RevealHold,
		RestDelay:      cfg.RestDelay,
	})

	sock := ws.New(ctx, games, *cfg)
	io := sock.Mount(r)
	defer io.Close()

	// Healthcheck
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"ok":          true,
			"time":        time.Now().UTC(),
			"flagsLoaded": catalog.Loaded(),
			"sessions":    games.Len(),
		})
	})

	r.GET("/version", func(c *gin.Context) {
		c.String(http.StatusOK, "whichflag v%s\n", releaseVersion)
	})

	// Flag data API. GET loads lazily through the cache; POST /reload forces
	// a fresh pass over the sources.
	r.GET("/api/flags", func(c *gin.Context) {
		entries, err := catalog.Entries(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": len(entries), "flags": entries})
	})
	r.POST("/api/flags/reload", func(c *gin.Context) {
		entries, err := catalog.Reload(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		log.Info().Int("count", len(entries)).Msg("flags reloaded")
		c.JSON(http.StatusOK, gin.H{"count": len(entries)})
	})

	// Session inspection and an HTTP starter for the round machine; the
	// socket path stays the primary input.
	r.GET("/api/sessions", func(c *gin.Context) {
		sessions := make([]gin.H, 0, games.Len())
		for _, id := range games.IDs() {
			eng, err := games.Get(id)
			if err != nil {
				continue
			}
			snap := eng.Snapshot()
			sessions = append(sessions, gin.H{"id": id, "phase": snap.Phase, "round": snap.Round})
		}
		c.JSON(http.StatusOK, gin.H{"sessions": sessions})
	})
	r.POST("/api/sessions/:id/start", func(c *gin.Context) {
		eng, err := games.Get(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		started := eng.Start(ctx)
		snap := eng.Snapshot()
		c.JSON(http.StatusOK, gin.H{"started": started, "phase": snap.Phase, "round": snap.Round})
	})

	r.GET("/qr", qrHandler(cfg))

	if cfg.Profile {
		registerProfileHandlers(r)
	}

	// Serve the embedded frontend for all other routes
	r.NoRoute(func(c *gin.Context) {
		staticserver.Handler().ServeHTTP(c.Writer, c.Request)
	})

	// No read/write timeouts: socket.io long-polling holds responses open
	// well past any sane limit.
	srv := &http.Server{
		Addr:              cfg.ListenAddr(),
		Handler:           r,
		IdleTimeout:       10 * time.Minute,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// qrHandler renders a QR code pointing players at the game. The target is
// the configured public URL when set, otherwise it is derived from the
// request (respecting TLS and X-Forwarded-Proto).
func qrHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		url := cfg.PublicURL
		if url == "" {
			scheme := "http"
			if c.Request.TLS != nil {
				scheme = "https"
			}
			if proto := c.Request.Header.Get("X-Forwarded-Proto"); proto != "" {
				scheme = proto
			}
			url = scheme + "://" + c.Request.Host + "/"
		}

		const qrSize = 320 // mobile-friendly size
		png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "qr generation failed"})
			return
		}
		c.Data(http.StatusOK, "image/png", png)
	}
}

func registerProfileHandlers(r *gin.Engine) {
	grp := r.Group("/debug/pprof")
	grp.GET("/", gin.WrapF(pprof.Index))
	grp.GET("/cmdline", gin.WrapF(pprof.Cmdline))
	grp.GET("/profile", gin.WrapF(pprof.Profile))
	grp.GET("/symbol", gin.WrapF(pprof.Symbol))
	grp.POST("/symbol", gin.WrapF(pprof.Symbol))
	grp.GET("/trace", gin.WrapF(pprof.Trace))
	grp.GET("/allocs", gin.WrapH(pprof.Handler("allocs")))
	grp.GET("/block", gin.WrapH(pprof.Handler("block")))
	grp.GET("/goroutine", gin.WrapH(pprof.Handler("goroutine")))
	grp.GET("/heap", gin.WrapH(pprof.Handler("heap")))
	grp.GET("/mutex", gin.WrapH(pprof.Handler("mutex")))
	grp.GET("/threadcreate", gin.WrapH(pprof.Handler("threadcreate")))
}

// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"go_5_media_cms/internal/config"
	"go_5_media_cms/internal/handlers"
	"go_5_media_cms/internal/middleware"
	"go_5_media_cms/internal/repository"
	"go_5_media_cms/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	//　設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === 設定に基づいて slog ロガーを初期化 ===
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	// 開発環境はtintの色付きログ、それ以外はJSON構造化ログ
	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		tintOpts := &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		}
		handler = tint.NewHandler(os.Stderr, tintOpts)
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		jsonOpts := &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}
		handler = slog.NewJSONHandler(os.Stderr, jsonOpts)
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...")

	// 2. Initialize Database Connection (GORM)
	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	if err := repository.AutoMigrate(db); err != nil {
		slog.Error("Error running database migration", slog.Any("error", err))
		os.Exit(1)
	}

	// 3. Dependency Injection
	tenantRepo := repository.NewGormTenantRepository()
	articleRepo := repository.NewGormArticleRepository()
	categoryRepo := repository.NewGormCategoryRepository()
	tagRepo := repository.NewGormTagRepository()
	bannerRepo := repository.NewGormBannerRepository()
	mediaFileRepo := repository.NewGormMediaFileRepository()

	mailer := service.NewMailer(&config.Cfg)

	tenantService := service.NewTenantService(db, tenantRepo, mailer, config.Cfg.Mail)
	articleService := service.NewArticleService(db, articleRepo, tenantRepo)
	categoryService := service.NewCategoryService(db, categoryRepo, tenantRepo)
	tagService := service.NewTagService(db, tagRepo, tenantRepo)
	bannerService := service.NewBannerService(db, bannerRepo, tenantRepo)
	mediaFileService := service.NewMediaFileService(db, mediaFileRepo, tenantRepo)

	tenantHandler := handlers.NewTenantHandler(tenantService, logger)
	articleHandler := handlers.NewArticleHandler(articleService, logger)
	categoryHandler := handlers.NewCategoryHandler(categoryService, logger)
	tagHandler := handlers.NewTagHandler(tagService, logger)
	bannerHandler := handlers.NewBannerHandler(bannerService, logger)
	mediaFileHandler := handlers.NewMediaFileHandler(mediaFileService, logger)

	// 4. Setup Router
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	// CORS 設定と適用 (設定ファイルから読み込んだ値を使用)
	corsOptions := cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
		Debug:            false,
	}
	corsHandler := cors.New(corsOptions)
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// API Routes
	r.Route("/api/v1", func(r chi.Router) {
		// --- Protected routes ---
		r.Group(func(r chi.Router) {
			if config.Cfg.Auth.Enabled {
				slog.Info("Applying JWT authentication middleware")
				r.Use(middleware.JWTAuthMiddleware(&config.Cfg))
			} else {
				slog.Warn("Auth disabled: trusting X-User-Id header (development only)")
				r.Use(middleware.DevAuthMiddleware())
			}

			// Tenant routes (テナント管理自体はX-Media-Idに依存しない)
			r.Route("/tenants", func(r chi.Router) {
				r.Post("/", tenantHandler.PostTenant)
				r.Get("/", tenantHandler.GetTenants)
				r.Get("/{tenantID}", tenantHandler.GetTenant)
				r.Patch("/{tenantID}", tenantHandler.PatchTenant)
				r.Delete("/{tenantID}", tenantHandler.DeleteTenant)
			})

			// --- Content routes (X-Media-Id でテナントを選択) ---
			r.Group(func(r chi.Router) {
				r.Use(middleware.MediaContextMiddleware())

				r.Route("/articles", func(r chi.Router) {
					r.Post("/", articleHandler.PostArticle)
					r.Get("/", articleHandler.GetArticles)
					r.Get("/{articleID}", articleHandler.GetArticle)
					r.Patch("/{articleID}", articleHandler.PatchArticle)
					r.Delete("/{articleID}", articleHandler.DeleteArticle)
				})

				r.Route("/categories", func(r chi.Router) {
					r.Post("/", categoryHandler.PostCategory)
					r.Get("/", categoryHandler.GetCategories)
					r.Patch("/{categoryID}", categoryHandler.PatchCategory)
					r.Delete("/{categoryID}", categoryHandler.DeleteCategory)
				})

				r.Route("/tags", func(r chi.Router) {
					r.Post("/", tagHandler.PostTag)
					r.Get("/", tagHandler.GetTags)
					r.Patch("/{tagID}", tagHandler.PatchTag)
					r.Delete("/{tagID}", tagHandler.DeleteTag)
				})

				r.Route("/banners", func(r chi.Router) {
					r.Post("/", bannerHandler.PostBanner)
					r.Get("/", bannerHandler.GetBanners)
					r.Patch("/{bannerID}", bannerHandler.PatchBanner)
					r.Delete("/{bannerID}", bannerHandler.DeleteBanner)
				})

				r.Route("/media", func(r chi.Router) {
					r.Post("/", mediaFileHandler.PostMediaFile)
					r.Get("/", mediaFileHandler.GetMediaFiles)
					r.Delete("/{fileID}", mediaFileHandler.DeleteMediaFile)
				})
			})
		})
	})

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// 5. Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/Skufu/GoTriage/internal/advisor"
	"github.com/Skufu/GoTriage/internal/catalogue"
	"github.com/Skufu/GoTriage/internal/llm"
	"github.com/Skufu/GoTriage/internal/observability"
	"github.com/Skufu/GoTriage/internal/triage"
)

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Config struct {
	Port        string
	DatabaseURL string
	EnableDB    bool
	EnableLLM   bool
	MaxSymptoms int
	LLM         llm.Config
}

// App holds the long-lived services the handlers share.
type App struct {
	engine      *triage.Engine
	advisor     *advisor.Advisor
	metrics     *observability.Metrics
	maxSymptoms int
}

func main() {
	gin.SetMode(getEnv("GIN_MODE", "release"))

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx := context.Background()
	var db HealthChecker
	if cfg.EnableDB {
		pool, err := connectDB(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("database connection failed: %v", err)
		}
		defer pool.Close()
		db = pool
	}

	app, err := newApp(ctx, cfg)
	if err != nil {
		log.Fatalf("startup error: %v", err)
	}

	router := setupRouter(db, app)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      45 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	log.Printf("server listening on :%s", cfg.Port)
	waitForShutdown(server)
}

func loadConfig() (*Config, error) {
	_ = godotenv.Load()

	maxSymptoms, err := strconv.Atoi(getEnv("MAX_SYMPTOMS", "40"))
	if err != nil || maxSymptoms < 1 {
		return nil, fmt.Errorf("MAX_SYMPTOMS must be a positive integer")
	}

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		EnableDB:    strings.EqualFold(getEnv("ENABLE_DB", "false"), "true"),
		EnableLLM:   strings.EqualFold(getEnv("ENABLE_LLM", "false"), "true"),
		MaxSymptoms: maxSymptoms,
	}

	if cfg.EnableDB && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required when ENABLE_DB=true")
	}

	if cfg.EnableLLM {
		cfg.LLM = llm.ConfigFromEnv()
		if err := cfg.LLM.Validate(); err != nil {
			return nil, fmt.Errorf("llm config: %w", err)
		}
	}

	return cfg, nil
}

func connectDB(ctx context.Context, url string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse db url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	return pool, nil
}

// newApp builds the engine and, when enabled, the model-backed advisor.
// Without a model every unmatched intake gets the templated fallback.
func newApp(ctx context.Context, cfg *Config) (*App, error) {
	engine, err := triage.NewEngine(catalogue.Default(), triage.DefaultRules())
	if err != nil {
		return nil, err
	}

	metrics := observability.NewMetrics()
	opts := []advisor.Option{advisor.WithObserver(metrics)}

	if cfg.EnableLLM {
		provider, err := llm.NewProvider(ctx, cfg.LLM, log.Default())
		if err != nil {
			return nil, err
		}
		opts = append(opts, advisor.WithProvider(provider))
		log.Printf("llm enabled: provider=%s model=%s", cfg.LLM.Provider, provider.ModelID())

		if cfg.LLM.OpenAI.APIKey != "" {
			transcriber, err := llm.NewWhisperTranscriber(cfg.LLM.OpenAI)
			if err != nil {
				return nil, err
			}
			opts = append(opts, advisor.WithTranscriber(transcriber))
		}
	}

	adviceCfg := advisor.DefaultConfig()
	if cfg.EnableLLM {
		adviceCfg.Timeout = cfg.LLM.Timeout
	}

	return &App{
		engine:      engine,
		advisor:     advisor.New(engine, adviceCfg, opts...),
		metrics:     metrics,
		maxSymptoms: cfg.MaxSymptoms,
	}, nil
}

func setupRouter(db HealthChecker, app *App) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Logger(),
		gin.Recovery(),
		limitBodySize(8<<20), // 8MB max body, images and voice notes arrive base64 encoded
		cors.New(cors.Config{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
			MaxAge:       12 * time.Hour,
		}),
		app.metrics.Middleware(),
	)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/readyz", func(c *gin.Context) {
		if db == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "disabled"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		dbStatus := "ok"
		if err := db.Ping(ctx); err != nil {
			dbStatus = fmt.Sprintf("unhealthy: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "degraded",
				"db":     dbStatus,
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"db":     dbStatus,
		})
	})

	router.GET("/metrics", gin.WrapH(app.metrics.Handler()))

	api := router.Group("/api")
	api.GET("/symptoms", app.listSymptoms)
	api.GET("/conditions", app.listConditions)
	api.GET("/conditions/:id", app.getCondition)
	api.POST("/triage/assess", app.assess)
	api.POST("/triage/consult", app.consult)
	api.POST("/triage/report", app.report)

	return router
}

func waitForShutdown(server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func limitBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

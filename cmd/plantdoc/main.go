package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/terraincognita07/plantdoc/internal/api"
	"github.com/terraincognita07/plantdoc/internal/classifier"
	"github.com/terraincognita07/plantdoc/internal/cli"
	"github.com/terraincognita07/plantdoc/internal/db"
	"github.com/terraincognita07/plantdoc/internal/filestore"
	"github.com/terraincognita07/plantdoc/internal/i18n"
	"github.com/terraincognita07/plantdoc/internal/plantdoctor"
	"github.com/terraincognita07/plantdoc/internal/services"
	"github.com/terraincognita07/plantdoc/internal/translate"
	"github.com/terraincognita07/plantdoc/internal/uploads"
)

const (
	translationCacheTTL = 24 * time.Hour
	shutdownTimeout     = 10 * time.Second
	requestBodyLimit    = 12 << 20
)

type repositories struct {
	users       services.AccountRepository
	predictions services.PredictionRepository
	chats       services.ChatRepository
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("load .env: %v", err)
	}

	if len(os.Args) > 1 && os.Args[1] == "reset-password" {
		runResetPassword(os.Args[2:])
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	stores, err := openRepositories(cfg)
	if err != nil {
		log.Fatalf("storage init failed: %v", err)
	}

	translator := buildTranslator(cfg)
	knowledge, err := plantdoctor.LoadKnowledgeBase(cfg.KnowledgeFile, translator)
	if err != nil {
		log.Fatalf("knowledge base init failed: %v", err)
	}

	archive, err := buildArchive(context.Background(), cfg)
	if err != nil {
		log.Fatalf("upload archive init failed: %v", err)
	}

	accounts := services.NewAccountService(stores.users)
	if cfg.AdminUsername != "" {
		created, err := accounts.BootstrapAdmin(cfg.AdminUsername, cfg.AdminPassword)
		if err != nil {
			log.Fatalf("admin bootstrap failed: %v", err)
		}
		if created {
			log.Printf("created admin account %q", cfg.AdminUsername)
		}
	}

	i18nManager, err := i18n.NewEmbeddedManager(cfg.DefaultLanguage)
	if err != nil {
		log.Fatalf("i18n init failed: %v", err)
	}

	handler, err := api.NewHandler(api.Dependencies{
		Accounts:     accounts,
		Chats:        services.NewChatService(stores.chats, plantdoctor.NewResolver(knowledge, translator), translator),
		Predictions:  services.NewPredictionService(stores.predictions, classifier.NewHTTPClient(cfg.ClassifierURL), archive, translator),
		Admin:        services.NewAdminService(stores.users, stores.predictions, stores.chats),
		Knowledge:    knowledge,
		I18n:         i18nManager,
		SecretKey:    cfg.SecretKey,
		CookieSecure: cfg.CookieSecure,
	})
	if err != nil {
		log.Fatalf("handler init failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "PlantDoc",
		DisableStartupMessage: true,
		BodyLimit:             requestBodyLimit,
	})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(handler.LanguageMiddleware)
	api.RegisterRoutes(app, handler)
	app.Use(handler.NotFound)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("PlantDoc listening on http://0.0.0.0:%s (storage: %s)", cfg.Port, cfg.StorageBackend)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func openRepositories(cfg config) (repositories, error) {
	if cfg.StorageBackend == storageBackendSQLite {
		database, err := db.OpenSQLite(cfg.DBPath)
		if err != nil {
			return repositories{}, err
		}
		stores := db.NewRepositories(database)
		return repositories{users: stores.Users, predictions: stores.Predictions, chats: stores.Chats}, nil
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return repositories{}, fmt.Errorf("create data dir: %w", err)
	}
	stores := filestore.NewRepositories(cfg.DataDir)
	return repositories{users: stores.Users, predictions: stores.Predictions, chats: stores.Chats}, nil
}

func buildTranslator(cfg config) translate.Translator {
	if cfg.TranslateURL == "" {
		return translate.Identity{}
	}

	var translator translate.Translator = translate.NewClient(cfg.TranslateURL, cfg.TranslateAPIKey)
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		translator = translate.NewCached(translator, translate.NewRedisCache(client), translationCacheTTL)
	}
	return translator
}

func buildArchive(ctx context.Context, cfg config) (uploads.Archive, error) {
	if cfg.S3Bucket != "" {
		archive, err := uploads.NewS3Archive(ctx, cfg.S3Bucket)
		if err != nil {
			return nil, err
		}
		return archive, nil
	}
	return uploads.NewLocalArchive(cfg.UploadDir), nil
}

func runResetPassword(args []string) {
	if len(args) != 1 {
		log.Fatal("usage: plantdoc reset-password <username>")
	}

	cfg, err := loadStorageConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	stores, err := openRepositories(cfg)
	if err != nil {
		log.Fatalf("storage init failed: %v", err)
	}

	accounts := services.NewAccountService(stores.users)
	if err := cli.RunResetPasswordCommand(accounts, args[0], os.Stdin, os.Stdout); err != nil {
		log.Fatalf("reset password failed: %v", err)
	}
}

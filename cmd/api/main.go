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

	"github.com/joho/godotenv"

	"github.com/solenechen/empath/internal/analysis/emotion"
	"github.com/solenechen/empath/internal/analysis/text"
	"github.com/solenechen/empath/internal/config"
	"github.com/solenechen/empath/internal/handler"
	"github.com/solenechen/empath/internal/service/bot"
	chatservice "github.com/solenechen/empath/internal/service/chat"
	emotionservice "github.com/solenechen/empath/internal/service/emotion"
	responseservice "github.com/solenechen/empath/internal/service/response"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Static tables are validated once here; a bad lexicon or template bank
	// must never surface per message.
	tables, err := config.LoadTables(cfg.Engine)
	if err != nil {
		log.Fatalf("failed to load engine tables: %v", err)
	}

	// Bind the scoring strategy at startup: LLM provider when configured and
	// reachable, lexicon path otherwise.
	var provider emotion.Provider
	if cfg.AI.ProviderEnabled && cfg.AI.Enabled() {
		chatModel, err := cfg.AI.NewChatModel(ctx)
		if err != nil {
			log.Printf("warning: failed to initialize chat model: %v", err)
			log.Println("continuing with the lexicon scoring path only")
		} else {
			providerSvc, err := emotionservice.NewService(ctx, chatModel, emotionservice.Config{Enabled: true})
			if err != nil {
				log.Printf("warning: failed to initialize emotion provider: %v", err)
			} else if providerSvc.Enabled() {
				provider = providerSvc
				log.Println("LLM emotion provider enabled")
			}
		}
	} else if cfg.AI.ProviderEnabled {
		log.Println("emotion provider requested but ark credentials missing, using lexicon path")
	} else {
		log.Println("emotion provider disabled by configuration")
	}

	scorer := emotion.NewScorer(tables.Lexicon, tables.Opposites, emotion.ScorerConfig{
		NegationWindow: cfg.Engine.NegationWindow,
		NegationCredit: cfg.Engine.NegationCredit,
	})
	adapter := emotion.NewAdapter(tables.Factors)
	classifier := emotion.NewClassifier(scorer, adapter, provider, text.Normalize, emotion.ClassifierConfig{
		NeutralBaseline: cfg.Engine.NeutralBaseline,
	})

	generator, err := responseservice.NewService(tables.Bank, tables.FollowUps, responseservice.Config{
		RepetitionWindow: cfg.Engine.RepetitionWindow,
	})
	if err != nil {
		log.Fatalf("failed to initialize response generator: %v", err)
	}

	tracker := chatservice.NewService()
	botSvc := bot.NewService(classifier, generator, tracker, bot.Config{
		DefaultContext:   cfg.Engine.DefaultContext,
		RepetitionWindow: cfg.Engine.RepetitionWindow,
	})

	router := handler.NewRouter(botSvc)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Empath backend listening on %s", serverCfg.Addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

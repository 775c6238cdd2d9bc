package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"enterprise-advisors/config"
	_ "enterprise-advisors/docs" // Swagger docs
	"enterprise-advisors/internal/advisor"
	"enterprise-advisors/internal/advisor/finance"
	"enterprise-advisors/internal/advisor/general"
	"enterprise-advisors/internal/advisor/hr"
	"enterprise-advisors/internal/advisor/orders"
	"enterprise-advisors/internal/advisor/reports"
	"enterprise-advisors/internal/artifact"
	chatHTTP "enterprise-advisors/internal/chat/delivery/http"
	chatUC "enterprise-advisors/internal/chat/usecase"
	"enterprise-advisors/internal/httpserver"
	"enterprise-advisors/internal/router"
	"enterprise-advisors/pkg/analytics"
	"enterprise-advisors/pkg/bipublisher"
	"enterprise-advisors/pkg/genai"
	"enterprise-advisors/pkg/log"
	"enterprise-advisors/pkg/ordersapi"
	"enterprise-advisors/pkg/ords"
)

// @title       Enterprise Advisors API
// @description Intent-routed advisory chat over Finance, HR, Orders, Reports, and General backends.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Enterprise Advisors...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Mock responses: %v", cfg.API.UseMockResponses)

	opts := advisor.Options{
		Mock:       cfg.API.UseMockResponses,
		RetryCount: cfg.API.RetryCount,
		RetryDelay: parseDuration(cfg.API.RetryDelay, time.Second),
	}

	// 3. Remote classifier / generative fallback
	var llm genai.IGenAI
	if cfg.GenAI.APIKey != "" {
		llm, err = genai.New(genai.Config{
			APIKey:  cfg.GenAI.APIKey,
			BaseURL: cfg.GenAI.BaseURL,
			Model:   cfg.GenAI.Model,
		})
		if err != nil {
			logger.Warnf(ctx, "GenAI client not available: %v", err)
		}
	} else {
		logger.Warn(ctx, "GENAI_API_KEY missing, intent routing falls back to keywords")
	}

	intentRouter := router.New(llm, router.ParseMode(cfg.Intent.Mode), logger)

	// 4. Advisor backends (each optional; missing config degrades the
	// adapter to canned responses)
	var financeClient *bipublisher.Client
	if cfg.Finance.URL != "" && cfg.Finance.Username != "" {
		financeClient, err = bipublisher.NewClient(bipublisher.Config{
			URL:      cfg.Finance.URL,
			Username: cfg.Finance.Username,
			Password: cfg.Finance.Password,
		})
		if err != nil {
			logger.Warnf(ctx, "Finance report client not available: %v", err)
		}
	} else {
		logger.Warn(ctx, "Finance backend not configured, advisor uses canned responses")
	}

	var hrClient *ords.Client
	if cfg.HR.URL != "" {
		hrClient, err = ords.New(ords.Config{
			URL:      cfg.HR.URL,
			Username: cfg.HR.Username,
			Password: cfg.HR.Password,
		})
		if err != nil {
			logger.Warnf(ctx, "HR client not available: %v", err)
		}
	} else {
		logger.Warn(ctx, "HR backend not configured, advisor uses canned responses")
	}

	var ordersClient *ordersapi.Client
	if cfg.Orders.URL != "" {
		ordersClient, err = ordersapi.NewClient(ordersapi.Config{
			URL:      cfg.Orders.URL,
			Username: cfg.Orders.Username,
			Password: cfg.Orders.Password,
		})
		if err != nil {
			logger.Warnf(ctx, "Orders client not available: %v", err)
		}
	} else {
		logger.Warn(ctx, "Orders backend not configured, advisor uses canned responses")
	}

	var reportsClient *analytics.Client
	if cfg.Reports.URL != "" {
		reportsClient, err = analytics.NewClient(analytics.Config{
			URL:          cfg.Reports.URL,
			Username:     cfg.Reports.Username,
			Password:     cfg.Reports.Password,
			ClientID:     cfg.Reports.ClientID,
			ClientSecret: cfg.Reports.ClientSecret,
			TokenURL:     cfg.Reports.TokenURL,
		})
		if err != nil {
			logger.Warnf(ctx, "Analytics client not available: %v", err)
		}
	} else {
		logger.Warn(ctx, "Reports backend not configured, advisor uses canned responses")
	}

	var nl2sqlClient *ords.Client
	if cfg.NL2SQL.URL != "" {
		nl2sqlClient, err = ords.New(ords.Config{
			URL:      cfg.NL2SQL.URL,
			Username: cfg.NL2SQL.Username,
			Password: cfg.NL2SQL.Password,
		})
		if err != nil {
			logger.Warnf(ctx, "NL2SQL client not available: %v", err)
		}
	}

	financeAdvisor := finance.New(financeClient, finance.Config{
		ReportPath:      cfg.Finance.ReportPath,
		DefaultPONumber: cfg.Finance.PONumber,
	}, opts, logger)
	hrAdvisor := hr.New(hrClient, opts, logger)
	ordersAdvisor := orders.New(ordersClient, orders.Config{ListLimit: cfg.Orders.ListLimit}, opts, logger)
	reportsAdvisor := reports.New(reportsClient, reports.Config{
		WorkbookID: cfg.Reports.WorkbookID,
		CanvasID:   cfg.Reports.CanvasID,
	}, opts, logger)
	generalAdvisor := general.New(nl2sqlClient, llm, opts, logger)

	// 5. Artifact storage
	var store artifact.Store
	var rawStore *artifact.MemoryStore
	if cfg.Artifact.Endpoint != "" {
		store, err = artifact.NewMinioStore(ctx, artifact.MinioConfig{
			Endpoint:  cfg.Artifact.Endpoint,
			AccessKey: cfg.Artifact.AccessKey,
			SecretKey: cfg.Artifact.SecretKey,
			Bucket:    cfg.Artifact.Bucket,
			UseSSL:    cfg.Artifact.UseSSL,
		})
		if err != nil {
			logger.Error(ctx, "Failed to initialize object storage: ", err)
			return
		}
		logger.Infof(ctx, "Artifact storage: s3 bucket %s at %s", cfg.Artifact.Bucket, cfg.Artifact.Endpoint)
	} else {
		rawStore = artifact.NewMemoryStore(cfg.Artifact.PublicBaseURL)
		store = rawStore
		logger.Warn(ctx, "No object storage configured, artifacts are kept in memory")
	}

	completers := map[string]artifact.Completer{}
	if reportsClient != nil {
		completers[reportsAdvisor.Name()] = reports.NewCompleter(reportsClient)
	}

	artifactManager := artifact.New(store, completers, artifact.Config{
		PresignTTL:          time.Duration(cfg.Artifact.PresignTTLSeconds) * time.Second,
		MaxDownloadAttempts: cfg.Artifact.MaxDownloadAttempts,
	}, logger)

	// 6. Chat domain
	uc := chatUC.New(logger, intentRouter, []advisor.Advisor{
		generalAdvisor,
		financeAdvisor,
		hrAdvisor,
		ordersAdvisor,
		reportsAdvisor,
	}, artifactManager, chatUC.Config{MaxInlineBytes: cfg.Artifact.MaxInlineBytes})

	chatHandler := chatHTTP.New(logger, uc, rawStore)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ChatHandler:     chatHandler,
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}

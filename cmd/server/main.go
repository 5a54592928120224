package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"prisonerprofile/internal/alerts"
	"prisonerprofile/internal/audit"
	"prisonerprofile/internal/casenotes"
	"prisonerprofile/internal/curious"
	httpapi "prisonerprofile/internal/http"
	jwttoken "prisonerprofile/internal/jwt_token"
	"prisonerprofile/internal/keyworker"
	"prisonerprofile/internal/platform/config"
	"prisonerprofile/internal/platform/httpserver"
	"prisonerprofile/internal/platform/logger"
	"prisonerprofile/internal/platform/redis"
	"prisonerprofile/internal/prisonapi"
	"prisonerprofile/internal/profile"
	profilehandler "prisonerprofile/internal/profile/handler"
	"prisonerprofile/internal/register"
)

// main wires dependencies and keeps the server lifecycle small. Business
// logic lives in the internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	redisClient, err := redis.New(cfg.Redis)
	if err != nil {
		log.Error("invalid redis configuration", "error", err)
		os.Exit(1)
	}

	var cache register.Cache
	if redisClient != nil {
		cache = register.NewRedisStore(redisClient.Client)
	} else {
		log.Warn("redis not configured, register lookups go straight to the API")
	}
	registerSvc := register.NewService(cache, register.NewClient(cfg.Upstreams.PrisonRegister, log), log)

	var auditStore audit.Store
	if len(cfg.Audit.Brokers) > 0 {
		kafkaStore, err := audit.NewKafkaStore(cfg.Audit.Brokers, cfg.Audit.Topic)
		if err != nil {
			log.Error("failed to connect audit producer", "error", err)
			os.Exit(1)
		}
		defer kafkaStore.Close()
		auditStore = kafkaStore
	} else {
		log.Warn("no audit brokers configured, audit events stay in memory")
		auditStore = audit.NewMemoryStore()
	}

	publisher := audit.NewPublisher(256)
	worker := audit.NewWorker(auditStore, publisher.Inbox(), log)

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	go worker.Run(workerCtx)

	profileSvc := profile.NewService(
		prisonapi.NewClient(cfg.Upstreams.PrisonAPI, log),
		alerts.NewClient(cfg.Upstreams.AlertsAPI, log),
		curious.NewGen1Client(cfg.Upstreams.CuriousGen1, log),
		curious.NewGen2Client(cfg.Upstreams.CuriousGen2, log),
		keyworker.NewClient(cfg.Upstreams.KeyWorkerAPI, log),
		casenotes.NewClient(cfg.Upstreams.CaseNotesAPI, log),
		registerSvc,
		publisher,
		log,
	)

	jwtSvc := jwttoken.NewJWTService(cfg.JWTSigningKey, "hmpps-auth", "prisoner-profile")

	deps := httpapi.Deps{
		Profile:   profilehandler.New(profileSvc, log),
		Validator: jwttoken.NewMiddlewareAdapter(jwtSvc),
		Logger:    log,
	}
	if redisClient != nil {
		deps.Cache = redisClient
	}
	router := httpapi.NewRouter(deps)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting prisoner-profile", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}

	// Stop accepting audit events, then give the worker a moment to drain.
	stopWorker()
	time.Sleep(100 * time.Millisecond)

	if redisClient != nil {
		_ = redisClient.Close()
	}
}

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

	"github.com/poornima-alugubelly/flourish-ai/internal/ai"
	"github.com/poornima-alugubelly/flourish-ai/internal/api"
	"github.com/poornima-alugubelly/flourish-ai/internal/config"
	"github.com/poornima-alugubelly/flourish-ai/internal/repository"
	"github.com/poornima-alugubelly/flourish-ai/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	noteRepo := repository.NewNoteRepository(db)
	tagRepo := repository.NewTagRepository(db)
	goalRepo := repository.NewGoalRepository(db)
	categoryRepo := repository.NewGoalCategoryRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	sleepRepo := repository.NewSleepScheduleRepository(db)
	analysisRepo := repository.NewAnalysisRepository(db)

	generator := ai.NewOllamaClient(cfg.OllamaURL, cfg.OllamaModel, cfg.AITimeout)

	noteSvc := service.NewNoteService(noteRepo, tagRepo)
	goalSvc := service.NewGoalService(goalRepo)
	categorySvc := service.NewGoalCategoryService(categoryRepo, goalRepo)
	tagSvc := service.NewTagService(tagRepo)
	templateSvc := service.NewTemplateService(templateRepo)
	sleepSvc := service.NewSleepService(sleepRepo, noteRepo)
	analysisSvc := service.NewAnalysisService(analysisRepo, generator, generator.Model())
	analyticsSvc := service.NewAnalyticsService(noteRepo, goalRepo, generator)
	plannerSvc := service.NewPlannerService(noteRepo, goalRepo, analysisRepo, generator)
	exportSvc := service.NewExportService(noteRepo, goalRepo)

	server := api.NewServer(
		noteSvc, goalSvc, categorySvc, tagSvc, templateSvc,
		sleepSvc, analysisSvc, analyticsSvc, plannerSvc, exportSvc,
		cfg.CORSOrigins,
	)

	if cfg.SleepAutoApply != "" {
		scheduler := service.NewSchedulerService(time.Local)
		if _, err := scheduler.ScheduleDaily(cfg.SleepAutoApply, func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
			if _, err := sleepSvc.ApplyToDate(jobCtx, tomorrow); err != nil {
				log.Printf("sleep auto-apply for %s: %v", tomorrow, err)
			}
		}); err != nil {
			log.Fatalf("schedule sleep auto-apply: %v", err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: server.Handler(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("Flourish API listening on %s", cfg.HTTPAddr)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server stopped with error: %v", err)
	}
	log.Println("Shutdown complete.")
}

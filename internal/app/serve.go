package app

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/BruksfildServices01/feedback-hub/internal/audit"
	dbpkg "github.com/BruksfildServices01/feedback-hub/internal/db"
	"github.com/BruksfildServices01/feedback-hub/internal/export"
	"github.com/BruksfildServices01/feedback-hub/internal/metrics"
	"github.com/BruksfildServices01/feedback-hub/internal/notify"
	"github.com/BruksfildServices01/feedback-hub/internal/ratelimit"
	"github.com/BruksfildServices01/feedback-hub/internal/routes"
	ucReview "github.com/BruksfildServices01/feedback-hub/internal/usecase/review"
)

const shutdownTimeout = 10 * time.Second

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

func serve(ctx context.Context) error {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB")
	}
	defer sqlDB.Close()

	dispatcher := audit.NewDispatcher(audit.New(db), log)
	webhook := notify.NewWebhook(notify.Options{Timeout: cfg.WebhookTimeout, RPS: 5, Burst: 10}, log)

	infra := routes.Infra{
		Log:      log,
		Audit:    dispatcher,
		Notifier: webhook,
	}

	if cfg.RedisAddr != "" {
		client := ratelimit.NewClient(cfg.RedisAddr, cfg.RedisPassword)
		defer client.Close()
		infra.Limiter = ratelimit.New(client, "feedbackhub:reviews", cfg.ReviewRateLimit, cfg.ReviewRateWindow)
		log.Info().Str("addr", cfg.RedisAddr).Msg("review rate limit enabled")
	}

	var uploader ucReview.Uploader
	if cfg.S3Bucket != "" {
		s3, err := export.NewS3Uploader(export.Options{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
		if err != nil {
			return err
		}
		uploader = s3
		log.Info().Str("bucket", cfg.S3Bucket).Msg("review export enabled")
	}
	infra.Uploader = uploader

	servers := []*http.Server{{
		Addr:              cfg.Addr(),
		Handler:           routes.NewRouter(db, cfg, infra),
		ReadHeaderTimeout: 5 * time.Second,
	}}
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler(metrics.InitRegistry()))
		servers = append(servers, &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, srv := range servers {
		srv := srv
		g.Go(func() error {
			log.Info().Str("addr", srv.Addr).Msg("listening")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return errors.Wrapf(err, "listen %s", srv.Addr)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		for _, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Str("addr", srv.Addr).Msg("shutdown")
			}
		}
		if err := webhook.Close(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("webhook queue not drained")
		}
		if err := dispatcher.Close(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("audit queue not drained")
		}
		return nil
	})

	return g.Wait()
}

package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sawala-tech/lembar/internal/enhance"
	"github.com/sawala-tech/lembar/internal/extract"
	"github.com/sawala-tech/lembar/internal/ocr"
	"github.com/sawala-tech/lembar/internal/report"
	"github.com/sawala-tech/lembar/internal/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serveCmd starts the HTTP API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the extraction and report HTTP API",
	Long: `Start an HTTP server exposing coordinate extraction and report
generation:

  POST /api/v1/extract  multipart photo upload, returns coordinates as JSON
  POST /api/v1/report   JSON entries manifest, returns the xlsx download
  GET  /healthz         health check
  GET  /metrics         prometheus metrics

Examples:
  lembar serve
  lembar serve --host 0.0.0.0 --port 9000`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		logger := slog.Default()

		recognizer, err := ocr.NewRecognizer()
		if err != nil {
			return fmt.Errorf("initialize recognizer: %w", err)
		}
		enhancer := enhance.New(cfg.EnhanceConfig(), logger)
		extractor := extract.New(recognizer, enhancer, cfg.BoundingBox(), cfg.OCROptions(), logger)
		assembler := report.NewAssembler(cfg.Layout(), extractor, cfg.Report.OutputDir, logger)

		srv := server.New(server.Config{
			Host:            cfg.Server.Host,
			Port:            cfg.Server.Port,
			CORSOrigin:      cfg.Server.CORSOrigin,
			MaxUploadMB:     cfg.Server.MaxUploadMB,
			Timeout:         time.Duration(cfg.Server.TimeoutSec) * time.Second,
			ShutdownTimeout: time.Duration(cfg.Server.ShutdownTimeout) * time.Second,
			TemplatePath:    cfg.Report.TemplatePath,
		}, extractor, assembler, logger)

		errCh := make(chan error, 1)
		go func() { errCh <- srv.Start() }()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case sig := <-sigCh:
			logger.Info("received signal", "signal", sig.String())
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(),
			time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().String("host", "", "host to bind the server to")
	serveCmd.Flags().Int("port", 0, "port to bind the server to")

	_ = viper.BindPFlag("server.host", serveCmd.Flags().Lookup("host"))
	_ = viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))

	rootCmd.AddCommand(serveCmd)
}

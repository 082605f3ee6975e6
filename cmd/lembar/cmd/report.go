package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/sawala-tech/lembar/internal/enhance"
	"github.com/sawala-tech/lembar/internal/extract"
	"github.com/sawala-tech/lembar/internal/inspect"
	"github.com/sawala-tech/lembar/internal/ocr"
	"github.com/sawala-tech/lembar/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// reportCmd generates a spreadsheet report from an entries manifest.
var reportCmd = &cobra.Command{
	Use:   "report <manifest>",
	Short: "Generate a spreadsheet report from an entries manifest",
	Long: `Load a JSON or YAML manifest of inspection entries, run coordinate
extraction for entries whose coordinates are missing, and assemble the
official spreadsheet template into a timestamped output file.

Examples:
  lembar report entries.json
  lembar report entries.yaml --template uploads/template.xlsx --output-dir out
  lembar report entries.json --asset-name "Jalur Utara" --date 2023-11-06`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		logger := slog.Default()

		manifest, err := inspect.LoadManifest(args[0])
		if err != nil {
			return err
		}

		opts := report.Options{
			ScheduleDate: manifest.Date(),
			AssetName:    manifest.AssetName,
		}
		if name := viper.GetString("report.asset_name"); name != "" {
			opts.AssetName = name
		}
		if date := viper.GetString("report.schedule_date"); date != "" {
			t, err := time.Parse("2006-01-02", date)
			if err != nil {
				return fmt.Errorf("invalid --date %q (want YYYY-MM-DD): %w", date, err)
			}
			opts.ScheduleDate = t
		}

		// Extraction is best-effort; without a linked backend the rows
		// simply keep their empty coordinate cells.
		var extractor report.CoordinateExtractor
		if recognizer, err := ocr.NewRecognizer(); err == nil {
			enhancer := enhance.New(cfg.EnhanceConfig(), logger)
			extractor = extract.New(recognizer, enhancer, cfg.BoundingBox(), cfg.OCROptions(), logger)
		} else {
			logger.Warn("recognizer unavailable, skipping extraction", "error", err)
		}

		assembler := report.NewAssembler(cfg.Layout(), extractor, cfg.Report.OutputDir, logger)
		outputPath, err := assembler.Generate(cmd.Context(), manifest.Entries, cfg.Report.TemplatePath, opts)
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintln(cmd.OutOrStdout(), outputPath)
		return nil
	},
}

func init() {
	reportCmd.Flags().String("template", "", "path to the spreadsheet template")
	reportCmd.Flags().String("output-dir", "", "directory for generated reports")
	reportCmd.Flags().String("asset-name", "", "asset name for the report header")
	reportCmd.Flags().String("date", "", "schedule date for the report header (YYYY-MM-DD)")

	_ = viper.BindPFlag("report.template_path", reportCmd.Flags().Lookup("template"))
	_ = viper.BindPFlag("report.output_dir", reportCmd.Flags().Lookup("output-dir"))
	_ = viper.BindPFlag("report.asset_name", reportCmd.Flags().Lookup("asset-name"))
	_ = viper.BindPFlag("report.schedule_date", reportCmd.Flags().Lookup("date"))

	rootCmd.AddCommand(reportCmd)
}

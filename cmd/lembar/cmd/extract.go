package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/sawala-tech/lembar/internal/enhance"
	"github.com/sawala-tech/lembar/internal/extract"
	"github.com/sawala-tech/lembar/internal/ocr"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// extractCmd runs coordinate extraction on one or more photos.
var extractCmd = &cobra.Command{
	Use:   "extract <image> [image...]",
	Short: "Extract GPS coordinates from inspection photos",
	Long: `Run the two-pass coordinate extraction pipeline on photo files and print
the recovered latitude/longitude pairs.

A photo that yields no coordinates prints empty fields; that is a normal
outcome, not an error.

Examples:
  lembar extract photo.jpg
  lembar extract *.jpg --format json`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		format := viper.GetString("output.format")
		if format != "text" && format != "json" {
			return fmt.Errorf("invalid output format %q (must be text or json)", format)
		}

		recognizer, err := ocr.NewRecognizer()
		if err != nil {
			return fmt.Errorf("initialize recognizer: %w", err)
		}

		logger := slog.Default()
		enhancer := enhance.New(cfg.EnhanceConfig(), logger)
		extractor := extract.New(recognizer, enhancer, cfg.BoundingBox(), cfg.OCROptions(), logger)

		out := cmd.OutOrStdout()
		for _, path := range args {
			if _, err := os.Stat(path); err != nil {
				return fmt.Errorf("cannot read %s: %w", path, err)
			}
			result := extractor.Extract(cmd.Context(), path)
			if format == "json" {
				payload := struct {
					Image string `json:"image"`
					extract.Result
					Found bool `json:"found"`
				}{Image: path, Result: result, Found: !result.Empty()}
				if err := json.NewEncoder(out).Encode(payload); err != nil {
					return err
				}
				continue
			}
			if result.Empty() {
				_, _ = fmt.Fprintf(out, "%s: no coordinates found\n", path)
				continue
			}
			_, _ = fmt.Fprintf(out, "%s: %s, %s\n", path, result.Latitude, result.Longitude)
		}
		return nil
	},
}

func init() {
	extractCmd.Flags().StringP("format", "f", "text", "output format (text, json)")
	_ = viper.BindPFlag("output.format", extractCmd.Flags().Lookup("format"))

	rootCmd.AddCommand(extractCmd)
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yungbote/visualenglish-backend/internal/platform/gcp"
	"github.com/yungbote/visualenglish-backend/internal/services"
)

var (
	scanBucket      string
	scanLocalDir    string
	scanPrefix      string
	scanOutput      string
	scanPretty      bool
	scanConcurrency int
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Resolve every slide in a bucket prefix or local folder",
	Long: `Scan lists slide images and prints the resolved question and answer for
each as JSON. Book and unit come from --book/--unit or from path segments
such as book3/unit2.

Examples:
  qactl scan --bucket visualenglishmaterial --prefix book3/unit2 --pretty
  qactl scan --local-dir ./slides --output questions.json`,
	Args: cobra.NoArgs,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVar(&scanBucket, "bucket", "", "GCS bucket holding the slides (default: SLIDES_GCS_BUCKET)")
	scanCmd.Flags().StringVar(&scanLocalDir, "local-dir", "", "Scan a local directory instead of a bucket")
	scanCmd.Flags().StringVar(&scanPrefix, "prefix", "", "Key prefix, e.g. book3/unit2")
	scanCmd.Flags().StringVar(&scanOutput, "output", "", "Write JSON to this file instead of stdout")
	scanCmd.Flags().BoolVar(&scanPretty, "pretty", false, "Indent JSON output")
	scanCmd.Flags().IntVar(&scanConcurrency, "concurrency", 8, "Slides resolved in parallel")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	var lister services.SlideLister
	switch {
	case scanLocalDir != "":
		if _, err := os.Stat(scanLocalDir); err != nil {
			return fmt.Errorf("local dir: %w", err)
		}
		lister = services.NewDirSlideLister(scanLocalDir)
	default:
		storageCfg, err := gcp.ResolveObjectStorageConfigFromEnv()
		if scanBucket != "" {
			storageCfg.Bucket = scanBucket
			err = gcp.ValidateObjectStorageConfig(storageCfg)
		}
		if err != nil {
			return err
		}
		bucket, err := gcp.NewSlideBucketWithConfig(log, storageCfg)
		if err != nil {
			return err
		}
		defer bucket.Close()
		lister = bucket
	}

	resolver, err := localResolver(cmd, log)
	if err != nil {
		return err
	}
	report, err := services.ScanSlides(cmd.Context(), log, lister, resolver.Resolve, services.SlideScanOptions{
		Prefix:      scanPrefix,
		BookID:      conf.GetString("book"),
		UnitID:      conf.GetString("unit"),
		Concurrency: scanConcurrency,
	})
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if scanOutput != "" {
		f, err := os.Create(scanOutput)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}
	enc := json.NewEncoder(w)
	if scanPretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(report)
}

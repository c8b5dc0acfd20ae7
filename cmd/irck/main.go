// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the irck CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/irck/internal/check"
	"github.com/pdiddy/irck/internal/logging"
	"github.com/pdiddy/irck/internal/merge"
	"github.com/pdiddy/irck/internal/options"
	"github.com/pdiddy/irck/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// filter holds the option set resolved in PreRunE.
var filter types.FilterSpec

// rootCmd checks the PDFs of one directory, merges their parts, or runs OCR.
var rootCmd = &cobra.Command{
	Use:   "irck",
	Short: "Check, search and repair incident report PDF filenames",
	Long: `irck checks the filenames of scanned incident reports in a directory
against the naming convention

  YYYY-MM-DD[THH:MM]_<library>_<surname>[_<surname>...][_partN].pdf

With no options it verifies every PDF and lists the ones that do not follow
the convention. With --no-verify, or when any of the filter options is given
without --verify, it lists the PDFs that match the filter instead.

--merge finds incidents scanned in several parts (_part1, _part2, ...) and
concatenates each into one PDF after confirmation. --ocr recognizes the text
of scanned PDFs into ocr_output/ and moves them into ocr_processed_pdfs/.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.SetLevel(viper.GetString("log_level"))
	},
	PreRunE: func(cmd *cobra.Command, args []string) error {
		spec, err := options.Resolve(rawOptions(cmd))
		if err != nil {
			return err
		}
		filter = spec
		return nil
	},
	RunE: runRoot,
}

func runRoot(cmd *cobra.Command, args []string) error {
	if targets, _ := cmd.Flags().GetStringSlice("ocr"); len(targets) > 0 {
		return runOCR(cmd.Context(), targets, ocrConfig(), cmd.OutOrStdout())
	}

	cfg := scanConfig(cmd)
	if filter.Merge && cfg.Format != types.FormatText {
		return &options.ArgumentError{Flag: "--format", Value: string(cfg.Format), Reason: "cannot be used with --merge"}
	}

	s := check.Scan{Config: cfg, Filter: filter}
	if filter.Merge {
		s.Writer = merge.NewPDFWriter()
	}
	return s.Run(cmd.InOrStdin(), cmd.OutOrStdout())
}

// rawOptions reads the filter flags as given on the command line.
func rawOptions(cmd *cobra.Command) options.Raw {
	f := cmd.Flags()
	var r options.Raw
	r.Directory = viper.GetString("directory")
	r.Verify, _ = f.GetBool("verify")
	r.NoVerify, _ = f.GetBool("no-verify")
	r.LibCode, _ = f.GetString("libcode")
	r.Surnames, _ = f.GetStringSlice("surname")
	r.SurnamesOr, _ = f.GetStringSlice("surname-or")
	r.LNU, _ = f.GetBool("lnu")
	r.NoLNU, _ = f.GetBool("no-lnu")
	r.Parts, _ = f.GetBool("parts")
	r.NoParts, _ = f.GetBool("no-parts")
	r.Merge, _ = f.GetBool("merge")
	r.OCR, _ = f.GetStringSlice("ocr")
	return r
}

func scanConfig(cmd *cobra.Command) types.ScanConfig {
	yes, _ := cmd.Flags().GetBool("yes")
	format := types.OutputFormat(viper.GetString("format"))
	if format == "" {
		format = types.FormatText
	}
	return types.ScanConfig{
		Directory: viper.GetString("directory"),
		Format:    format,
		AssumeYes: yes,
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./irck.yaml or ~/.config/irck/irck.yaml)")
	pf.String("log-level", logging.LevelWarn, "diagnostic log level on stderr: debug, info, warn, error")

	f := rootCmd.Flags()
	f.StringP("directory", "d", "./", "directory whose PDFs are checked")
	f.BoolP("verify", "v", false, "list PDFs that do not follow the naming convention (default)")
	f.BoolP("no-verify", "V", false, "list PDFs that match the filters instead")
	f.StringP("libcode", "l", "", "library code: haw, hpb, lak, mad, mea, msb, pin, seq, smb")
	f.StringSliceP("surname", "s", nil, "surnames that must all appear, in order")
	f.StringSliceP("surname-or", "S", nil, "surnames of which any one must appear")
	f.BoolP("lnu", "u", false, "only incidents with an unknown last name (LNU)")
	f.BoolP("no-lnu", "U", false, "exclude incidents with an unknown last name (LNU)")
	f.BoolP("parts", "p", false, "only files with a part suffix")
	f.BoolP("no-parts", "P", false, "exclude files with a _partN suffix")
	f.BoolP("merge", "m", false, "merge the _partN files of each incident into one PDF")
	f.BoolP("yes", "y", false, "merge without asking for confirmation")
	f.StringSlice("ocr", nil, "PDFs (or glob patterns) to run OCR on; the directory scan is skipped")
	f.String("format", string(types.FormatText), "scan output format: text, json, or yaml")
	f.String("rasterizer", string(types.RasterizerPDFCPU), "OCR page rasterizer: pdfcpu or pdftoppm")

	rootCmd.MarkFlagsMutuallyExclusive("verify", "no-verify")
	rootCmd.MarkFlagsMutuallyExclusive("surname", "surname-or", "lnu", "no-lnu")
	rootCmd.MarkFlagsMutuallyExclusive("parts", "no-parts")

	_ = viper.BindPFlag("log_level", pf.Lookup("log-level"))
	_ = viper.BindPFlag("directory", f.Lookup("directory"))
	_ = viper.BindPFlag("format", f.Lookup("format"))
	_ = viper.BindPFlag("ocr.rasterizer", f.Lookup("rasterizer"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("irck")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "irck"))
		}
	}

	def := types.DefaultOCRConfig()
	viper.SetDefault("ocr.output_dir", def.OutputDir)
	viper.SetDefault("ocr.processed_dir", def.ProcessedDir)
	viper.SetDefault("ocr.language", def.Language)
	viper.SetDefault("ocr.page_seg_mode", def.PageSegMode)
	viper.SetDefault("ocr.dpi", def.DPI)

	viper.SetEnvPrefix("IRCK")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/little-yangyang/vendordoc"
	"github.com/little-yangyang/vendordoc/internal/config"
	"github.com/little-yangyang/vendordoc/internal/logger"
	"github.com/little-yangyang/vendordoc/internal/server"
)

var (
	verbose bool

	inputPath    string
	outputPath   string
	templatePath string

	log *zap.Logger
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "moagen",
	Short: "Generate vendor profile documents from research data",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if verbose || cfg.Debug {
			log, err = logger.NewDebug("moagen")
		} else {
			log, err = logger.New("moagen")
		}
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the document generation HTTP service",
	RunE: func(cmd *cobra.Command, args []string) error {
		gen := vendordoc.NewGenerator(cfg.Locator(), cfg.Options(), cfg.OutputDir, log)
		handler := server.New(gen, log)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
		defer stop()

		return server.ListenAndServe(ctx, server.ListenConfig{
			Addr:         cfg.BindAddr,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		}, handler, log)
	},
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a document from a request JSON file",
	Long: `Render reads a request in the same JSON shape the HTTP endpoint accepts
(client_name, vendor_name, research_data, deal_description) and writes the
populated document to --out.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(inputPath)
		if err != nil {
			return err
		}
		var req vendordoc.Request
		if err := json.Unmarshal(data, &req); err != nil {
			return fmt.Errorf("parse %s: %w", inputPath, err)
		}

		locator := cfg.Locator()
		if templatePath != "" {
			locator = vendordoc.Locator{Override: templatePath}
		}
		gen := vendordoc.NewGenerator(locator, cfg.Options(), cfg.OutputDir, log)

		if outputPath == "" {
			outputPath = vendordoc.DownloadName(req.ClientName, req.VendorName)
		}
		out, err := os.Create(outputPath)
		if err != nil {
			return err
		}
		if err := gen.RenderTo(cmd.Context(), req, out); err != nil {
			out.Close()
			os.Remove(outputPath)
			return err
		}
		if err := out.Close(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Rendered %s\n", outputPath)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	renderCmd.Flags().StringVarP(&inputPath, "input", "i", "", "request JSON file")
	renderCmd.Flags().StringVarP(&outputPath, "out", "o", "", "output .docx path (defaults to <client>_<vendor>_MOA.docx)")
	renderCmd.Flags().StringVarP(&templatePath, "template", "t", "", "template .docx path, bypassing the template directory lookup")
	_ = renderCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(serveCmd, renderCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/consulta-org/consulta/config"
	"github.com/consulta-org/consulta/engine"
	"github.com/consulta-org/consulta/helpers"
	"github.com/consulta-org/consulta/obs"
	"github.com/consulta-org/consulta/server"
	"github.com/consulta-org/consulta/translator"
)

const version = "0.1.0"

func main() {
	root := &cobra.Command{
		Use:     "consulta",
		Short:   "Consultas en español sobre un catálogo de productos",
		Version: version,
	}

	var verbose bool
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		obs.InitLogger(level)
	}

	root.AddCommand(serveCmd(), mcpCmd(), askCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			svc := server.New(cfg)

			srv := &http.Server{
				Addr:    cfg.HTTPAddr,
				Handler: svc.Router(),
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				obs.Logger.Info("server_listening", "addr", cfg.HTTPAddr)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
			case <-ctx.Done():
				obs.Logger.Info("server_shutting_down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
				defer cancel()
				if err := srv.Shutdown(shutdownCtx); err != nil {
					return fmt.Errorf("shutdown: %w", err)
				}
			}
			return nil
		},
	}
}

func mcpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the catalog tools over MCP stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			svc := server.New(cfg)
			return mcpserver.ServeStdio(svc.MCPServer(version))
		},
	}
}

func askCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "ask [pregunta]",
		Short: "Run a single Spanish query against the catalog",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			svc := server.New(cfg)

			pregunta := strings.Join(args, " ")
			intent := translator.Extract(pregunta)
			result := svc.Execute(intent)

			switch format {
			case "json":
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			case "csv":
				cols := helpers.ResultColumns(intent)
				return helpers.WriteRowsCSV(os.Stdout, cols, result.Rows)
			case "text":
				printText(result)
				return nil
			default:
				return fmt.Errorf("unknown format %q (want json, csv or text)", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: json, csv or text")
	return cmd
}

func printText(result *engine.Result) {
	fmt.Println(result.Summary)
	for alias, value := range result.Metrics {
		fmt.Printf("  %s = %s\n", alias, engine.FormatNumber(value))
	}
	for i, row := range result.Rows {
		fmt.Printf("%3d. %v\n", i+1, row)
	}
}

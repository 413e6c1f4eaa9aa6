// Package serve implements the command that runs the dashboard HTTP API.
package serve

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"foliolens/cmd/root"
	"foliolens/internal/extract"
	"foliolens/internal/server"
)

var addr string

// Cmd represents the serve command.
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the dashboard HTTP API",
	Long: `Start the HTTP server a browser dashboard talks to: folio upload,
dashboard data with filters as query parameters, and CSV download.`,
	Run: serveFunc,
}

func init() {
	Cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")
}

func serveFunc(cmd *cobra.Command, args []string) {
	cfg := root.LoadConfig()
	if addr == "" {
		addr = cfg.Server.Addr
	}

	ctx := context.Background()
	client, err := extract.NewGeminiClient(ctx, cfg.AI.APIKey, cfg.AI.Model,
		time.Duration(cfg.AI.TimeoutSeconds)*time.Second, root.Log)
	if err != nil {
		root.Log.Fatalf("Error creating extraction client: %v", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			root.Log.WithError(err).Warn("Failed to close extraction client")
		}
	}()

	srv := server.New(server.Options{
		Extractor:      client,
		Rates:          root.Rates(cfg),
		MaxUploadBytes: cfg.Server.MaxUploadMB << 20,
		ResultTTL:      time.Duration(cfg.Server.CacheTTLMinutes) * time.Minute,
		Logger:         root.Log,
	})

	if err := srv.Start(addr); err != nil {
		root.Log.Fatalf("HTTP server failed: %v", err)
	}
}

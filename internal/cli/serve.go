package cli

import (
	"github.com/spf13/cobra"

	"github.com/realstat/realstat/internal/config"
	"github.com/realstat/realstat/internal/logging"
	"github.com/realstat/realstat/internal/web"
)

func newServeCmd() *cobra.Command {
	var addr string
	var uploads string
	var dev bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Long:  "Start the HTTP server for the public catalog, the admin back office, and the JSON API.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			if uploads != "" {
				cfg.UploadsDir = uploads
			}
			if dev {
				cfg.DevMode = true
			}
			return runServe(cfg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: $REALSTAT_ADDR or :8080)")
	cmd.Flags().StringVar(&uploads, "uploads", "", "uploads directory (default: $REALSTAT_UPLOADS or public/uploads)")
	cmd.Flags().BoolVar(&dev, "dev", false, "human-readable logs")

	return cmd
}

func runServe(cfg config.Config) error {
	logging.Setup(cfg.DevMode)

	database, err := openDB(cfg.DBPath)
	if err != nil {
		return err
	}
	defer closeDB(database)

	server, err := web.NewServer(database, cfg.UploadsDir)
	if err != nil {
		return err
	}

	return server.ListenAndServe(cfg.Addr)
}

package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/outreach/middlewares"
	"github.com/dmitrymomot/outreach/pkg/campaign"
	"github.com/dmitrymomot/outreach/pkg/logger"
)

// cli carries the state shared by all commands.
type cli struct {
	cfg        *Config
	log        *slog.Logger
	configPath string
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "outreach",
		Short: "Send an email with an attachment to every address of a contact sheet",
		Long: `outreach reads a spreadsheet of contacts, keeps every well-formed email
address and sends the same message and attachment to each of them, one at a
time, collecting a report of what was sent and what failed.

Without a subcommand it runs the HTTP service.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.load()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.serve(cmd.Context())
		},
	}
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "YAML config file; environment variables fill unset values")

	root.AddCommand(
		newServeCmd(c),
		newRecipientsCmd(c),
		newSendCmd(c),
	)
	return root
}

func (c *cli) load() error {
	cfg, err := LoadConfig(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.log = logger.NewWithWriter(os.Stderr, cfg.Logger,
		middlewares.RequestIDExtractor(),
		campaign.LogExtractor,
	)
	return nil
}

package main

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/outreach/pkg/campaign"
	"github.com/dmitrymomot/outreach/pkg/dnsverify"
)

func newRecipientsCmd(c *cli) *cobra.Command {
	var list, checkDomains bool

	cmd := &cobra.Command{
		Use:   "recipients",
		Short: "Count the recipients of the contact sheet",
		Long: `Reads the contact sheet and prints how many rows it has, how many values
look like an address and how many addresses a campaign would be sent to.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := newServices(cmd.Context(), c.cfg, c.log)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if err := printRecipients(cmd.Context(), out, c.cfg.ContactsFile, svc.pipeline, list); err != nil {
				return err
			}
			if !checkDomains {
				return nil
			}
			return printUnreachable(cmd.Context(), out, svc.pipeline, nil)
		},
	}
	cmd.Flags().BoolVarP(&list, "list", "l", false, "print every address a campaign would be sent to")
	cmd.Flags().BoolVar(&checkDomains, "check-domains", false, "look up the mail servers of every recipient domain")
	return cmd
}

type recipientLister interface {
	Stats(ctx context.Context) (campaign.Stats, error)
	Recipients(ctx context.Context) ([]string, error)
}

func printRecipients(ctx context.Context, w io.Writer, file string, p recipientLister, list bool) error {
	stats, err := p.Stats(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "file:       %s\n", file)
	fmt.Fprintf(w, "rows:       %d\n", stats.Rows)
	fmt.Fprintf(w, "candidates: %d\n", stats.Candidates)
	fmt.Fprintf(w, "valid:      %d\n", stats.Valid)

	if !list {
		return nil
	}
	addresses, err := p.Recipients(ctx)
	if err != nil {
		return err
	}
	for _, a := range addresses {
		fmt.Fprintln(w, a)
	}
	return nil
}

// printUnreachable lists recipient domains that cannot receive mail.
func printUnreachable(ctx context.Context, w io.Writer, p recipientLister, r dnsverify.Resolver) error {
	addresses, err := p.Recipients(ctx)
	if err != nil {
		return err
	}
	failed := dnsverify.CheckAddresses(ctx, r, addresses, dnsverify.DefaultConcurrency)
	fmt.Fprintf(w, "unreachable domains: %d\n", len(failed))
	for _, domain := range slices.Sorted(maps.Keys(failed)) {
		fmt.Fprintf(w, "  %s: %v\n", domain, failed[domain])
	}
	return nil
}

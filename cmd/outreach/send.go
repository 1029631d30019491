package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/outreach/pkg/campaign"
	"github.com/dmitrymomot/outreach/pkg/storage"
)

type sendOptions struct {
	subject        string
	message        string
	messageFile    string
	attachment     string
	attachmentName string
	json           bool
	quiet          bool
}

func newSendCmd(c *cli) *cobra.Command {
	var opts sendOptions

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Run one campaign from the terminal",
		Long: `Sends the message and attachment to every valid address of the contact
sheet and prints the report. Ctrl-C stops before the next address; the ones
not reached are reported as failed.`,
		Example: `  outreach send --subject "Application" --message-file letter.txt --attachment cv.pdf`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.send(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.subject, "subject", "s", "", "email subject")
	f.StringVarP(&opts.message, "message", "m", "", "message body")
	f.StringVar(&opts.messageFile, "message-file", "", "read the message body from a file")
	f.StringVarP(&opts.attachment, "attachment", "a", "", "PDF file attached to every email")
	f.StringVar(&opts.attachmentName, "attachment-name", "", "file name recipients see (default from MAIL_ATTACHMENT_NAME)")
	f.BoolVar(&opts.json, "json", false, "print the report as JSON")
	f.BoolVarP(&opts.quiet, "quiet", "q", false, "hide the progress bar")
	cmd.MarkFlagsMutuallyExclusive("message", "message-file")
	_ = cmd.MarkFlagRequired("subject")
	_ = cmd.MarkFlagRequired("attachment")
	return cmd
}

func (c *cli) send(cmd *cobra.Command, opts sendOptions) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	message, err := opts.body()
	if err != nil {
		return err
	}
	if opts.attachmentName == "" {
		opts.attachmentName = c.cfg.Mail.AttachmentName
	}
	attachment, err := loadAttachment(opts.attachment, opts.attachmentName, c.cfg.UploadMaxBytes)
	if err != nil {
		return err
	}

	svc, err := newServices(ctx, c.cfg, c.log)
	if err != nil {
		return err
	}

	req := campaign.Request{Subject: opts.subject, Message: message, Attachment: attachment}
	if !opts.quiet {
		stats, err := svc.pipeline.Stats(ctx)
		if err != nil {
			return err
		}
		bar := progressbar.NewOptions(stats.Valid,
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionSetDescription("sending"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
		defer func() { _ = bar.Finish() }()
		req.Observer = func(int, campaign.Outcome) { _ = bar.Add(1) }
	}

	result, err := svc.pipeline.Run(ctx, req)
	if err != nil {
		return err
	}
	if ctx.Err() != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "interrupted: remaining addresses were not attempted")
	}
	return printReport(cmd.OutOrStdout(), result, opts.json)
}

func (o sendOptions) body() (string, error) {
	if o.messageFile == "" {
		if o.message == "" {
			return "", errors.New("a message is required: use --message or --message-file")
		}
		return o.message, nil
	}
	data, err := os.ReadFile(o.messageFile)
	if err != nil {
		return "", fmt.Errorf("read message file: %w", err)
	}
	if len(data) == 0 {
		return "", errors.New("message file is empty")
	}
	return string(data), nil
}

// loadAttachment checks the file against the same rules as an HTTP upload.
func loadAttachment(path, name string, maxBytes int64) (campaign.Attachment, error) {
	f, err := os.Open(path)
	if err != nil {
		return campaign.Attachment{}, fmt.Errorf("attachment: %w", err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return campaign.Attachment{}, fmt.Errorf("attachment: %w", err)
	}
	contentType := storage.DetectReaderMIME(f)
	if err := storage.Validate(info.Size(), contentType,
		storage.NotEmpty(),
		storage.MaxSize(maxBytes),
		storage.PDFOnly(),
	); err != nil {
		return campaign.Attachment{}, fmt.Errorf("attachment %s: %w", path, err)
	}
	return campaign.FileAttachment(path, name, contentType), nil
}

func printReport(w io.Writer, result *campaign.Result, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	r := result.Report
	fmt.Fprintf(w, "campaign %s: %d of %d emails sent", result.ID, r.Sent, r.Total)
	if r.Failed > 0 {
		fmt.Fprintf(w, " (%d failed)", r.Failed)
	}
	fmt.Fprintln(w)
	for _, f := range r.Errors {
		fmt.Fprintf(w, "  %s: %s\n", f.Address, f.Reason)
	}
	return nil
}

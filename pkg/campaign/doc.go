// Package campaign implements the campaign-send pipeline: it turns contact rows
// into recipient addresses, sends every recipient the same message with the same
// attachment, and summarizes what happened.
//
// The pipeline is four small pieces composed by [Pipeline]:
//
//   - [Extract] picks the email-bearing field of every [Row] (see [EmailField]).
//   - [Validate] keeps candidates that look like email addresses.
//   - [Dispatcher] sends one message per address, strictly one at a time.
//   - [Summarize] folds the per-address [Outcome] list into a [Report].
//
// Extraction, validation and summarizing are pure functions. Only the dispatcher
// talks to the outside world, through a [mailer.Transport].
//
// # Usage
//
//	dispatcher := campaign.NewDispatcher(transport,
//	    campaign.WithInterval(time.Second),
//	    campaign.WithLogger(log),
//	)
//	pipeline := campaign.NewPipeline(source, dispatcher, campaign.WithPipelineLogger(log))
//
//	result, err := pipeline.Run(ctx, campaign.Request{
//	    Subject:    "Hello",
//	    Message:    "Please find my CV attached.",
//	    Attachment: campaign.FileAttachment("/tmp/cv.pdf", "CV.pdf", "application/pdf"),
//	})
//	if errors.Is(err, campaign.ErrNoRecipients) {
//	    // nothing to send
//	}
//
// # Failure model
//
// A failing address never stops the loop; it becomes a failed outcome carrying the
// transport's error text. Only an unreadable contact source, an empty recipient list,
// an unreadable attachment or an unreachable transport stop a campaign, and all of
// them do so before the first message is attempted.
//
// Campaigns are independent: several may run at the same time, each with its own
// attachment, outcomes and report.
package campaign

// Package handlers declares the HTTP endpoints of the outreach service.
//
// Every handler implements internal.Handler and receives its dependencies
// through its constructor:
//
//	app := internal.New(
//		internal.WithErrorHandler(handlers.ErrorHandler),
//		internal.WithNotFoundHandler(handlers.NotFound),
//		internal.WithHandlers(
//			handlers.NewCampaignHandler(pipeline, store),
//			handlers.NewStatsHandler(pipeline, "contacts.xlsx"),
//			handlers.NewStatusHandler(),
//		),
//	)
//
// Errors are rendered as {"success": false, "message": "..."} by ErrorHandler.
package handlers

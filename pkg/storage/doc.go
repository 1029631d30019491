// Package storage keeps uploaded campaign attachments for the duration of a
// campaign.
//
// Two backends implement Storage: LocalStorage writes to a directory and
// S3Storage writes to an S3-compatible bucket. New picks one from Config.
//
// # Basic Usage
//
//	store, err := storage.New(storage.Config{Driver: "local", Dir: "uploads"})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fh, _ := c.FormFile("cv")
//	info, err := storage.PutFile(ctx, store, fh,
//		storage.WithPrefix("attachments"),
//		storage.WithValidation(
//			storage.NotEmpty(),
//			storage.MaxSize(5<<20),
//			storage.PDFOnly(),
//		),
//	)
//	if err != nil {
//		var verr *storage.FileValidationError
//		if errors.As(err, &verr) {
//			// reject the upload
//		}
//	}
//	defer store.Delete(ctx, info.Key)
//
// The MIME type is detected from the file's magic bytes, never from its name or
// the client-supplied header. Validation errors unwrap to ErrFileTooLarge,
// ErrInvalidMIME or ErrEmptyFile.
//
// # Sweeper
//
// Sweeper deletes local files older than a maximum age on a cron schedule, so
// uploads orphaned by a crash do not accumulate.
package storage

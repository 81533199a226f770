// Package logger builds log/slog loggers for the qrkit binaries.
//
// New creates a *slog.Logger from functional options: output format, level,
// static attributes and ContextExtractor callbacks that copy request-scoped
// values such as the request id into every record:
//
//	log := logger.New(
//		logger.WithEnvironment("production", "qrserver"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//
// FromConfig does the same from a Config loaded from the environment
// (APP_ENV, APP_NAME, LOG_LEVEL, LOG_FORMAT).
//
// Attribute helpers keep key names consistent across packages:
//
//	log.InfoContext(ctx, "qr generated",
//		logger.ContentType("wifi"),
//		logger.Filename(res.Filename),
//		logger.ImageSize(1200),
//		logger.Duration(time.Since(start)),
//	)
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
package logger

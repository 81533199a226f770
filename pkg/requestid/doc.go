// Package requestid tags every HTTP request with a correlation id.
//
// Middleware reads the X-Request-ID header, keeps it when it is a short
// token of letters, digits, dashes and underscores, and otherwise generates a
// random UUID. The id is stored in the request context, echoed back in the
// response header and picked up by loggers built with LoggerExtractor:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
package requestid

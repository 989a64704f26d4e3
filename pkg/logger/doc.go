// Package logger builds *slog.Logger values for draftkit services and keeps
// attribute names consistent across packages.
//
// New takes functional options selecting the output format (text or JSON),
// the minimum level, static attributes and ContextExtractor callbacks. When
// extractors are registered the handler is wrapped so that every *Context
// logging call pulls request-scoped values (a request id, for example) out of
// the context before the record is written.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "draftd"),
//	    logger.WithContextExtractors(requestIDExtractor),
//	)
//	log.InfoContext(ctx, "draft saved",
//	    logger.DraftID(id),
//	    logger.Draft(true),
//	)
//
// # Attributes
//
// Helpers such as Error, Violations, Draft and DraftID return slog.Attr
// values. Error and Errors return an empty Attr for nil input, so
//
//	log.Info("done", logger.Error(err))
//
// needs no nil check.
package logger

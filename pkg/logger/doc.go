// Package logger builds *slog.Logger values with functional options and
// injects request-scoped attributes pulled from context.Context.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// result in LogHandlerDecorator, which runs every registered ContextExtractor
// on each record:
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "numcheck"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "value rejected", logger.Notation("N(17.2)"), logger.Reason(err))
//
// Attribute helpers in attr.go keep key names consistent across packages.
package logger

// Package logger builds *slog.Logger values for the formatkit packages.
//
// New is configured with Option functions that select the output format
// (text or json), the minimum level, the destination writer and static
// attributes. WithEnvironment picks development or production defaults.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "billing"),
//	    logger.WithAttr(slog.String("region", "br")),
//	)
//
//	log.Debug("tax id left unformatted",
//	    logger.Component("docfmt"),
//	    logger.Operation("tax_id"),
//	    logger.InputLength(len(digits)),
//	)
//
// Libraries that accept an optional logger should fall back to Discard rather
// than slog.Default, so that nothing is written unless the caller asks for it.
//
// # Attributes
//
// The helpers in attr.go keep attribute keys consistent across packages. Error
// and Errors return an empty slog.Attr for nil errors, which slog drops, so
// callers do not need a nil check.
package logger

// Package logger builds *slog.Logger values for argkit binaries and provides
// attribute helpers used by validation diagnostics.
//
// New creates a logger from functional options. The output format is JSON,
// slog text, or a pretty terminal format backed by charmbracelet/log. Context
// extractors registered with WithContextExtractors or WithContextValue add
// attributes pulled from the context of every record.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("APP_ENV"), "argcheck"),
//	    logger.WithContextValue("signature", signatureKey{}),
//	)
//	logger.SetAsDefault(log)
//
// Attribute helpers such as Function, Position and Constraint keep key names
// consistent between packages:
//
//	log.Warn("resize: invalid argument at pos 1, must be of type int",
//	    logger.Function("resize"),
//	    logger.Position(1),
//	)
//
// WithFormat and WithLevelName panic on invalid input. Logger configuration
// comes from trusted startup code, so a bad value should stop the binary
// rather than degrade logging silently.
package logger

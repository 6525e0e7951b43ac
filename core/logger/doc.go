// Package logger builds slog loggers and provides attribute helpers for
// consistent field names.
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithJSONFormatter(),
//		logger.WithAttr(logger.Component("gauth")),
//	)
//
//	log.Info("secret generated", logger.Secret(secret), logger.Action("generate"))
//	log.Error("enrollment failed", logger.Error(err))
//
// Helpers return an empty slog.Attr for zero inputs, which slog drops, so they can
// be passed unconditionally.
package logger

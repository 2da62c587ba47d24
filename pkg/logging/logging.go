package logging

import (
	"go.uber.org/zap"
)

// Setup builds the application logger and installs it as the zap global.
// Debug mode switches to the development (console) config at debug level;
// otherwise the production JSON config is used. Both configs write to
// stderr, keeping the document summary on stdout uncluttered.
func Setup(debug bool, appName, appVersion string) (*zap.Logger, error) {
	var cfg zap.Config

	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	// Add default fields
	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewExample(), err
	}

	zap.ReplaceGlobals(logger)
	return logger, nil
}

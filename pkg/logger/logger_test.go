package logger

import "testing"

// The package-level functions must be callable before Init, since library
// code and tests log without ever configuring the logger.
func TestLogBeforeInit(t *testing.T) {
	Debug("debug before init", "k", "v")
	Info("info before init", "k", "v")
	Warn("warn before init", "k", "v")
	Error("error before init", "k", "v")
	Sync()
}

func TestInitReplacesLogger(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("APP_ENV", "development")

	Init()
	if log == nil {
		t.Fatal("Init() must leave a usable logger")
	}
	Info("after init", "k", "v")
	Sync()
}

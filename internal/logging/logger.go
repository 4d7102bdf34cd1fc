package logging

import (
	"log/slog"
	"os"
)

// Setup installs the JSON stdout logger as the process default. Runs before
// anything else in main so config and DB failures already log structured;
// the database handler is layered on later, once a connection exists.
func Setup() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))
}

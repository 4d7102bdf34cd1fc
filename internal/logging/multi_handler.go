package logging

import (
	"context"
	"log/slog"
)

// MultiHandler duplicates every record to its child handlers, letting stdout
// and the system_logs table receive the same stream. Each child applies its
// own level filter, so the DB handler only sees ERROR and above.
type MultiHandler struct {
	children []slog.Handler
}

func NewMultiHandler(children ...slog.Handler) *MultiHandler {
	return &MultiHandler{children: children}
}

func (m *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, c := range m.children {
		if c.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *MultiHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, c := range m.children {
		if c.Enabled(ctx, record.Level) {
			if err := c.Handle(ctx, record); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	children := make([]slog.Handler, len(m.children))
	for i, c := range m.children {
		children[i] = c.WithAttrs(attrs)
	}
	return &MultiHandler{children: children}
}

func (m *MultiHandler) WithGroup(name string) slog.Handler {
	children := make([]slog.Handler, len(m.children))
	for i, c := range m.children {
		children[i] = c.WithGroup(name)
	}
	return &MultiHandler{children: children}
}

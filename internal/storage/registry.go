package storage

import (
	"go.uber.org/zap"

	"workbench/internal/widget"
)

// Factory recreates a widget from its serialized ref.
type Factory func(ref WidgetRef) (widget.Widget, error)

// Registry maps widget kinds to factories for layout restore.
type Registry struct {
	logger    *zap.Logger
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{logger: logger, factories: make(map[string]Factory)}
}

// Register installs the factory for a widget kind, replacing any previous one.
func (r *Registry) Register(kind string, f Factory) {
	r.factories[kind] = f
}

// Resolve recreates the widget behind ref. Returns false when the kind is
// unknown or the factory fails; restore skips such widgets.
func (r *Registry) Resolve(ref WidgetRef) (widget.Widget, bool) {
	f, ok := r.factories[ref.Kind]
	if !ok {
		r.logger.Warn("no factory for widget kind, skipping",
			zap.String("kind", ref.Kind), zap.String("id", ref.ID))
		return nil, false
	}
	w, err := f(ref)
	if err != nil {
		r.logger.Warn("widget factory failed, skipping",
			zap.String("kind", ref.Kind), zap.String("id", ref.ID), zap.Error(err))
		return nil, false
	}
	return w, true
}

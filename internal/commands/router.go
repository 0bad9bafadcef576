package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// ErrUnknownCommand is returned when no handler is registered under the invoked name.
var ErrUnknownCommand = errors.New("unknown command")

// Handler runs one command. args is the raw JSON argument object sent by the caller.
type Handler func(ctx context.Context, args json.RawMessage) (any, error)

// Router dispatches named command invocations to their handlers.
// Handlers are registered during setup; Invoke is safe for concurrent use afterwards.
type Router struct {
	handlers map[string]Handler
	logger   *zap.Logger
}

// NewRouter creates an empty Router.
func NewRouter(logger *zap.Logger) *Router {
	return &Router{
		handlers: make(map[string]Handler),
		logger:   logger.Named("commands"),
	}
}

// Register binds a handler to a command name. Registering a name twice panics.
func (r *Router) Register(name string, h Handler) {
	if _, exists := r.handlers[name]; exists {
		panic(fmt.Sprintf("commands: duplicate registration of %q", name))
	}
	r.handlers[name] = h
}

// Invoke runs the command registered under name.
func (r *Router) Invoke(ctx context.Context, name string, args json.RawMessage) (any, error) {
	h, ok := r.handlers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	r.logger.Debug("Invoking command", zap.String("command", name))
	result, err := h(ctx, args)
	if err != nil {
		r.logger.Warn("Command failed", zap.String("command", name), zap.Error(err))
		return nil, err
	}
	return result, nil
}

// Names returns the registered command names in sorted order.
func (r *Router) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

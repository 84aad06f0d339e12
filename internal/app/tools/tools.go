package tools

import (
	"context"
)

// ToolContext brings metadata of the call to the tool
type ToolContext struct {
	UserID    string
	SessionID string
	RequestID string
}

// Tool represents a capability the conversational driver can invoke.
// Input is the decoded JSON body of the invocation; each tool decodes it
// into its own typed parameters and rejects anything out of shape.
type Tool interface {
	Name() string
	Call(ctx context.Context, tctx ToolContext, input map[string]any) (map[string]any, error)
}

// Registry is a name-indexed set of tools.
type Registry map[string]Tool

// NewRegistry builds a registry from the given tools.
func NewRegistry(ts ...Tool) Registry {
	r := make(Registry, len(ts))
	for _, t := range ts {
		r[t.Name()] = t
	}
	return r
}

// Lookup returns the named tool, if registered.
func (r Registry) Lookup(name string) (Tool, bool) {
	t, ok := r[name]
	return t, ok
}

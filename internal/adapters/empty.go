package adapters

import "context"

// Always-empty feeds. They run the synchronizer offline against the local
// cache alone, and double as test stand-ins.

type EmptyHistory struct{}

func (EmptyHistory) Fetch(_ context.Context, _, _ string) []string { return nil }

type EmptySnapshot struct{}

func (EmptySnapshot) Fetch(_ context.Context, _ string) []string { return nil }

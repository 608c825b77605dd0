// Package ai defines the optional presentation enhancer. The enhancer only
// rewrites how an already-computed result list reads; it must never change
// filter membership or ranking order, so the core stays deterministic with
// or without it.
package ai

import (
	"context"

	"github.com/pateldev/intern-scout/internal/match"
)

// Enhancer turns a final, ordered result list into conversational text.
// Implementations receive the results read-only; on error the caller falls
// back to the plain renderer.
type Enhancer interface {
	Enhance(ctx context.Context, query string, results []match.Result) (string, error)
}

package store

import (
	"context"
	"fmt"

	"github.com/JonMunkholm/pharmacatalog/internal/config"
	"github.com/JonMunkholm/pharmacatalog/internal/core"
)

// Primary is the durable shared catalog store.
// Records returned by List carry the store-assigned ID.
type Primary interface {
	Name() string
	List(ctx context.Context) ([]core.Product, error)
	Insert(ctx context.Context, p core.Product) (string, error)
	Delete(ctx context.Context, id string) error
}

// AtomicReplacer is implemented by primaries that can swap the whole
// catalog in one transaction.
type AtomicReplacer interface {
	ReplaceAll(ctx context.Context, products []core.Product) error
}

// ReplacePolicy selects how a write replaces the primary catalog.
type ReplacePolicy int

const (
	// ReplaceBestEffort deletes every record then inserts the batch, each
	// wave fanned out concurrently. A failure midway leaves the catalog
	// partially replaced.
	ReplaceBestEffort ReplacePolicy = iota

	// ReplaceAtomic requires the primary to implement AtomicReplacer.
	ReplaceAtomic
)

func (p ReplacePolicy) String() string {
	switch p {
	case ReplaceAtomic:
		return "atomic"
	default:
		return "best-effort"
	}
}

// ParseReplacePolicy parses a policy name with the same rules as config
// validation. Empty means best-effort.
func ParseReplacePolicy(s string) (ReplacePolicy, error) {
	policy, ok := config.CanonicalReplacePolicy(s)
	if !ok {
		return ReplaceBestEffort, fmt.Errorf("unknown replace policy %q (want best-effort or atomic)", s)
	}
	if policy == config.PolicyAtomic {
		return ReplaceAtomic, nil
	}
	return ReplaceBestEffort, nil
}

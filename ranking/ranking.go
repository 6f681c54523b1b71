// Package ranking is a thin players-ranking facade over a persistent
// red-black map: player results come in as an append-only event stream,
// and any past standing can be recovered by rolling the whole map back.
package ranking

import (
	"fmt"
	"sync"

	"ranktree"
)

// Service tracks the current rating of every registered player and lets
// the whole history be rewound by a number of mutations. It is safe for
// concurrent use; every operation that touches the underlying tree is
// serialized behind a mutex, since ranktree.Tree itself is not.
type Service struct {
	mu   sync.Mutex
	tree *ranktree.Tree[string, int]
}

// New returns an empty Service at version 0.
func New() *Service {
	return &Service{tree: ranktree.New[string, int]()}
}

// RegisterPlayerResult records rating as playerName's current rating,
// creating the player if it is not already known. It always advances the
// version.
func (s *Service) RegisterPlayerResult(playerName string, rating int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tree.Set(playerName, rating)
}

// UnregisterPlayer removes playerName. It is a no-op, and the version does
// not advance, if the player was not registered.
func (s *Service) UnregisterPlayer(playerName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tree.Delete(playerName)
}

// GetPlayerRating returns playerName's current rating, or -1 if the player
// is not registered.
func (s *Service) GetPlayerRating(playerName string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.tree.Search(playerName)
	if n == nil {
		return -1
	}
	return n.Value()
}

// GetPlayerRank returns the 1-based position of playerName among all
// registered players ordered by name, or -1 if the player is not
// registered.
func (s *Service) GetPlayerRank(playerName string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tree.Search(playerName) == nil {
		return -1
	}
	return rankOf(s.tree.Root(), playerName)
}

// rankOf counts 1 plus every key strictly smaller than playerName reachable
// from n, by walking down to it and accumulating left-subtree sizes along
// the way; playerName is assumed present in the subtree rooted at n.
func rankOf(n *ranktree.Node[string, int], playerName string) int {
	rank := 0
	for n != nil {
		switch {
		case playerName < n.Key():
			n = n.Left()
		case playerName > n.Key():
			rank += 1 + size(n.Left())
			n = n.Right()
		default:
			return rank + 1 + size(n.Left())
		}
	}
	return -1
}

func size(n *ranktree.Node[string, int]) int {
	if n == nil {
		return 0
	}
	return 1 + size(n.Left()) + size(n.Right())
}

// Rollback reinstates the state from step mutations ago. Step must satisfy
// 1 <= step <= Version().
func (s *Service) Rollback(step int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.tree.Rewind(step); err != nil {
		return fmt.Errorf("ranking: %w", err)
	}
	return nil
}

// Version returns the current version: the number of mutations
// (register/unregister) in effect since the service was created. Rollback
// lowers it by its step.
func (s *Service) Version() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Version()
}

package proposal

import (
	"context"
	"sort"
	"sync"

	"dao/core"
)

// New new proposal store
func New() core.ProposalStore {
	return &proposalStore{}
}

// proposalStore keeps proposals in creation order, index i holds id i+1
type proposalStore struct {
	mux       sync.RWMutex
	proposals []core.Proposal
}

func (s *proposalStore) Create(ctx context.Context, proposal *core.Proposal) error {
	s.mux.Lock()
	defer s.mux.Unlock()

	proposal.ID = int64(len(s.proposals)) + 1
	s.proposals = append(s.proposals, *proposal)
	return nil
}

func (s *proposalStore) Find(ctx context.Context, id int64) (*core.Proposal, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()

	idx, ok := s.index(id)
	if !ok {
		return nil, core.ErrProposalNotFound
	}

	p := s.proposals[idx]
	return &p, nil
}

func (s *proposalStore) Update(ctx context.Context, proposal *core.Proposal) error {
	s.mux.Lock()
	defer s.mux.Unlock()

	idx, ok := s.index(proposal.ID)
	if !ok {
		return core.ErrProposalNotFound
	}

	s.proposals[idx] = *proposal
	return nil
}

func (s *proposalStore) List(ctx context.Context, fromID int64, limit int) ([]*core.Proposal, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()

	start := sort.Search(len(s.proposals), func(i int) bool {
		return s.proposals[i].ID > fromID
	})

	end := len(s.proposals)
	if limit > 0 && start+limit < end {
		end = start + limit
	}

	proposals := make([]*core.Proposal, 0, end-start)
	for _, p := range s.proposals[start:end] {
		p := p
		proposals = append(proposals, &p)
	}

	return proposals, nil
}

func (s *proposalStore) index(id int64) (int, bool) {
	if id <= 0 || id > int64(len(s.proposals)) {
		return 0, false
	}

	return int(id - 1), true
}

package member

import (
	"context"
	"fmt"
	"sort"

	"dao/core"
)

// New new member store, balances are fixed at construction and ids must be unique
func New(members []*core.Member) (core.MemberStore, error) {
	s := &memberStore{
		members: make(map[string]core.Member, len(members)),
	}

	for _, m := range members {
		if _, ok := s.members[m.ID]; ok {
			return nil, fmt.Errorf("duplicate member %q: %w", m.ID, core.ErrInvalidArgument)
		}

		s.members[m.ID] = *m
		s.ids = append(s.ids, m.ID)
	}

	sort.Strings(s.ids)
	return s, nil
}

type memberStore struct {
	members map[string]core.Member
	ids     []string
}

func (s *memberStore) Find(ctx context.Context, id string) (*core.Member, error) {
	m, ok := s.members[id]
	if !ok {
		return nil, core.ErrMemberNotFound
	}

	return &m, nil
}

func (s *memberStore) List(ctx context.Context) ([]*core.Member, error) {
	members := make([]*core.Member, 0, len(s.ids))
	for _, id := range s.ids {
		m := s.members[id]
		members = append(members, &m)
	}

	return members, nil
}

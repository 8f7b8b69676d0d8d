package ledger

import (
	"context"
	"sync"
	"time"

	"dao/core"

	"github.com/fox-one/pkg/logger"
	"github.com/shopspring/decimal"
)

// New new ledger service
func New(
	members core.MemberStore,
	proposals core.ProposalStore,
	treasury decimal.Decimal,
) core.Ledger {
	return &ledger{
		members:   members,
		proposals: proposals,
		treasury:  treasury,
		now:       time.Now,
	}
}

// ledger serializes every operation with one lock, the stores have no
// conflict policy for concurrent votes on the same proposal.
type ledger struct {
	mux       sync.Mutex
	members   core.MemberStore
	proposals core.ProposalStore
	treasury  decimal.Decimal
	now       func() time.Time
}

// SubmitProposal the caller filters empty title and description
func (l *ledger) SubmitProposal(ctx context.Context, title, description string) (*core.Proposal, error) {
	l.mux.Lock()
	defer l.mux.Unlock()

	log := logger.FromContext(ctx)

	p := &core.Proposal{
		CreatedAt:   l.now(),
		Title:       title,
		Description: description,
		Status:      core.ProposalStatusPending,
	}

	if err := l.proposals.Create(ctx, p); err != nil {
		log.WithError(err).Errorln("proposals.Create")
		return nil, err
	}

	log.WithField("proposal", p.ID).Infof("proposal %q submitted", p.Title)
	return p, nil
}

func (l *ledger) CastVote(ctx context.Context, proposalID int64, choice string) error {
	l.mux.Lock()
	defer l.mux.Unlock()

	log := logger.FromContext(ctx).WithField("proposal", proposalID)

	c, err := core.ParseVoteChoice(choice)
	if err != nil {
		log.WithError(err).Debugf("invalid vote choice %q", choice)
		return err
	}

	p, err := l.proposals.Find(ctx, proposalID)
	if err != nil {
		log.WithError(err).Debugln("proposals.Find")
		return err
	}

	if err := p.Vote(c); err != nil {
		return err
	}

	if err := l.proposals.Update(ctx, p); err != nil {
		log.WithError(err).Errorln("proposals.Update")
		return err
	}

	log.Infof("proposal voted %s, yes %d no %d", c, p.YesCount, p.NoCount)
	return nil
}

// RecomputeStatuses status is stored, every read that shows it must recompute first
func (l *ledger) RecomputeStatuses(ctx context.Context) error {
	l.mux.Lock()
	defer l.mux.Unlock()

	return l.recompute(ctx)
}

func (l *ledger) recompute(ctx context.Context) error {
	log := logger.FromContext(ctx)

	proposals, err := l.proposals.List(ctx, 0, 0)
	if err != nil {
		log.WithError(err).Errorln("proposals.List")
		return err
	}

	for _, p := range proposals {
		status := p.Evaluate()
		if status == p.Status {
			continue
		}

		log.WithField("proposal", p.ID).Debugf("status %s -> %s", p.Status, status)
		p.Status = status
		if err := l.proposals.Update(ctx, p); err != nil {
			log.WithError(err).Errorln("proposals.Update")
			return err
		}
	}

	return nil
}

func (l *ledger) ListProposals(ctx context.Context) ([]*core.Proposal, error) {
	return l.PageProposals(ctx, 0, 0)
}

func (l *ledger) PageProposals(ctx context.Context, fromID int64, limit int) ([]*core.Proposal, error) {
	l.mux.Lock()
	defer l.mux.Unlock()

	return l.proposals.List(ctx, fromID, limit)
}

func (l *ledger) FindProposal(ctx context.Context, proposalID int64) (*core.Proposal, error) {
	l.mux.Lock()
	defer l.mux.Unlock()

	return l.proposals.Find(ctx, proposalID)
}

// DisplayProposals recompute and page under the same lock, no vote can land in between
func (l *ledger) DisplayProposals(ctx context.Context, fromID int64, limit int) ([]*core.Proposal, error) {
	l.mux.Lock()
	defer l.mux.Unlock()

	if err := l.recompute(ctx); err != nil {
		return nil, err
	}

	return l.proposals.List(ctx, fromID, limit)
}

// DisplayProposal recompute and find under the same lock
func (l *ledger) DisplayProposal(ctx context.Context, proposalID int64) (*core.Proposal, error) {
	l.mux.Lock()
	defer l.mux.Unlock()

	if err := l.recompute(ctx); err != nil {
		return nil, err
	}

	return l.proposals.Find(ctx, proposalID)
}

func (l *ledger) Members(ctx context.Context) ([]*core.Member, error) {
	return l.members.List(ctx)
}

func (l *ledger) Member(ctx context.Context, id string) (*core.Member, error) {
	return l.members.Find(ctx, id)
}

func (l *ledger) Treasury() decimal.Decimal {
	return l.treasury
}

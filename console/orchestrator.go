package console

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/unicsmcr/hs_members/config"
	"github.com/unicsmcr/hs_members/entities"
	"github.com/unicsmcr/hs_members/services"
	"github.com/unicsmcr/hs_members/table"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrFetchFailed is returned when a page of members could not be fetched
	ErrFetchFailed = errors.New("could not fetch members")
	// ErrMutationFailed is returned when an update or delete was rejected
	ErrMutationFailed = errors.New("could not change members")
)

// Orchestrator drives the members table of one console session. Transitions of the
// table state are serialized; calls to the members API are made without holding the lock.
type Orchestrator struct {
	logger  *zap.Logger
	members services.MemberService

	mu    sync.Mutex
	state table.State
}

// NewOrchestrator creates an Orchestrator with an idle table
func NewOrchestrator(logger *zap.Logger, cfg *config.AppConfig, members services.MemberService) *Orchestrator {
	return &Orchestrator{
		logger:  logger,
		members: members,
		state:   table.NewState(cfg.Members.PageSize, cfg.Members.WindowSize),
	}
}

// Snapshot returns a copy of the current table state
func (o *Orchestrator) Snapshot() table.State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state.Copy()
}

// Mount fetches the current page
func (o *Orchestrator) Mount(ctx context.Context) error {
	return o.run(ctx, o.transition(func(s *table.State) table.Effect {
		return s.Mount()
	}))
}

// EnsureMounted fetches the current page unless a page was already shown
func (o *Orchestrator) EnsureMounted(ctx context.Context) error {
	return o.run(ctx, o.transition(func(s *table.State) table.Effect {
		if !s.NeedsMount() {
			return table.NoEffect
		}
		return s.Mount()
	}))
}

// ChangePage selects and fetches the given page. Invalid pages are ignored.
func (o *Orchestrator) ChangePage(ctx context.Context, page int) error {
	return o.run(ctx, o.transition(func(s *table.State) table.Effect {
		return s.RequestPage(page)
	}))
}

// SlideWindowBack slides the paginator window one page back
func (o *Orchestrator) SlideWindowBack() {
	o.transition(func(s *table.State) table.Effect {
		s.SlideWindowBack()
		return table.NoEffect
	})
}

// SlideWindowForward slides the paginator window one page forward
func (o *Orchestrator) SlideWindowForward() {
	o.transition(func(s *table.State) table.Effect {
		s.SlideWindowForward()
		return table.NoEffect
	})
}

// ToggleMember inverts the selection of a member of the current page
func (o *Orchestrator) ToggleMember(id entities.MemberID) error {
	var err error
	o.transition(func(s *table.State) table.Effect {
		err = s.ToggleMember(id)
		return table.NoEffect
	})
	return err
}

// ToggleAll selects the current page or, when it is already selected, clears the selection
func (o *Orchestrator) ToggleAll() {
	o.transition(func(s *table.State) table.Effect {
		s.ToggleAll()
		return table.NoEffect
	})
}

// OpenEdit opens the edit modal for a member of the current page
func (o *Orchestrator) OpenEdit(id entities.MemberID) error {
	var err error
	o.transition(func(s *table.State) table.Effect {
		err = s.OpenEdit(id)
		return table.NoEffect
	})
	return err
}

// OpenDelete asks for confirmation of the deletion of a member of the current page
func (o *Orchestrator) OpenDelete(id entities.MemberID) error {
	var err error
	o.transition(func(s *table.State) table.Effect {
		err = s.OpenDelete(id)
		return table.NoEffect
	})
	return err
}

// OpenBulkDelete asks for confirmation of the deletion of the selected members
func (o *Orchestrator) OpenBulkDelete() error {
	var err error
	o.transition(func(s *table.State) table.Effect {
		err = s.OpenBulkDelete()
		return table.NoEffect
	})
	return err
}

// CloseModal closes the open modal, discarding any draft
func (o *Orchestrator) CloseModal() {
	o.transition(func(s *table.State) table.Effect {
		s.CloseModal()
		return table.NoEffect
	})
}

// UpdateDraft replaces the draft of the open edit modal without saving it
func (o *Orchestrator) UpdateDraft(draft entities.MemberDraft) error {
	var err error
	o.transition(func(s *table.State) table.Effect {
		err = s.UpdateDraft(draft)
		return table.NoEffect
	})
	return err
}

// SaveDraft stores the draft as the edit modal's draft and sends the edited member to the API.
// On success the member is replaced in the current page.
func (o *Orchestrator) SaveDraft(ctx context.Context, draft entities.MemberDraft) error {
	var member entities.Member
	var err error
	o.transition(func(s *table.State) table.Effect {
		if err = s.UpdateDraft(draft); err != nil {
			return table.NoEffect
		}
		member, err = s.PendingUpdate()
		return table.NoEffect
	})
	if err != nil {
		return err
	}

	updated, err := o.members.UpdateMember(ctx, member)
	if err != nil {
		o.logger.Error("could not update member", zap.String("member id", member.ID.String()), zap.Error(err))
		o.transition(func(s *table.State) table.Effect {
			s.FailMutation()
			return table.NoEffect
		})
		return errors.Wrap(ErrMutationFailed, err.Error())
	}

	o.transition(func(s *table.State) table.Effect {
		s.CompleteUpdate(*updated)
		return table.NoEffect
	})
	return nil
}

// ConfirmDelete deletes the member or the selected members awaiting confirmation.
// A bulk delete fails as a whole when any single delete fails; deletes that
// succeeded are not undone.
func (o *Orchestrator) ConfirmDelete(ctx context.Context) error {
	var ids []entities.MemberID
	var bulk bool
	var err error
	o.transition(func(s *table.State) table.Effect {
		ids, bulk, err = s.PendingDelete()
		return table.NoEffect
	})
	if err != nil {
		return err
	}

	if !bulk {
		return o.deleteOne(ctx, ids[0])
	}
	return o.deleteAll(ctx, ids)
}

func (o *Orchestrator) deleteOne(ctx context.Context, id entities.MemberID) error {
	deletedID, err := o.members.DeleteMemberWithID(ctx, id)
	if err != nil {
		o.logger.Error("could not delete member", zap.String("member id", id.String()), zap.Error(err))
		o.transition(func(s *table.State) table.Effect {
			s.FailMutation()
			return table.NoEffect
		})
		return errors.Wrap(ErrMutationFailed, err.Error())
	}

	return o.run(ctx, o.transition(func(s *table.State) table.Effect {
		return s.CompleteDelete(deletedID)
	}))
}

func (o *Orchestrator) deleteAll(ctx context.Context, ids []entities.MemberID) error {
	errs := make([]error, len(ids))

	var g errgroup.Group
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			_, err := o.members.DeleteMemberWithID(ctx, id)
			errs[i] = errors.Wrapf(err, "could not delete member %s", id)
			return errs[i]
		})
	}

	if g.Wait() != nil {
		err := multierr.Combine(errs...)
		o.logger.Error("could not delete selected members",
			zap.Int("requested", len(ids)),
			zap.Int("failed", len(multierr.Errors(err))),
			zap.Error(err))
		o.transition(func(s *table.State) table.Effect {
			s.FailMutation()
			return table.NoEffect
		})
		return errors.Wrap(ErrMutationFailed, err.Error())
	}

	return o.run(ctx, o.transition(func(s *table.State) table.Effect {
		return s.CompleteBulkDelete()
	}))
}

func (o *Orchestrator) transition(apply func(*table.State) table.Effect) table.Effect {
	o.mu.Lock()
	defer o.mu.Unlock()
	return apply(&o.state)
}

// run executes effects until none is left
func (o *Orchestrator) run(ctx context.Context, effect table.Effect) error {
	for effect != nil {
		switch e := effect.(type) {
		case table.FetchEffect:
			var err error
			effect, err = o.fetch(ctx, e)
			if err != nil {
				return err
			}
		default:
			o.logger.Warn("unknown table effect", zap.Any("effect", effect))
			return nil
		}
	}
	return nil
}

func (o *Orchestrator) fetch(ctx context.Context, fetch table.FetchEffect) (table.Effect, error) {
	members, count, err := o.members.GetMembers(ctx, fetch.Page, fetch.Limit)
	if err != nil {
		applied := false
		o.transition(func(s *table.State) table.Effect {
			applied = s.FailPage(fetch.Seq)
			return table.NoEffect
		})
		if !applied {
			o.logger.Debug("ignoring failure of stale fetch", zap.Int("page", fetch.Page), zap.Error(err))
			return table.NoEffect, nil
		}
		o.logger.Error("could not fetch members", zap.Int("page", fetch.Page), zap.Error(err))
		return table.NoEffect, errors.Wrap(ErrFetchFailed, err.Error())
	}

	return o.transition(func(s *table.State) table.Effect {
		return s.ReceivePage(fetch.Seq, members, count)
	}), nil
}

package table

import (
	"github.com/pkg/errors"
	"github.com/unicsmcr/hs_members/entities"
)

// GenericError is the only error message ever shown to the user
const GenericError = "Something went wrong"

var (
	// ErrMemberNotOnPage is returned when an action targets a member
	// that is not on the currently displayed page
	ErrMemberNotOnPage = errors.New("member is not on the current page")
	// ErrNothingSelected is returned when a bulk action is requested with an empty selection
	ErrNothingSelected = errors.New("no members are selected")
	// ErrNoPendingEdit is returned when a draft is saved while no edit modal is open
	ErrNoPendingEdit = errors.New("no member is being edited")
	// ErrNoPendingDelete is returned when a delete is confirmed while no delete modal is open
	ErrNoPendingDelete = errors.New("no delete is awaiting confirmation")
)

// FetchStatus is the lifecycle state of the current page fetch
type FetchStatus string

const (
	Idle    FetchStatus = "idle"
	Loading FetchStatus = "loading"
	Loaded  FetchStatus = "loaded"
	Failed  FetchStatus = "failed"
)

// Effect is a side effect requested by a transition. A nil Effect requests nothing.
type Effect interface {
	effect()
}

// NoEffect is returned by transitions that need no side effect
var NoEffect Effect

// FetchEffect asks for a page of members to be fetched. Seq identifies the
// request; only the response to the latest request is applied.
type FetchEffect struct {
	Page  int
	Limit int
	Seq   uint64
}

func (FetchEffect) effect() {}

// State is the state of the members table. It is only changed through its transition methods.
type State struct {
	Status     FetchStatus       `json:"status"`
	Err        string            `json:"error,omitempty"`
	Members    []entities.Member `json:"members"`
	Pagination Pagination        `json:"pagination"`
	Selection  Selection         `json:"selection"`
	Modal      Modal             `json:"modal"`

	seq uint64
	// page the current members were fetched for
	shownPage int
}

// NewState creates an idle State on the first page
func NewState(pageSize, windowSize int) State {
	return State{
		Status:     Idle,
		Members:    []entities.Member{},
		Pagination: NewPagination(pageSize, windowSize),
		Selection:  ClearAll(),
	}
}

// Copy returns a deep copy of the state
func (s *State) Copy() State {
	c := *s
	c.Members = make([]entities.Member, len(s.Members))
	for i, member := range s.Members {
		member.Teams = append([]string(nil), member.Teams...)
		c.Members[i] = member
	}
	c.Selection = make(Selection, len(s.Selection))
	for id, selected := range s.Selection {
		c.Selection[id] = selected
	}
	if s.Modal.Draft != nil {
		draft := *s.Modal.Draft
		c.Modal.Draft = &draft
	}
	return c
}

// VisibleIDs returns the ids of the members on the current page
func (s State) VisibleIDs() []entities.MemberID {
	ids := make([]entities.MemberID, 0, len(s.Members))
	for _, member := range s.Members {
		ids = append(ids, member.ID)
	}
	return ids
}

// IsAllSelected reports whether every member on the current page is selected
func (s State) IsAllSelected() bool {
	return s.Selection.IsAllSelected(s.VisibleIDs())
}

// IsAnySelected reports whether any member, on any page, is selected
func (s State) IsAnySelected() bool {
	return s.Selection.IsAnySelected()
}

// NeedsMount reports whether no page was ever shown, either because nothing was
// fetched yet or because every fetch so far failed
func (s State) NeedsMount() bool {
	return s.Status == Idle || (s.Status == Failed && len(s.Members) == 0)
}

// Mount starts the fetch of the current page
func (s *State) Mount() Effect {
	return s.fetch()
}

// Invalidate re-fetches the current page
func (s *State) Invalidate() Effect {
	return s.fetch()
}

// RequestPage selects the given page and fetches it. Invalid pages are ignored.
func (s *State) RequestPage(page int) Effect {
	pagination, ok := s.Pagination.WithPage(page)
	if !ok {
		return NoEffect
	}
	s.Pagination = pagination
	return s.fetch()
}

// ReceivePage applies a fetched page. Responses to anything but the latest request are ignored.
// When the new total count no longer covers the current page, the page is clamped and fetched again.
func (s *State) ReceivePage(seq uint64, members []entities.Member, totalCount int) Effect {
	if seq != s.seq {
		return NoEffect
	}

	if members == nil {
		members = []entities.Member{}
	}
	s.Members = members
	s.Err = ""
	s.Status = Loaded

	requestedPage := s.Pagination.Page
	s.shownPage = requestedPage
	s.Pagination = s.Pagination.WithTotalCount(totalCount)
	if s.Pagination.Page != requestedPage {
		return s.fetch()
	}
	return NoEffect
}

// FailPage records a failed fetch, keeping the previously fetched members and
// moving back to their page. It returns false when the failure belongs to a stale request.
func (s *State) FailPage(seq uint64) bool {
	if seq != s.seq {
		return false
	}
	if pagination, ok := s.Pagination.WithPage(s.shownPage); ok {
		s.Pagination = pagination
	}
	s.Status = Failed
	s.Err = GenericError
	return true
}

// SlideWindowBack slides the paginator window one page back
func (s *State) SlideWindowBack() {
	s.Pagination = s.Pagination.SlideWindowBack()
}

// SlideWindowForward slides the paginator window one page forward
func (s *State) SlideWindowForward() {
	s.Pagination = s.Pagination.SlideWindowForward()
}

// ToggleMember inverts the selection of a member of the current page
func (s *State) ToggleMember(id entities.MemberID) error {
	if _, ok := s.member(id); !ok {
		return errors.Wrapf(ErrMemberNotOnPage, "could not select member %s", id)
	}
	s.Selection = s.Selection.Toggle(id)
	return nil
}

// ToggleAll selects every member of the current page, replacing the selection.
// When the whole page is already selected the entire selection is cleared, including other pages.
func (s *State) ToggleAll() {
	if s.IsAllSelected() {
		s.Selection = ClearAll()
		return
	}
	s.Selection = SelectAllVisible(s.VisibleIDs())
}

// OpenEdit opens the edit modal with a draft of the given member
func (s *State) OpenEdit(id entities.MemberID) error {
	member, ok := s.member(id)
	if !ok {
		return errors.Wrapf(ErrMemberNotOnPage, "could not edit member %s", id)
	}
	s.Modal = editModal(entities.NewMemberDraft(member))
	return nil
}

// UpdateDraft replaces the draft of the open edit modal
func (s *State) UpdateDraft(draft entities.MemberDraft) error {
	if s.Modal.Kind != ModalEdit || s.Modal.Draft == nil || s.Modal.Draft.ID != draft.ID {
		return ErrNoPendingEdit
	}
	s.Modal.Draft = &draft
	return nil
}

// PendingUpdate returns the member to send to the API for the open edit modal
func (s *State) PendingUpdate() (entities.Member, error) {
	if s.Modal.Kind != ModalEdit || s.Modal.Draft == nil {
		return entities.Member{}, ErrNoPendingEdit
	}

	draft := *s.Modal.Draft
	member, ok := s.member(draft.ID)
	if !ok {
		// the member left the page since the modal was opened; send the draft alone
		member = entities.Member{ID: draft.ID}
	}
	return member.WithDraft(draft), nil
}

// CompleteUpdate splices the updated member into the page by id
func (s *State) CompleteUpdate(updated entities.Member) {
	for i, member := range s.Members {
		if member.ID == updated.ID {
			s.Members[i] = updated
		}
	}
	s.Err = ""
	s.Modal = successModal(updatedMessage)
}

// OpenDelete asks for confirmation of the deletion of a member
func (s *State) OpenDelete(id entities.MemberID) error {
	if _, ok := s.member(id); !ok {
		return errors.Wrapf(ErrMemberNotOnPage, "could not delete member %s", id)
	}
	s.Modal = confirmDeleteModal(id)
	return nil
}

// OpenBulkDelete asks for confirmation of the deletion of the selected members
func (s *State) OpenBulkDelete() error {
	if !s.IsAnySelected() {
		return ErrNothingSelected
	}
	s.Modal = confirmBulkDeleteModal()
	return nil
}

// PendingDelete returns the ids awaiting deletion and whether the deletion is a bulk one
func (s *State) PendingDelete() ([]entities.MemberID, bool, error) {
	if s.Modal.Kind != ModalConfirmDelete {
		return nil, false, ErrNoPendingDelete
	}

	if !s.Modal.Bulk {
		return []entities.MemberID{s.Modal.Target}, false, nil
	}

	ids := s.Selection.SelectedIDs()
	if len(ids) == 0 {
		return nil, true, ErrNothingSelected
	}
	return ids, true, nil
}

// CompleteDelete removes a deleted member from the page and invalidates the page
func (s *State) CompleteDelete(id entities.MemberID) Effect {
	remaining := make([]entities.Member, 0, len(s.Members))
	for _, member := range s.Members {
		if member.ID != id {
			remaining = append(remaining, member)
		}
	}
	s.Members = remaining

	if s.Selection[id] {
		s.Selection = s.Selection.Toggle(id)
	}

	s.Err = ""
	s.Modal = successModal(deletedMessage)
	return s.Invalidate()
}

// CompleteBulkDelete clears the selection and invalidates the page
func (s *State) CompleteBulkDelete() Effect {
	s.Selection = ClearAll()
	s.Err = ""
	s.Modal = successModal(bulkDeletedMessage)
	return s.Invalidate()
}

// FailMutation records a failed update or delete. The open modal is left as it is.
func (s *State) FailMutation() {
	s.Err = GenericError
}

// CloseModal closes the open modal, discarding any draft
func (s *State) CloseModal() {
	s.Modal = Modal{}
}

func (s *State) fetch() Effect {
	s.seq++
	s.Status = Loading
	return FetchEffect{
		Page:  s.Pagination.Page,
		Limit: s.Pagination.PageSize,
		Seq:   s.seq,
	}
}

func (s *State) member(id entities.MemberID) (entities.Member, bool) {
	for _, member := range s.Members {
		if member.ID == id {
			return member, true
		}
	}
	return entities.Member{}, false
}

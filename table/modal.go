package table

import "github.com/unicsmcr/hs_members/entities"

// ModalKind is the kind of the modal currently open over the table
type ModalKind string

const (
	ModalNone          ModalKind = ""
	ModalEdit          ModalKind = "edit"
	ModalConfirmDelete ModalKind = "confirm_delete"
	ModalSuccess       ModalKind = "success"
)

// modal titles and messages
const (
	editTitle              = "Edit User Details"
	confirmDeleteTitle     = "Are you sure you want to delete this user?"
	confirmBulkDeleteTitle = "Are you sure you want to delete selected user(s)?"
	updatedMessage         = "User Details changed!"
	deletedMessage         = "User successfully deleted!"
	bulkDeletedMessage     = "Users successfully deleted!"
)

// Modal is the modal workflow state. Exactly one modal is open at a time.
type Modal struct {
	Kind  ModalKind `json:"kind"`
	Title string    `json:"title,omitempty"`
	// Draft is set for ModalEdit
	Draft *entities.MemberDraft `json:"draft,omitempty"`
	// Target is the member to delete for a single ModalConfirmDelete
	Target entities.MemberID `json:"target,omitempty"`
	// Bulk is set for a ModalConfirmDelete of the selected members
	Bulk bool `json:"bulk,omitempty"`
}

// IsOpen reports whether a modal is open
func (m Modal) IsOpen() bool {
	return m.Kind != ModalNone
}

func editModal(draft entities.MemberDraft) Modal {
	return Modal{Kind: ModalEdit, Title: editTitle, Draft: &draft}
}

func confirmDeleteModal(target entities.MemberID) Modal {
	return Modal{Kind: ModalConfirmDelete, Title: confirmDeleteTitle, Target: target}
}

func confirmBulkDeleteModal() Modal {
	return Modal{Kind: ModalConfirmDelete, Title: confirmBulkDeleteTitle, Bulk: true}
}

func successModal(message string) Modal {
	return Modal{Kind: ModalSuccess, Title: message}
}

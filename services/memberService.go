package services

import (
	"context"

	"github.com/unicsmcr/hs_members/entities"
)

//go:generate mockgen -destination ../mocks/services/mock_memberService.go -package mock_services github.com/unicsmcr/hs_members/services MemberService

// MemberService is the service for interactions with the remote members API
type MemberService interface {
	// GetMembers fetches one page of members along with the total number of members
	GetMembers(ctx context.Context, page, limit int) ([]entities.Member, int, error)
	// UpdateMember stores the given member and returns the member as stored by the API
	UpdateMember(ctx context.Context, member entities.Member) (*entities.Member, error)
	// DeleteMemberWithID deletes the member with the given id and returns the id of the deleted member
	DeleteMemberWithID(ctx context.Context, memberID entities.MemberID) (entities.MemberID, error)
}

package group

import (
	"context"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/nawal123158-wq/kartlichallenge/internal/repositories/group Repository

// Repository defines the interface for group membership operations
type Repository interface {
	// AddMember adds a user to a group
	AddMember(ctx context.Context, input *AddMemberInput) error

	// IsMember reports whether a user belongs to a group
	IsMember(ctx context.Context, input *IsMemberInput) (*IsMemberOutput, error)

	// ListMembers retrieves a group's member IDs
	ListMembers(ctx context.Context, input *ListMembersInput) (*ListMembersOutput, error)
}

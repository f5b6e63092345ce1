package group

// AddMemberInput is the input for adding a user to a group
type AddMemberInput struct {
	// GroupID is the group to add to
	GroupID string

	// UserID is the user to add
	UserID string
}

// IsMemberInput is the input for checking group membership
type IsMemberInput struct {
	// GroupID is the group to check
	GroupID string

	// UserID is the user to check
	UserID string
}

// IsMemberOutput is the output from checking group membership
type IsMemberOutput struct {
	// Member is true when the user belongs to the group
	Member bool
}

// ListMembersInput is the input for listing a group's members
type ListMembersInput struct {
	// GroupID is the group to list
	GroupID string
}

// ListMembersOutput is the output from listing a group's members
type ListMembersOutput struct {
	// UserIDs of every member
	UserIDs []string
}

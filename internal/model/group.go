package model

type GroupPrivacy string

const (
	GroupPublic  GroupPrivacy = "PUBLIC"
	GroupPrivate GroupPrivacy = "PRIVATE"
)

type MemberRole string

const (
	MemberRoleAdmin  MemberRole = "ADMIN"
	MemberRoleMember MemberRole = "MEMBER"
)

type MembershipStatus string

const (
	MembershipActive   MembershipStatus = "ACTIVE"
	MembershipInactive MembershipStatus = "INACTIVE"
	MembershipBanned   MembershipStatus = "BANNED"
)

// RecipeGroup is a themed collection of cooks, admin-gated for mutation.
type RecipeGroup struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	CreatorID   int64        `json:"creatorId"`
	ImageURL    string       `json:"imageUrl,omitempty"`
	Privacy     GroupPrivacy `json:"privacy,omitempty"`
	CreatedDate string       `json:"createdDate,omitempty"`
	UpdatedDate string       `json:"updatedDate,omitempty"`
}

type GroupMember struct {
	ID         int64            `json:"id"`
	GroupID    int64            `json:"groupId"`
	UserID     int64            `json:"userId"`
	Role       MemberRole       `json:"role,omitempty"`
	Status     MembershipStatus `json:"status,omitempty"`
	JoinedDate string           `json:"joinedDate,omitempty"`
}

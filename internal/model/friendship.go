package model

type FriendshipStatus string

const (
	FriendshipPending  FriendshipStatus = "PENDING"
	FriendshipAccepted FriendshipStatus = "ACCEPTED"
	FriendshipBlocked  FriendshipStatus = "BLOCKED"
)

// Friendship is a directional request record. The requester is UserID and the
// recipient FriendID; "friends" means an ACCEPTED row in either direction.
type Friendship struct {
	ID          int64            `json:"id"`
	UserID      int64            `json:"userId"`
	FriendID    int64            `json:"friendId"`
	Status      FriendshipStatus `json:"status"`
	CreatedDate string           `json:"createdDate,omitempty"`
	UpdatedDate string           `json:"updatedDate,omitempty"`
}

// OtherUser returns the counterpart of userID in the friendship.
func (f Friendship) OtherUser(userID int64) int64 {
	if f.UserID == userID {
		return f.FriendID
	}
	return f.UserID
}

package bale

// MemberStatus is the member's standing in a chat.
type MemberStatus string

const (
	Creator       MemberStatus = "creator"
	Administrator MemberStatus = "administrator"
	Member        MemberStatus = "member"
)

// ChatMember (https://docs.bale.ai/types#chatmember)
//
// Permission flags are three-valued: the platform only reports the flags
// relevant for the member's status, so an absent flag is not the same
// thing as an explicit false.
type ChatMember struct {
	User   User         `json:"user"`
	Status MemberStatus `json:"status"`

	IsMember                Opt[bool] `json:"is_member"`
	CanBeEdited             Opt[bool] `json:"can_be_edited"`
	CanChangeInfo           Opt[bool] `json:"can_change_info"`
	CanPostMessages         Opt[bool] `json:"can_post_messages"`
	CanEditMessages         Opt[bool] `json:"can_edit_messages"`
	CanDeleteMessages       Opt[bool] `json:"can_delete_messages"`
	CanInviteUsers          Opt[bool] `json:"can_invite_users"`
	CanRestrictMembers      Opt[bool] `json:"can_restrict_members"`
	CanPinMessages          Opt[bool] `json:"can_pin_messages"`
	CanPromoteMembers       Opt[bool] `json:"can_promote_members"`
	CanSendMessages         Opt[bool] `json:"can_send_messages"`
	CanSendMediaMessages    Opt[bool] `json:"can_send_media_messages"`
	CanReplyToStory         Opt[bool] `json:"can_reply_to_story"`
	CanSendLinkMessage      Opt[bool] `json:"can_send_link_message"`
	CanSendForwardedMessage Opt[bool] `json:"can_send_forwarded_message"`
	CanSeeMembers           Opt[bool] `json:"can_see_members"`
	CanAddStory             Opt[bool] `json:"can_add_story"`
}

// ChatMemberKey identifies a membership record. The same user may appear
// with different statuses over time, so the key is composite.
type ChatMemberKey struct {
	UserID ID
	Status MemberStatus
}

// Key returns the identity of this membership record for map storage.
func (m *ChatMember) Key() ChatMemberKey {
	return ChatMemberKey{UserID: m.User.ID, Status: m.Status}
}

// IsOwner reports whether the member created the chat.
func (m *ChatMember) IsOwner() bool {
	return m.Status == Creator
}

// IsAdmin reports whether the member may administrate the chat.
func (m *ChatMember) IsAdmin() bool {
	return m.Status == Creator || m.Status == Administrator
}

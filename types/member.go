package types

import (
	"time"

	g "github.com/reoring/kruto/dsl"
)

type ChatAdministratorRights struct {
	IsAnonymous         bool
	CanManageChat       bool
	CanDeleteMessages   bool
	CanManageVideoChats bool
	CanRestrictMembers  bool
	CanPromoteMembers   bool
	CanChangeInfo       bool
	CanInviteUsers      bool
	CanPostMessages     *bool
	CanEditMessages     *bool
	CanPinMessages      *bool
	CanManageTopics     *bool
}

var ChatAdministratorRightsNode = g.ObjectOf[ChatAdministratorRights]("ChatAdministratorRights").Field(
	g.Prop("IsAnonymous", "isAnonymous", g.Bool(), func(c *ChatAdministratorRights) *bool { return &c.IsAnonymous }),
	g.Prop("CanManageChat", "canManageChat", g.Bool(), func(c *ChatAdministratorRights) *bool { return &c.CanManageChat }),
	g.Prop("CanDeleteMessages", "canDeleteMessages", g.Bool(), func(c *ChatAdministratorRights) *bool { return &c.CanDeleteMessages }),
	g.Prop("CanManageVideoChats", "canManageVideoChats", g.Bool(), func(c *ChatAdministratorRights) *bool { return &c.CanManageVideoChats }),
	g.Prop("CanRestrictMembers", "canRestrictMembers", g.Bool(), func(c *ChatAdministratorRights) *bool { return &c.CanRestrictMembers }),
	g.Prop("CanPromoteMembers", "canPromoteMembers", g.Bool(), func(c *ChatAdministratorRights) *bool { return &c.CanPromoteMembers }),
	g.Prop("CanChangeInfo", "canChangeInfo", g.Bool(), func(c *ChatAdministratorRights) *bool { return &c.CanChangeInfo }),
	g.Prop("CanInviteUsers", "canInviteUsers", g.Bool(), func(c *ChatAdministratorRights) *bool { return &c.CanInviteUsers }),
	g.Opt("CanPostMessages", "canPostMessages", g.Bool(), func(c *ChatAdministratorRights) **bool { return &c.CanPostMessages }),
	g.Opt("CanEditMessages", "canEditMessages", g.Bool(), func(c *ChatAdministratorRights) **bool { return &c.CanEditMessages }),
	g.Opt("CanPinMessages", "canPinMessages", g.Bool(), func(c *ChatAdministratorRights) **bool { return &c.CanPinMessages }),
	g.Opt("CanManageTopics", "canManageTopics", g.Bool(), func(c *ChatAdministratorRights) **bool { return &c.CanManageTopics }),
).MustBuild()

type ChatMemberRights struct {
	CanSendMessages         *bool
	CanSendAudio            *bool
	CanSendDocuments        *bool
	CanSendPhotos           *bool
	CanSendVideos           *bool
	CanSendVideoNotes       *bool
	CanSendVoice            *bool
	CanSendPolls            *bool
	CanSendStickers         *bool
	CanSendAnimations       *bool
	CanSendGames            *bool
	CanSendInlineBotResults *bool
	CanAddWebPagePreviews   *bool
	CanChangeInfo           *bool
	CanInviteUsers          *bool
	CanPinMessages          *bool
	CanManageTopics         *bool
}

var ChatMemberRightsNode = g.ObjectOf[ChatMemberRights]("ChatMemberRights").Field(
	g.Opt("CanSendMessages", "canSendMessages", g.Bool(), func(c *ChatMemberRights) **bool { return &c.CanSendMessages }),
	g.Opt("CanSendAudio", "canSendAudio", g.Bool(), func(c *ChatMemberRights) **bool { return &c.CanSendAudio }),
	g.Opt("CanSendDocuments", "canSendDocuments", g.Bool(), func(c *ChatMemberRights) **bool { return &c.CanSendDocuments }),
	g.Opt("CanSendPhotos", "canSendPhotos", g.Bool(), func(c *ChatMemberRights) **bool { return &c.CanSendPhotos }),
	g.Opt("CanSendVideos", "canSendVideos", g.Bool(), func(c *ChatMemberRights) **bool { return &c.CanSendVideos }),
	g.Opt("CanSendVideoNotes", "canSendVideoNotes", g.Bool(), func(c *ChatMemberRights) **bool { return &c.CanSendVideoNotes }),
	g.Opt("CanSendVoice", "canSendVoice", g.Bool(), func(c *ChatMemberRights) **bool { return &c.CanSendVoice }),
	g.Opt("CanSendPolls", "canSendPolls", g.Bool(), func(c *ChatMemberRights) **bool { return &c.CanSendPolls }),
	g.Opt("CanSendStickers", "canSendStickers", g.Bool(), func(c *ChatMemberRights) **bool { return &c.CanSendStickers }),
	g.Opt("CanSendAnimations", "canSendAnimations", g.Bool(), func(c *ChatMemberRights) **bool { return &c.CanSendAnimations }),
	g.Opt("CanSendGames", "canSendGames", g.Bool(), func(c *ChatMemberRights) **bool { return &c.CanSendGames }),
	g.Opt("CanSendInlineBotResults", "canSendInlineBotResults", g.Bool(), func(c *ChatMemberRights) **bool { return &c.CanSendInlineBotResults }),
	g.Opt("CanAddWebPagePreviews", "canAddWebPagePreviews", g.Bool(), func(c *ChatMemberRights) **bool { return &c.CanAddWebPagePreviews }),
	g.Opt("CanChangeInfo", "canChangeInfo", g.Bool(), func(c *ChatMemberRights) **bool { return &c.CanChangeInfo }),
	g.Opt("CanInviteUsers", "canInviteUsers", g.Bool(), func(c *ChatMemberRights) **bool { return &c.CanInviteUsers }),
	g.Opt("CanPinMessages", "canPinMessages", g.Bool(), func(c *ChatMemberRights) **bool { return &c.CanPinMessages }),
	g.Opt("CanManageTopics", "canManageTopics", g.Bool(), func(c *ChatMemberRights) **bool { return &c.CanManageTopics }),
).MustBuild()

// ChatMember is the membership of a user in a chat. Variants are the
// ChatMember* types, resolved on the literal "status" tag.
type ChatMember interface {
	Member() *ChatMemberBase
}

type ChatMemberBase struct {
	Status string
	User   *User
}

func (m *ChatMemberBase) Member() *ChatMemberBase { return m }

func chatMemberFields(status string) []g.Field[ChatMemberBase] {
	return []g.Field[ChatMemberBase]{
		g.Prop("Status", "status", g.Literal(status), func(m *ChatMemberBase) *string { return &m.Status }),
		g.Prop("User", "user", UserNode, func(m *ChatMemberBase) **User { return &m.User }),
	}
}

type ChatMemberCreator struct {
	ChatMemberBase

	IsAnonymous bool
	Title       *string
}

var ChatMemberCreatorNode = g.ObjectOf[ChatMemberCreator]("ChatMemberCreator").
	Field(g.Embed(func(c *ChatMemberCreator) *ChatMemberBase { return &c.ChatMemberBase }, chatMemberFields("creator")...)...).
	Field(
		g.Prop("IsAnonymous", "isAnonymous", g.Bool(), func(c *ChatMemberCreator) *bool { return &c.IsAnonymous }),
		g.Opt("Title", "title", g.String(), func(c *ChatMemberCreator) **string { return &c.Title }),
	).
	Discriminate("status").
	MustBuild()

type ChatMemberAdministrator struct {
	ChatMemberBase

	Rights *ChatAdministratorRights
	Title  *string
}

var ChatMemberAdministratorNode = g.ObjectOf[ChatMemberAdministrator]("ChatMemberAdministrator").
	Field(g.Embed(func(c *ChatMemberAdministrator) *ChatMemberBase { return &c.ChatMemberBase }, chatMemberFields("administrator")...)...).
	Field(
		g.Prop("Rights", "rights", ChatAdministratorRightsNode, func(c *ChatMemberAdministrator) **ChatAdministratorRights { return &c.Rights }),
		g.Opt("Title", "title", g.String(), func(c *ChatMemberAdministrator) **string { return &c.Title }),
	).
	Discriminate("status").
	MustBuild()

type ChatMemberMember struct {
	ChatMemberBase
}

var ChatMemberMemberNode = g.ObjectOf[ChatMemberMember]("ChatMemberMember").
	Field(g.Embed(func(c *ChatMemberMember) *ChatMemberBase { return &c.ChatMemberBase }, chatMemberFields("member")...)...).
	Discriminate("status").
	MustBuild()

type ChatMemberRestricted struct {
	ChatMemberBase

	IsMember  bool
	Rights    *ChatMemberRights
	UntilDate *time.Time
}

var ChatMemberRestrictedNode = g.ObjectOf[ChatMemberRestricted]("ChatMemberRestricted").
	Field(g.Embed(func(c *ChatMemberRestricted) *ChatMemberBase { return &c.ChatMemberBase }, chatMemberFields("restricted")...)...).
	Field(
		g.Prop("IsMember", "isMember", g.Bool(), func(c *ChatMemberRestricted) *bool { return &c.IsMember }),
		g.Prop("Rights", "rights", ChatMemberRightsNode, func(c *ChatMemberRestricted) **ChatMemberRights { return &c.Rights }),
		g.Opt("UntilDate", "untilDate", g.Date(), func(c *ChatMemberRestricted) **time.Time { return &c.UntilDate }),
	).
	Discriminate("status").
	MustBuild()

type ChatMemberLeft struct {
	ChatMemberBase
}

var ChatMemberLeftNode = g.ObjectOf[ChatMemberLeft]("ChatMemberLeft").
	Field(g.Embed(func(c *ChatMemberLeft) *ChatMemberBase { return &c.ChatMemberBase }, chatMemberFields("left")...)...).
	Discriminate("status").
	MustBuild()

type ChatMemberBanned struct {
	ChatMemberBase

	UntilDate *time.Time
}

var ChatMemberBannedNode = g.ObjectOf[ChatMemberBanned]("ChatMemberBanned").
	Field(g.Embed(func(c *ChatMemberBanned) *ChatMemberBase { return &c.ChatMemberBase }, chatMemberFields("banned")...)...).
	Field(
		g.Opt("UntilDate", "untilDate", g.Date(), func(c *ChatMemberBanned) **time.Time { return &c.UntilDate }),
	).
	Discriminate("status").
	MustBuild()

var ChatMemberNode = g.Union("ChatMember",
	ChatMemberCreatorNode,
	ChatMemberAdministratorNode,
	ChatMemberMemberNode,
	ChatMemberRestrictedNode,
	ChatMemberLeftNode,
	ChatMemberBannedNode,
)

type InviteLink struct {
	InviteLink              string
	Creator                 *User
	RequiresApproval        bool
	Revoked                 bool
	Title                   *string
	ExpiresAt               *time.Time
	Limit                   *int64
	PendingJoinRequestCount *int64
}

var InviteLinkNode = g.ObjectOf[InviteLink]("InviteLink").Field(
	g.Prop("InviteLink", "inviteLink", g.String(), func(i *InviteLink) *string { return &i.InviteLink }),
	g.Prop("Creator", "creator", UserNode, func(i *InviteLink) **User { return &i.Creator }),
	g.Prop("RequiresApproval", "requiresApproval", g.Bool(), func(i *InviteLink) *bool { return &i.RequiresApproval }),
	g.Prop("Revoked", "revoked", g.Bool(), func(i *InviteLink) *bool { return &i.Revoked }),
	g.Opt("Title", "title", g.String(), func(i *InviteLink) **string { return &i.Title }),
	g.Opt("ExpiresAt", "expiresAt", g.Date(), func(i *InviteLink) **time.Time { return &i.ExpiresAt }),
	g.Opt("Limit", "limit", g.Int(), func(i *InviteLink) **int64 { return &i.Limit }),
	g.Opt("PendingJoinRequestCount", "pendingJoinRequestCount", g.Int(), func(i *InviteLink) **int64 { return &i.PendingJoinRequestCount }),
).MustBuild()

type ChatMemberUpdated struct {
	Chat            ChatP
	From            *User
	Date            time.Time
	OldChatMember   ChatMember
	NewChatMember   ChatMember
	InviteLink      *InviteLink
	ViaSharedFolder *bool
}

var ChatMemberUpdatedNode = g.ObjectOf[ChatMemberUpdated]("ChatMemberUpdated").Field(
	g.Prop("Chat", "chat", ChatPNode, func(c *ChatMemberUpdated) *ChatP { return &c.Chat }),
	g.Prop("From", "from", UserNode, func(c *ChatMemberUpdated) **User { return &c.From }),
	g.Prop("Date", "date", g.Date(), func(c *ChatMemberUpdated) *time.Time { return &c.Date }),
	g.Prop("OldChatMember", "oldChatMember", ChatMemberNode, func(c *ChatMemberUpdated) *ChatMember { return &c.OldChatMember }),
	g.Prop("NewChatMember", "newChatMember", ChatMemberNode, func(c *ChatMemberUpdated) *ChatMember { return &c.NewChatMember }),
	g.Prop("InviteLink", "inviteLink", g.Optional(InviteLinkNode), func(c *ChatMemberUpdated) **InviteLink { return &c.InviteLink }),
	g.Opt("ViaSharedFolder", "viaSharedFolder", g.Bool(), func(c *ChatMemberUpdated) **bool { return &c.ViaSharedFolder }),
).MustBuild()

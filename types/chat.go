package types

import (
	"context"
	"io"

	kruto "github.com/reoring/kruto"
	g "github.com/reoring/kruto/dsl"
)

// ChatP is a chat as it appears inside other values. Variants are
// *ChatPPrivate, *ChatPGroup, *ChatPSupergroup and *ChatPChannel.
type ChatP interface {
	Common() *ChatPBase
}

// ChatPBase holds the fields every chat variant shares.
type ChatPBase struct {
	attached

	ID    int64
	Type  string
	Color int64
}

func (c *ChatPBase) Common() *ChatPBase { return c }

// BanMember bans memberID from the chat.
func (c *ChatPBase) BanMember(ctx context.Context, memberID ID, opts *BanChatMemberOptions) error {
	cl, err := c.client()
	if err != nil {
		return err
	}
	return cl.BanChatMember(ctx, ChatID(c.ID), memberID, opts)
}

// UnbanMember lifts a ban on memberID.
func (c *ChatPBase) UnbanMember(ctx context.Context, memberID ID) error {
	cl, err := c.client()
	if err != nil {
		return err
	}
	return cl.UnbanChatMember(ctx, ChatID(c.ID), memberID)
}

// SetPhoto uploads photo as the chat photo.
func (c *ChatPBase) SetPhoto(ctx context.Context, photo io.Reader, opts *SetChatPhotoOptions) error {
	cl, err := c.client()
	if err != nil {
		return err
	}
	return cl.SetChatPhoto(ctx, ChatID(c.ID), photo, opts)
}

type ChatPPrivate struct {
	ChatPBase

	IsBot             *bool
	FirstName         string
	LastName          *string
	Username          *string
	Also              []string
	IsScam            bool
	IsFake            bool
	IsSupport         bool
	IsVerified        bool
	IsRestricted      *bool
	RestrictionReason []*RestrictionReason
}

type ChatPGroup struct {
	ChatPBase

	Title     string
	IsCreator bool
}

// ChatPChannelBase is shared by channels and supergroups.
type ChatPChannelBase struct {
	ChatPBase

	Title             string
	Username          *string
	Also              []string
	IsScam            bool
	IsFake            bool
	IsVerified        bool
	IsRestricted      bool
	RestrictionReason []*RestrictionReason
}

type ChatPChannel struct {
	ChatPChannelBase
}

type ChatPSupergroup struct {
	ChatPChannelBase

	IsForum bool
}

// ChatUsername returns the public username of c, or "" when it has none.
func ChatUsername(c ChatP) string {
	var u *string
	switch t := c.(type) {
	case *ChatPPrivate:
		u = t.Username
	case *ChatPChannel:
		u = t.Username
	case *ChatPSupergroup:
		u = t.Username
	}
	if u == nil {
		return ""
	}
	return *u
}

func chatPBaseFields(tag string) []g.Field[ChatPBase] {
	return []g.Field[ChatPBase]{
		g.Prop("ID", "id", g.Int(), func(c *ChatPBase) *int64 { return &c.ID }),
		g.Prop("Type", "type", g.Literal(tag), func(c *ChatPBase) *string { return &c.Type }),
		g.Prop("Color", "color", g.Int(), func(c *ChatPBase) *int64 { return &c.Color }),
	}
}

func channelBaseFields(tag string) []g.Field[ChatPChannelBase] {
	fs := g.Embed(func(c *ChatPChannelBase) *ChatPBase { return &c.ChatPBase }, chatPBaseFields(tag)...)
	return append(fs,
		g.Prop("Title", "title", g.String(), func(c *ChatPChannelBase) *string { return &c.Title }),
		g.Opt("Username", "username", g.String(), func(c *ChatPChannelBase) **string { return &c.Username }),
		g.Slice("Also", "also", g.Optional(g.List(g.String())), func(c *ChatPChannelBase) *[]string { return &c.Also }),
		g.Prop("IsScam", "isScam", g.Bool(), func(c *ChatPChannelBase) *bool { return &c.IsScam }),
		g.Prop("IsFake", "isFake", g.Bool(), func(c *ChatPChannelBase) *bool { return &c.IsFake }),
		g.Prop("IsVerified", "isVerified", g.Bool(), func(c *ChatPChannelBase) *bool { return &c.IsVerified }),
		g.Prop("IsRestricted", "isRestricted", g.Bool(), func(c *ChatPChannelBase) *bool { return &c.IsRestricted }),
		g.Slice("RestrictionReason", "restrictionReason", g.Optional(g.List(RestrictionReasonNode)), func(c *ChatPChannelBase) *[]*RestrictionReason { return &c.RestrictionReason }),
	)
}

var ChatPPrivateNode = g.ObjectOf[ChatPPrivate]("ChatPPrivate").
	Field(g.Embed(func(c *ChatPPrivate) *ChatPBase { return &c.ChatPBase }, chatPBaseFields("private")...)...).
	Field(
		g.Opt("IsBot", "isBot", g.Bool(), func(c *ChatPPrivate) **bool { return &c.IsBot }),
		g.Prop("FirstName", "firstName", g.String(), func(c *ChatPPrivate) *string { return &c.FirstName }),
		g.Opt("LastName", "lastName", g.String(), func(c *ChatPPrivate) **string { return &c.LastName }),
		g.Opt("Username", "username", g.String(), func(c *ChatPPrivate) **string { return &c.Username }),
		g.Slice("Also", "also", g.Optional(g.List(g.String())), func(c *ChatPPrivate) *[]string { return &c.Also }),
		g.Prop("IsScam", "isScam", g.Bool(), func(c *ChatPPrivate) *bool { return &c.IsScam }),
		g.Prop("IsFake", "isFake", g.Bool(), func(c *ChatPPrivate) *bool { return &c.IsFake }),
		g.Prop("IsSupport", "isSupport", g.Bool(), func(c *ChatPPrivate) *bool { return &c.IsSupport }),
		g.Prop("IsVerified", "isVerified", g.Bool(), func(c *ChatPPrivate) *bool { return &c.IsVerified }),
		g.Opt("IsRestricted", "isRestricted", g.Bool(), func(c *ChatPPrivate) **bool { return &c.IsRestricted }),
		g.Slice("RestrictionReason", "restrictionReason", g.Optional(g.List(RestrictionReasonNode)), func(c *ChatPPrivate) *[]*RestrictionReason { return &c.RestrictionReason }),
	).
	Discriminate("type").
	MustBuild()

var ChatPGroupNode = g.ObjectOf[ChatPGroup]("ChatPGroup").
	Field(g.Embed(func(c *ChatPGroup) *ChatPBase { return &c.ChatPBase }, chatPBaseFields("group")...)...).
	Field(
		g.Prop("Title", "title", g.String(), func(c *ChatPGroup) *string { return &c.Title }),
		g.Prop("IsCreator", "isCreator", g.Bool(), func(c *ChatPGroup) *bool { return &c.IsCreator }),
	).
	Discriminate("type").
	MustBuild()

var ChatPSupergroupNode = g.ObjectOf[ChatPSupergroup]("ChatPSupergroup").
	Field(g.Embed(func(c *ChatPSupergroup) *ChatPChannelBase { return &c.ChatPChannelBase }, channelBaseFields("supergroup")...)...).
	Field(g.Prop("IsForum", "isForum", g.Bool(), func(c *ChatPSupergroup) *bool { return &c.IsForum })).
	Discriminate("type").
	MustBuild()

var ChatPChannelNode = g.ObjectOf[ChatPChannel]("ChatPChannel").
	Field(g.Embed(func(c *ChatPChannel) *ChatPChannelBase { return &c.ChatPChannelBase }, channelBaseFields("channel")...)...).
	Discriminate("type").
	MustBuild()

// ChatPNode resolves on the literal "type" tag.
var ChatPNode = g.Union("ChatP", ChatPPrivateNode, ChatPGroupNode, ChatPSupergroupNode, ChatPChannelNode)

// ChatListItem is an entry of the chat list.
type ChatListItem struct {
	Chat        ChatP
	Order       string
	Pinned      int64
	LastMessage Message
}

var ChatListItemNode = g.ObjectOf[ChatListItem]("ChatListItem").Field(
	g.Prop("Chat", "chat", ChatPNode, func(c *ChatListItem) *ChatP { return &c.Chat }),
	g.Prop("Order", "order", g.String(), func(c *ChatListItem) *string { return &c.Order }),
	g.Prop("Pinned", "pinned", g.Int(), func(c *ChatListItem) *int64 { return &c.Pinned }),
	g.Prop("LastMessage", "lastMessage", g.Optional(MessageNode), func(c *ChatListItem) *Message { return &c.LastMessage }),
).MustBuild()

var _ kruto.RefHolder = (*ChatPPrivate)(nil)

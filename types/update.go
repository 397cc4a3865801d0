package types

import (
	kruto "github.com/reoring/kruto"
	g "github.com/reoring/kruto/dsl"
)

// Update is one event delivered by getUpdates. Each variant is identified by
// the single key that carries its payload.
type Update interface {
	update()
}

func (*UpdateNewMessage) update()           {}
func (*UpdateEditedMessage) update()        {}
func (*UpdateDeletedMessages) update()      {}
func (*UpdateCallbackQuery) update()        {}
func (*UpdateInlineQuery) update()          {}
func (*UpdateChosenInlineResult) update()   {}
func (*UpdateNewChat) update()              {}
func (*UpdateEditedChat) update()           {}
func (*UpdateDeletedChat) update()          {}
func (*UpdateMessageInteractions) update()  {}
func (*UpdateMessageReactionCount) update() {}
func (*UpdateMessageReactions) update()     {}
func (*UpdateChatMember) update()           {}
func (*UpdateMyChatMember) update()         {}
func (*UpdateDeletedStory) update()         {}
func (*UpdateNewStory) update()             {}
func (*UpdateBusinessConnection) update()   {}
func (*UpdateVideoChat) update()            {}
func (*UpdatePreCheckoutQuery) update()     {}
func (*UpdateUnknown) update()              {}

// UpdateUnknown wraps an update whose shape matched no variant. Raw is the
// wire value as received.
type UpdateUnknown struct {
	Raw any
}

// AsUpdate returns v as an Update, wrapping values left in wire form.
func AsUpdate(v any) Update {
	if u, ok := v.(Update); ok {
		return u
	}
	return &UpdateUnknown{Raw: v}
}

type UpdateNewMessage struct {
	Message Message
}

var UpdateNewMessageNode = g.ObjectOf[UpdateNewMessage]("UpdateNewMessage").
	Field(
		g.Prop("Message", "message", MessageNode, func(u *UpdateNewMessage) *Message { return &u.Message }),
	).
	Discriminate("message").
	MustBuild()

type UpdateEditedMessage struct {
	EditedMessage Message
}

var UpdateEditedMessageNode = g.ObjectOf[UpdateEditedMessage]("UpdateEditedMessage").
	Field(
		g.Prop("EditedMessage", "editedMessage", MessageNode, func(u *UpdateEditedMessage) *Message { return &u.EditedMessage }),
	).
	Discriminate("editedMessage").
	MustBuild()

type UpdateDeletedMessages struct {
	DeletedMessages      []*MessageReference
	BusinessConnectionID *string
}

var UpdateDeletedMessagesNode = g.ObjectOf[UpdateDeletedMessages]("UpdateDeletedMessages").
	Field(
		g.Slice("DeletedMessages", "deletedMessages", g.List(MessageReferenceNode), func(u *UpdateDeletedMessages) *[]*MessageReference { return &u.DeletedMessages }),
		g.Opt("BusinessConnectionID", "businessConnectionId", g.String(), func(u *UpdateDeletedMessages) **string { return &u.BusinessConnectionID }),
	).
	Discriminate("deletedMessages").
	MustBuild()

type UpdateCallbackQuery struct {
	CallbackQuery *CallbackQuery
}

var UpdateCallbackQueryNode = g.ObjectOf[UpdateCallbackQuery]("UpdateCallbackQuery").
	Field(
		g.Prop("CallbackQuery", "callbackQuery", CallbackQueryNode, func(u *UpdateCallbackQuery) **CallbackQuery { return &u.CallbackQuery }),
	).
	Discriminate("callbackQuery").
	MustBuild()

type UpdateInlineQuery struct {
	InlineQuery *InlineQuery
}

var UpdateInlineQueryNode = g.ObjectOf[UpdateInlineQuery]("UpdateInlineQuery").
	Field(
		g.Prop("InlineQuery", "inlineQuery", InlineQueryNode, func(u *UpdateInlineQuery) **InlineQuery { return &u.InlineQuery }),
	).
	Discriminate("inlineQuery").
	MustBuild()

type UpdateChosenInlineResult struct {
	ChosenInlineResult *ChosenInlineResult
}

var UpdateChosenInlineResultNode = g.ObjectOf[UpdateChosenInlineResult]("UpdateChosenInlineResult").
	Field(
		g.Prop("ChosenInlineResult", "chosenInlineResult", ChosenInlineResultNode, func(u *UpdateChosenInlineResult) **ChosenInlineResult { return &u.ChosenInlineResult }),
	).
	Discriminate("chosenInlineResult").
	MustBuild()

type UpdateNewChat struct {
	NewChat *ChatListItem
}

var UpdateNewChatNode = g.ObjectOf[UpdateNewChat]("UpdateNewChat").
	Field(
		g.Prop("NewChat", "newChat", ChatListItemNode, func(u *UpdateNewChat) **ChatListItem { return &u.NewChat }),
	).
	Discriminate("newChat").
	MustBuild()

type UpdateEditedChat struct {
	EditedChat *ChatListItem
}

var UpdateEditedChatNode = g.ObjectOf[UpdateEditedChat]("UpdateEditedChat").
	Field(
		g.Prop("EditedChat", "editedChat", ChatListItemNode, func(u *UpdateEditedChat) **ChatListItem { return &u.EditedChat }),
	).
	Discriminate("editedChat").
	MustBuild()

type UpdateDeletedChat struct {
	DeletedChat any
}

var UpdateDeletedChatNode = g.ObjectOf[UpdateDeletedChat]("UpdateDeletedChat").
	Field(
		g.Prop("DeletedChat", "deletedChat", g.Any(), func(u *UpdateDeletedChat) *any { return &u.DeletedChat }),
	).
	Discriminate("deletedChat").
	MustBuild()

type UpdateMessageInteractions struct {
	MessageInteractions *MessageInteractions
}

var UpdateMessageInteractionsNode = g.ObjectOf[UpdateMessageInteractions]("UpdateMessageInteractions").
	Field(
		g.Prop("MessageInteractions", "messageInteractions", MessageInteractionsNode, func(u *UpdateMessageInteractions) **MessageInteractions { return &u.MessageInteractions }),
	).
	Discriminate("messageInteractions").
	MustBuild()

type UpdateMessageReactionCount struct {
	MessageReactionCount *MessageReactionCount
}

var UpdateMessageReactionCountNode = g.ObjectOf[UpdateMessageReactionCount]("UpdateMessageReactionCount").
	Field(
		g.Prop("MessageReactionCount", "messageReactionCount", MessageReactionCountNode, func(u *UpdateMessageReactionCount) **MessageReactionCount { return &u.MessageReactionCount }),
	).
	Discriminate("messageReactionCount").
	MustBuild()

type UpdateMessageReactions struct {
	MessageReactions *MessageReactions
}

var UpdateMessageReactionsNode = g.ObjectOf[UpdateMessageReactions]("UpdateMessageReactions").
	Field(
		g.Prop("MessageReactions", "messageReactions", MessageReactionsNode, func(u *UpdateMessageReactions) **MessageReactions { return &u.MessageReactions }),
	).
	Discriminate("messageReactions").
	MustBuild()

type UpdateChatMember struct {
	ChatMember *ChatMemberUpdated
}

var UpdateChatMemberNode = g.ObjectOf[UpdateChatMember]("UpdateChatMember").
	Field(
		g.Prop("ChatMember", "chatMember", ChatMemberUpdatedNode, func(u *UpdateChatMember) **ChatMemberUpdated { return &u.ChatMember }),
	).
	Discriminate("chatMember").
	MustBuild()

type UpdateMyChatMember struct {
	MyChatMember *ChatMemberUpdated
}

var UpdateMyChatMemberNode = g.ObjectOf[UpdateMyChatMember]("UpdateMyChatMember").
	Field(
		g.Prop("MyChatMember", "myChatMember", ChatMemberUpdatedNode, func(u *UpdateMyChatMember) **ChatMemberUpdated { return &u.MyChatMember }),
	).
	Discriminate("myChatMember").
	MustBuild()

type UpdateDeletedStory struct {
	DeletedStory *StoryReference
}

var UpdateDeletedStoryNode = g.ObjectOf[UpdateDeletedStory]("UpdateDeletedStory").
	Field(
		g.Prop("DeletedStory", "deletedStory", StoryReferenceNode, func(u *UpdateDeletedStory) **StoryReference { return &u.DeletedStory }),
	).
	Discriminate("deletedStory").
	MustBuild()

type UpdateNewStory struct {
	Story *Story
}

var UpdateNewStoryNode = g.ObjectOf[UpdateNewStory]("UpdateNewStory").
	Field(
		g.Prop("Story", "story", StoryNode, func(u *UpdateNewStory) **Story { return &u.Story }),
	).
	Discriminate("story").
	MustBuild()

type UpdateBusinessConnection struct {
	BusinessConnection *BusinessConnection
}

var UpdateBusinessConnectionNode = g.ObjectOf[UpdateBusinessConnection]("UpdateBusinessConnection").
	Field(
		g.Prop("BusinessConnection", "businessConnection", BusinessConnectionNode, func(u *UpdateBusinessConnection) **BusinessConnection { return &u.BusinessConnection }),
	).
	Discriminate("businessConnection").
	MustBuild()

type UpdateVideoChat struct {
	VideoChat VideoChat
}

var UpdateVideoChatNode = g.ObjectOf[UpdateVideoChat]("UpdateVideoChat").
	Field(
		g.Prop("VideoChat", "videoChat", VideoChatNode, func(u *UpdateVideoChat) *VideoChat { return &u.VideoChat }),
	).
	Discriminate("videoChat").
	MustBuild()

type UpdatePreCheckoutQuery struct {
	PreCheckoutQuery *PreCheckoutQuery
}

var UpdatePreCheckoutQueryNode = g.ObjectOf[UpdatePreCheckoutQuery]("UpdatePreCheckoutQuery").
	Field(
		g.Prop("PreCheckoutQuery", "preCheckoutQuery", PreCheckoutQueryNode, func(u *UpdatePreCheckoutQuery) **PreCheckoutQuery { return &u.PreCheckoutQuery }),
	).
	Discriminate("preCheckoutQuery").
	MustBuild()

var UpdateNode = g.Union("Update",
	UpdateNewMessageNode,
	UpdateEditedMessageNode,
	UpdateDeletedMessagesNode,
	UpdateCallbackQueryNode,
	UpdateInlineQueryNode,
	UpdateChosenInlineResultNode,
	UpdateNewChatNode,
	UpdateEditedChatNode,
	UpdateDeletedChatNode,
	UpdateMessageInteractionsNode,
	UpdateMessageReactionCountNode,
	UpdateMessageReactionsNode,
	UpdateChatMemberNode,
	UpdateMyChatMemberNode,
	UpdateDeletedStoryNode,
	UpdateNewStoryNode,
	UpdateBusinessConnectionNode,
	UpdateVideoChatNode,
	UpdatePreCheckoutQueryNode,
)

// VariantName returns the declared name of a decoded value, or "raw" for a
// value left in wire form.
func VariantName(v any) string {
	if _, ok := v.(*UpdateUnknown); ok {
		return "raw"
	}
	if o, ok := kruto.Lookup(v); ok {
		return o.Name
	}
	return "raw"
}

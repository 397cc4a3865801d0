package types

import (
	"time"

	g "github.com/reoring/kruto/dsl"
)

// Reaction is an emoji reaction. Variants are *ReactionEmoji and
// *ReactionCustomEmoji, resolved on the literal "type" tag.
type Reaction interface {
	reaction()
}

func (*ReactionEmoji) reaction()       {}
func (*ReactionCustomEmoji) reaction() {}

// EmojiReaction returns the reaction for a plain emoji.
func EmojiReaction(emoji string) *ReactionEmoji {
	return &ReactionEmoji{Type: "emoji", Emoji: emoji}
}

type ReactionEmoji struct {
	Type  string
	Emoji string
}

var ReactionEmojiNode = g.ObjectOf[ReactionEmoji]("ReactionEmoji").
	Field(
		g.Prop("Type", "type", g.Literal("emoji"), func(r *ReactionEmoji) *string { return &r.Type }),
		g.Prop("Emoji", "emoji", g.String(), func(r *ReactionEmoji) *string { return &r.Emoji }),
	).
	Discriminate("type").
	MustBuild()

type ReactionCustomEmoji struct {
	Type string
	ID   string
}

var ReactionCustomEmojiNode = g.ObjectOf[ReactionCustomEmoji]("ReactionCustomEmoji").
	Field(
		g.Prop("Type", "type", g.Literal("customEmoji"), func(r *ReactionCustomEmoji) *string { return &r.Type }),
		g.Prop("ID", "id", g.String(), func(r *ReactionCustomEmoji) *string { return &r.ID }),
	).
	Discriminate("type").
	MustBuild()

var ReactionNode = g.Union("Reaction", ReactionEmojiNode, ReactionCustomEmojiNode)

type ReactionCount struct {
	Reaction Reaction
	Count    int64
}

var ReactionCountNode = g.ObjectOf[ReactionCount]("ReactionCount").Field(
	g.Prop("Reaction", "reaction", ReactionNode, func(r *ReactionCount) *Reaction { return &r.Reaction }),
	g.Prop("Count", "count", g.Int(), func(r *ReactionCount) *int64 { return &r.Count }),
).MustBuild()

type MessageReaction struct {
	Reaction Reaction
	Count    int64
	Choosers []int64
	Chosen   bool
}

var MessageReactionNode = g.ObjectOf[MessageReaction]("MessageReaction").Field(
	g.Prop("Reaction", "reaction", ReactionNode, func(m *MessageReaction) *Reaction { return &m.Reaction }),
	g.Prop("Count", "count", g.Int(), func(m *MessageReaction) *int64 { return &m.Count }),
	g.Slice("Choosers", "choosers", g.List(g.Int()), func(m *MessageReaction) *[]int64 { return &m.Choosers }),
	g.Prop("Chosen", "chosen", g.Bool(), func(m *MessageReaction) *bool { return &m.Chosen }),
).MustBuild()

type MessageInteractions struct {
	ChatID    int64
	MessageID int64
	Reactions []*MessageReaction
	Views     int64
	Forwards  int64
}

var MessageInteractionsNode = g.ObjectOf[MessageInteractions]("MessageInteractions").Field(
	g.Prop("ChatID", "chatId", g.Int(), func(m *MessageInteractions) *int64 { return &m.ChatID }),
	g.Prop("MessageID", "messageId", g.Int(), func(m *MessageInteractions) *int64 { return &m.MessageID }),
	g.Slice("Reactions", "reactions", g.List(MessageReactionNode), func(m *MessageInteractions) *[]*MessageReaction { return &m.Reactions }),
	g.Prop("Views", "views", g.Int(), func(m *MessageInteractions) *int64 { return &m.Views }),
	g.Prop("Forwards", "forwards", g.Int(), func(m *MessageInteractions) *int64 { return &m.Forwards }),
).MustBuild()

type MessageReactionCount struct {
	Chat      ChatP
	MessageID int64
	Date      time.Time
	Reactions []*ReactionCount
}

var MessageReactionCountNode = g.ObjectOf[MessageReactionCount]("MessageReactionCount").Field(
	g.Prop("Chat", "chat", ChatPNode, func(m *MessageReactionCount) *ChatP { return &m.Chat }),
	g.Prop("MessageID", "messageId", g.Int(), func(m *MessageReactionCount) *int64 { return &m.MessageID }),
	g.Prop("Date", "date", g.Date(), func(m *MessageReactionCount) *time.Time { return &m.Date }),
	g.Slice("Reactions", "reactions", g.List(ReactionCountNode), func(m *MessageReactionCount) *[]*ReactionCount { return &m.Reactions }),
).MustBuild()

type MessageReactions struct {
	Chat         ChatP
	MessageID    int64
	User         *User
	ActorChat    ChatP
	Date         time.Time
	OldReactions []Reaction
	NewReactions []Reaction
}

var MessageReactionsNode = g.ObjectOf[MessageReactions]("MessageReactions").Field(
	g.Prop("Chat", "chat", ChatPNode, func(m *MessageReactions) *ChatP { return &m.Chat }),
	g.Prop("MessageID", "messageId", g.Int(), func(m *MessageReactions) *int64 { return &m.MessageID }),
	g.Prop("User", "user", g.Optional(UserNode), func(m *MessageReactions) **User { return &m.User }),
	g.Prop("ActorChat", "actorChat", g.Optional(ChatPNode), func(m *MessageReactions) *ChatP { return &m.ActorChat }),
	g.Prop("Date", "date", g.Date(), func(m *MessageReactions) *time.Time { return &m.Date }),
	g.Slice("OldReactions", "oldReactions", g.List(ReactionNode), func(m *MessageReactions) *[]Reaction { return &m.OldReactions }),
	g.Slice("NewReactions", "newReactions", g.List(ReactionNode), func(m *MessageReactions) *[]Reaction { return &m.NewReactions }),
).MustBuild()

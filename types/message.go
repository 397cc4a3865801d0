package types

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	g "github.com/reoring/kruto/dsl"
)

// Message is any message. Every variant embeds MessageBase, so the
// conveniences below are available on each of them.
type Message interface {
	Base() *MessageBase
}

func (m *MessageBase) Base() *MessageBase { return m }

func (m *MessageBase) chatID() (ID, error) {
	if m.Chat == nil {
		return ID{}, fmt.Errorf("types: message %d has no chat", m.ID)
	}
	return ChatID(m.Chat.Common().ID), nil
}

// Reply sends text to the chat of m as a reply to m. A ReplyTo in opts only
// contributes its quote; the business connection of m is used unless opts
// names one.
func (m *MessageBase) Reply(ctx context.Context, text string, opts *SendMessageOptions) (*MessageText, error) {
	c, err := m.client()
	if err != nil {
		return nil, err
	}
	chat, err := m.chatID()
	if err != nil {
		return nil, err
	}
	var o SendMessageOptions
	if opts != nil {
		o = *opts
	}
	reply := &ReplyToMessage{MessageID: m.ID}
	if o.ReplyTo != nil {
		reply.Quote = o.ReplyTo.Quote
	}
	o.ReplyTo = reply
	if o.BusinessConnectionID == "" && m.BusinessConnectionID != nil {
		o.BusinessConnectionID = *m.BusinessConnectionID
	}
	return c.SendMessage(ctx, chat, text, &o)
}

// Delete deletes m.
func (m *MessageBase) Delete(ctx context.Context, opts *DeleteMessageOptions) error {
	c, err := m.client()
	if err != nil {
		return err
	}
	chat, err := m.chatID()
	if err != nil {
		return err
	}
	return c.DeleteMessage(ctx, chat, m.ID, opts)
}

// Forward forwards m to another chat.
func (m *MessageBase) Forward(ctx context.Context, to ID, opts *ForwardMessageOptions) (Message, error) {
	c, err := m.client()
	if err != nil {
		return nil, err
	}
	chat, err := m.chatID()
	if err != nil {
		return nil, err
	}
	return c.ForwardMessage(ctx, chat, to, m.ID, opts)
}

// EditText replaces the text of m.
func (m *MessageBase) EditText(ctx context.Context, text string, opts *EditMessageTextOptions) (*MessageText, error) {
	c, err := m.client()
	if err != nil {
		return nil, err
	}
	chat, err := m.chatID()
	if err != nil {
		return nil, err
	}
	return c.EditMessageText(ctx, chat, m.ID, text, opts)
}

// Pin pins m in its chat.
func (m *MessageBase) Pin(ctx context.Context, opts *PinMessageOptions) error {
	c, err := m.client()
	if err != nil {
		return err
	}
	chat, err := m.chatID()
	if err != nil {
		return err
	}
	return c.PinMessage(ctx, chat, m.ID, opts)
}

// React replaces the reactions of the current account on m.
func (m *MessageBase) React(ctx context.Context, reactions []Reaction, opts *SetReactionsOptions) error {
	c, err := m.client()
	if err != nil {
		return err
	}
	chat, err := m.chatID()
	if err != nil {
		return err
	}
	return c.SetReactions(ctx, chat, m.ID, reactions, opts)
}

// URL returns the public link to m. Messages in private chats have none.
func (m *MessageBase) URL() string {
	if m.Chat == nil || m.Chat.Common().Type == "private" {
		return ""
	}
	if u := ChatUsername(m.Chat); u != "" {
		return fmt.Sprintf("https://t.me/%s/%d", u, m.ID)
	}
	id := strings.Replace(strconv.FormatInt(m.Chat.Common().ID, 10), "-100", "", 1)
	return fmt.Sprintf("https://t.me/c/%s/%d", id, m.ID)
}

type ReplyQuote struct {
	Offset   int64
	Text     string
	Entities []MessageEntity
}

var ReplyQuoteNode = g.ObjectOf[ReplyQuote]("ReplyQuote").Field(
	g.Prop("Offset", "offset", g.Int(), func(r *ReplyQuote) *int64 { return &r.Offset }),
	g.Prop("Text", "text", g.String(), func(r *ReplyQuote) *string { return &r.Text }),
	g.Slice("Entities", "entities", g.List(MessageEntityNode), func(r *ReplyQuote) *[]MessageEntity { return &r.Entities }),
).MustBuild()

type LinkPreview struct {
	Disable    *bool
	URL        *string
	SmallMedia *bool
	LargeMedia *bool
	AboveText  *bool
}

var LinkPreviewNode = g.ObjectOf[LinkPreview]("LinkPreview").Field(
	g.Opt("Disable", "disable", g.Bool(), func(l *LinkPreview) **bool { return &l.Disable }),
	g.Opt("URL", "url", g.String(), func(l *LinkPreview) **string { return &l.URL }),
	g.Opt("SmallMedia", "smallMedia", g.Bool(), func(l *LinkPreview) **bool { return &l.SmallMedia }),
	g.Opt("LargeMedia", "largeMedia", g.Bool(), func(l *LinkPreview) **bool { return &l.LargeMedia }),
	g.Opt("AboveText", "aboveText", g.Bool(), func(l *LinkPreview) **bool { return &l.AboveText }),
).MustBuild()

type MessageReference struct {
	ChatID    int64
	MessageID int64
}

var MessageReferenceNode = g.ObjectOf[MessageReference]("MessageReference").Field(
	g.Prop("ChatID", "chatId", g.Int(), func(m *MessageReference) *int64 { return &m.ChatID }),
	g.Prop("MessageID", "messageId", g.Int(), func(m *MessageReference) *int64 { return &m.MessageID }),
).MustBuild()

// ReplyToMessage points an outgoing message at the message it answers.
type ReplyToMessage struct {
	MessageID int64
	Quote     *ReplyQuote
}

var ReplyToMessageNode = g.ObjectOf[ReplyToMessage]("ReplyToMessage").Field(
	g.Prop("MessageID", "messageId", g.Int(), func(r *ReplyToMessage) *int64 { return &r.MessageID }),
	g.Prop("Quote", "quote", g.Optional(ReplyQuoteNode), func(r *ReplyToMessage) **ReplyQuote { return &r.Quote }),
).MustBuild()

// MessageBase holds the fields every message variant shares.
type MessageBase struct {
	attached

	Out                  bool
	ID                   int64
	ThreadID             *int64
	From                 *User
	SenderChat           ChatP
	Date                 time.Time
	Chat                 ChatP
	Link                 *string
	ForwardFrom          *User
	ForwardFromChat      ChatP
	ForwardID            *int64
	ForwardSignature     *string
	ForwardSenderName    *string
	ForwardDate          *time.Time
	IsTopicMessage       bool
	IsAutomaticForward   *bool
	ReplyToMessage       Message
	ReplyToMessageID     *int64
	Reactions            []*MessageReaction
	ReplyQuote           *ReplyQuote
	ViaBot               *User
	EditDate             *time.Time
	HasProtectedContent  *bool
	MediaGroupID         *string
	AuthorSignature      *string
	Views                *int64
	Forwards             *int64
	ReplyMarkup          ReplyMarkup
	BusinessConnectionID *string
	SenderBoostCount     *int64
	ViaBusinessBot       *User
}

var messageBaseFields = []g.Field[MessageBase]{
	g.Prop("Out", "out", g.Bool(), func(m *MessageBase) *bool { return &m.Out }),
	g.Prop("ID", "id", g.Int(), func(m *MessageBase) *int64 { return &m.ID }),
	g.Opt("ThreadID", "threadId", g.Int(), func(m *MessageBase) **int64 { return &m.ThreadID }),
	g.Prop("From", "from", g.Optional(UserNode), func(m *MessageBase) **User { return &m.From }),
	g.Prop("SenderChat", "senderChat", g.Optional(ChatPNode), func(m *MessageBase) *ChatP { return &m.SenderChat }),
	g.Prop("Date", "date", g.Date(), func(m *MessageBase) *time.Time { return &m.Date }),
	g.Prop("Chat", "chat", ChatPNode, func(m *MessageBase) *ChatP { return &m.Chat }),
	g.Opt("Link", "link", g.String(), func(m *MessageBase) **string { return &m.Link }),
	g.Prop("ForwardFrom", "forwardFrom", g.Optional(UserNode), func(m *MessageBase) **User { return &m.ForwardFrom }),
	g.Prop("ForwardFromChat", "forwardFromChat", g.Optional(ChatPNode), func(m *MessageBase) *ChatP { return &m.ForwardFromChat }),
	g.Opt("ForwardID", "forwardId", g.Int(), func(m *MessageBase) **int64 { return &m.ForwardID }),
	g.Opt("ForwardSignature", "forwardSignature", g.String(), func(m *MessageBase) **string { return &m.ForwardSignature }),
	g.Opt("ForwardSenderName", "forwardSenderName", g.String(), func(m *MessageBase) **string { return &m.ForwardSenderName }),
	g.Opt("ForwardDate", "forwardDate", g.Date(), func(m *MessageBase) **time.Time { return &m.ForwardDate }),
	g.Prop("IsTopicMessage", "isTopicMessage", g.Bool(), func(m *MessageBase) *bool { return &m.IsTopicMessage }),
	g.Opt("IsAutomaticForward", "isAutomaticForward", g.Bool(), func(m *MessageBase) **bool { return &m.IsAutomaticForward }),
	g.Prop("ReplyToMessage", "replyToMessage", g.Optional(MessageNode), func(m *MessageBase) *Message { return &m.ReplyToMessage }),
	g.Opt("ReplyToMessageID", "replyToMessageId", g.Int(), func(m *MessageBase) **int64 { return &m.ReplyToMessageID }),
	g.Slice("Reactions", "reactions", g.Optional(g.List(MessageReactionNode)), func(m *MessageBase) *[]*MessageReaction { return &m.Reactions }),
	g.Prop("ReplyQuote", "replyQuote", g.Optional(ReplyQuoteNode), func(m *MessageBase) **ReplyQuote { return &m.ReplyQuote }),
	g.Prop("ViaBot", "viaBot", g.Optional(UserNode), func(m *MessageBase) **User { return &m.ViaBot }),
	g.Opt("EditDate", "editDate", g.Date(), func(m *MessageBase) **time.Time { return &m.EditDate }),
	g.Opt("HasProtectedContent", "hasProtectedContent", g.Bool(), func(m *MessageBase) **bool { return &m.HasProtectedContent }),
	g.Opt("MediaGroupID", "mediaGroupId", g.String(), func(m *MessageBase) **string { return &m.MediaGroupID }),
	g.Opt("AuthorSignature", "authorSignature", g.String(), func(m *MessageBase) **string { return &m.AuthorSignature }),
	g.Opt("Views", "views", g.Int(), func(m *MessageBase) **int64 { return &m.Views }),
	g.Opt("Forwards", "forwards", g.Int(), func(m *MessageBase) **int64 { return &m.Forwards }),
	g.Prop("ReplyMarkup", "replyMarkup", g.Optional(ReplyMarkupNode), func(m *MessageBase) *ReplyMarkup { return &m.ReplyMarkup }),
	g.Opt("BusinessConnectionID", "businessConnectionId", g.String(), func(m *MessageBase) **string { return &m.BusinessConnectionID }),
	g.Opt("SenderBoostCount", "senderBoostCount", g.Int(), func(m *MessageBase) **int64 { return &m.SenderBoostCount }),
	g.Prop("ViaBusinessBot", "viaBusinessBot", g.Optional(UserNode), func(m *MessageBase) **User { return &m.ViaBusinessBot }),
}

// MessageMediaBase adds the caption of media messages.
type MessageMediaBase struct {
	MessageBase

	Caption         *string
	CaptionEntities []MessageEntity
	HasMediaSpoiler *bool
}

var mediaBaseFields = append(
	g.Embed(func(m *MessageMediaBase) *MessageBase { return &m.MessageBase }, messageBaseFields...),
	g.Opt("Caption", "caption", g.String(), func(m *MessageMediaBase) **string { return &m.Caption }),
	g.Slice("CaptionEntities", "captionEntities", g.Optional(g.List(MessageEntityNode)), func(m *MessageMediaBase) *[]MessageEntity { return &m.CaptionEntities }),
	g.Opt("HasMediaSpoiler", "hasMediaSpoiler", g.Bool(), func(m *MessageMediaBase) **bool { return &m.HasMediaSpoiler }),
)

type MessageText struct {
	MessageBase

	Text        string
	Entities    []MessageEntity
	LinkPreview *LinkPreview
}

var MessageTextNode = g.ObjectOf[MessageText]("MessageText").
	Field(g.Embed(func(m *MessageText) *MessageBase { return &m.MessageBase }, messageBaseFields...)...).
	Field(
		g.Prop("Text", "text", g.String(), func(m *MessageText) *string { return &m.Text }),
		g.Slice("Entities", "entities", g.List(MessageEntityNode), func(m *MessageText) *[]MessageEntity { return &m.Entities }),
		g.Prop("LinkPreview", "linkPreview", g.Optional(LinkPreviewNode), func(m *MessageText) **LinkPreview { return &m.LinkPreview }),
	).
	Discriminate("text", "entities").
	MustBuild()

type MessageLink struct {
	MessageBase

	LinkPreview any
}

var MessageLinkNode = g.ObjectOf[MessageLink]("MessageLink").
	Field(g.Embed(func(m *MessageLink) *MessageBase { return &m.MessageBase }, messageBaseFields...)...).
	Field(
		g.Prop("LinkPreview", "linkPreview", g.Any(), func(m *MessageLink) *any { return &m.LinkPreview }),
	).
	Discriminate("linkPreview").
	MustBuild()

type MessagePhoto struct {
	MessageMediaBase

	Photo *Photo
}

var MessagePhotoNode = g.ObjectOf[MessagePhoto]("MessagePhoto").
	Field(g.Embed(func(m *MessagePhoto) *MessageMediaBase { return &m.MessageMediaBase }, mediaBaseFields...)...).
	Field(
		g.Prop("Photo", "photo", PhotoNode, func(m *MessagePhoto) **Photo { return &m.Photo }),
	).
	Discriminate("photo").
	MustBuild()

type MessageDocument struct {
	MessageMediaBase

	Document *Document
}

var MessageDocumentNode = g.ObjectOf[MessageDocument]("MessageDocument").
	Field(g.Embed(func(m *MessageDocument) *MessageMediaBase { return &m.MessageMediaBase }, mediaBaseFields...)...).
	Field(
		g.Prop("Document", "document", DocumentNode, func(m *MessageDocument) **Document { return &m.Document }),
	).
	Discriminate("document").
	MustBuild()

type MessageVideo struct {
	MessageMediaBase

	Video *Video
}

var MessageVideoNode = g.ObjectOf[MessageVideo]("MessageVideo").
	Field(g.Embed(func(m *MessageVideo) *MessageMediaBase { return &m.MessageMediaBase }, mediaBaseFields...)...).
	Field(
		g.Prop("Video", "video", VideoNode, func(m *MessageVideo) **Video { return &m.Video }),
	).
	Discriminate("video").
	MustBuild()

type MessageSticker struct {
	MessageBase

	Sticker *Sticker
}

var MessageStickerNode = g.ObjectOf[MessageSticker]("MessageSticker").
	Field(g.Embed(func(m *MessageSticker) *MessageBase { return &m.MessageBase }, messageBaseFields...)...).
	Field(
		g.Prop("Sticker", "sticker", StickerNode, func(m *MessageSticker) **Sticker { return &m.Sticker }),
	).
	Discriminate("sticker").
	MustBuild()

type MessageAnimation struct {
	MessageMediaBase

	Animation *Animation
}

var MessageAnimationNode = g.ObjectOf[MessageAnimation]("MessageAnimation").
	Field(g.Embed(func(m *MessageAnimation) *MessageMediaBase { return &m.MessageMediaBase }, mediaBaseFields...)...).
	Field(
		g.Prop("Animation", "animation", AnimationNode, func(m *MessageAnimation) **Animation { return &m.Animation }),
	).
	Discriminate("animation").
	MustBuild()

type MessageVoice struct {
	MessageMediaBase

	Voice *Voice
}

var MessageVoiceNode = g.ObjectOf[MessageVoice]("MessageVoice").
	Field(g.Embed(func(m *MessageVoice) *MessageMediaBase { return &m.MessageMediaBase }, mediaBaseFields...)...).
	Field(
		g.Prop("Voice", "voice", VoiceNode, func(m *MessageVoice) **Voice { return &m.Voice }),
	).
	Discriminate("voice").
	MustBuild()

type MessageAudio struct {
	MessageMediaBase

	Audio *Audio
}

var MessageAudioNode = g.ObjectOf[MessageAudio]("MessageAudio").
	Field(g.Embed(func(m *MessageAudio) *MessageMediaBase { return &m.MessageMediaBase }, mediaBaseFields...)...).
	Field(
		g.Prop("Audio", "audio", AudioNode, func(m *MessageAudio) **Audio { return &m.Audio }),
	).
	Discriminate("audio").
	MustBuild()

type MessageDice struct {
	MessageBase

	Dice *Dice
}

var MessageDiceNode = g.ObjectOf[MessageDice]("MessageDice").
	Field(g.Embed(func(m *MessageDice) *MessageBase { return &m.MessageBase }, messageBaseFields...)...).
	Field(
		g.Prop("Dice", "dice", DiceNode, func(m *MessageDice) **Dice { return &m.Dice }),
	).
	Discriminate("dice").
	MustBuild()

type MessageVideoNote struct {
	MessageBase

	VideoNote *VideoNote
}

var MessageVideoNoteNode = g.ObjectOf[MessageVideoNote]("MessageVideoNote").
	Field(g.Embed(func(m *MessageVideoNote) *MessageBase { return &m.MessageBase }, messageBaseFields...)...).
	Field(
		g.Prop("VideoNote", "videoNote", VideoNoteNode, func(m *MessageVideoNote) **VideoNote { return &m.VideoNote }),
	).
	Discriminate("videoNote").
	MustBuild()

type MessageContact struct {
	MessageBase

	Contact *Contact
}

var MessageContactNode = g.ObjectOf[MessageContact]("MessageContact").
	Field(g.Embed(func(m *MessageContact) *MessageBase { return &m.MessageBase }, messageBaseFields...)...).
	Field(
		g.Prop("Contact", "contact", ContactNode, func(m *MessageContact) **Contact { return &m.Contact }),
	).
	Discriminate("contact").
	MustBuild()

type MessageGame struct {
	MessageBase

	Game *Game
}

var MessageGameNode = g.ObjectOf[MessageGame]("MessageGame").
	Field(g.Embed(func(m *MessageGame) *MessageBase { return &m.MessageBase }, messageBaseFields...)...).
	Field(
		g.Prop("Game", "game", GameNode, func(m *MessageGame) **Game { return &m.Game }),
	).
	Discriminate("game").
	MustBuild()

type MessagePoll struct {
	MessageBase

	Poll *Poll
}

var MessagePollNode = g.ObjectOf[MessagePoll]("MessagePoll").
	Field(g.Embed(func(m *MessagePoll) *MessageBase { return &m.MessageBase }, messageBaseFields...)...).
	Field(
		g.Prop("Poll", "poll", PollNode, func(m *MessagePoll) **Poll { return &m.Poll }),
	).
	Discriminate("poll").
	MustBuild()

type MessageInvoice struct {
	MessageBase

	Invoice *Invoice
}

var MessageInvoiceNode = g.ObjectOf[MessageInvoice]("MessageInvoice").
	Field(g.Embed(func(m *MessageInvoice) *MessageBase { return &m.MessageBase }, messageBaseFields...)...).
	Field(
		g.Prop("Invoice", "invoice", InvoiceNode, func(m *MessageInvoice) **Invoice { return &m.Invoice }),
	).
	Discriminate("invoice").
	MustBuild()

type MessageVenue struct {
	MessageBase

	Venue *Venue
}

var MessageVenueNode = g.ObjectOf[MessageVenue]("MessageVenue").
	Field(g.Embed(func(m *MessageVenue) *MessageBase { return &m.MessageBase }, messageBaseFields...)...).
	Field(
		g.Prop("Venue", "venue", VenueNode, func(m *MessageVenue) **Venue { return &m.Venue }),
	).
	Discriminate("venue").
	MustBuild()

type MessageLocation struct {
	MessageBase

	Location *Location
}

var MessageLocationNode = g.ObjectOf[MessageLocation]("MessageLocation").
	Field(g.Embed(func(m *MessageLocation) *MessageBase { return &m.MessageBase }, messageBaseFields...)...).
	Field(
		g.Prop("Location", "location", LocationNode, func(m *MessageLocation) **Location { return &m.Location }),
	).
	Discriminate("location").
	MustBuild()

type MessageNewChatMembers struct {
	MessageBase

	NewChatMembers []*User
}

var MessageNewChatMembersNode = g.ObjectOf[MessageNewChatMembers]("MessageNewChatMembers").
	Field(g.Embed(func(m *MessageNewChatMembers) *MessageBase { return &m.MessageBase }, messageBaseFields...)...).
	Field(
		g.Slice("NewChatMembers", "newChatMembers", g.List(UserNode), func(m *MessageNewChatMembers) *[]*User { return &m.NewChatMembers }),
	).
	Discriminate("newChatMembers").
	MustBuild()

type MessageLeftChatMember struct {
	MessageBase

	LeftChatMember *User
}

var MessageLeftChatMemberNode = g.ObjectOf[MessageLeftChatMember]("MessageLeftChatMember").
	Field(g.Embed(func(m *MessageLeftChatMember) *MessageBase { return &m.MessageBase }, messageBaseFields...)...).
	Field(
		g.Prop("LeftChatMember", "leftChatMember", UserNode, func(m *MessageLeftChatMember) **User { return &m.LeftChatMember }),
	).
	Discriminate("leftChatMember").
	MustBuild()

type MessageNewChatTitle struct {
	MessageBase

	NewChatTitle string
}

var MessageNewChatTitleNode = g.ObjectOf[MessageNewChatTitle]("MessageNewChatTitle").
	Field(g.Embed(func(m *MessageNewChatTitle) *MessageBase { return &m.MessageBase }, messageBaseFields...)...).
	Field(
		g.Prop("NewChatTitle", "newChatTitle", g.String(), func(m *MessageNewChatTitle) *string { return &m.NewChatTitle }),
	).
	Discriminate("newChatTitle").
	MustBuild()

type MessageNewChatPhoto struct {
	MessageBase

	NewChatPhoto *Photo
}

var MessageNewChatPhotoNode = g.ObjectOf[MessageNewChatPhoto]("MessageNewChatPhoto").
	Field(g.Embed(func(m *MessageNewChatPhoto) *MessageBase { return &m.MessageBase }, messageBaseFields...)...).
	Field(
		g.Prop("NewChatPhoto", "newChatPhoto", PhotoNode, func(m *MessageNewChatPhoto) **Photo { return &m.NewChatPhoto }),
	).
	Discriminate("newChatPhoto").
	MustBuild()

type MessageDeletedChatPhoto struct {
	MessageBase

	DeletedChatPhoto bool
}

var MessageDeletedChatPhotoNode = g.ObjectOf[MessageDeletedChatPhoto]("MessageDeletedChatPhoto").
	Field(g.Embed(func(m *MessageDeletedChatPhoto) *MessageBase { return &m.MessageBase }, messageBaseFields...)...).
	Field(
		g.Prop("DeletedChatPhoto", "deletedChatPhoto", g.Literal(true), func(m *MessageDeletedChatPhoto) *bool { return &m.DeletedChatPhoto }),
	).
	Discriminate("deletedChatPhoto").
	MustBuild()

type MessageGroupCreated struct {
	MessageBase

	GroupCreated   bool
	NewChatMembers []*User
}

var MessageGroupCreatedNode = g.ObjectOf[MessageGroupCreated]("MessageGroupCreated").
	Field(g.Embed(func(m *MessageGroupCreated) *MessageBase { return &m.MessageBase }, messageBaseFields...)...).
	Field(
		g.Prop("GroupCreated", "groupCreated", g.Literal(true), func(m *MessageGroupCreated) *bool { return &m.GroupCreated }),
		g.Slice("NewChatMembers", "newChatMembers", g.List(UserNode), func(m *MessageGroupCreated) *[]*User { return &m.NewChatMembers }),
	).
	Discriminate("groupCreated", "newChatMembers").
	MustBuild()

type MessageSupergroupCreated struct {
	MessageBase

	SupergroupCreated bool
}

var MessageSupergroupCreatedNode = g.ObjectOf[MessageSupergroupCreated]("MessageSupergroupCreated").
	Field(g.Embed(func(m *MessageSupergroupCreated) *MessageBase { return &m.MessageBase }, messageBaseFields...)...).
	Field(
		g.Prop("SupergroupCreated", "supergroupCreated", g.Literal(true), func(m *MessageSupergroupCreated) *bool { return &m.SupergroupCreated }),
	).
	Discriminate("supergroupCreated").
	MustBuild()

type MessageChannelCreated struct {
	MessageBase

	ChannelCreated bool
}

var MessageChannelCreatedNode = g.ObjectOf[MessageChannelCreated]("MessageChannelCreated").
	Field(g.Embed(func(m *MessageChannelCreated) *MessageBase { return &m.MessageBase }, messageBaseFields...)...).
	Field(
		g.Prop("ChannelCreated", "channelCreated", g.Literal(true), func(m *MessageChannelCreated) *bool { return &m.ChannelCreated }),
	).
	Discriminate("channelCreated").
	MustBuild()

type MessageAutoDeleteTimerChanged struct {
	MessageBase

	NewAutoDeleteTime int64
}

var MessageAutoDeleteTimerChangedNode = g.ObjectOf[MessageAutoDeleteTimerChanged]("MessageAutoDeleteTimerChanged").
	Field(g.Embed(func(m *MessageAutoDeleteTimerChanged) *MessageBase { return &m.MessageBase }, messageBaseFields...)...).
	Field(
		g.Prop("NewAutoDeleteTime", "newAutoDeleteTime", g.Int(), func(m *MessageAutoDeleteTimerChanged) *int64 { return &m.NewAutoDeleteTime }),
	).
	Discriminate("newAutoDeleteTime").
	MustBuild()

type MessageChatMigratedTo struct {
	MessageBase

	ChatMigratedTo int64
}

var MessageChatMigratedToNode = g.ObjectOf[MessageChatMigratedTo]("MessageChatMigratedTo").
	Field(g.Embed(func(m *MessageChatMigratedTo) *MessageBase { return &m.MessageBase }, messageBaseFields...)...).
	Field(
		g.Prop("ChatMigratedTo", "chatMigratedTo", g.Int(), func(m *MessageChatMigratedTo) *int64 { return &m.ChatMigratedTo }),
	).
	Discriminate("chatMigratedTo").
	MustBuild()

type MessageChatMigratedFrom struct {
	MessageBase

	ChatMigratedFrom int64
}

var MessageChatMigratedFromNode = g.ObjectOf[MessageChatMigratedFrom]("MessageChatMigratedFrom").
	Field(g.Embed(func(m *MessageChatMigratedFrom) *MessageBase { return &m.MessageBase }, messageBaseFields...)...).
	Field(
		g.Prop("ChatMigratedFrom", "chatMigratedFrom", g.Int(), func(m *MessageChatMigratedFrom) *int64 { return &m.ChatMigratedFrom }),
	).
	Discriminate("chatMigratedFrom").
	MustBuild()

type MessagePinnedMessage struct {
	MessageBase

	PinnedMessage Message
}

var MessagePinnedMessageNode = g.ObjectOf[MessagePinnedMessage]("MessagePinnedMessage").
	Field(g.Embed(func(m *MessagePinnedMessage) *MessageBase { return &m.MessageBase }, messageBaseFields...)...).
	Field(
		g.Prop("PinnedMessage", "pinnedMessage", MessageNode, func(m *MessagePinnedMessage) *Message { return &m.PinnedMessage }),
	).
	Discriminate("pinnedMessage").
	MustBuild()

type MessageUserShared struct {
	MessageBase

	UserShared any
}

var MessageUserSharedNode = g.ObjectOf[MessageUserShared]("MessageUserShared").
	Field(g.Embed(func(m *MessageUserShared) *MessageBase { return &m.MessageBase }, messageBaseFields...)...).
	Field(
		g.Prop("UserShared", "userShared", g.Any(), func(m *MessageUserShared) *any { return &m.UserShared }),
	).
	Discriminate("userShared").
	MustBuild()

type MessageWriteAccessAllowed struct {
	MessageBase

	WriteAccessAllowed any
}

var MessageWriteAccessAllowedNode = g.ObjectOf[MessageWriteAccessAllowed]("MessageWriteAccessAllowed").
	Field(g.Embed(func(m *MessageWriteAccessAllowed) *MessageBase { return &m.MessageBase }, messageBaseFields...)...).
	Field(
		g.Prop("WriteAccessAllowed", "writeAccessAllowed", g.Any(), func(m *MessageWriteAccessAllowed) *any { return &m.WriteAccessAllowed }),
	).
	Discriminate("writeAccessAllowed").
	MustBuild()

type MessageForumTopicCreated struct {
	MessageBase

	ForumTopicCreated any
}

var MessageForumTopicCreatedNode = g.ObjectOf[MessageForumTopicCreated]("MessageForumTopicCreated").
	Field(g.Embed(func(m *MessageForumTopicCreated) *MessageBase { return &m.MessageBase }, messageBaseFields...)...).
	Field(
		g.Prop("ForumTopicCreated", "forumTopicCreated", g.Any(), func(m *MessageForumTopicCreated) *any { return &m.ForumTopicCreated }),
	).
	Discriminate("forumTopicCreated").
	MustBuild()

type MessageForumTopicEdited struct {
	MessageBase

	ForumTopicEdited any
}

var MessageForumTopicEditedNode = g.ObjectOf[MessageForumTopicEdited]("MessageForumTopicEdited").
	Field(g.Embed(func(m *MessageForumTopicEdited) *MessageBase { return &m.MessageBase }, messageBaseFields...)...).
	Field(
		g.Prop("ForumTopicEdited", "forumTopicEdited", g.Any(), func(m *MessageForumTopicEdited) *any { return &m.ForumTopicEdited }),
	).
	Discriminate("forumTopicEdited").
	MustBuild()

type MessageForumTopicClosed struct {
	MessageBase

	ForumTopicClosed bool
}

var MessageForumTopicClosedNode = g.ObjectOf[MessageForumTopicClosed]("MessageForumTopicClosed").
	Field(g.Embed(func(m *MessageForumTopicClosed) *MessageBase { return &m.MessageBase }, messageBaseFields...)...).
	Field(
		g.Prop("ForumTopicClosed", "forumTopicClosed", g.Literal(true), func(m *MessageForumTopicClosed) *bool { return &m.ForumTopicClosed }),
	).
	Discriminate("forumTopicClosed").
	MustBuild()

type MessageForumTopicReopened struct {
	MessageBase

	ForumTopicReopened bool
}

var MessageForumTopicReopenedNode = g.ObjectOf[MessageForumTopicReopened]("MessageForumTopicReopened").
	Field(g.Embed(func(m *MessageForumTopicReopened) *MessageBase { return &m.MessageBase }, messageBaseFields...)...).
	Field(
		g.Prop("ForumTopicReopened", "forumTopicReopened", g.Literal(true), func(m *MessageForumTopicReopened) *bool { return &m.ForumTopicReopened }),
	).
	Discriminate("forumTopicReopened").
	MustBuild()

type MessageVideoChatScheduled struct {
	MessageBase

	VideoChatScheduled any
}

var MessageVideoChatScheduledNode = g.ObjectOf[MessageVideoChatScheduled]("MessageVideoChatScheduled").
	Field(g.Embed(func(m *MessageVideoChatScheduled) *MessageBase { return &m.MessageBase }, messageBaseFields...)...).
	Field(
		g.Prop("VideoChatScheduled", "videoChatScheduled", g.Any(), func(m *MessageVideoChatScheduled) *any { return &m.VideoChatScheduled }),
	).
	Discriminate("videoChatScheduled").
	MustBuild()

type MessageVideoChatStarted struct {
	MessageBase

	VideoChatStarted bool
}

var MessageVideoChatStartedNode = g.ObjectOf[MessageVideoChatStarted]("MessageVideoChatStarted").
	Field(g.Embed(func(m *MessageVideoChatStarted) *MessageBase { return &m.MessageBase }, messageBaseFields...)...).
	Field(
		g.Prop("VideoChatStarted", "videoChatStarted", g.Literal(true), func(m *MessageVideoChatStarted) *bool { return &m.VideoChatStarted }),
	).
	Discriminate("videoChatStarted").
	MustBuild()

type MessageVideoChatEnded struct {
	MessageBase

	VideoChatEnded any
}

var MessageVideoChatEndedNode = g.ObjectOf[MessageVideoChatEnded]("MessageVideoChatEnded").
	Field(g.Embed(func(m *MessageVideoChatEnded) *MessageBase { return &m.MessageBase }, messageBaseFields...)...).
	Field(
		g.Prop("VideoChatEnded", "videoChatEnded", g.Any(), func(m *MessageVideoChatEnded) *any { return &m.VideoChatEnded }),
	).
	Discriminate("videoChatEnded").
	MustBuild()

type MessageGiveaway struct {
	MessageBase

	Giveaway *Giveaway
}

var MessageGiveawayNode = g.ObjectOf[MessageGiveaway]("MessageGiveaway").
	Field(g.Embed(func(m *MessageGiveaway) *MessageBase { return &m.MessageBase }, messageBaseFields...)...).
	Field(
		g.Prop("Giveaway", "giveaway", GiveawayNode, func(m *MessageGiveaway) **Giveaway { return &m.Giveaway }),
	).
	Discriminate("giveaway").
	MustBuild()

type MessageUnsupported struct {
	MessageBase

	Unsupported bool
}

var MessageUnsupportedNode = g.ObjectOf[MessageUnsupported]("MessageUnsupported").
	Field(g.Embed(func(m *MessageUnsupported) *MessageBase { return &m.MessageBase }, messageBaseFields...)...).
	Field(
		g.Prop("Unsupported", "unsupported", g.Literal(true), func(m *MessageUnsupported) *bool { return &m.Unsupported }),
	).
	Discriminate("unsupported").
	MustBuild()

type MessageSuccessfulPayment struct {
	MessageBase

	SuccessfulPayment *SuccessfulPayment
}

var MessageSuccessfulPaymentNode = g.ObjectOf[MessageSuccessfulPayment]("MessageSuccessfulPayment").
	Field(g.Embed(func(m *MessageSuccessfulPayment) *MessageBase { return &m.MessageBase }, messageBaseFields...)...).
	Field(
		g.Prop("SuccessfulPayment", "successfulPayment", SuccessfulPaymentNode, func(m *MessageSuccessfulPayment) **SuccessfulPayment { return &m.SuccessfulPayment }),
	).
	Discriminate("successfulPayment").
	MustBuild()

// MessageNode is the Message union. Variants are tried in this order, so a
// payload carrying both groupCreated and newChatMembers resolves to
// *MessageNewChatMembers.
var MessageNode = g.Forward("Message")

func init() {
	g.Define(MessageNode,
		MessageTextNode,
		MessageLinkNode,
		MessagePhotoNode,
		MessageDocumentNode,
		MessageVideoNode,
		MessageStickerNode,
		MessageAnimationNode,
		MessageVoiceNode,
		MessageAudioNode,
		MessageDiceNode,
		MessageVideoNoteNode,
		MessageContactNode,
		MessageGameNode,
		MessagePollNode,
		MessageInvoiceNode,
		MessageVenueNode,
		MessageLocationNode,
		MessageNewChatMembersNode,
		MessageLeftChatMemberNode,
		MessageNewChatTitleNode,
		MessageNewChatPhotoNode,
		MessageDeletedChatPhotoNode,
		MessageGroupCreatedNode,
		MessageSupergroupCreatedNode,
		MessageChannelCreatedNode,
		MessageAutoDeleteTimerChangedNode,
		MessageChatMigratedToNode,
		MessageChatMigratedFromNode,
		MessagePinnedMessageNode,
		MessageUserSharedNode,
		MessageWriteAccessAllowedNode,
		MessageForumTopicCreatedNode,
		MessageForumTopicEditedNode,
		MessageForumTopicClosedNode,
		MessageForumTopicReopenedNode,
		MessageVideoChatScheduledNode,
		MessageVideoChatStartedNode,
		MessageVideoChatEndedNode,
		MessageGiveawayNode,
		MessageUnsupportedNode,
		MessageSuccessfulPaymentNode,
	)
}

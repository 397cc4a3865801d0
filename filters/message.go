package filters

import "github.com/reoring/kruto/types"

// MessageFilter is a Filter over incoming messages.
type MessageFilter = Filter[types.Message]

// Message variant filters.
var (
	Text              = Is[types.Message, *types.MessageText]()
	Link              = Is[types.Message, *types.MessageLink]()
	Photo             = Is[types.Message, *types.MessagePhoto]()
	Document          = Is[types.Message, *types.MessageDocument]()
	Video             = Is[types.Message, *types.MessageVideo]()
	Sticker           = Is[types.Message, *types.MessageSticker]()
	Animation         = Is[types.Message, *types.MessageAnimation]()
	Voice             = Is[types.Message, *types.MessageVoice]()
	Audio             = Is[types.Message, *types.MessageAudio]()
	Dice              = Is[types.Message, *types.MessageDice]()
	VideoNote         = Is[types.Message, *types.MessageVideoNote]()
	Contact           = Is[types.Message, *types.MessageContact]()
	Game              = Is[types.Message, *types.MessageGame]()
	Poll              = Is[types.Message, *types.MessagePoll]()
	Venue             = Is[types.Message, *types.MessageVenue]()
	Location          = Is[types.Message, *types.MessageLocation]()
	Giveaway          = Is[types.Message, *types.MessageGiveaway]()
	Unsupported       = Is[types.Message, *types.MessageUnsupported]()
	Invoice           = Is[types.Message, *types.MessageInvoice]()
	SuccessfulPayment = Is[types.Message, *types.MessageSuccessfulPayment]()
	NewChatMembers    = Is[types.Message, *types.MessageNewChatMembers]()
	LeftChatMember    = Is[types.Message, *types.MessageLeftChatMember]()
)

// Service messages.
var (
	NewChatTitle           = Is[types.Message, *types.MessageNewChatTitle]()
	NewChatPhoto           = Is[types.Message, *types.MessageNewChatPhoto]()
	DeletedChatPhoto       = Is[types.Message, *types.MessageDeletedChatPhoto]()
	GroupCreated           = Is[types.Message, *types.MessageGroupCreated]()
	SupergroupCreated      = Is[types.Message, *types.MessageSupergroupCreated]()
	ChannelCreated         = Is[types.Message, *types.MessageChannelCreated]()
	AutoDeleteTimerChanged = Is[types.Message, *types.MessageAutoDeleteTimerChanged]()
	ChatMigratedTo         = Is[types.Message, *types.MessageChatMigratedTo]()
	ChatMigratedFrom       = Is[types.Message, *types.MessageChatMigratedFrom]()
	PinnedMessage          = Is[types.Message, *types.MessagePinnedMessage]()
	UserShared             = Is[types.Message, *types.MessageUserShared]()
	WriteAccessAllowed     = Is[types.Message, *types.MessageWriteAccessAllowed]()
	ForumTopicCreated      = Is[types.Message, *types.MessageForumTopicCreated]()
	ForumTopicEdited       = Is[types.Message, *types.MessageForumTopicEdited]()
	ForumTopicClosed       = Is[types.Message, *types.MessageForumTopicClosed]()
	ForumTopicReopened     = Is[types.Message, *types.MessageForumTopicReopened]()
	VideoChatScheduled     = Is[types.Message, *types.MessageVideoChatScheduled]()
	VideoChatStarted       = Is[types.Message, *types.MessageVideoChatStarted]()
	VideoChatEnded         = Is[types.Message, *types.MessageVideoChatEnded]()
)

// Service matches every service message: membership changes, chat edits,
// migrations, pins, forum topics and video chat notices.
var Service = Any(
	NewChatMembers, LeftChatMember, NewChatTitle, NewChatPhoto, DeletedChatPhoto,
	GroupCreated, SupergroupCreated, ChannelCreated, AutoDeleteTimerChanged,
	ChatMigratedTo, ChatMigratedFrom, PinnedMessage, UserShared,
	WriteAccessAllowed, ForumTopicCreated, ForumTopicEdited, ForumTopicClosed,
	ForumTopicReopened, VideoChatScheduled, VideoChatStarted, VideoChatEnded,
)

// Attribute filters.
var (
	Out        = base(func(b *types.MessageBase) bool { return b.Out })
	Bot        = base(func(b *types.MessageBase) bool { return b.From != nil && b.From.IsBot })
	ViaBot     = base(func(b *types.MessageBase) bool { return b.ViaBot != nil })
	SenderChat = base(func(b *types.MessageBase) bool { return b.SenderChat != nil })
	MediaGroup = base(func(b *types.MessageBase) bool { return b.MediaGroupID != nil })
	Reply      = base(func(b *types.MessageBase) bool { return b.ReplyToMessageID != nil || b.ReplyToMessage != nil })
	ReplyQuote = base(func(b *types.MessageBase) bool { return b.ReplyQuote != nil })
	Forward    = base(func(b *types.MessageBase) bool { return b.ForwardDate != nil })
	Topic      = base(func(b *types.MessageBase) bool { return b.IsTopicMessage })
)

// Chat type filters. Group covers basic groups and supergroups.
var (
	Private = ChatType("private")
	Group   = ChatType("group", "supergroup")
	Channel = ChatType("channel")
)

// ChatType matches messages sent in a chat of one of the given types.
func ChatType(kinds ...string) MessageFilter {
	return base(func(b *types.MessageBase) bool {
		if b.Chat == nil {
			return false
		}
		t := b.Chat.Common().Type
		for _, k := range kinds {
			if t == k {
				return true
			}
		}
		return false
	})
}

// FromUser matches messages whose sender has the given id.
func FromUser(id int64) MessageFilter {
	return base(func(b *types.MessageBase) bool { return b.From != nil && b.From.ID == id })
}

func base(pred func(*types.MessageBase) bool) MessageFilter {
	return func(m types.Message) bool {
		if m == nil {
			return false
		}
		b := m.Base()
		return b != nil && pred(b)
	}
}

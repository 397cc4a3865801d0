package types

import (
	kruto "github.com/reoring/kruto"
	g "github.com/reoring/kruto/dsl"
)

// MessageEntity marks a span of message text. Variants are the
// MessageEntity* types, resolved on the literal "type" tag.
type MessageEntity interface {
	Span() *EntityBase
}

type EntityBase struct {
	Type   string
	Offset int64
	Length int64
}

func (e *EntityBase) Span() *EntityBase { return e }

// Entity returns a MessageEntity of the given wire type with no extra fields,
// or nil when the type needs more than a span (pre, textLink, textMention,
// customEmoji) or is unknown.
func Entity(typ string, offset, length int64) MessageEntity {
	b := EntityBase{Type: typ, Offset: offset, Length: length}
	switch typ {
	case "mention":
		return &MessageEntityMention{b}
	case "hashtag":
		return &MessageEntityHashtag{b}
	case "botCommand":
		return &MessageEntityBotCommand{b}
	case "url":
		return &MessageEntityURL{b}
	case "email":
		return &MessageEntityEmailAddress{b}
	case "bold":
		return &MessageEntityBold{b}
	case "italic":
		return &MessageEntityItalic{b}
	case "code":
		return &MessageEntityCode{b}
	case "cashtag":
		return &MessageEntityCashtag{b}
	case "phoneNumber":
		return &MessageEntityPhoneNumber{b}
	case "underline":
		return &MessageEntityUnderline{b}
	case "strikethrough":
		return &MessageEntityStrikethrough{b}
	case "blockquote":
		return &MessageEntityBlockquote{b}
	case "bankCard":
		return &MessageEntityBankCard{b}
	case "spoiler":
		return &MessageEntitySpoiler{b}
	}
	return nil
}

type MessageEntityMention struct {
	EntityBase
}

type MessageEntityHashtag struct {
	EntityBase
}

type MessageEntityBotCommand struct {
	EntityBase
}

type MessageEntityURL struct {
	EntityBase
}

type MessageEntityEmailAddress struct {
	EntityBase
}

type MessageEntityBold struct {
	EntityBase
}

type MessageEntityItalic struct {
	EntityBase
}

type MessageEntityCode struct {
	EntityBase
}

type MessageEntityPre struct {
	EntityBase

	Language string
}

type MessageEntityTextLink struct {
	EntityBase

	URL string
}

type MessageEntityTextMention struct {
	EntityBase

	UserID int64
}

type MessageEntityCashtag struct {
	EntityBase
}

type MessageEntityPhoneNumber struct {
	EntityBase
}

type MessageEntityUnderline struct {
	EntityBase
}

type MessageEntityStrikethrough struct {
	EntityBase
}

type MessageEntityBlockquote struct {
	EntityBase
}

type MessageEntityBankCard struct {
	EntityBase
}

type MessageEntitySpoiler struct {
	EntityBase
}

type MessageEntityCustomEmoji struct {
	EntityBase

	CustomEmojiID string
}

func entity[T any](name, tag string, at func(*T) *EntityBase, extra ...g.Field[T]) *kruto.Object {
	return g.ObjectOf[T](name).
		Field(g.Embed(at,
			g.Prop("Type", "type", g.Literal(tag), func(e *EntityBase) *string { return &e.Type }),
			g.Prop("Offset", "offset", g.Int(), func(e *EntityBase) *int64 { return &e.Offset }),
			g.Prop("Length", "length", g.Int(), func(e *EntityBase) *int64 { return &e.Length }),
		)...).
		Field(extra...).
		Discriminate("type").
		MustBuild()
}

// MessageEntityNode lists the entity variants in resolution order.
var MessageEntityNode = g.Union("MessageEntity",
	entity("MessageEntityMention", "mention", func(e *MessageEntityMention) *EntityBase { return &e.EntityBase }),
	entity("MessageEntityHashtag", "hashtag", func(e *MessageEntityHashtag) *EntityBase { return &e.EntityBase }),
	entity("MessageEntityBotCommand", "botCommand", func(e *MessageEntityBotCommand) *EntityBase { return &e.EntityBase }),
	entity("MessageEntityURL", "url", func(e *MessageEntityURL) *EntityBase { return &e.EntityBase }),
	entity("MessageEntityEmailAddress", "email", func(e *MessageEntityEmailAddress) *EntityBase { return &e.EntityBase }),
	entity("MessageEntityBold", "bold", func(e *MessageEntityBold) *EntityBase { return &e.EntityBase }),
	entity("MessageEntityItalic", "italic", func(e *MessageEntityItalic) *EntityBase { return &e.EntityBase }),
	entity("MessageEntityCode", "code", func(e *MessageEntityCode) *EntityBase { return &e.EntityBase }),
	entity("MessageEntityPre", "pre", func(e *MessageEntityPre) *EntityBase { return &e.EntityBase },
		g.Prop("Language", "language", g.String(), func(e *MessageEntityPre) *string { return &e.Language }),
	),
	entity("MessageEntityTextLink", "textLink", func(e *MessageEntityTextLink) *EntityBase { return &e.EntityBase },
		g.Prop("URL", "url", g.String(), func(e *MessageEntityTextLink) *string { return &e.URL }),
	),
	entity("MessageEntityTextMention", "textMention", func(e *MessageEntityTextMention) *EntityBase { return &e.EntityBase },
		g.Prop("UserID", "userId", g.Int(), func(e *MessageEntityTextMention) *int64 { return &e.UserID }),
	),
	entity("MessageEntityCashtag", "cashtag", func(e *MessageEntityCashtag) *EntityBase { return &e.EntityBase }),
	entity("MessageEntityPhoneNumber", "phoneNumber", func(e *MessageEntityPhoneNumber) *EntityBase { return &e.EntityBase }),
	entity("MessageEntityUnderline", "underline", func(e *MessageEntityUnderline) *EntityBase { return &e.EntityBase }),
	entity("MessageEntityStrikethrough", "strikethrough", func(e *MessageEntityStrikethrough) *EntityBase { return &e.EntityBase }),
	entity("MessageEntityBlockquote", "blockquote", func(e *MessageEntityBlockquote) *EntityBase { return &e.EntityBase }),
	entity("MessageEntityBankCard", "bankCard", func(e *MessageEntityBankCard) *EntityBase { return &e.EntityBase }),
	entity("MessageEntitySpoiler", "spoiler", func(e *MessageEntitySpoiler) *EntityBase { return &e.EntityBase }),
	entity("MessageEntityCustomEmoji", "customEmoji", func(e *MessageEntityCustomEmoji) *EntityBase { return &e.EntityBase },
		g.Prop("CustomEmojiID", "customEmojiId", g.String(), func(e *MessageEntityCustomEmoji) *string { return &e.CustomEmojiID }),
	),
)

package types

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// ErrDetached is returned by convenience methods on values that were not
// decoded by a client.
var ErrDetached = errors.New("types: value is not attached to a client")

// Caller is the part of the client the domain conveniences need. Values
// decoded by a client carry it as their back-reference.
type Caller interface {
	SendMessage(ctx context.Context, chatID ID, text string, opts *SendMessageOptions) (*MessageText, error)
	EditMessageText(ctx context.Context, chatID ID, messageID int64, text string, opts *EditMessageTextOptions) (*MessageText, error)
	DeleteMessage(ctx context.Context, chatID ID, messageID int64, opts *DeleteMessageOptions) error
	ForwardMessage(ctx context.Context, from, to ID, messageID int64, opts *ForwardMessageOptions) (Message, error)
	PinMessage(ctx context.Context, chatID ID, messageID int64, opts *PinMessageOptions) error
	SetReactions(ctx context.Context, chatID ID, messageID int64, reactions []Reaction, opts *SetReactionsOptions) error
	AnswerCallbackQuery(ctx context.Context, id string, opts *AnswerCallbackQueryOptions) error
	BanChatMember(ctx context.Context, chatID, memberID ID, opts *BanChatMemberOptions) error
	UnbanChatMember(ctx context.Context, chatID, memberID ID) error
	SetChatPhoto(ctx context.Context, chatID ID, photo io.Reader, opts *SetChatPhotoOptions) error
}

// attached holds the back-reference set while decoding. Embedding it makes a
// type a kruto.RefHolder.
type attached struct {
	caller Caller
}

// SetRef attaches the client that decoded the value.
func (a *attached) SetRef(ref any) {
	if c, ok := ref.(Caller); ok {
		a.caller = c
	}
}

func (a *attached) client() (Caller, error) {
	if a == nil || a.caller == nil {
		return nil, ErrDetached
	}
	return a.caller, nil
}

// ID names a chat or user on the remote side: a numeric identifier, a
// username or the current account.
type ID struct{ v any }

// Me refers to the account the client is signed in as.
var Me = ID{v: "me"}

// ChatID wraps a numeric chat or user identifier.
func ChatID(id int64) ID { return ID{v: id} }

// Username wraps a public username, with or without the leading @.
func Username(name string) ID { return ID{v: name} }

// IsZero reports whether the ID was never set.
func (id ID) IsZero() bool { return id.v == nil }

// Value returns the wire form of the ID.
func (id ID) Value() any { return id.v }

func (id ID) String() string { return fmt.Sprint(id.v) }

// ParseMode selects how message text is interpreted by the remote side.
type ParseMode string

const (
	ParseModeHTML     ParseMode = "HTML"
	ParseModeMarkdown ParseMode = "Markdown"
)

func optID(id *ID) any {
	if id == nil || id.IsZero() {
		return nil
	}
	return id.v
}

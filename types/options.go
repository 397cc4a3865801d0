package types

import "time"

// Options of the remote calls. Each Args method renders the trailing
// optional-arguments object of the call; unset fields are left nil and are
// dropped when the call is encoded. A nil receiver yields an empty object.

// SendMessageOptions are the optional arguments of sendMessage.
type SendMessageOptions struct {
	ParseMode            ParseMode
	Entities             []MessageEntity
	LinkPreview          *LinkPreview
	DisableNotification  bool
	ProtectContent       bool
	ReplyTo              *ReplyToMessage
	MessageThreadID      int64
	SendAs               *ID
	ReplyMarkup          ReplyMarkup
	MessageEffectID      int64
	BusinessConnectionID string
}

func (o *SendMessageOptions) Args() map[string]any {
	if o == nil {
		return map[string]any{}
	}
	return map[string]any{
		"parseMode":            str(string(o.ParseMode)),
		"entities":             o.Entities,
		"linkPreview":          o.LinkPreview,
		"disableNotification":  flag(o.DisableNotification),
		"protectContent":       flag(o.ProtectContent),
		"replyTo":              o.ReplyTo,
		"messageThreadId":      num(o.MessageThreadID),
		"sendAs":               optID(o.SendAs),
		"replyMarkup":          o.ReplyMarkup,
		"messageEffectId":      num(o.MessageEffectID),
		"businessConnectionId": str(o.BusinessConnectionID),
	}
}

// EditMessageTextOptions are the optional arguments of editMessageText.
type EditMessageTextOptions struct {
	ParseMode   ParseMode
	Entities    []MessageEntity
	LinkPreview *LinkPreview
	ReplyMarkup ReplyMarkup
}

func (o *EditMessageTextOptions) Args() map[string]any {
	if o == nil {
		return map[string]any{}
	}
	return map[string]any{
		"parseMode":   str(string(o.ParseMode)),
		"entities":    o.Entities,
		"linkPreview": o.LinkPreview,
		"replyMarkup": o.ReplyMarkup,
	}
}

// DeleteMessageOptions are the optional arguments of deleteMessage.
type DeleteMessageOptions struct {
	OnlyForMe bool
}

// Args always carries onlyForMe.
func (o *DeleteMessageOptions) Args() map[string]any {
	var only bool
	if o != nil {
		only = o.OnlyForMe
	}
	return map[string]any{"onlyForMe": only}
}

// ForwardMessageOptions are the optional arguments of forwardMessage.
type ForwardMessageOptions struct {
	DropSenderName       bool
	DropCaption          bool
	DisableNotification  bool
	ProtectContent       bool
	ReplyQuote           *ReplyQuote
	MessageThreadID      int64
	SendAs               *ID
	BusinessConnectionID string
}

func (o *ForwardMessageOptions) Args() map[string]any {
	if o == nil {
		return map[string]any{}
	}
	return map[string]any{
		"dropSenderName":       flag(o.DropSenderName),
		"dropCaption":          flag(o.DropCaption),
		"disableNotification":  flag(o.DisableNotification),
		"protectContent":       flag(o.ProtectContent),
		"replyQuote":           o.ReplyQuote,
		"messageThreadId":      num(o.MessageThreadID),
		"sendAs":               optID(o.SendAs),
		"businessConnectionId": str(o.BusinessConnectionID),
	}
}

// PinMessageOptions are the optional arguments of pinMessage.
type PinMessageOptions struct {
	BothSides           bool
	DisableNotification bool
}

func (o *PinMessageOptions) Args() map[string]any {
	if o == nil {
		return map[string]any{}
	}
	return map[string]any{
		"bothSides":           flag(o.BothSides),
		"disableNotification": flag(o.DisableNotification),
	}
}

// SetReactionsOptions are the optional arguments of setReactions.
type SetReactionsOptions struct {
	Big bool
}

func (o *SetReactionsOptions) Args() map[string]any {
	if o == nil {
		return map[string]any{}
	}
	return map[string]any{"big": flag(o.Big)}
}

// AnswerCallbackQueryOptions are the optional arguments of answerCallbackQuery.
type AnswerCallbackQueryOptions struct {
	Text      string
	Alert     bool
	URL       string
	CacheTime int64
}

func (o *AnswerCallbackQueryOptions) Args() map[string]any {
	if o == nil {
		return map[string]any{}
	}
	return map[string]any{
		"text":      str(o.Text),
		"alert":     flag(o.Alert),
		"url":       str(o.URL),
		"cacheTime": num(o.CacheTime),
	}
}

// BanChatMemberOptions are the optional arguments of banChatMember.
type BanChatMemberOptions struct {
	UntilDate      *time.Time
	DeleteMessages bool
}

func (o *BanChatMemberOptions) Args() map[string]any {
	if o == nil {
		return map[string]any{}
	}
	return map[string]any{
		"untilDate":      o.UntilDate,
		"deleteMessages": flag(o.DeleteMessages),
	}
}

// SetChatPhotoOptions are the optional arguments of setChatPhoto.
type SetChatPhotoOptions struct {
	FileName  string
	MIMEType  string
	ChunkSize int64
}

func (o *SetChatPhotoOptions) Args() map[string]any {
	if o == nil {
		return map[string]any{}
	}
	return map[string]any{
		"fileName":  str(o.FileName),
		"mimeType":  str(o.MIMEType),
		"chunkSize": num(o.ChunkSize),
	}
}

// DownloadOptions are the optional arguments of download.
type DownloadOptions struct {
	ChunkSize int64
	Offset    int64
}

func (o *DownloadOptions) Args() map[string]any {
	if o == nil {
		return map[string]any{}
	}
	return map[string]any{
		"chunkSize": num(o.ChunkSize),
		"offset":    num(o.Offset),
	}
}

func str(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func flag(b bool) any {
	if !b {
		return nil
	}
	return true
}

func num(n int64) any {
	if n == 0 {
		return nil
	}
	return n
}

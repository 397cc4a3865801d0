package types

import (
	g "github.com/reoring/kruto/dsl"
)

type MiniAppInfo struct {
	URL string
}

var MiniAppInfoNode = g.ObjectOf[MiniAppInfo]("MiniAppInfo").Field(
	g.Prop("URL", "url", g.String(), func(m *MiniAppInfo) *string { return &m.URL }),
).MustBuild()

type LoginURL struct {
	URL                string
	ForwardText        *string
	BotUsername        *string
	RequestWriteAccess *bool
}

var LoginURLNode = g.ObjectOf[LoginURL]("LoginUrl").Field(
	g.Prop("URL", "url", g.String(), func(l *LoginURL) *string { return &l.URL }),
	g.Opt("ForwardText", "forwardText", g.String(), func(l *LoginURL) **string { return &l.ForwardText }),
	g.Opt("BotUsername", "botUsername", g.String(), func(l *LoginURL) **string { return &l.BotUsername }),
	g.Opt("RequestWriteAccess", "requestWriteAccess", g.Bool(), func(l *LoginURL) **bool { return &l.RequestWriteAccess }),
).MustBuild()

// InlineKeyboardButton is a button attached to a message. Variants are the
// InlineKeyboardButton* types, resolved on the key that carries the action.
type InlineKeyboardButton interface {
	inlineButton()
}

type InlineKeyboardButtonBase struct {
	Text string
}

func (*InlineKeyboardButtonBase) inlineButton() {}

var buttonBaseFields = []g.Field[InlineKeyboardButtonBase]{
	g.Prop("Text", "text", g.String(), func(b *InlineKeyboardButtonBase) *string { return &b.Text }),
}

type InlineKeyboardButtonURL struct {
	InlineKeyboardButtonBase

	URL string
}

var InlineKeyboardButtonURLNode = g.ObjectOf[InlineKeyboardButtonURL]("InlineKeyboardButtonURL").
	Field(g.Embed(func(i *InlineKeyboardButtonURL) *InlineKeyboardButtonBase { return &i.InlineKeyboardButtonBase }, buttonBaseFields...)...).
	Field(
		g.Prop("URL", "url", g.String(), func(i *InlineKeyboardButtonURL) *string { return &i.URL }),
	).
	Discriminate("url").
	MustBuild()

type InlineKeyboardButtonCallback struct {
	InlineKeyboardButtonBase

	CallbackData string
}

var InlineKeyboardButtonCallbackNode = g.ObjectOf[InlineKeyboardButtonCallback]("InlineKeyboardButtonCallback").
	Field(g.Embed(func(i *InlineKeyboardButtonCallback) *InlineKeyboardButtonBase { return &i.InlineKeyboardButtonBase }, buttonBaseFields...)...).
	Field(
		g.Prop("CallbackData", "callbackData", g.String(), func(i *InlineKeyboardButtonCallback) *string { return &i.CallbackData }),
	).
	Discriminate("callbackData").
	MustBuild()

type InlineKeyboardButtonMiniApp struct {
	InlineKeyboardButtonBase

	MiniApp *MiniAppInfo
}

var InlineKeyboardButtonMiniAppNode = g.ObjectOf[InlineKeyboardButtonMiniApp]("InlineKeyboardButtonMiniApp").
	Field(g.Embed(func(i *InlineKeyboardButtonMiniApp) *InlineKeyboardButtonBase { return &i.InlineKeyboardButtonBase }, buttonBaseFields...)...).
	Field(
		g.Prop("MiniApp", "miniApp", MiniAppInfoNode, func(i *InlineKeyboardButtonMiniApp) **MiniAppInfo { return &i.MiniApp }),
	).
	Discriminate("miniApp").
	MustBuild()

type InlineKeyboardButtonLogin struct {
	InlineKeyboardButtonBase

	LoginURL *LoginURL
}

var InlineKeyboardButtonLoginNode = g.ObjectOf[InlineKeyboardButtonLogin]("InlineKeyboardButtonLogin").
	Field(g.Embed(func(i *InlineKeyboardButtonLogin) *InlineKeyboardButtonBase { return &i.InlineKeyboardButtonBase }, buttonBaseFields...)...).
	Field(
		g.Prop("LoginURL", "loginUrl", LoginURLNode, func(i *InlineKeyboardButtonLogin) **LoginURL { return &i.LoginURL }),
	).
	Discriminate("loginUrl").
	MustBuild()

type InlineKeyboardButtonSwitchInline struct {
	InlineKeyboardButtonBase

	SwitchInlineQuery string
}

var InlineKeyboardButtonSwitchInlineNode = g.ObjectOf[InlineKeyboardButtonSwitchInline]("InlineKeyboardButtonSwitchInline").
	Field(g.Embed(func(i *InlineKeyboardButtonSwitchInline) *InlineKeyboardButtonBase { return &i.InlineKeyboardButtonBase }, buttonBaseFields...)...).
	Field(
		g.Prop("SwitchInlineQuery", "switchInlineQuery", g.String(), func(i *InlineKeyboardButtonSwitchInline) *string { return &i.SwitchInlineQuery }),
	).
	Discriminate("switchInlineQuery").
	MustBuild()

type InlineKeyboardButtonSwitchInlineCurrent struct {
	InlineKeyboardButtonBase

	SwitchInlineQueryCurrentChat string
}

var InlineKeyboardButtonSwitchInlineCurrentNode = g.ObjectOf[InlineKeyboardButtonSwitchInlineCurrent]("InlineKeyboardButtonSwitchInlineCurrent").
	Field(g.Embed(func(i *InlineKeyboardButtonSwitchInlineCurrent) *InlineKeyboardButtonBase { return &i.InlineKeyboardButtonBase }, buttonBaseFields...)...).
	Field(
		g.Prop("SwitchInlineQueryCurrentChat", "switchInlineQueryCurrentChat", g.String(), func(i *InlineKeyboardButtonSwitchInlineCurrent) *string { return &i.SwitchInlineQueryCurrentChat }),
	).
	Discriminate("switchInlineQueryCurrentChat").
	MustBuild()

type InlineKeyboardButtonGame struct {
	InlineKeyboardButtonBase

	CallbackGame any
}

var InlineKeyboardButtonGameNode = g.ObjectOf[InlineKeyboardButtonGame]("InlineKeyboardButtonGame").
	Field(g.Embed(func(i *InlineKeyboardButtonGame) *InlineKeyboardButtonBase { return &i.InlineKeyboardButtonBase }, buttonBaseFields...)...).
	Field(
		g.Prop("CallbackGame", "callbackGame", g.Any(), func(i *InlineKeyboardButtonGame) *any { return &i.CallbackGame }),
	).
	Discriminate("callbackGame").
	MustBuild()

type InlineKeyboardButtonPay struct {
	InlineKeyboardButtonBase

	Pay bool
}

var InlineKeyboardButtonPayNode = g.ObjectOf[InlineKeyboardButtonPay]("InlineKeyboardButtonPay").
	Field(g.Embed(func(i *InlineKeyboardButtonPay) *InlineKeyboardButtonBase { return &i.InlineKeyboardButtonBase }, buttonBaseFields...)...).
	Field(
		g.Prop("Pay", "pay", g.Bool(), func(i *InlineKeyboardButtonPay) *bool { return &i.Pay }),
	).
	Discriminate("pay").
	MustBuild()

var InlineKeyboardButtonNode = g.Union("InlineKeyboardButton",
	InlineKeyboardButtonURLNode,
	InlineKeyboardButtonCallbackNode,
	InlineKeyboardButtonMiniAppNode,
	InlineKeyboardButtonLoginNode,
	InlineKeyboardButtonSwitchInlineNode,
	InlineKeyboardButtonSwitchInlineCurrentNode,
	InlineKeyboardButtonGameNode,
	InlineKeyboardButtonPayNode,
)

// ReplyMarkup is the keyboard attached to an outgoing message. Reply
// keyboard buttons are kept as raw values.
type ReplyMarkup interface {
	replyMarkup()
}

func (*ReplyMarkupInlineKeyboard) replyMarkup() {}
func (*ReplyMarkupKeyboard) replyMarkup()       {}
func (*ReplyMarkupRemoveKeyboard) replyMarkup() {}
func (*ReplyMarkupForceReply) replyMarkup()     {}

type ReplyMarkupInlineKeyboard struct {
	InlineKeyboard [][]InlineKeyboardButton
}

var ReplyMarkupInlineKeyboardNode = g.ObjectOf[ReplyMarkupInlineKeyboard]("ReplyMarkupInlineKeyboard").
	Field(
		g.Grid("InlineKeyboard", "inlineKeyboard", g.List(g.List(InlineKeyboardButtonNode)), func(r *ReplyMarkupInlineKeyboard) *[][]InlineKeyboardButton { return &r.InlineKeyboard }),
	).
	Discriminate("inlineKeyboard").
	MustBuild()

type ReplyMarkupKeyboard struct {
	Keyboard              [][]any
	IsPersistent          *bool
	ResizeKeyboard        *bool
	OneTimeKeyboard       *bool
	InputFieldPlaceholder *string
	Selective             *bool
}

var ReplyMarkupKeyboardNode = g.ObjectOf[ReplyMarkupKeyboard]("ReplyMarkupKeyboard").
	Field(
		g.Grid("Keyboard", "keyboard", g.List(g.List(g.Any())), func(r *ReplyMarkupKeyboard) *[][]any { return &r.Keyboard }),
		g.Opt("IsPersistent", "isPersistent", g.Bool(), func(r *ReplyMarkupKeyboard) **bool { return &r.IsPersistent }),
		g.Opt("ResizeKeyboard", "resizeKeyboard", g.Bool(), func(r *ReplyMarkupKeyboard) **bool { return &r.ResizeKeyboard }),
		g.Opt("OneTimeKeyboard", "oneTimeKeyboard", g.Bool(), func(r *ReplyMarkupKeyboard) **bool { return &r.OneTimeKeyboard }),
		g.Opt("InputFieldPlaceholder", "inputFieldPlaceholder", g.String(), func(r *ReplyMarkupKeyboard) **string { return &r.InputFieldPlaceholder }),
		g.Opt("Selective", "selective", g.Bool(), func(r *ReplyMarkupKeyboard) **bool { return &r.Selective }),
	).
	Discriminate("keyboard").
	MustBuild()

type ReplyMarkupRemoveKeyboard struct {
	RemoveKeyboard bool
	Selective      *bool
}

var ReplyMarkupRemoveKeyboardNode = g.ObjectOf[ReplyMarkupRemoveKeyboard]("ReplyMarkupRemoveKeyboard").
	Field(
		g.Prop("RemoveKeyboard", "removeKeyboard", g.Literal(true), func(r *ReplyMarkupRemoveKeyboard) *bool { return &r.RemoveKeyboard }),
		g.Opt("Selective", "selective", g.Bool(), func(r *ReplyMarkupRemoveKeyboard) **bool { return &r.Selective }),
	).
	Discriminate("removeKeyboard").
	MustBuild()

type ReplyMarkupForceReply struct {
	ForceReply            bool
	InputFieldPlaceholder *string
	Selective             *bool
}

var ReplyMarkupForceReplyNode = g.ObjectOf[ReplyMarkupForceReply]("ReplyMarkupForceReply").
	Field(
		g.Prop("ForceReply", "forceReply", g.Literal(true), func(r *ReplyMarkupForceReply) *bool { return &r.ForceReply }),
		g.Opt("InputFieldPlaceholder", "inputFieldPlaceholder", g.String(), func(r *ReplyMarkupForceReply) **string { return &r.InputFieldPlaceholder }),
		g.Opt("Selective", "selective", g.Bool(), func(r *ReplyMarkupForceReply) **bool { return &r.Selective }),
	).
	Discriminate("forceReply").
	MustBuild()

var ReplyMarkupNode = g.Union("ReplyMarkup",
	ReplyMarkupInlineKeyboardNode,
	ReplyMarkupKeyboardNode,
	ReplyMarkupRemoveKeyboardNode,
	ReplyMarkupForceReplyNode,
)

// InlineKeyboard builds an inline keyboard markup from rows of buttons.
func InlineKeyboard(rows ...[]InlineKeyboardButton) *ReplyMarkupInlineKeyboard {
	return &ReplyMarkupInlineKeyboard{InlineKeyboard: rows}
}

// CallbackButton returns a button that sends data back as a callback query.
func CallbackButton(text, data string) *InlineKeyboardButtonCallback {
	return &InlineKeyboardButtonCallback{InlineKeyboardButtonBase: InlineKeyboardButtonBase{Text: text}, CallbackData: data}
}

// URLButton returns a button that opens url.
func URLButton(text, url string) *InlineKeyboardButtonURL {
	return &InlineKeyboardButtonURL{InlineKeyboardButtonBase: InlineKeyboardButtonBase{Text: text}, URL: url}
}

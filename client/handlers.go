package client

import (
	"context"

	"github.com/reoring/kruto/dispatch"
	"github.com/reoring/kruto/filters"
	"github.com/reoring/kruto/types"
)

// HandlerFunc handles one update payload.
type HandlerFunc[T any] func(ctx context.Context, c *Client, v T) (dispatch.Continuation, error)

// AddHandler appends h to the handler list. Handlers run in the order they
// were added.
func (c *Client) AddHandler(h dispatch.Handler[*Client, types.Update]) {
	c.handlers.Add(h)
}

// Handlers returns the handler registry.
func (c *Client) Handlers() *dispatch.Registry[*Client, types.Update] { return c.handlers }

// on registers fn for updates of variant U that pass filter; fn receives the
// payload extracted by unwrap.
func on[U types.Update, T any](c *Client, name string, filter func(T) bool, unwrap func(U) T, fn HandlerFunc[T]) {
	c.handlers.Add(dispatch.Handler[*Client, types.Update]{
		Name: name,
		Filter: func(u types.Update) bool {
			v, ok := u.(U)
			if !ok {
				return false
			}
			return filter == nil || filter(unwrap(v))
		},
		Callback: func(ctx context.Context, c *Client, u types.Update) (dispatch.Continuation, error) {
			return fn(ctx, c, unwrap(u.(U)))
		},
	})
}

// OnUpdate handles every update passing filter. A nil filter matches all.
func (c *Client) OnUpdate(filter filters.Filter[types.Update], fn HandlerFunc[types.Update]) {
	c.handlers.Add(dispatch.Handler[*Client, types.Update]{
		Name:     "update",
		Filter:   filter,
		Callback: dispatch.Callback[*Client, types.Update](fn),
	})
}

// OnNewMessage handles new messages passing filter. A nil filter matches all.
func (c *Client) OnNewMessage(filter filters.MessageFilter, fn HandlerFunc[types.Message]) {
	on(c, "newMessage", filter, func(u *types.UpdateNewMessage) types.Message { return u.Message }, fn)
}

// OnEditedMessage handles edited messages passing filter.
func (c *Client) OnEditedMessage(filter filters.MessageFilter, fn HandlerFunc[types.Message]) {
	on(c, "editedMessage", filter, func(u *types.UpdateEditedMessage) types.Message { return u.EditedMessage }, fn)
}

// OnDeletedMessages receives the whole update, including the business
// connection it came through.
func (c *Client) OnDeletedMessages(fn HandlerFunc[*types.UpdateDeletedMessages]) {
	on(c, "deletedMessages", nil, func(u *types.UpdateDeletedMessages) *types.UpdateDeletedMessages { return u }, fn)
}

func (c *Client) OnCallbackQuery(fn HandlerFunc[*types.CallbackQuery]) {
	on(c, "callbackQuery", nil, func(u *types.UpdateCallbackQuery) *types.CallbackQuery { return u.CallbackQuery }, fn)
}

func (c *Client) OnInlineQuery(fn HandlerFunc[*types.InlineQuery]) {
	on(c, "inlineQuery", nil, func(u *types.UpdateInlineQuery) *types.InlineQuery { return u.InlineQuery }, fn)
}

func (c *Client) OnChosenInlineResult(fn HandlerFunc[*types.ChosenInlineResult]) {
	on(c, "chosenInlineResult", nil, func(u *types.UpdateChosenInlineResult) *types.ChosenInlineResult { return u.ChosenInlineResult }, fn)
}

func (c *Client) OnNewChat(fn HandlerFunc[*types.ChatListItem]) {
	on(c, "newChat", nil, func(u *types.UpdateNewChat) *types.ChatListItem { return u.NewChat }, fn)
}

func (c *Client) OnEditedChat(fn HandlerFunc[*types.ChatListItem]) {
	on(c, "editedChat", nil, func(u *types.UpdateEditedChat) *types.ChatListItem { return u.EditedChat }, fn)
}

// OnDeletedChat receives the payload as sent, usually the chat id.
func (c *Client) OnDeletedChat(fn HandlerFunc[any]) {
	on(c, "deletedChat", nil, func(u *types.UpdateDeletedChat) any { return u.DeletedChat }, fn)
}

func (c *Client) OnMessageInteractions(fn HandlerFunc[*types.MessageInteractions]) {
	on(c, "messageInteractions", nil, func(u *types.UpdateMessageInteractions) *types.MessageInteractions { return u.MessageInteractions }, fn)
}

func (c *Client) OnMessageReactionCount(fn HandlerFunc[*types.MessageReactionCount]) {
	on(c, "messageReactionCount", nil, func(u *types.UpdateMessageReactionCount) *types.MessageReactionCount { return u.MessageReactionCount }, fn)
}

func (c *Client) OnMessageReactions(fn HandlerFunc[*types.MessageReactions]) {
	on(c, "messageReactions", nil, func(u *types.UpdateMessageReactions) *types.MessageReactions { return u.MessageReactions }, fn)
}

func (c *Client) OnChatMember(fn HandlerFunc[*types.ChatMemberUpdated]) {
	on(c, "chatMember", nil, func(u *types.UpdateChatMember) *types.ChatMemberUpdated { return u.ChatMember }, fn)
}

func (c *Client) OnMyChatMember(fn HandlerFunc[*types.ChatMemberUpdated]) {
	on(c, "myChatMember", nil, func(u *types.UpdateMyChatMember) *types.ChatMemberUpdated { return u.MyChatMember }, fn)
}

func (c *Client) OnDeletedStory(fn HandlerFunc[*types.StoryReference]) {
	on(c, "deletedStory", nil, func(u *types.UpdateDeletedStory) *types.StoryReference { return u.DeletedStory }, fn)
}

func (c *Client) OnNewStory(fn HandlerFunc[*types.Story]) {
	on(c, "newStory", nil, func(u *types.UpdateNewStory) *types.Story { return u.Story }, fn)
}

func (c *Client) OnBusinessConnection(fn HandlerFunc[*types.BusinessConnection]) {
	on(c, "businessConnection", nil, func(u *types.UpdateBusinessConnection) *types.BusinessConnection { return u.BusinessConnection }, fn)
}

func (c *Client) OnVideoChat(fn HandlerFunc[types.VideoChat]) {
	on(c, "videoChat", nil, func(u *types.UpdateVideoChat) types.VideoChat { return u.VideoChat }, fn)
}

func (c *Client) OnPreCheckoutQuery(fn HandlerFunc[*types.PreCheckoutQuery]) {
	on(c, "preCheckoutQuery", nil, func(u *types.UpdatePreCheckoutQuery) *types.PreCheckoutQuery { return u.PreCheckoutQuery }, fn)
}

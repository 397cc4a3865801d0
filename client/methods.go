package client

import (
	"context"
	"fmt"
	"io"

	kruto "github.com/reoring/kruto"
	"github.com/reoring/kruto/dsl"
	"github.com/reoring/kruto/types"
)

var updatesNode = dsl.List(types.UpdateNode)

// GetMe returns the account the client is signed in as.
func (c *Client) GetMe(ctx context.Context) (*types.User, error) {
	return result[*types.User](ctx, c, "getMe", types.UserNode)
}

// GetUpdates fetches the next batch of updates. Updates that match no
// variant are returned as *types.UpdateUnknown.
func (c *Client) GetUpdates(ctx context.Context) ([]types.Update, error) {
	raw, err := c.requestJSON(ctx, "getUpdates")
	if err != nil {
		return nil, err
	}
	if _, ok := raw.([]any); !ok {
		return nil, fmt.Errorf("client: getUpdates: expected a list, got %T", raw)
	}
	res, err := kruto.Decode(ctx, updatesNode, raw, kruto.WithRef(c))
	if err != nil {
		return nil, fmt.Errorf("client: getUpdates: decode result: %w", err)
	}
	if res.Fallbacks > 0 {
		c.logger.Debug("updates left undecoded", "fallbacks", res.Fallbacks)
	}
	items, _ := res.Value.([]any)
	out := make([]types.Update, len(items))
	for i, it := range items {
		out[i] = types.AsUpdate(it)
	}
	return out, nil
}

// Invoke sends a raw payload. The result is the transformed JSON value or a
// *Stream for binary results.
func (c *Client) Invoke(ctx context.Context, payload any) (any, error) {
	return c.request(ctx, "invoke", payload)
}

// SendMessage sends a text message.
func (c *Client) SendMessage(ctx context.Context, chatID types.ID, text string, opts *types.SendMessageOptions) (*types.MessageText, error) {
	return result[*types.MessageText](ctx, c, "sendMessage", types.MessageTextNode, chatID, text, opts.Args())
}

// EditMessageText replaces the text of a message.
func (c *Client) EditMessageText(ctx context.Context, chatID types.ID, messageID int64, text string, opts *types.EditMessageTextOptions) (*types.MessageText, error) {
	return result[*types.MessageText](ctx, c, "editMessageText", types.MessageTextNode, chatID, messageID, text, opts.Args())
}

// DeleteMessage deletes a message.
func (c *Client) DeleteMessage(ctx context.Context, chatID types.ID, messageID int64, opts *types.DeleteMessageOptions) error {
	_, err := c.requestJSON(ctx, "deleteMessage", chatID, messageID, opts.Args())
	return err
}

// ForwardMessage forwards a message from one chat to another.
func (c *Client) ForwardMessage(ctx context.Context, from, to types.ID, messageID int64, opts *types.ForwardMessageOptions) (types.Message, error) {
	return result[types.Message](ctx, c, "forwardMessage", types.MessageNode, from, to, messageID, opts.Args())
}

// PinMessage pins a message.
func (c *Client) PinMessage(ctx context.Context, chatID types.ID, messageID int64, opts *types.PinMessageOptions) error {
	_, err := c.requestJSON(ctx, "pinMessage", chatID, messageID, opts.Args())
	return err
}

// SetReactions replaces the reactions of the current account on a message.
func (c *Client) SetReactions(ctx context.Context, chatID types.ID, messageID int64, reactions []types.Reaction, opts *types.SetReactionsOptions) error {
	if reactions == nil {
		reactions = []types.Reaction{}
	}
	_, err := c.requestJSON(ctx, "setReactions", chatID, messageID, reactions, opts.Args())
	return err
}

// AnswerCallbackQuery answers a callback query.
func (c *Client) AnswerCallbackQuery(ctx context.Context, id string, opts *types.AnswerCallbackQueryOptions) error {
	_, err := c.requestJSON(ctx, "answerCallbackQuery", id, opts.Args())
	return err
}

// BanChatMember bans a member from a chat.
func (c *Client) BanChatMember(ctx context.Context, chatID, memberID types.ID, opts *types.BanChatMemberOptions) error {
	_, err := c.requestJSON(ctx, "banChatMember", chatID, memberID, opts.Args())
	return err
}

// UnbanChatMember lifts a ban.
func (c *Client) UnbanChatMember(ctx context.Context, chatID, memberID types.ID) error {
	_, err := c.requestJSON(ctx, "unbanChatMember", chatID, memberID)
	return err
}

// SetChatPhoto uploads photo as the chat photo. The body is sent as
// multipart/form-data.
func (c *Client) SetChatPhoto(ctx context.Context, chatID types.ID, photo io.Reader, opts *types.SetChatPhotoOptions) error {
	if photo == nil {
		return fmt.Errorf("client: setChatPhoto: photo is required")
	}
	_, err := c.requestJSON(ctx, "setChatPhoto", chatID, photo, opts.Args())
	return err
}

// Download streams a file. Each call issues a new request; close the stream
// when done.
func (c *Client) Download(ctx context.Context, fileID string, opts *types.DownloadOptions) (*Stream, error) {
	v, err := c.request(ctx, "download", fileID, opts.Args())
	if err != nil {
		return nil, err
	}
	s, ok := v.(*Stream)
	if !ok {
		return nil, fmt.Errorf("client: download: expected a binary result, got %T", v)
	}
	return s, nil
}

package types_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kruto "github.com/reoring/kruto"
	"github.com/reoring/kruto/types"
)

type sent struct {
	method string
	chat   types.ID
	id     int64
	text   string
	send   *types.SendMessageOptions
	answer *types.AnswerCallbackQueryOptions
}

// recorder implements types.Caller and keeps every call.
type recorder struct {
	calls []sent
}

func (r *recorder) SendMessage(_ context.Context, chatID types.ID, text string, opts *types.SendMessageOptions) (*types.MessageText, error) {
	r.calls = append(r.calls, sent{method: "sendMessage", chat: chatID, text: text, send: opts})
	return &types.MessageText{Text: text}, nil
}

func (r *recorder) EditMessageText(_ context.Context, chatID types.ID, messageID int64, text string, _ *types.EditMessageTextOptions) (*types.MessageText, error) {
	r.calls = append(r.calls, sent{method: "editMessageText", chat: chatID, id: messageID, text: text})
	return &types.MessageText{Text: text}, nil
}

func (r *recorder) DeleteMessage(_ context.Context, chatID types.ID, messageID int64, _ *types.DeleteMessageOptions) error {
	r.calls = append(r.calls, sent{method: "deleteMessage", chat: chatID, id: messageID})
	return nil
}

func (r *recorder) ForwardMessage(_ context.Context, from, _ types.ID, messageID int64, _ *types.ForwardMessageOptions) (types.Message, error) {
	r.calls = append(r.calls, sent{method: "forwardMessage", chat: from, id: messageID})
	return &types.MessageText{}, nil
}

func (r *recorder) PinMessage(_ context.Context, chatID types.ID, messageID int64, _ *types.PinMessageOptions) error {
	r.calls = append(r.calls, sent{method: "pinMessage", chat: chatID, id: messageID})
	return nil
}

func (r *recorder) SetReactions(_ context.Context, chatID types.ID, messageID int64, _ []types.Reaction, _ *types.SetReactionsOptions) error {
	r.calls = append(r.calls, sent{method: "setReactions", chat: chatID, id: messageID})
	return nil
}

func (r *recorder) AnswerCallbackQuery(_ context.Context, id string, opts *types.AnswerCallbackQueryOptions) error {
	r.calls = append(r.calls, sent{method: "answerCallbackQuery", text: id, answer: opts})
	return nil
}

func (r *recorder) BanChatMember(_ context.Context, chatID, _ types.ID, _ *types.BanChatMemberOptions) error {
	r.calls = append(r.calls, sent{method: "banChatMember", chat: chatID})
	return nil
}

func (r *recorder) UnbanChatMember(_ context.Context, chatID, _ types.ID) error {
	r.calls = append(r.calls, sent{method: "unbanChatMember", chat: chatID})
	return nil
}

func (r *recorder) SetChatPhoto(_ context.Context, chatID types.ID, _ io.Reader, _ *types.SetChatPhotoOptions) error {
	r.calls = append(r.calls, sent{method: "setChatPhoto", chat: chatID})
	return nil
}

const textUpdate = `{
  "message": {
    "out": false,
    "id": 42,
    "date": {"_": "date", "value": "2024-03-01T10:00:00.000+00:00"},
    "chat": {"id": 7, "type": "private", "color": 0, "firstName": "Ann", "isScam": false, "isFake": false, "isSupport": false, "isVerified": false},
    "from": {"id": 7, "color": 0, "isBot": false, "firstName": "Ann", "username": "ann", "isScam": false, "isFake": false, "isPremium": false, "isVerified": false, "isSupport": false, "addedToAttachmentMenu": false},
    "isTopicMessage": false,
    "businessConnectionId": "bc1",
    "text": "hello world",
    "entities": [{"type": "bold", "offset": 0, "length": 5}, {"type": "textLink", "offset": 6, "length": 5, "url": "https://example.com"}]
  }
}`

// userJSON renders a user carrying every required field.
func userJSON(id int, name string) string {
	return fmt.Sprintf(`{"id": %d, "color": 0, "isBot": false, "firstName": %q, "isScam": false, "isFake": false, "isPremium": false, "isVerified": false, "isSupport": false, "addedToAttachmentMenu": false}`, id, name)
}

const wireDate = `{"_": "date", "value": "2024-03-01T10:00:00.000+00:00"}`

func decodeUpdate(t *testing.T, data string, opts ...kruto.DecodeOption) kruto.Result {
	t.Helper()
	res, err := kruto.DecodeJSON(context.Background(), types.UpdateNode, []byte(data), opts...)
	require.NoError(t, err)
	return res
}

func TestUpdate_DecodesNewTextMessage(t *testing.T) {
	res := decodeUpdate(t, textUpdate)
	require.False(t, res.Raw())
	require.Zero(t, res.Fallbacks)

	upd, ok := res.Value.(*types.UpdateNewMessage)
	require.True(t, ok, "got %T", res.Value)
	msg, ok := upd.Message.(*types.MessageText)
	require.True(t, ok, "got %T", upd.Message)

	assert.Equal(t, int64(42), msg.ID)
	assert.Equal(t, "hello world", msg.Text)
	assert.True(t, msg.Date.Equal(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)))
	require.NotNil(t, msg.From)
	assert.Equal(t, "ann", *msg.From.Username)

	chat, ok := msg.Chat.(*types.ChatPPrivate)
	require.True(t, ok, "got %T", msg.Chat)
	assert.Equal(t, "Ann", chat.FirstName)

	require.Len(t, msg.Entities, 2)
	assert.IsType(t, &types.MessageEntityBold{}, msg.Entities[0])
	link, ok := msg.Entities[1].(*types.MessageEntityTextLink)
	require.True(t, ok)
	assert.Equal(t, "https://example.com", link.URL)
	assert.Equal(t, int64(6), link.Span().Offset)
	assert.Equal(t, "UpdateNewMessage", types.VariantName(upd))
}

func TestUpdate_EncodeDecodeIsStable(t *testing.T) {
	res := decodeUpdate(t, textUpdate)
	first, err := kruto.EncodeJSON(types.UpdateNode, res.Value)
	require.NoError(t, err)

	again, err := kruto.DecodeJSON(context.Background(), types.UpdateNode, first)
	require.NoError(t, err)
	second, err := kruto.EncodeJSON(types.UpdateNode, again.Value)
	require.NoError(t, err)
	assert.JSONEq(t, string(first), string(second))
	assert.Contains(t, string(first), `"_":"date"`)
}

func TestMessage_GroupCreatedResolvesToNewChatMembers(t *testing.T) {
	res := decodeUpdate(t, `{"message": {"out": false, "id": 1, "date": `+wireDate+`, "isTopicMessage": false,
		"chat": {"id": -5, "type": "group", "color": 0, "title": "g", "isCreator": true},
		"groupCreated": true, "newChatMembers": [`+userJSON(2, "B")+`]}}`)
	upd := res.Value.(*types.UpdateNewMessage)
	m, ok := upd.Message.(*types.MessageNewChatMembers)
	require.True(t, ok, "got %T", upd.Message)
	require.Len(t, m.NewChatMembers, 1)
	assert.Equal(t, "B", m.NewChatMembers[0].FirstName)
}

func TestUpdate_UnknownShapeFallsBackToRaw(t *testing.T) {
	res := decodeUpdate(t, `{"somethingNew": {"x": 1}}`)
	assert.True(t, res.Raw())
	assert.Equal(t, "raw", types.VariantName(res.Value))

	_, err := kruto.DecodeJSON(context.Background(), types.UpdateNode, []byte(`{"somethingNew": 1}`), kruto.Strict())
	assert.True(t, kruto.HasCode(err, kruto.CodeDiscriminatorUnknown), "got %v", err)
}

func TestUpdate_PartialMessageFallsBackToRaw(t *testing.T) {
	res := decodeUpdate(t, `{"message": {"text": "hi", "entities": []}}`)
	assert.True(t, res.Raw())
	assert.Equal(t, 2, res.Fallbacks)

	u := types.AsUpdate(res.Value)
	raw, ok := u.(*types.UpdateUnknown)
	require.True(t, ok, "got %T", u)
	assert.Equal(t, "raw", types.VariantName(u))
	assert.Contains(t, raw.Raw.(map[string]any), "message")

	_, err := kruto.DecodeJSON(context.Background(), types.UpdateNode, []byte(`{"message": {"text": "hi", "entities": []}}`), kruto.Strict())
	assert.True(t, kruto.HasCode(err, kruto.CodeRequired), "got %v", err)
}

func TestUser_MissingRequiredFieldFallsBack(t *testing.T) {
	res, err := kruto.DecodeJSON(context.Background(), types.UserNode, []byte(`{"firstName": "x"}`))
	require.NoError(t, err)
	assert.True(t, res.Raw())
	assert.IsType(t, map[string]any{}, res.Value)
}

func TestChatMember_ResolvesOnStatus(t *testing.T) {
	res := decodeUpdate(t, `{"chatMember": {
		"chat": {"id": -1001, "type": "supergroup", "color": 0, "title": "s", "isScam": false, "isFake": false, "isVerified": false, "isRestricted": false, "isForum": true},
		"from": `+userJSON(1, "A")+`,
		"date": `+wireDate+`,
		"oldChatMember": {"status": "member", "user": `+userJSON(2, "B")+`},
		"newChatMember": {"status": "banned", "user": `+userJSON(2, "B")+`, "untilDate": {"_": "date", "value": "2024-04-01T00:00:00.000+00:00"}}}}`)
	upd, ok := res.Value.(*types.UpdateChatMember)
	require.True(t, ok, "got %T", res.Value)
	assert.IsType(t, &types.ChatMemberMember{}, upd.ChatMember.OldChatMember)
	banned, ok := upd.ChatMember.NewChatMember.(*types.ChatMemberBanned)
	require.True(t, ok)
	require.NotNil(t, banned.UntilDate)
	assert.Equal(t, time.April, banned.UntilDate.Month())
	assert.Equal(t, "B", banned.Member().User.FirstName)
	sg, ok := upd.ChatMember.Chat.(*types.ChatPSupergroup)
	require.True(t, ok)
	assert.True(t, sg.IsForum)
}

func TestMessage_ReplyUsesBackReference(t *testing.T) {
	rec := &recorder{}
	res := decodeUpdate(t, textUpdate, kruto.WithRef(rec))
	msg := res.Value.(*types.UpdateNewMessage).Message.(*types.MessageText)

	quote := &types.ReplyQuote{Offset: 0, Text: "hello"}
	_, err := msg.Reply(context.Background(), "hi", &types.SendMessageOptions{ReplyTo: &types.ReplyToMessage{Quote: quote}})
	require.NoError(t, err)

	require.Len(t, rec.calls, 1)
	c := rec.calls[0]
	assert.Equal(t, "sendMessage", c.method)
	assert.Equal(t, int64(7), c.chat.Value())
	assert.Equal(t, "hi", c.text)
	require.NotNil(t, c.send.ReplyTo)
	assert.Equal(t, int64(42), c.send.ReplyTo.MessageID)
	assert.Same(t, quote, c.send.ReplyTo.Quote)
	assert.Equal(t, "bc1", c.send.BusinessConnectionID)

	require.NoError(t, msg.Delete(context.Background(), nil))
	require.NoError(t, msg.Chat.Common().BanMember(context.Background(), types.ChatID(9), nil))
	assert.Equal(t, []string{"sendMessage", "deleteMessage", "banChatMember"}, methods(rec))
}

func TestMessage_DetachedReturnsErrDetached(t *testing.T) {
	msg := &types.MessageText{}
	_, err := msg.Reply(context.Background(), "x", nil)
	assert.True(t, errors.Is(err, types.ErrDetached))
	assert.ErrorIs(t, (&types.CallbackQuery{}).Answer(context.Background(), nil), types.ErrDetached)
}

func TestCallbackQuery_Answer(t *testing.T) {
	rec := &recorder{}
	res := decodeUpdate(t, `{"callbackQuery": {"id": "q1", "from": `+userJSON(1, "A")+`, "chatInstance": "c", "data": "yes"}}`, kruto.WithRef(rec))
	q := res.Value.(*types.UpdateCallbackQuery).CallbackQuery
	require.Equal(t, "yes", *q.Data)
	require.NoError(t, q.Answer(context.Background(), &types.AnswerCallbackQueryOptions{Text: "ok", Alert: true}))
	require.Len(t, rec.calls, 1)
	assert.Equal(t, "q1", rec.calls[0].text)
	assert.Equal(t, "ok", rec.calls[0].answer.Text)

	_, err := q.EditMessageText(context.Background(), "new", nil)
	assert.Error(t, err)
}

func TestMessage_URL(t *testing.T) {
	name := "news"
	cases := []struct {
		name string
		chat types.ChatP
		want string
	}{
		{"private", &types.ChatPPrivate{ChatPBase: types.ChatPBase{ID: 7, Type: "private"}}, ""},
		{"public channel", &types.ChatPChannel{ChatPChannelBase: types.ChatPChannelBase{ChatPBase: types.ChatPBase{ID: -1001234, Type: "channel"}, Username: &name}}, "https://t.me/news/5"},
		{"private supergroup", &types.ChatPSupergroup{ChatPChannelBase: types.ChatPChannelBase{ChatPBase: types.ChatPBase{ID: -1001234, Type: "supergroup"}}}, "https://t.me/c/1234/5"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := &types.MessageText{MessageBase: types.MessageBase{ID: 5, Chat: tc.chat}}
			assert.Equal(t, tc.want, m.URL())
		})
	}
}

func TestUser_Helpers(t *testing.T) {
	last, uname := "Lee", "ann"
	u := &types.User{ID: 3, FirstName: "Ann", LastName: &last, Username: &uname}
	assert.Equal(t, "Ann Lee", u.FullName())
	assert.Equal(t, "[Ann](tg://user?id=3)", u.Mention("", types.ParseModeMarkdown))
	assert.Equal(t, "<a href=tg://user?id=3>boss</a>", u.Mention("boss", types.ParseModeHTML))
	assert.Equal(t, "https://t.me/ann", u.ProfileLink())
	assert.Equal(t, "", (&types.User{FirstName: "X"}).ProfileLink())
}

func TestOptions_ArgsEncodeWithoutUnsetFields(t *testing.T) {
	empty, err := kruto.EncodeArgs((*types.SendMessageOptions)(nil).Args())
	require.NoError(t, err)
	assert.Empty(t, empty)

	me := types.Me
	args, err := kruto.EncodeArgs((&types.SendMessageOptions{
		ParseMode:   types.ParseModeHTML,
		ReplyTo:     &types.ReplyToMessage{MessageID: 5},
		SendAs:      &me,
		ReplyMarkup: types.InlineKeyboard([]types.InlineKeyboardButton{types.CallbackButton("Yes", "y")}),
	}).Args())
	require.NoError(t, err)
	assert.Equal(t, "HTML", args["parseMode"])
	assert.Equal(t, map[string]any{"messageId": int64(5)}, args["replyTo"])
	assert.Equal(t, "me", args["sendAs"])
	assert.Equal(t, map[string]any{"inlineKeyboard": []any{[]any{map[string]any{"text": "Yes", "callbackData": "y"}}}}, args["replyMarkup"])
	assert.NotContains(t, args, "entities")

	del, err := kruto.EncodeArgs((*types.DeleteMessageOptions)(nil).Args())
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"onlyForMe": false}, del)
}

func TestEntity_Constructor(t *testing.T) {
	e := types.Entity("italic", 1, 2)
	require.IsType(t, &types.MessageEntityItalic{}, e)
	assert.Equal(t, int64(2), e.Span().Length)
	assert.Nil(t, types.Entity("pre", 0, 1))
}

func TestNodeByName(t *testing.T) {
	n, ok := types.NodeByName("Update")
	require.True(t, ok)
	assert.Same(t, types.UpdateNode, n)
	assert.Contains(t, types.NodeNames(), "Message")
	_, ok = types.NodeByName("Nope")
	assert.False(t, ok)
}

func methods(r *recorder) []string {
	out := make([]string, len(r.calls))
	for i, c := range r.calls {
		out[i] = c.method
	}
	return out
}

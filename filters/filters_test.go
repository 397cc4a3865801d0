package filters_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reoring/kruto/filters"
	"github.com/reoring/kruto/types"
)

func text(chatType string) *types.MessageText {
	chat := &types.ChatPGroup{ChatPBase: types.ChatPBase{ID: -1, Type: chatType}}
	return &types.MessageText{MessageBase: types.MessageBase{ID: 1, Chat: chat}, Text: "hi"}
}

func TestCombinators(t *testing.T) {
	calls := 0
	counting := filters.Filter[int](func(int) bool { calls++; return true })
	even := filters.Filter[int](func(n int) bool { return n%2 == 0 })
	positive := filters.Filter[int](func(n int) bool { return n > 0 })

	assert.True(t, even.And(positive).Match(4))
	assert.False(t, even.And(positive).Match(-4))
	assert.True(t, even.Or(positive).Match(3))
	assert.False(t, even.Or(positive).Match(-3))
	assert.True(t, even.Not().Match(3))

	assert.False(t, even.And(counting).Match(3))
	assert.True(t, even.Or(counting).Match(2))
	assert.Zero(t, calls, "combinators must short-circuit")

	assert.True(t, filters.All[int]().Match(1))
	assert.False(t, filters.Any[int]().Match(1))

	var none filters.Filter[int]
	assert.True(t, none.Match(7))
}

func TestVariantFilters(t *testing.T) {
	msg := text("group")
	photo := &types.MessagePhoto{MessageMediaBase: types.MessageMediaBase{MessageBase: types.MessageBase{Chat: msg.Chat}}}

	assert.True(t, filters.Text.Match(msg))
	assert.False(t, filters.Text.Match(photo))
	assert.True(t, filters.Text.Not().Match(photo))
	assert.True(t, filters.Photo.Match(photo))
	assert.False(t, filters.Service.Match(msg))
	assert.True(t, filters.Service.Match(&types.MessageGroupCreated{}))
	assert.True(t, filters.Service.Match(&types.MessageVideoChatEnded{}))
	assert.False(t, filters.Text.Match(nil))
}

func TestAttributeFilters(t *testing.T) {
	msg := text("supergroup")
	assert.False(t, filters.Reply.Match(msg))
	id := int64(9)
	msg.ReplyToMessageID = &id
	assert.True(t, filters.Reply.Match(msg))

	assert.False(t, filters.Bot.Match(msg))
	msg.From = &types.User{ID: 5, IsBot: true}
	assert.True(t, filters.Bot.Match(msg))
	assert.True(t, filters.FromUser(5).Match(msg))

	assert.True(t, filters.Group.Match(msg))
	assert.False(t, filters.Private.Match(msg))
	assert.True(t, filters.Group.Match(text("group")))
	assert.True(t, filters.Channel.Match(text("channel")))

	assert.False(t, filters.Out.Match(msg))
	msg.Out = true
	assert.True(t, filters.Out.And(filters.Text, filters.Group).Match(msg))
}

func TestWhere(t *testing.T) {
	msg := text("private")
	msg.From = &types.User{ID: 5, FirstName: "Ann"}

	assert.True(t, filters.Where[types.Message]("/Chat/Type", filters.Eq, "private").Match(msg))
	assert.True(t, filters.Where[types.Message]("From/ID", filters.Eq, 5).Match(msg))
	assert.True(t, filters.Where[types.Message]("From/ID", filters.Ge, 5).Match(msg))
	assert.False(t, filters.Where[types.Message]("From/ID", filters.Lt, 5).Match(msg))
	assert.True(t, filters.Where[types.Message]("Text", filters.Ne, "bye").Match(msg))
	assert.False(t, filters.Where[types.Message]("ViaBot/ID", filters.Eq, 1).Match(msg))
	assert.False(t, filters.Where[types.Message]("Nope", filters.Eq, 1).Match(msg))
}

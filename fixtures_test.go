package kruto_test

import (
	"time"

	kruto "github.com/reoring/kruto"
	g "github.com/reoring/kruto/dsl"
)

// A reduced chat domain: a chat union on a literal tag and a recursive
// message union whose variants share a base.

type chatT interface{ isChat() }

type privateChat struct {
	Type      string
	ID        int64
	FirstName string
}

type groupChat struct {
	Type  string
	ID    int64
	Title string
}

func (*privateChat) isChat() {}
func (*groupChat) isChat()   {}

type user struct {
	ID        int64
	FirstName string
	Username  *string
}

type base struct {
	ID      int64
	Date    time.Time
	Chat    chatT
	From    *user
	Edited  *time.Time
	ReplyTo messageT
	Secret  string

	ref any
}

func (b *base) SetRef(ref any) { b.ref = ref }

type messageT interface{ msg() *base }

type textMessage struct {
	base
	Text     string
	Entities []any
}

type newChatMembers struct {
	base
	Members []*user
}

type groupCreated struct {
	base
	GroupCreated bool
	Members      []*user
}

func (m *textMessage) msg() *base    { return &m.base }
func (m *newChatMembers) msg() *base { return &m.base }
func (m *groupCreated) msg() *base   { return &m.base }

var (
	userNode = g.ObjectOf[user]("User").Field(
		g.Prop("ID", "id", g.Int(), func(u *user) *int64 { return &u.ID }),
		g.Prop("FirstName", "firstName", g.String(), func(u *user) *string { return &u.FirstName }),
		g.Opt("Username", "username", g.String(), func(u *user) **string { return &u.Username }),
	).MustBuild()

	chatNode = g.Union("Chat",
		g.ObjectOf[privateChat]("ChatPrivate").Field(
			g.Prop("Type", "type", g.Literal("private"), func(c *privateChat) *string { return &c.Type }),
			g.Prop("ID", "id", g.Int(), func(c *privateChat) *int64 { return &c.ID }),
			g.Prop("FirstName", "firstName", g.String(), func(c *privateChat) *string { return &c.FirstName }),
		).Discriminate("type").MustBuild(),
		g.ObjectOf[groupChat]("ChatGroup").Field(
			g.Prop("Type", "type", g.Literal("group"), func(c *groupChat) *string { return &c.Type }),
			g.Prop("ID", "id", g.Int(), func(c *groupChat) *int64 { return &c.ID }),
			g.Prop("Title", "title", g.String(), func(c *groupChat) *string { return &c.Title }),
		).Discriminate("type").MustBuild(),
	)

	messageNode = g.Forward("Message")
)

func baseFields[T any](at func(*T) *base) []g.Field[T] {
	return g.Embed(at,
		g.Prop("ID", "id", g.Int(), func(b *base) *int64 { return &b.ID }),
		g.Prop("Date", "date", g.Date(), func(b *base) *time.Time { return &b.Date }),
		g.Prop("Chat", "chat", chatNode, func(b *base) *chatT { return &b.Chat }),
		g.Prop("From", "from", g.Optional(userNode), func(b *base) **user { return &b.From }),
		g.Opt("Edited", "editDate", g.Date(), func(b *base) **time.Time { return &b.Edited }),
		g.Prop("ReplyTo", "replyToMessage", g.Optional(messageNode), func(b *base) *messageT { return &b.ReplyTo }),
		g.Prop("_Secret", "secret", g.Optional(g.String()), func(b *base) *string { return &b.Secret }),
	)
}

var textNode = g.ObjectOf[textMessage]("MessageText").
	Field(baseFields(func(m *textMessage) *base { return &m.base })...).
	Field(
		g.Prop("Text", "text", g.String(), func(m *textMessage) *string { return &m.Text }),
		g.Slice("Entities", "entities", g.List(g.Any()), func(m *textMessage) *[]any { return &m.Entities }),
	).
	Discriminate("text", "entities").
	MustBuild()

var newMembersNode = g.ObjectOf[newChatMembers]("MessageNewChatMembers").
	Field(baseFields(func(m *newChatMembers) *base { return &m.base })...).
	Field(
		g.Slice("Members", "newChatMembers", g.List(userNode), func(m *newChatMembers) *[]*user { return &m.Members }),
	).
	Discriminate("newChatMembers").
	MustBuild()

var groupCreatedNode = g.ObjectOf[groupCreated]("MessageGroupCreated").
	Field(baseFields(func(m *groupCreated) *base { return &m.base })...).
	Field(
		g.Prop("GroupCreated", "groupCreated", g.Literal(true), func(m *groupCreated) *bool { return &m.GroupCreated }),
		g.Slice("Members", "newChatMembers", g.List(userNode), func(m *groupCreated) *[]*user { return &m.Members }),
	).
	Discriminate("groupCreated", "newChatMembers").
	MustBuild()

func init() {
	g.Define(messageNode, textNode, newMembersNode, groupCreatedNode)
}

func wireDate(s string) map[string]any { return map[string]any{"_": "date", "value": s} }

var _ kruto.RefHolder = (*base)(nil)

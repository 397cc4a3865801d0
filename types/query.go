package types

import (
	"context"
	"fmt"

	g "github.com/reoring/kruto/dsl"
)

type CallbackQuery struct {
	attached

	ID              string
	From            *User
	Message         Message
	InlineMessageID *string
	ChatInstance    string
	Data            *string
	GameShortName   *string
}

var CallbackQueryNode = g.ObjectOf[CallbackQuery]("CallbackQuery").Field(
	g.Prop("ID", "id", g.String(), func(c *CallbackQuery) *string { return &c.ID }),
	g.Prop("From", "from", UserNode, func(c *CallbackQuery) **User { return &c.From }),
	g.Prop("Message", "message", g.Optional(MessageNode), func(c *CallbackQuery) *Message { return &c.Message }),
	g.Opt("InlineMessageID", "inlineMessageId", g.String(), func(c *CallbackQuery) **string { return &c.InlineMessageID }),
	g.Prop("ChatInstance", "chatInstance", g.String(), func(c *CallbackQuery) *string { return &c.ChatInstance }),
	g.Opt("Data", "data", g.String(), func(c *CallbackQuery) **string { return &c.Data }),
	g.Opt("GameShortName", "gameShortName", g.String(), func(c *CallbackQuery) **string { return &c.GameShortName }),
).MustBuild()

// Answer replies to the query, optionally with a notification or alert.
func (q *CallbackQuery) Answer(ctx context.Context, opts *AnswerCallbackQueryOptions) error {
	c, err := q.client()
	if err != nil {
		return err
	}
	return c.AnswerCallbackQuery(ctx, q.ID, opts)
}

// EditMessageText edits the text of the message the button was attached to.
// Queries from inline messages carry no message and return an error.
func (q *CallbackQuery) EditMessageText(ctx context.Context, text string, opts *EditMessageTextOptions) (*MessageText, error) {
	if q.Message == nil {
		return nil, fmt.Errorf("types: callback query %s has no message", q.ID)
	}
	return q.Message.Base().EditText(ctx, text, opts)
}

type InlineQuery struct {
	ID       string
	From     *User
	Query    string
	Offset   string
	ChatType any
	Location *Location
}

var InlineQueryNode = g.ObjectOf[InlineQuery]("InlineQuery").Field(
	g.Prop("ID", "id", g.String(), func(i *InlineQuery) *string { return &i.ID }),
	g.Prop("From", "from", UserNode, func(i *InlineQuery) **User { return &i.From }),
	g.Prop("Query", "query", g.String(), func(i *InlineQuery) *string { return &i.Query }),
	g.Prop("Offset", "offset", g.String(), func(i *InlineQuery) *string { return &i.Offset }),
	g.Prop("ChatType", "chatType", g.Optional(g.Any()), func(i *InlineQuery) *any { return &i.ChatType }),
	g.Prop("Location", "location", g.Optional(LocationNode), func(i *InlineQuery) **Location { return &i.Location }),
).MustBuild()

type ChosenInlineResult struct {
	ResultID        string
	From            *User
	Location        *Location
	InlineMessageID *string
	Query           string
}

var ChosenInlineResultNode = g.ObjectOf[ChosenInlineResult]("ChosenInlineResult").Field(
	g.Prop("ResultID", "resultId", g.String(), func(c *ChosenInlineResult) *string { return &c.ResultID }),
	g.Prop("From", "from", UserNode, func(c *ChosenInlineResult) **User { return &c.From }),
	g.Prop("Location", "location", g.Optional(LocationNode), func(c *ChosenInlineResult) **Location { return &c.Location }),
	g.Opt("InlineMessageID", "inlineMessageId", g.String(), func(c *ChosenInlineResult) **string { return &c.InlineMessageID }),
	g.Prop("Query", "query", g.String(), func(c *ChosenInlineResult) *string { return &c.Query }),
).MustBuild()

type PreCheckoutQuery struct {
	ID               string
	From             *User
	Currency         string
	TotalAmount      int64
	InvoicePayload   string
	ShippingOptionID *string
	OrderInfo        *OrderInfo
}

var PreCheckoutQueryNode = g.ObjectOf[PreCheckoutQuery]("PreCheckoutQuery").Field(
	g.Prop("ID", "id", g.String(), func(p *PreCheckoutQuery) *string { return &p.ID }),
	g.Prop("From", "from", UserNode, func(p *PreCheckoutQuery) **User { return &p.From }),
	g.Prop("Currency", "currency", g.String(), func(p *PreCheckoutQuery) *string { return &p.Currency }),
	g.Prop("TotalAmount", "totalAmount", g.Int(), func(p *PreCheckoutQuery) *int64 { return &p.TotalAmount }),
	g.Prop("InvoicePayload", "invoicePayload", g.String(), func(p *PreCheckoutQuery) *string { return &p.InvoicePayload }),
	g.Opt("ShippingOptionID", "shippingOptionId", g.String(), func(p *PreCheckoutQuery) **string { return &p.ShippingOptionID }),
	g.Prop("OrderInfo", "orderInfo", g.Optional(OrderInfoNode), func(p *PreCheckoutQuery) **OrderInfo { return &p.OrderInfo }),
).MustBuild()

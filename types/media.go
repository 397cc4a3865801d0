package types

import (
	"time"

	g "github.com/reoring/kruto/dsl"
)

// Media and payload objects carried by messages. Fields the SDK does not
// interpret (sticker and poll kinds, mask positions) are kept as raw values.

type Thumbnail struct {
	FileID       string
	FileUniqueID string
	Width        int64
	Height       int64
	FileSize     int64
}

var ThumbnailNode = g.ObjectOf[Thumbnail]("Thumbnail").Field(
	g.Prop("FileID", "fileId", g.String(), func(t *Thumbnail) *string { return &t.FileID }),
	g.Prop("FileUniqueID", "fileUniqueId", g.String(), func(t *Thumbnail) *string { return &t.FileUniqueID }),
	g.Prop("Width", "width", g.Int(), func(t *Thumbnail) *int64 { return &t.Width }),
	g.Prop("Height", "height", g.Int(), func(t *Thumbnail) *int64 { return &t.Height }),
	g.Prop("FileSize", "fileSize", g.Int(), func(t *Thumbnail) *int64 { return &t.FileSize }),
).MustBuild()

type Photo struct {
	FileID       string
	FileUniqueID string
	Width        int64
	Height       int64
	FileSize     int64
	Thumbnails   []*Thumbnail
}

var PhotoNode = g.ObjectOf[Photo]("Photo").Field(
	g.Prop("FileID", "fileId", g.String(), func(p *Photo) *string { return &p.FileID }),
	g.Prop("FileUniqueID", "fileUniqueId", g.String(), func(p *Photo) *string { return &p.FileUniqueID }),
	g.Prop("Width", "width", g.Int(), func(p *Photo) *int64 { return &p.Width }),
	g.Prop("Height", "height", g.Int(), func(p *Photo) *int64 { return &p.Height }),
	g.Prop("FileSize", "fileSize", g.Int(), func(p *Photo) *int64 { return &p.FileSize }),
	g.Slice("Thumbnails", "thumbnails", g.List(ThumbnailNode), func(p *Photo) *[]*Thumbnail { return &p.Thumbnails }),
).MustBuild()

type Document struct {
	FileID       string
	FileUniqueID string
	Thumbnails   []*Thumbnail
	FileName     string
	MIMEType     string
	FileSize     int64
}

var DocumentNode = g.ObjectOf[Document]("Document").Field(
	g.Prop("FileID", "fileId", g.String(), func(d *Document) *string { return &d.FileID }),
	g.Prop("FileUniqueID", "fileUniqueId", g.String(), func(d *Document) *string { return &d.FileUniqueID }),
	g.Slice("Thumbnails", "thumbnails", g.List(ThumbnailNode), func(d *Document) *[]*Thumbnail { return &d.Thumbnails }),
	g.Prop("FileName", "fileName", g.String(), func(d *Document) *string { return &d.FileName }),
	g.Prop("MIMEType", "mimeType", g.String(), func(d *Document) *string { return &d.MIMEType }),
	g.Prop("FileSize", "fileSize", g.Int(), func(d *Document) *int64 { return &d.FileSize }),
).MustBuild()

type Video struct {
	FileID       string
	FileUniqueID string
	Width        int64
	Height       int64
	Duration     int64
	Thumbnails   []*Thumbnail
	FileName     *string
	MIMEType     string
	FileSize     int64
}

var VideoNode = g.ObjectOf[Video]("Video").Field(
	g.Prop("FileID", "fileId", g.String(), func(v *Video) *string { return &v.FileID }),
	g.Prop("FileUniqueID", "fileUniqueId", g.String(), func(v *Video) *string { return &v.FileUniqueID }),
	g.Prop("Width", "width", g.Int(), func(v *Video) *int64 { return &v.Width }),
	g.Prop("Height", "height", g.Int(), func(v *Video) *int64 { return &v.Height }),
	g.Prop("Duration", "duration", g.Int(), func(v *Video) *int64 { return &v.Duration }),
	g.Slice("Thumbnails", "thumbnails", g.List(ThumbnailNode), func(v *Video) *[]*Thumbnail { return &v.Thumbnails }),
	g.Opt("FileName", "fileName", g.String(), func(v *Video) **string { return &v.FileName }),
	g.Prop("MIMEType", "mimeType", g.String(), func(v *Video) *string { return &v.MIMEType }),
	g.Prop("FileSize", "fileSize", g.Int(), func(v *Video) *int64 { return &v.FileSize }),
).MustBuild()

type Audio struct {
	FileID       string
	FileUniqueID string
	Duration     int64
	Performer    *string
	Title        *string
	MIMEType     string
	FileSize     int64
	Thumbnails   []*Thumbnail
}

var AudioNode = g.ObjectOf[Audio]("Audio").Field(
	g.Prop("FileID", "fileId", g.String(), func(a *Audio) *string { return &a.FileID }),
	g.Prop("FileUniqueID", "fileUniqueId", g.String(), func(a *Audio) *string { return &a.FileUniqueID }),
	g.Prop("Duration", "duration", g.Int(), func(a *Audio) *int64 { return &a.Duration }),
	g.Opt("Performer", "performer", g.String(), func(a *Audio) **string { return &a.Performer }),
	g.Opt("Title", "title", g.String(), func(a *Audio) **string { return &a.Title }),
	g.Prop("MIMEType", "mimeType", g.String(), func(a *Audio) *string { return &a.MIMEType }),
	g.Prop("FileSize", "fileSize", g.Int(), func(a *Audio) *int64 { return &a.FileSize }),
	g.Slice("Thumbnails", "thumbnails", g.List(ThumbnailNode), func(a *Audio) *[]*Thumbnail { return &a.Thumbnails }),
).MustBuild()

type Voice struct {
	FileID       string
	FileUniqueID string
	Duration     int64
	MIMEType     string
	FileSize     int64
}

var VoiceNode = g.ObjectOf[Voice]("Voice").Field(
	g.Prop("FileID", "fileId", g.String(), func(v *Voice) *string { return &v.FileID }),
	g.Prop("FileUniqueID", "fileUniqueId", g.String(), func(v *Voice) *string { return &v.FileUniqueID }),
	g.Prop("Duration", "duration", g.Int(), func(v *Voice) *int64 { return &v.Duration }),
	g.Prop("MIMEType", "mimeType", g.String(), func(v *Voice) *string { return &v.MIMEType }),
	g.Prop("FileSize", "fileSize", g.Int(), func(v *Voice) *int64 { return &v.FileSize }),
).MustBuild()

type Animation struct {
	FileID       string
	FileUniqueID string
	Width        int64
	Height       int64
	Duration     int64
	Thumbnails   []*Thumbnail
	FileName     *string
	MIMEType     string
	FileSize     int64
}

var AnimationNode = g.ObjectOf[Animation]("Animation").Field(
	g.Prop("FileID", "fileId", g.String(), func(a *Animation) *string { return &a.FileID }),
	g.Prop("FileUniqueID", "fileUniqueId", g.String(), func(a *Animation) *string { return &a.FileUniqueID }),
	g.Prop("Width", "width", g.Int(), func(a *Animation) *int64 { return &a.Width }),
	g.Prop("Height", "height", g.Int(), func(a *Animation) *int64 { return &a.Height }),
	g.Prop("Duration", "duration", g.Int(), func(a *Animation) *int64 { return &a.Duration }),
	g.Slice("Thumbnails", "thumbnails", g.List(ThumbnailNode), func(a *Animation) *[]*Thumbnail { return &a.Thumbnails }),
	g.Opt("FileName", "fileName", g.String(), func(a *Animation) **string { return &a.FileName }),
	g.Prop("MIMEType", "mimeType", g.String(), func(a *Animation) *string { return &a.MIMEType }),
	g.Prop("FileSize", "fileSize", g.Int(), func(a *Animation) *int64 { return &a.FileSize }),
).MustBuild()

type Sticker struct {
	FileID           string
	FileUniqueID     string
	Type             any
	Width            int64
	Height           int64
	IsAnimated       bool
	IsVideo          bool
	Thumbnails       []*Thumbnail
	Emoji            *string
	SetName          *string
	PremiumAnimation any
	MaskPosition     any
	CustomEmojiID    *string
	NeedsRepainting  *bool
	FileSize         *int64
}

var StickerNode = g.ObjectOf[Sticker]("Sticker").Field(
	g.Prop("FileID", "fileId", g.String(), func(s *Sticker) *string { return &s.FileID }),
	g.Prop("FileUniqueID", "fileUniqueId", g.String(), func(s *Sticker) *string { return &s.FileUniqueID }),
	g.Prop("Type", "type", g.Any(), func(s *Sticker) *any { return &s.Type }),
	g.Prop("Width", "width", g.Int(), func(s *Sticker) *int64 { return &s.Width }),
	g.Prop("Height", "height", g.Int(), func(s *Sticker) *int64 { return &s.Height }),
	g.Prop("IsAnimated", "isAnimated", g.Bool(), func(s *Sticker) *bool { return &s.IsAnimated }),
	g.Prop("IsVideo", "isVideo", g.Bool(), func(s *Sticker) *bool { return &s.IsVideo }),
	g.Slice("Thumbnails", "thumbnails", g.List(ThumbnailNode), func(s *Sticker) *[]*Thumbnail { return &s.Thumbnails }),
	g.Opt("Emoji", "emoji", g.String(), func(s *Sticker) **string { return &s.Emoji }),
	g.Opt("SetName", "setName", g.String(), func(s *Sticker) **string { return &s.SetName }),
	g.Prop("PremiumAnimation", "premiumAnimation", g.Optional(g.Any()), func(s *Sticker) *any { return &s.PremiumAnimation }),
	g.Prop("MaskPosition", "maskPosition", g.Optional(g.Any()), func(s *Sticker) *any { return &s.MaskPosition }),
	g.Opt("CustomEmojiID", "customEmojiId", g.String(), func(s *Sticker) **string { return &s.CustomEmojiID }),
	g.Opt("NeedsRepainting", "needsRepainting", g.Bool(), func(s *Sticker) **bool { return &s.NeedsRepainting }),
	g.Opt("FileSize", "fileSize", g.Int(), func(s *Sticker) **int64 { return &s.FileSize }),
).MustBuild()

type VideoNote struct {
	FileID       string
	FileUniqueID string
	Length       int64
	Duration     int64
	Thumbnails   []*Thumbnail
	FileName     *string
	FileSize     int64
}

var VideoNoteNode = g.ObjectOf[VideoNote]("VideoNote").Field(
	g.Prop("FileID", "fileId", g.String(), func(v *VideoNote) *string { return &v.FileID }),
	g.Prop("FileUniqueID", "fileUniqueId", g.String(), func(v *VideoNote) *string { return &v.FileUniqueID }),
	g.Prop("Length", "length", g.Int(), func(v *VideoNote) *int64 { return &v.Length }),
	g.Prop("Duration", "duration", g.Int(), func(v *VideoNote) *int64 { return &v.Duration }),
	g.Slice("Thumbnails", "thumbnails", g.List(ThumbnailNode), func(v *VideoNote) *[]*Thumbnail { return &v.Thumbnails }),
	g.Opt("FileName", "fileName", g.String(), func(v *VideoNote) **string { return &v.FileName }),
	g.Prop("FileSize", "fileSize", g.Int(), func(v *VideoNote) *int64 { return &v.FileSize }),
).MustBuild()

type Contact struct {
	PhoneNumber string
	FirstName   string
	LastName    *string
	UserID      *int64
	VCard       *string
}

var ContactNode = g.ObjectOf[Contact]("Contact").Field(
	g.Prop("PhoneNumber", "phoneNumber", g.String(), func(c *Contact) *string { return &c.PhoneNumber }),
	g.Prop("FirstName", "firstName", g.String(), func(c *Contact) *string { return &c.FirstName }),
	g.Opt("LastName", "lastName", g.String(), func(c *Contact) **string { return &c.LastName }),
	g.Opt("UserID", "userId", g.Int(), func(c *Contact) **int64 { return &c.UserID }),
	g.Opt("VCard", "vcard", g.String(), func(c *Contact) **string { return &c.VCard }),
).MustBuild()

type Dice struct {
	Emoji string
	Value int64
}

var DiceNode = g.ObjectOf[Dice]("Dice").Field(
	g.Prop("Emoji", "emoji", g.String(), func(d *Dice) *string { return &d.Emoji }),
	g.Prop("Value", "value", g.Int(), func(d *Dice) *int64 { return &d.Value }),
).MustBuild()

type Location struct {
	Latitude             float64
	Longitude            float64
	HorizontalAccuracy   *float64
	LivePeriod           *int64
	Heading              *int64
	ProximityAlertRadius *int64
}

var LocationNode = g.ObjectOf[Location]("Location").Field(
	g.Prop("Latitude", "latitude", g.Float(), func(l *Location) *float64 { return &l.Latitude }),
	g.Prop("Longitude", "longitude", g.Float(), func(l *Location) *float64 { return &l.Longitude }),
	g.Opt("HorizontalAccuracy", "horizontalAccuracy", g.Float(), func(l *Location) **float64 { return &l.HorizontalAccuracy }),
	g.Opt("LivePeriod", "livePeriod", g.Int(), func(l *Location) **int64 { return &l.LivePeriod }),
	g.Opt("Heading", "heading", g.Int(), func(l *Location) **int64 { return &l.Heading }),
	g.Opt("ProximityAlertRadius", "proximityAlertRadius", g.Int(), func(l *Location) **int64 { return &l.ProximityAlertRadius }),
).MustBuild()

type Venue struct {
	Location       *Location
	Title          string
	Address        string
	FoursquareID   *string
	FoursquareType *string
}

var VenueNode = g.ObjectOf[Venue]("Venue").Field(
	g.Prop("Location", "location", LocationNode, func(v *Venue) **Location { return &v.Location }),
	g.Prop("Title", "title", g.String(), func(v *Venue) *string { return &v.Title }),
	g.Prop("Address", "address", g.String(), func(v *Venue) *string { return &v.Address }),
	g.Opt("FoursquareID", "foursquareId", g.String(), func(v *Venue) **string { return &v.FoursquareID }),
	g.Opt("FoursquareType", "foursquareType", g.String(), func(v *Venue) **string { return &v.FoursquareType }),
).MustBuild()

type PollOption struct {
	Text       string
	Entities   []MessageEntity
	VoterCount int64
}

var PollOptionNode = g.ObjectOf[PollOption]("PollOption").Field(
	g.Prop("Text", "text", g.String(), func(p *PollOption) *string { return &p.Text }),
	g.Slice("Entities", "entities", g.List(MessageEntityNode), func(p *PollOption) *[]MessageEntity { return &p.Entities }),
	g.Prop("VoterCount", "voterCount", g.Int(), func(p *PollOption) *int64 { return &p.VoterCount }),
).MustBuild()

type Poll struct {
	ID                   string
	Question             string
	QuestionEntities     []MessageEntity
	Options              []*PollOption
	TotalVoterCount      int64
	IsClosed             bool
	IsAnonymous          bool
	Type                 any
	AllowMultipleAnswers *bool
	CorrectOptionIndex   *int64
	Explanation          *string
	ExplanationEntities  []MessageEntity
	OpenPeriod           *int64
	CloseDate            *time.Time
}

var PollNode = g.ObjectOf[Poll]("Poll").Field(
	g.Prop("ID", "id", g.String(), func(p *Poll) *string { return &p.ID }),
	g.Prop("Question", "question", g.String(), func(p *Poll) *string { return &p.Question }),
	g.Slice("QuestionEntities", "questionEntities", g.List(MessageEntityNode), func(p *Poll) *[]MessageEntity { return &p.QuestionEntities }),
	g.Slice("Options", "options", g.List(PollOptionNode), func(p *Poll) *[]*PollOption { return &p.Options }),
	g.Prop("TotalVoterCount", "totalVoterCount", g.Int(), func(p *Poll) *int64 { return &p.TotalVoterCount }),
	g.Prop("IsClosed", "isClosed", g.Bool(), func(p *Poll) *bool { return &p.IsClosed }),
	g.Prop("IsAnonymous", "isAnonymous", g.Bool(), func(p *Poll) *bool { return &p.IsAnonymous }),
	g.Prop("Type", "type", g.Any(), func(p *Poll) *any { return &p.Type }),
	g.Opt("AllowMultipleAnswers", "allowMultipleAnswers", g.Bool(), func(p *Poll) **bool { return &p.AllowMultipleAnswers }),
	g.Opt("CorrectOptionIndex", "correctOptionIndex", g.Int(), func(p *Poll) **int64 { return &p.CorrectOptionIndex }),
	g.Opt("Explanation", "explanation", g.String(), func(p *Poll) **string { return &p.Explanation }),
	g.Slice("ExplanationEntities", "explanationEntities", g.Optional(g.List(MessageEntityNode)), func(p *Poll) *[]MessageEntity { return &p.ExplanationEntities }),
	g.Opt("OpenPeriod", "openPeriod", g.Int(), func(p *Poll) **int64 { return &p.OpenPeriod }),
	g.Opt("CloseDate", "closeDate", g.Date(), func(p *Poll) **time.Time { return &p.CloseDate }),
).MustBuild()

type Game struct {
	Title        string
	Description  string
	Photo        *Photo
	Text         *string
	TextEntities []MessageEntity
	Animation    *Animation
}

var GameNode = g.ObjectOf[Game]("Game").Field(
	g.Prop("Title", "title", g.String(), func(g *Game) *string { return &g.Title }),
	g.Prop("Description", "description", g.String(), func(g *Game) *string { return &g.Description }),
	g.Prop("Photo", "photo", PhotoNode, func(g *Game) **Photo { return &g.Photo }),
	g.Opt("Text", "text", g.String(), func(g *Game) **string { return &g.Text }),
	g.Slice("TextEntities", "textEntities", g.Optional(g.List(MessageEntityNode)), func(g *Game) *[]MessageEntity { return &g.TextEntities }),
	g.Prop("Animation", "animation", g.Optional(AnimationNode), func(g *Game) **Animation { return &g.Animation }),
).MustBuild()

type Invoice struct {
	Title          string
	Description    string
	StartParameter string
	Currency       string
	TotalAmount    int64
}

var InvoiceNode = g.ObjectOf[Invoice]("Invoice").Field(
	g.Prop("Title", "title", g.String(), func(i *Invoice) *string { return &i.Title }),
	g.Prop("Description", "description", g.String(), func(i *Invoice) *string { return &i.Description }),
	g.Prop("StartParameter", "startParameter", g.String(), func(i *Invoice) *string { return &i.StartParameter }),
	g.Prop("Currency", "currency", g.String(), func(i *Invoice) *string { return &i.Currency }),
	g.Prop("TotalAmount", "totalAmount", g.Int(), func(i *Invoice) *int64 { return &i.TotalAmount }),
).MustBuild()

type GiveawayParameters struct {
	BoostedChatID       int64
	AdditionalChatIDs   []int64
	WinnerSelectionDate time.Time
	OnlyNewMembers      bool
	Countries           []string
}

var GiveawayParametersNode = g.ObjectOf[GiveawayParameters]("GiveawayParameters").Field(
	g.Prop("BoostedChatID", "boostedChatId", g.Int(), func(g *GiveawayParameters) *int64 { return &g.BoostedChatID }),
	g.Slice("AdditionalChatIDs", "additionalChatIds", g.List(g.Int()), func(g *GiveawayParameters) *[]int64 { return &g.AdditionalChatIDs }),
	g.Prop("WinnerSelectionDate", "winnerSelectionDate", g.Date(), func(g *GiveawayParameters) *time.Time { return &g.WinnerSelectionDate }),
	g.Prop("OnlyNewMembers", "onlyNewMembers", g.Bool(), func(g *GiveawayParameters) *bool { return &g.OnlyNewMembers }),
	g.Slice("Countries", "countries", g.List(g.String()), func(g *GiveawayParameters) *[]string { return &g.Countries }),
).MustBuild()

type Giveaway struct {
	Parameters  *GiveawayParameters
	WinnerCount int64
	MonthCount  int64
}

var GiveawayNode = g.ObjectOf[Giveaway]("Giveaway").Field(
	g.Prop("Parameters", "parameters", GiveawayParametersNode, func(g *Giveaway) **GiveawayParameters { return &g.Parameters }),
	g.Prop("WinnerCount", "winnerCount", g.Int(), func(g *Giveaway) *int64 { return &g.WinnerCount }),
	g.Prop("MonthCount", "monthCount", g.Int(), func(g *Giveaway) *int64 { return &g.MonthCount }),
).MustBuild()

type ShippingAddress struct {
	CountryCode string
	State       string
	City        string
	StreetLine1 string
	StreetLine2 string
	PostCode    string
}

var ShippingAddressNode = g.ObjectOf[ShippingAddress]("ShippingAddress").Field(
	g.Prop("CountryCode", "countryCode", g.String(), func(s *ShippingAddress) *string { return &s.CountryCode }),
	g.Prop("State", "state", g.String(), func(s *ShippingAddress) *string { return &s.State }),
	g.Prop("City", "city", g.String(), func(s *ShippingAddress) *string { return &s.City }),
	g.Prop("StreetLine1", "streetLine1", g.String(), func(s *ShippingAddress) *string { return &s.StreetLine1 }),
	g.Prop("StreetLine2", "streetLine2", g.String(), func(s *ShippingAddress) *string { return &s.StreetLine2 }),
	g.Prop("PostCode", "postCode", g.String(), func(s *ShippingAddress) *string { return &s.PostCode }),
).MustBuild()

type OrderInfo struct {
	Name            *string
	PhoneNumber     *string
	Email           *string
	ShippingAddress *ShippingAddress
}

var OrderInfoNode = g.ObjectOf[OrderInfo]("OrderInfo").Field(
	g.Opt("Name", "name", g.String(), func(o *OrderInfo) **string { return &o.Name }),
	g.Opt("PhoneNumber", "phoneNumber", g.String(), func(o *OrderInfo) **string { return &o.PhoneNumber }),
	g.Opt("Email", "email", g.String(), func(o *OrderInfo) **string { return &o.Email }),
	g.Prop("ShippingAddress", "shippingAddress", g.Optional(ShippingAddressNode), func(o *OrderInfo) **ShippingAddress { return &o.ShippingAddress }),
).MustBuild()

type SuccessfulPayment struct {
	Currency                string
	TotalAmount             int64
	InvoicePayload          string
	TelegramPaymentChargeID string
	ProviderPaymentChargeID string
	ShippingOptionID        *string
	OrderInfo               *OrderInfo
}

var SuccessfulPaymentNode = g.ObjectOf[SuccessfulPayment]("SuccessfulPayment").Field(
	g.Prop("Currency", "currency", g.String(), func(s *SuccessfulPayment) *string { return &s.Currency }),
	g.Prop("TotalAmount", "totalAmount", g.Int(), func(s *SuccessfulPayment) *int64 { return &s.TotalAmount }),
	g.Prop("InvoicePayload", "invoicePayload", g.String(), func(s *SuccessfulPayment) *string { return &s.InvoicePayload }),
	g.Prop("TelegramPaymentChargeID", "telegramPaymentChargeId", g.String(), func(s *SuccessfulPayment) *string { return &s.TelegramPaymentChargeID }),
	g.Prop("ProviderPaymentChargeID", "providerPaymentChargeId", g.String(), func(s *SuccessfulPayment) *string { return &s.ProviderPaymentChargeID }),
	g.Opt("ShippingOptionID", "shippingOptionId", g.String(), func(s *SuccessfulPayment) **string { return &s.ShippingOptionID }),
	g.Prop("OrderInfo", "orderInfo", g.Optional(OrderInfoNode), func(s *SuccessfulPayment) **OrderInfo { return &s.OrderInfo }),
).MustBuild()

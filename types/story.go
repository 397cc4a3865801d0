package types

import (
	"time"

	g "github.com/reoring/kruto/dsl"
)

type StoryReference struct {
	ChatID  int64
	StoryID int64
}

var StoryReferenceNode = g.ObjectOf[StoryReference]("StoryReference").Field(
	g.Prop("ChatID", "chatId", g.Int(), func(s *StoryReference) *int64 { return &s.ChatID }),
	g.Prop("StoryID", "storyId", g.Int(), func(s *StoryReference) *int64 { return &s.StoryID }),
).MustBuild()

// StoryContent is the media of a story. Variants are *StoryContentPhoto,
// *StoryContentVideo and *StoryContentUnsupported.
type StoryContent interface {
	storyContent()
}

func (*StoryContentPhoto) storyContent()       {}
func (*StoryContentVideo) storyContent()       {}
func (*StoryContentUnsupported) storyContent() {}

type StoryContentPhoto struct {
	Photo *Photo
}

var StoryContentPhotoNode = g.ObjectOf[StoryContentPhoto]("StoryContentPhoto").
	Field(
		g.Prop("Photo", "photo", PhotoNode, func(s *StoryContentPhoto) **Photo { return &s.Photo }),
	).
	Discriminate("photo").
	MustBuild()

type StoryContentVideo struct {
	Video *Video
}

var StoryContentVideoNode = g.ObjectOf[StoryContentVideo]("StoryContentVideo").
	Field(
		g.Prop("Video", "video", VideoNode, func(s *StoryContentVideo) **Video { return &s.Video }),
	).
	Discriminate("video").
	MustBuild()

type StoryContentUnsupported struct {
	Unsupported bool
}

var StoryContentUnsupportedNode = g.ObjectOf[StoryContentUnsupported]("StoryContentUnsupported").
	Field(
		g.Prop("Unsupported", "unsupported", g.Literal(true), func(s *StoryContentUnsupported) *bool { return &s.Unsupported }),
	).
	Discriminate("unsupported").
	MustBuild()

var StoryContentNode = g.Union("StoryContent", StoryContentPhotoNode, StoryContentVideoNode, StoryContentUnsupportedNode)

type StoryReaction struct {
	Reaction Reaction
	Count    int64
	Chosen   bool
}

var StoryReactionNode = g.ObjectOf[StoryReaction]("StoryReaction").Field(
	g.Prop("Reaction", "reaction", ReactionNode, func(s *StoryReaction) *Reaction { return &s.Reaction }),
	g.Prop("Count", "count", g.Int(), func(s *StoryReaction) *int64 { return &s.Count }),
	g.Prop("Chosen", "chosen", g.Bool(), func(s *StoryReaction) *bool { return &s.Chosen }),
).MustBuild()

type StoryInteractions struct {
	Reactions     []*StoryReaction
	ReactionCount *int64
	Views         int64
	Forwards      int64
}

var StoryInteractionsNode = g.ObjectOf[StoryInteractions]("StoryInteractions").Field(
	g.Slice("Reactions", "reactions", g.Optional(g.List(StoryReactionNode)), func(s *StoryInteractions) *[]*StoryReaction { return &s.Reactions }),
	g.Opt("ReactionCount", "reactionCount", g.Int(), func(s *StoryInteractions) **int64 { return &s.ReactionCount }),
	g.Prop("Views", "views", g.Int(), func(s *StoryInteractions) *int64 { return &s.Views }),
	g.Prop("Forwards", "forwards", g.Int(), func(s *StoryInteractions) *int64 { return &s.Forwards }),
).MustBuild()

type StoryInteractiveAreaPosition struct {
	XPercentage      float64
	YPercentage      float64
	WidthPercentage  float64
	HeightPercentage float64
	RotationAngle    float64
}

var StoryInteractiveAreaPositionNode = g.ObjectOf[StoryInteractiveAreaPosition]("StoryInteractiveAreaPosition").Field(
	g.Prop("XPercentage", "xPercentage", g.Float(), func(s *StoryInteractiveAreaPosition) *float64 { return &s.XPercentage }),
	g.Prop("YPercentage", "yPercentage", g.Float(), func(s *StoryInteractiveAreaPosition) *float64 { return &s.YPercentage }),
	g.Prop("WidthPercentage", "widthPercentage", g.Float(), func(s *StoryInteractiveAreaPosition) *float64 { return &s.WidthPercentage }),
	g.Prop("HeightPercentage", "heightPercentage", g.Float(), func(s *StoryInteractiveAreaPosition) *float64 { return &s.HeightPercentage }),
	g.Prop("RotationAngle", "rotationAngle", g.Float(), func(s *StoryInteractiveAreaPosition) *float64 { return &s.RotationAngle }),
).MustBuild()

// StoryInteractiveArea is a tappable region of a story, resolved on the key
// that carries its payload.
type StoryInteractiveArea interface {
	storyArea()
}

func (*StoryInteractiveAreaLocation) storyArea() {}
func (*StoryInteractiveAreaVenue) storyArea()    {}
func (*StoryInteractiveAreaReaction) storyArea() {}
func (*StoryInteractiveAreaMessage) storyArea()  {}

type StoryInteractiveAreaLocation struct {
	Position *StoryInteractiveAreaPosition
	Location *Location
}

var StoryInteractiveAreaLocationNode = g.ObjectOf[StoryInteractiveAreaLocation]("StoryInteractiveAreaLocation").
	Field(
		g.Prop("Position", "position", StoryInteractiveAreaPositionNode, func(s *StoryInteractiveAreaLocation) **StoryInteractiveAreaPosition { return &s.Position }),
		g.Prop("Location", "location", LocationNode, func(s *StoryInteractiveAreaLocation) **Location { return &s.Location }),
	).
	Discriminate("location").
	MustBuild()

type StoryInteractiveAreaVenue struct {
	Position *StoryInteractiveAreaPosition
	Venue    *Venue
}

var StoryInteractiveAreaVenueNode = g.ObjectOf[StoryInteractiveAreaVenue]("StoryInteractiveAreaVenue").
	Field(
		g.Prop("Position", "position", StoryInteractiveAreaPositionNode, func(s *StoryInteractiveAreaVenue) **StoryInteractiveAreaPosition { return &s.Position }),
		g.Prop("Venue", "venue", VenueNode, func(s *StoryInteractiveAreaVenue) **Venue { return &s.Venue }),
	).
	Discriminate("venue").
	MustBuild()

type StoryInteractiveAreaReaction struct {
	Position *StoryInteractiveAreaPosition
	Reaction Reaction
	Count    *int64
	Dark     *bool
	Flipped  *bool
}

var StoryInteractiveAreaReactionNode = g.ObjectOf[StoryInteractiveAreaReaction]("StoryInteractiveAreaReaction").
	Field(
		g.Prop("Position", "position", StoryInteractiveAreaPositionNode, func(s *StoryInteractiveAreaReaction) **StoryInteractiveAreaPosition { return &s.Position }),
		g.Prop("Reaction", "reaction", ReactionNode, func(s *StoryInteractiveAreaReaction) *Reaction { return &s.Reaction }),
		g.Opt("Count", "count", g.Int(), func(s *StoryInteractiveAreaReaction) **int64 { return &s.Count }),
		g.Opt("Dark", "dark", g.Bool(), func(s *StoryInteractiveAreaReaction) **bool { return &s.Dark }),
		g.Opt("Flipped", "flipped", g.Bool(), func(s *StoryInteractiveAreaReaction) **bool { return &s.Flipped }),
	).
	Discriminate("reaction").
	MustBuild()

type StoryInteractiveAreaMessage struct {
	Position         *StoryInteractiveAreaPosition
	MessageReference *MessageReference
}

var StoryInteractiveAreaMessageNode = g.ObjectOf[StoryInteractiveAreaMessage]("StoryInteractiveAreaMessage").
	Field(
		g.Prop("Position", "position", StoryInteractiveAreaPositionNode, func(s *StoryInteractiveAreaMessage) **StoryInteractiveAreaPosition { return &s.Position }),
		g.Prop("MessageReference", "messageReference", MessageReferenceNode, func(s *StoryInteractiveAreaMessage) **MessageReference { return &s.MessageReference }),
	).
	Discriminate("messageReference").
	MustBuild()

var StoryInteractiveAreaNode = g.Union("StoryInteractiveArea",
	StoryInteractiveAreaLocationNode,
	StoryInteractiveAreaVenueNode,
	StoryInteractiveAreaReactionNode,
	StoryInteractiveAreaMessageNode,
)

// StoryPrivacy names who can see a story.
type StoryPrivacy interface {
	storyPrivacy()
}

func (*StoryPrivacyEveryone) storyPrivacy()     {}
func (*StoryPrivacyContacts) storyPrivacy()     {}
func (*StoryPrivacyCloseFriends) storyPrivacy() {}
func (*StoryPrivacyOnly) storyPrivacy()         {}

type StoryPrivacyEveryone struct {
	EveryoneExcept []int64
}

var StoryPrivacyEveryoneNode = g.ObjectOf[StoryPrivacyEveryone]("StoryPrivacyEveryone").
	Field(
		g.Slice("EveryoneExcept", "everyoneExcept", g.List(g.Int()), func(s *StoryPrivacyEveryone) *[]int64 { return &s.EveryoneExcept }),
	).
	Discriminate("everyoneExcept").
	MustBuild()

type StoryPrivacyContacts struct {
	ContactsExcept []int64
}

var StoryPrivacyContactsNode = g.ObjectOf[StoryPrivacyContacts]("StoryPrivacyContacts").
	Field(
		g.Slice("ContactsExcept", "contactsExcept", g.List(g.Int()), func(s *StoryPrivacyContacts) *[]int64 { return &s.ContactsExcept }),
	).
	Discriminate("contactsExcept").
	MustBuild()

type StoryPrivacyCloseFriends struct {
	CloseFriends bool
}

var StoryPrivacyCloseFriendsNode = g.ObjectOf[StoryPrivacyCloseFriends]("StoryPrivacyCloseFriends").
	Field(
		g.Prop("CloseFriends", "closeFriends", g.Literal(true), func(s *StoryPrivacyCloseFriends) *bool { return &s.CloseFriends }),
	).
	Discriminate("closeFriends").
	MustBuild()

type StoryPrivacyOnly struct {
	Only []int64
}

var StoryPrivacyOnlyNode = g.ObjectOf[StoryPrivacyOnly]("StoryPrivacyOnly").
	Field(
		g.Slice("Only", "only", g.List(g.Int()), func(s *StoryPrivacyOnly) *[]int64 { return &s.Only }),
	).
	Discriminate("only").
	MustBuild()

var StoryPrivacyNode = g.Union("StoryPrivacy",
	StoryPrivacyEveryoneNode,
	StoryPrivacyContactsNode,
	StoryPrivacyCloseFriendsNode,
	StoryPrivacyOnlyNode,
)

type Story struct {
	Out              bool
	ID               int64
	Chat             ChatP
	Date             time.Time
	Edited           bool
	Content          StoryContent
	InteractiveAreas []StoryInteractiveArea
	Highlighted      bool
	Interactions     *StoryInteractions
	Privacy          StoryPrivacy
	Caption          *string
	CaptionEntities  []MessageEntity
}

var StoryNode = g.ObjectOf[Story]("Story").Field(
	g.Prop("Out", "out", g.Bool(), func(s *Story) *bool { return &s.Out }),
	g.Prop("ID", "id", g.Int(), func(s *Story) *int64 { return &s.ID }),
	g.Prop("Chat", "chat", ChatPNode, func(s *Story) *ChatP { return &s.Chat }),
	g.Prop("Date", "date", g.Date(), func(s *Story) *time.Time { return &s.Date }),
	g.Prop("Edited", "edited", g.Bool(), func(s *Story) *bool { return &s.Edited }),
	g.Prop("Content", "content", StoryContentNode, func(s *Story) *StoryContent { return &s.Content }),
	g.Slice("InteractiveAreas", "interactiveAreas", g.List(StoryInteractiveAreaNode), func(s *Story) *[]StoryInteractiveArea { return &s.InteractiveAreas }),
	g.Prop("Highlighted", "highlighted", g.Bool(), func(s *Story) *bool { return &s.Highlighted }),
	g.Prop("Interactions", "interactions", g.Optional(StoryInteractionsNode), func(s *Story) **StoryInteractions { return &s.Interactions }),
	g.Prop("Privacy", "privacy", g.Optional(StoryPrivacyNode), func(s *Story) *StoryPrivacy { return &s.Privacy }),
	g.Opt("Caption", "caption", g.String(), func(s *Story) **string { return &s.Caption }),
	g.Slice("CaptionEntities", "captionEntities", g.Optional(g.List(MessageEntityNode)), func(s *Story) *[]MessageEntity { return &s.CaptionEntities }),
).MustBuild()

package types

import (
	"time"

	g "github.com/reoring/kruto/dsl"
)

type BusinessConnection struct {
	ID        string
	User      *User
	Date      time.Time
	CanReply  bool
	IsEnabled bool
}

var BusinessConnectionNode = g.ObjectOf[BusinessConnection]("BusinessConnection").Field(
	g.Prop("ID", "id", g.String(), func(b *BusinessConnection) *string { return &b.ID }),
	g.Prop("User", "user", UserNode, func(b *BusinessConnection) **User { return &b.User }),
	g.Prop("Date", "date", g.Date(), func(b *BusinessConnection) *time.Time { return &b.Date }),
	g.Prop("CanReply", "canReply", g.Bool(), func(b *BusinessConnection) *bool { return &b.CanReply }),
	g.Prop("IsEnabled", "isEnabled", g.Bool(), func(b *BusinessConnection) *bool { return &b.IsEnabled }),
).MustBuild()

// VideoChat is a group call. Variants are *VideoChatActive,
// *VideoChatScheduled and *VideoChatEnded, resolved on the literal "type" tag.
type VideoChat interface {
	videoChat()
}

func (*VideoChatActive) videoChat()    {}
func (*VideoChatScheduled) videoChat() {}
func (*VideoChatEnded) videoChat()     {}

type VideoChatActive struct {
	ID               string
	Type             string
	Title            string
	LiveStream       bool
	ParticipantCount int64
	Recording        bool
}

var VideoChatActiveNode = g.ObjectOf[VideoChatActive]("VideoChatActive").
	Field(
		g.Prop("ID", "id", g.String(), func(v *VideoChatActive) *string { return &v.ID }),
		g.Prop("Type", "type", g.Literal("active"), func(v *VideoChatActive) *string { return &v.Type }),
		g.Prop("Title", "title", g.String(), func(v *VideoChatActive) *string { return &v.Title }),
		g.Prop("LiveStream", "liveStream", g.Bool(), func(v *VideoChatActive) *bool { return &v.LiveStream }),
		g.Prop("ParticipantCount", "participantCount", g.Int(), func(v *VideoChatActive) *int64 { return &v.ParticipantCount }),
		g.Prop("Recording", "recording", g.Bool(), func(v *VideoChatActive) *bool { return &v.Recording }),
	).
	Discriminate("type").
	MustBuild()

type VideoChatScheduled struct {
	ID               string
	Type             string
	Title            string
	LiveStream       bool
	ParticipantCount int64
	ScheduledFor     time.Time
}

var VideoChatScheduledNode = g.ObjectOf[VideoChatScheduled]("VideoChatScheduled").
	Field(
		g.Prop("ID", "id", g.String(), func(v *VideoChatScheduled) *string { return &v.ID }),
		g.Prop("Type", "type", g.Literal("scheduled"), func(v *VideoChatScheduled) *string { return &v.Type }),
		g.Prop("Title", "title", g.String(), func(v *VideoChatScheduled) *string { return &v.Title }),
		g.Prop("LiveStream", "liveStream", g.Bool(), func(v *VideoChatScheduled) *bool { return &v.LiveStream }),
		g.Prop("ParticipantCount", "participantCount", g.Int(), func(v *VideoChatScheduled) *int64 { return &v.ParticipantCount }),
		g.Prop("ScheduledFor", "scheduledFor", g.Date(), func(v *VideoChatScheduled) *time.Time { return &v.ScheduledFor }),
	).
	Discriminate("type").
	MustBuild()

type VideoChatEnded struct {
	ID       string
	Type     string
	Duration int64
}

var VideoChatEndedNode = g.ObjectOf[VideoChatEnded]("VideoChatEnded").
	Field(
		g.Prop("ID", "id", g.String(), func(v *VideoChatEnded) *string { return &v.ID }),
		g.Prop("Type", "type", g.Literal("ended"), func(v *VideoChatEnded) *string { return &v.Type }),
		g.Prop("Duration", "duration", g.Int(), func(v *VideoChatEnded) *int64 { return &v.Duration }),
	).
	Discriminate("type").
	MustBuild()

var VideoChatNode = g.Union("VideoChat", VideoChatActiveNode, VideoChatScheduledNode, VideoChatEndedNode)

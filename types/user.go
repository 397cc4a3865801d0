package types

import (
	"fmt"
	"strconv"

	g "github.com/reoring/kruto/dsl"
)

type User struct {
	attached

	ID                    int64
	Color                 int64
	IsBot                 bool
	FirstName             string
	LastName              *string
	Username              *string
	Also                  []string
	Photo                 *ChatPhoto
	LanguageCode          *string
	IsScam                bool
	IsFake                bool
	IsPremium             bool
	IsVerified            bool
	IsSupport             bool
	AddedToAttachmentMenu bool
}

// FullName joins the first and last name.
func (u *User) FullName() string {
	if u.LastName != nil && *u.LastName != "" {
		return u.FirstName + " " + *u.LastName
	}
	return u.FirstName
}

// Mention renders a link to the user in the given parse mode. An empty name
// falls back to the first name; any mode other than Markdown renders HTML.
func (u *User) Mention(name string, mode ParseMode) string {
	if name == "" {
		name = u.FirstName
	}
	id := strconv.FormatInt(u.ID, 10)
	if mode == ParseModeMarkdown {
		return fmt.Sprintf("[%s](tg://user?id=%s)", name, id)
	}
	return fmt.Sprintf("<a href=tg://user?id=%s>%s</a>", id, name)
}

// ProfileLink returns the public profile URL, or "" without a username.
func (u *User) ProfileLink() string {
	if u.Username == nil || *u.Username == "" {
		return ""
	}
	return "https://t.me/" + *u.Username
}

type ChatPhoto struct {
	SmallFileID       string
	SmallFileUniqueID string
	BigFileID         string
	BigFileUniqueID   string
	HasVideo          bool
	Personal          bool
}

type RestrictionReason struct {
	Platform string
	Reason   string
	Text     string
}

type Birthday struct {
	Day   int64
	Month int64
	Year  *int64
}

var ChatPhotoNode = g.ObjectOf[ChatPhoto]("ChatPhoto").Field(
	g.Prop("SmallFileID", "smallFileId", g.String(), func(p *ChatPhoto) *string { return &p.SmallFileID }),
	g.Prop("SmallFileUniqueID", "smallFileUniqueId", g.String(), func(p *ChatPhoto) *string { return &p.SmallFileUniqueID }),
	g.Prop("BigFileID", "bigFileId", g.String(), func(p *ChatPhoto) *string { return &p.BigFileID }),
	g.Prop("BigFileUniqueID", "bigFileUniqueId", g.String(), func(p *ChatPhoto) *string { return &p.BigFileUniqueID }),
	g.Prop("HasVideo", "hasVideo", g.Bool(), func(p *ChatPhoto) *bool { return &p.HasVideo }),
	g.Prop("Personal", "personal", g.Bool(), func(p *ChatPhoto) *bool { return &p.Personal }),
).MustBuild()

var RestrictionReasonNode = g.ObjectOf[RestrictionReason]("RestrictionReason").Field(
	g.Prop("Platform", "platform", g.String(), func(r *RestrictionReason) *string { return &r.Platform }),
	g.Prop("Reason", "reason", g.String(), func(r *RestrictionReason) *string { return &r.Reason }),
	g.Prop("Text", "text", g.String(), func(r *RestrictionReason) *string { return &r.Text }),
).MustBuild()

var BirthdayNode = g.ObjectOf[Birthday]("Birthday").Field(
	g.Prop("Day", "day", g.Int(), func(b *Birthday) *int64 { return &b.Day }),
	g.Prop("Month", "month", g.Int(), func(b *Birthday) *int64 { return &b.Month }),
	g.Opt("Year", "year", g.Int(), func(b *Birthday) **int64 { return &b.Year }),
).MustBuild()

var UserNode = g.ObjectOf[User]("User").Field(
	g.Prop("ID", "id", g.Int(), func(u *User) *int64 { return &u.ID }),
	g.Prop("Color", "color", g.Int(), func(u *User) *int64 { return &u.Color }),
	g.Prop("IsBot", "isBot", g.Bool(), func(u *User) *bool { return &u.IsBot }),
	g.Prop("FirstName", "firstName", g.String(), func(u *User) *string { return &u.FirstName }),
	g.Opt("LastName", "lastName", g.String(), func(u *User) **string { return &u.LastName }),
	g.Opt("Username", "username", g.String(), func(u *User) **string { return &u.Username }),
	g.Slice("Also", "also", g.Optional(g.List(g.String())), func(u *User) *[]string { return &u.Also }),
	g.Prop("Photo", "photo", g.Optional(ChatPhotoNode), func(u *User) **ChatPhoto { return &u.Photo }),
	g.Opt("LanguageCode", "languageCode", g.String(), func(u *User) **string { return &u.LanguageCode }),
	g.Prop("IsScam", "isScam", g.Bool(), func(u *User) *bool { return &u.IsScam }),
	g.Prop("IsFake", "isFake", g.Bool(), func(u *User) *bool { return &u.IsFake }),
	g.Prop("IsPremium", "isPremium", g.Bool(), func(u *User) *bool { return &u.IsPremium }),
	g.Prop("IsVerified", "isVerified", g.Bool(), func(u *User) *bool { return &u.IsVerified }),
	g.Prop("IsSupport", "isSupport", g.Bool(), func(u *User) *bool { return &u.IsSupport }),
	g.Prop("AddedToAttachmentMenu", "addedToAttachmentMenu", g.Bool(), func(u *User) *bool { return &u.AddedToAttachmentMenu }),
).MustBuild()

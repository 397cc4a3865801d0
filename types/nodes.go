package types

import (
	"maps"
	"slices"

	kruto "github.com/reoring/kruto"
)

var named = map[string]kruto.Node{}

func init() {
	for _, n := range []kruto.Node{
		UpdateNode, MessageNode, MessageEntityNode, ChatPNode, ChatMemberNode,
		ReactionNode, ReplyMarkupNode, InlineKeyboardButtonNode, StoryContentNode,
		StoryInteractiveAreaNode, StoryPrivacyNode, VideoChatNode,
		UserNode, ChatListItemNode, CallbackQueryNode, InlineQueryNode,
		ChosenInlineResultNode, PreCheckoutQueryNode, ChatMemberUpdatedNode,
		InviteLinkNode, StoryNode, BusinessConnectionNode, MessageTextNode,
	} {
		named[nodeName(n)] = n
	}
}

func nodeName(n kruto.Node) string {
	switch t := n.(type) {
	case *kruto.Union:
		return t.Name
	case *kruto.Object:
		return t.Name
	}
	return ""
}

// NodeByName returns a top-level node such as "Update" or "Message".
func NodeByName(name string) (kruto.Node, bool) {
	n, ok := named[name]
	return n, ok
}

// NodeNames lists the names accepted by NodeByName, sorted.
func NodeNames() []string {
	return slices.Sorted(maps.Keys(named))
}

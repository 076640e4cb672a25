package tool

import "log/slog"

// RegisterLinkedIn adds the full LinkedIn tool set to a registry. All tools
// dial a fresh client through the given factory on each invocation.
func RegisterLinkedIn(reg *Registry, dial Factory, log *slog.Logger) {
	b := base{Dial: dial, Log: log}
	for _, t := range []Tool{
		&FeedPostsTool{b},
		&SearchJobsTool{b},
		&ShareUpdateTool{b},
		&ProfileTool{b},
		&CompanyTool{b},
		&ConnectionsTool{b},
		&JoinGroupTool{b},
		&GroupPostsTool{b},
		&SendInvitationTool{b},
		&PendingInvitationsTool{b},
		&SendMessageTool{b},
		&ConversationsTool{b},
		&ManageCompanyPageTool{b},
		&PostAnalyticsTool{b},
	} {
		reg.Register(t)
	}
}

package tool

import (
	"context"

	"github.com/tidwall/gjson"
)

// Tool is the interface every exposed tool must implement.
type Tool interface {
	Name() string
	Description() string
	Parameters() map[string]any // JSON Schema
	Execute(ctx context.Context, params map[string]any) (string, error)
}

// Client is the LinkedIn collaborator surface the tools depend on.
// *linkedin.Client satisfies it; tests substitute a stub.
type Client interface {
	GetFeedPosts(ctx context.Context, limit, offset int) ([]gjson.Result, error)
	SearchJobs(ctx context.Context, keywords, location string, limit, offset int) ([]gjson.Result, error)
	GetJob(ctx context.Context, jobID string) (gjson.Result, error)
	Post(ctx context.Context, comment, visibility string) (gjson.Result, error)
	GetProfile(ctx context.Context, publicID string) (gjson.Result, error)
	GetCompany(ctx context.Context, companyID string) (gjson.Result, error)
	GetConnections(ctx context.Context, limit int) ([]gjson.Result, error)
	JoinGroup(ctx context.Context, groupID string) (gjson.Result, error)
	GetGroupPosts(ctx context.Context, groupID string, limit int) ([]gjson.Result, error)
	SendInvitation(ctx context.Context, publicID, message string) (gjson.Result, error)
	GetInvitations(ctx context.Context, limit int) ([]gjson.Result, error)
	SendMessage(ctx context.Context, recipients []string, message string) (gjson.Result, error)
	GetConversations(ctx context.Context, limit int) ([]gjson.Result, error)
	UpdateCompanyPage(ctx context.Context, companyID string, data map[string]any) (gjson.Result, error)
	CompanyShare(ctx context.Context, companyID, content string) (gjson.Result, error)
	GetCompanyAnalytics(ctx context.Context, companyID string) (gjson.Result, error)
	GetPostStats(ctx context.Context, postID string) (gjson.Result, error)
}

// Factory dials a fresh client for a single tool invocation. Every
// invocation is independent; nothing is shared across calls.
type Factory func(ctx context.Context) (Client, error)

package linkedin

import (
	"context"
	"net/url"

	"github.com/tidwall/gjson"
)

// GetFeedPosts returns entries from the member's home feed.
func (c *Client) GetFeedPosts(ctx context.Context, limit, offset int) ([]gjson.Result, error) {
	res, err := c.apiGet(ctx, "feed/updatesV2", countQuery(limit, offset))
	if err != nil {
		return nil, err
	}
	return elements(res, limit), nil
}

// SearchJobs returns job posting summaries matching the keywords, optionally
// restricted to a location.
func (c *Client) SearchJobs(ctx context.Context, keywords, location string, limit, offset int) ([]gjson.Result, error) {
	q := countQuery(limit, offset)
	q.Set("keywords", keywords)
	if location != "" {
		q.Set("locationName", location)
	}
	res, err := c.apiGet(ctx, "jobs/search", q)
	if err != nil {
		return nil, err
	}
	return elements(res, limit), nil
}

// GetJob fetches the full posting for a job id.
func (c *Client) GetJob(ctx context.Context, jobID string) (gjson.Result, error) {
	return c.apiGet(ctx, "jobs/jobPostings/"+url.PathEscape(jobID), nil)
}

// Post publishes a share on the member's own feed. Visibility is one of
// "anyone", "connections-only" or "public".
func (c *Client) Post(ctx context.Context, comment, visibility string) (gjson.Result, error) {
	return c.apiPost(ctx, "contentcreation/normShares", map[string]any{
		"commentaryV2": map[string]any{"text": comment},
		"visibleToConnectionsOnly": visibility == "connections-only",
		"externalAudienceProviders": []any{},
	})
}

// GetProfile fetches a profile by public identifier. An empty publicID
// resolves to the authenticated member's own profile.
func (c *Client) GetProfile(ctx context.Context, publicID string) (gjson.Result, error) {
	if publicID == "" {
		publicID = "me"
	}
	res, err := c.apiGet(ctx, "identity/profiles/"+url.PathEscape(publicID)+"/profileView", nil)
	if err != nil {
		return gjson.Result{}, err
	}
	// profileView nests the core fields under "profile"; tolerate flat
	// responses too.
	if p := res.Get("profile"); p.Exists() {
		return p, nil
	}
	return res, nil
}

// GetCompany fetches a company by universal name.
func (c *Client) GetCompany(ctx context.Context, companyID string) (gjson.Result, error) {
	q := url.Values{"q": {"universalName"}, "universalName": {companyID}}
	res, err := c.apiGet(ctx, "organization/companies", q)
	if err != nil {
		return gjson.Result{}, err
	}
	if items := res.Get("elements").Array(); len(items) > 0 {
		return items[0], nil
	}
	return res, nil
}

// GetConnections lists the member's first-degree connections.
func (c *Client) GetConnections(ctx context.Context, limit int) ([]gjson.Result, error) {
	res, err := c.apiGet(ctx, "relationships/connections", countQuery(limit, 0))
	if err != nil {
		return nil, err
	}
	return elements(res, limit), nil
}

// JoinGroup requests membership in a group.
func (c *Client) JoinGroup(ctx context.Context, groupID string) (gjson.Result, error) {
	return c.apiPost(ctx, "groups/groupMemberships", map[string]any{
		"group":  "urn:li:group:" + groupID,
		"status": "MEMBER",
	})
}

// GetGroupPosts lists recent posts in a group.
func (c *Client) GetGroupPosts(ctx context.Context, groupID string, limit int) ([]gjson.Result, error) {
	res, err := c.apiGet(ctx, "groups/"+url.PathEscape(groupID)+"/updates", countQuery(limit, 0))
	if err != nil {
		return nil, err
	}
	return elements(res, limit), nil
}

// SendInvitation sends a connection invitation to a public identifier, with
// an optional note.
func (c *Client) SendInvitation(ctx context.Context, publicID, message string) (gjson.Result, error) {
	payload := map[string]any{
		"invitee": map[string]any{
			"com.linkedin.voyager.growth.invitation.InviteeProfile": map[string]any{
				"profileId": publicID,
			},
		},
	}
	if message != "" {
		payload["message"] = message
	}
	return c.apiPost(ctx, "growth/normInvitations", payload)
}

// GetInvitations lists pending incoming invitations.
func (c *Client) GetInvitations(ctx context.Context, limit int) ([]gjson.Result, error) {
	res, err := c.apiGet(ctx, "relationships/invitationViews", countQuery(limit, 0))
	if err != nil {
		return nil, err
	}
	return elements(res, limit), nil
}

// SendMessage delivers a direct message to one or more recipients.
func (c *Client) SendMessage(ctx context.Context, recipients []string, message string) (gjson.Result, error) {
	return c.apiPost(ctx, "messaging/conversations?action=create", map[string]any{
		"conversationCreate": map[string]any{
			"recipients": recipients,
			"eventCreate": map[string]any{
				"value": map[string]any{
					"com.linkedin.voyager.messaging.create.MessageCreate": map[string]any{
						"body": message,
					},
				},
			},
		},
	})
}

// GetConversations lists the member's most recent conversations.
func (c *Client) GetConversations(ctx context.Context, limit int) ([]gjson.Result, error) {
	res, err := c.apiGet(ctx, "messaging/conversations", countQuery(limit, 0))
	if err != nil {
		return nil, err
	}
	return elements(res, limit), nil
}

// UpdateCompanyPage applies field updates to a managed company page.
func (c *Client) UpdateCompanyPage(ctx context.Context, companyID string, data map[string]any) (gjson.Result, error) {
	return c.apiPost(ctx, "organization/companies/"+url.PathEscape(companyID), data)
}

// CompanyShare publishes a post as a managed company page.
func (c *Client) CompanyShare(ctx context.Context, companyID, content string) (gjson.Result, error) {
	return c.apiPost(ctx, "contentcreation/normShares", map[string]any{
		"author":       "urn:li:organization:" + companyID,
		"commentaryV2": map[string]any{"text": content},
	})
}

// GetCompanyAnalytics fetches page-level statistics for a managed company.
func (c *Client) GetCompanyAnalytics(ctx context.Context, companyID string) (gjson.Result, error) {
	return c.apiGet(ctx, "organization/companies/"+url.PathEscape(companyID)+"/analytics", nil)
}

// GetPostStats fetches engagement counters for a single post.
func (c *Client) GetPostStats(ctx context.Context, postID string) (gjson.Result, error) {
	return c.apiGet(ctx, "feed/socialActivityCounts/"+url.PathEscape(postID), nil)
}

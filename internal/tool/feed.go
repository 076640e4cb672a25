package tool

import (
	"context"
	"fmt"
	"strings"
)

// FeedPostsTool retrieves the member's home feed.
//
// A client-construction failure propagates to the host; only the feed
// fetch itself is folded into the text result.
type FeedPostsTool struct {
	base
}

func (t *FeedPostsTool) Name() string        { return "get_feed_posts" }
func (t *FeedPostsTool) Description() string { return "Retrieve LinkedIn feed posts." }
func (t *FeedPostsTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"limit": map[string]any{
				"type":        "integer",
				"description": "Maximum number of posts to return.",
				"default":     10,
			},
			"offset": map[string]any{
				"type":        "integer",
				"description": "Number of posts to skip.",
				"default":     0,
			},
		},
	}
}

func (t *FeedPostsTool) Execute(ctx context.Context, params map[string]any) (string, error) {
	limit := getInt(params, "limit", 10)
	offset := getInt(params, "offset", 0)

	client, err := t.connect(ctx)
	if err != nil {
		return "", err
	}

	items, err := client.GetFeedPosts(ctx, limit, offset)
	if err != nil {
		return t.errorText("get feed posts", err), nil
	}

	var posts strings.Builder
	for _, item := range items {
		fmt.Fprintf(&posts, "Post by %s: %s\n",
			item.Get("author_name").String(), item.Get("content").String())
	}
	return posts.String(), nil
}

// ShareUpdateTool publishes a post on the member's own feed.
type ShareUpdateTool struct {
	base
}

func (t *ShareUpdateTool) Name() string { return "create_share_update" }
func (t *ShareUpdateTool) Description() string {
	return "Crear una actualización/post en LinkedIn."
}
func (t *ShareUpdateTool) Parameters() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"comment"},
		"properties": map[string]any{
			"comment": map[string]any{
				"type":        "string",
				"description": "El contenido del post.",
			},
			"visibility_code": map[string]any{
				"type":        "string",
				"description": "Código de visibilidad del post.",
				"enum":        []string{"anyone", "connections-only", "public"},
				"default":     "anyone",
			},
		},
	}
}

func (t *ShareUpdateTool) Execute(ctx context.Context, params map[string]any) (string, error) {
	comment := getString(params, "comment")
	visibility := getString(params, "visibility_code")
	if visibility == "" {
		visibility = "anyone"
	}

	client, err := t.connect(ctx)
	if err != nil {
		return t.errorText("crear el post", err), nil
	}

	post, err := client.Post(ctx, comment, visibility)
	if err != nil {
		return t.errorText("crear el post", err), nil
	}
	return fmt.Sprintf("Post creado exitosamente: %s", post.Raw), nil
}

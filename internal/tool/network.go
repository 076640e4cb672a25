package tool

import (
	"context"
	"fmt"
	"strings"
)

// ConnectionsTool lists first-degree connections.
type ConnectionsTool struct {
	base
}

func (t *ConnectionsTool) Name() string        { return "get_connections" }
func (t *ConnectionsTool) Description() string { return "Obtener lista de conexiones." }
func (t *ConnectionsTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"limit": map[string]any{
				"type":        "integer",
				"description": "Número máximo de conexiones a retornar.",
				"default":     10,
			},
		},
	}
}

func (t *ConnectionsTool) Execute(ctx context.Context, params map[string]any) (string, error) {
	limit := getInt(params, "limit", 10)

	client, err := t.connect(ctx)
	if err != nil {
		return t.errorText("obtener conexiones", err), nil
	}

	connections, err := client.GetConnections(ctx, limit)
	if err != nil {
		return t.errorText("obtener conexiones", err), nil
	}

	var result strings.Builder
	result.WriteString("Conexiones:\n")
	for _, conn := range connections {
		fmt.Fprintf(&result, "- %s %s: %s\n",
			conn.Get("firstName").String(), conn.Get("lastName").String(), conn.Get("headline").String())
	}
	return result.String(), nil
}

// JoinGroupTool requests membership in a group.
type JoinGroupTool struct {
	base
}

func (t *JoinGroupTool) Name() string        { return "join_group" }
func (t *JoinGroupTool) Description() string { return "Unirse a un grupo de LinkedIn." }
func (t *JoinGroupTool) Parameters() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"group_id"},
		"properties": map[string]any{
			"group_id": map[string]any{
				"type":        "string",
				"description": "ID del grupo.",
			},
		},
	}
}

func (t *JoinGroupTool) Execute(ctx context.Context, params map[string]any) (string, error) {
	groupID := getString(params, "group_id")

	client, err := t.connect(ctx)
	if err != nil {
		return t.errorText("unirse al grupo", err), nil
	}

	result, err := client.JoinGroup(ctx, groupID)
	if err != nil {
		return t.errorText("unirse al grupo", err), nil
	}
	return fmt.Sprintf("Unido al grupo exitosamente: %s", result.Raw), nil
}

// GroupPostsTool lists recent posts in a group.
type GroupPostsTool struct {
	base
}

func (t *GroupPostsTool) Name() string        { return "get_group_posts" }
func (t *GroupPostsTool) Description() string { return "Obtener posts de un grupo." }
func (t *GroupPostsTool) Parameters() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"group_id"},
		"properties": map[string]any{
			"group_id": map[string]any{
				"type":        "string",
				"description": "ID del grupo.",
			},
			"limit": map[string]any{
				"type":        "integer",
				"description": "Número máximo de posts a retornar.",
				"default":     10,
			},
		},
	}
}

func (t *GroupPostsTool) Execute(ctx context.Context, params map[string]any) (string, error) {
	groupID := getString(params, "group_id")
	limit := getInt(params, "limit", 10)

	client, err := t.connect(ctx)
	if err != nil {
		return t.errorText("obtener posts del grupo", err), nil
	}

	posts, err := client.GetGroupPosts(ctx, groupID, limit)
	if err != nil {
		return t.errorText("obtener posts del grupo", err), nil
	}

	var result strings.Builder
	fmt.Fprintf(&result, "Posts del grupo %s:\n", groupID)
	for _, post := range posts {
		fmt.Fprintf(&result, "- %s: %s\n",
			post.Get("author").String(), post.Get("content").String())
	}
	return result.String(), nil
}

// SendInvitationTool sends a connection invitation.
type SendInvitationTool struct {
	base
}

func (t *SendInvitationTool) Name() string        { return "send_invitation" }
func (t *SendInvitationTool) Description() string { return "Enviar invitación de conexión." }
func (t *SendInvitationTool) Parameters() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"public_id"},
		"properties": map[string]any{
			"public_id": map[string]any{
				"type":        "string",
				"description": "ID público del perfil a invitar.",
			},
			"message": map[string]any{
				"type":        "string",
				"description": "Mensaje opcional para la invitación.",
			},
		},
	}
}

func (t *SendInvitationTool) Execute(ctx context.Context, params map[string]any) (string, error) {
	publicID := getString(params, "public_id")
	message := getString(params, "message")

	client, err := t.connect(ctx)
	if err != nil {
		return t.errorText("enviar invitación", err), nil
	}

	result, err := client.SendInvitation(ctx, publicID, message)
	if err != nil {
		return t.errorText("enviar invitación", err), nil
	}
	return fmt.Sprintf("Invitación enviada exitosamente: %s", result.Raw), nil
}

// PendingInvitationsTool lists pending incoming invitations.
type PendingInvitationsTool struct {
	base
}

func (t *PendingInvitationsTool) Name() string        { return "get_pending_invitations" }
func (t *PendingInvitationsTool) Description() string { return "Obtener invitaciones pendientes." }
func (t *PendingInvitationsTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"limit": map[string]any{
				"type":        "integer",
				"description": "Número máximo de invitaciones a retornar.",
				"default":     10,
			},
		},
	}
}

func (t *PendingInvitationsTool) Execute(ctx context.Context, params map[string]any) (string, error) {
	limit := getInt(params, "limit", 10)

	client, err := t.connect(ctx)
	if err != nil {
		return t.errorText("obtener invitaciones pendientes", err), nil
	}

	invitations, err := client.GetInvitations(ctx, limit)
	if err != nil {
		return t.errorText("obtener invitaciones pendientes", err), nil
	}

	var result strings.Builder
	result.WriteString("Invitaciones pendientes:\n")
	for _, inv := range invitations {
		fmt.Fprintf(&result, "- De: %s %s\n",
			inv.Get("fromMember.firstName").String(), inv.Get("fromMember.lastName").String())
	}
	return result.String(), nil
}

package tool

import (
	"context"
	"fmt"
	"strings"
)

// SendMessageTool delivers a direct message to one or more recipients.
type SendMessageTool struct {
	base
}

func (t *SendMessageTool) Name() string        { return "send_message" }
func (t *SendMessageTool) Description() string { return "Enviar mensaje directo." }
func (t *SendMessageTool) Parameters() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"recipients", "message"},
		"properties": map[string]any{
			"recipients": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Lista de IDs de destinatarios.",
			},
			"message": map[string]any{
				"type":        "string",
				"description": "Contenido del mensaje.",
			},
		},
	}
}

func (t *SendMessageTool) Execute(ctx context.Context, params map[string]any) (string, error) {
	recipients := getStringSlice(params, "recipients")
	message := getString(params, "message")

	client, err := t.connect(ctx)
	if err != nil {
		return t.errorText("enviar mensaje", err), nil
	}

	result, err := client.SendMessage(ctx, recipients, message)
	if err != nil {
		return t.errorText("enviar mensaje", err), nil
	}
	return fmt.Sprintf("Mensaje enviado exitosamente: %s", result.Raw), nil
}

// ConversationsTool lists the member's most recent conversations.
type ConversationsTool struct {
	base
}

func (t *ConversationsTool) Name() string        { return "get_conversations" }
func (t *ConversationsTool) Description() string { return "Obtener conversaciones recientes." }
func (t *ConversationsTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"limit": map[string]any{
				"type":        "integer",
				"description": "Número máximo de conversaciones a retornar.",
				"default":     10,
			},
		},
	}
}

func (t *ConversationsTool) Execute(ctx context.Context, params map[string]any) (string, error) {
	limit := getInt(params, "limit", 10)

	client, err := t.connect(ctx)
	if err != nil {
		return t.errorText("obtener conversaciones", err), nil
	}

	conversations, err := client.GetConversations(ctx, limit)
	if err != nil {
		return t.errorText("obtener conversaciones", err), nil
	}

	var result strings.Builder
	result.WriteString("Conversaciones recientes:\n")
	for _, conv := range conversations {
		fmt.Fprintf(&result, "- Con: %s %s\n",
			conv.Get("participants.0.firstName").String(), conv.Get("participants.0.lastName").String())
	}
	return result.String(), nil
}

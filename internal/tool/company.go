package tool

import (
	"context"
	"fmt"
)

// ManageCompanyPageTool dispatches one of three company-page operations.
type ManageCompanyPageTool struct {
	base
}

func (t *ManageCompanyPageTool) Name() string        { return "manage_company_page" }
func (t *ManageCompanyPageTool) Description() string { return "Gestionar página de empresa." }
func (t *ManageCompanyPageTool) Parameters() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"company_id", "action"},
		"properties": map[string]any{
			"company_id": map[string]any{
				"type":        "string",
				"description": "ID de la empresa.",
			},
			"action": map[string]any{
				"type":        "string",
				"description": "Acción a realizar.",
				"enum":        []string{"update", "post", "get_analytics"},
			},
			"data": map[string]any{
				"type":        "object",
				"description": "Datos adicionales según la acción.",
			},
		},
	}
}

func (t *ManageCompanyPageTool) Execute(ctx context.Context, params map[string]any) (string, error) {
	companyID := getString(params, "company_id")
	action := getString(params, "action")
	data := getMap(params, "data")

	// Unknown actions never reach LinkedIn.
	switch action {
	case "update", "post", "get_analytics":
	default:
		return "Acción no válida", nil
	}

	client, err := t.connect(ctx)
	if err != nil {
		return t.errorText("la operación de página de empresa", err), nil
	}

	var result string
	switch action {
	case "update":
		res, err := client.UpdateCompanyPage(ctx, companyID, data)
		if err != nil {
			return t.errorText("la operación de página de empresa", err), nil
		}
		result = res.Raw
	case "post":
		content, _ := data["content"].(string)
		res, err := client.CompanyShare(ctx, companyID, content)
		if err != nil {
			return t.errorText("la operación de página de empresa", err), nil
		}
		result = res.Raw
	case "get_analytics":
		res, err := client.GetCompanyAnalytics(ctx, companyID)
		if err != nil {
			return t.errorText("la operación de página de empresa", err), nil
		}
		result = res.Raw
	}
	return fmt.Sprintf("Operación completada exitosamente: %s", result), nil
}

// PostAnalyticsTool fetches engagement counters for a single post.
type PostAnalyticsTool struct {
	base
}

func (t *PostAnalyticsTool) Name() string { return "get_post_analytics" }
func (t *PostAnalyticsTool) Description() string {
	return "Obtener estadísticas de una publicación."
}
func (t *PostAnalyticsTool) Parameters() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"post_id"},
		"properties": map[string]any{
			"post_id": map[string]any{
				"type":        "string",
				"description": "ID de la publicación.",
			},
		},
	}
}

func (t *PostAnalyticsTool) Execute(ctx context.Context, params map[string]any) (string, error) {
	postID := getString(params, "post_id")

	client, err := t.connect(ctx)
	if err != nil {
		return t.errorText("obtener estadísticas del post", err), nil
	}

	stats, err := client.GetPostStats(ctx, postID)
	if err != nil {
		return t.errorText("obtener estadísticas del post", err), nil
	}

	engagement := stats.Get("engagementRate").String()
	if engagement == "" {
		engagement = "0%"
	}

	return fmt.Sprintf(`Estadísticas del post %s:
Likes: %d
Comentarios: %d
Compartidos: %d
Impresiones: %d
Engagement: %s
`,
		postID,
		stats.Get("numLikes").Int(),
		stats.Get("numComments").Int(),
		stats.Get("numShares").Int(),
		stats.Get("impressionCount").Int(),
		engagement), nil
}

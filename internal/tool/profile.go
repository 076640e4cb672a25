package tool

import (
	"context"
	"fmt"
)

// ProfileTool fetches a member profile, defaulting to the authenticated
// member's own.
type ProfileTool struct {
	base
}

func (t *ProfileTool) Name() string { return "get_profile" }
func (t *ProfileTool) Description() string {
	return "Obtener información del perfil de LinkedIn."
}
func (t *ProfileTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"public_id": map[string]any{
				"type":        "string",
				"description": "ID público del perfil. Si no se proporciona usa el perfil actual.",
			},
		},
	}
}

func (t *ProfileTool) Execute(ctx context.Context, params map[string]any) (string, error) {
	publicID := getString(params, "public_id")

	client, err := t.connect(ctx)
	if err != nil {
		return t.errorText("obtener el perfil", err), nil
	}

	profile, err := client.GetProfile(ctx, publicID)
	if err != nil {
		return t.errorText("obtener el perfil", err), nil
	}

	return fmt.Sprintf(`Nombre: %s %s
Título: %s
Ubicación: %s
Industria: %s
`,
		profile.Get("firstName").String(),
		profile.Get("lastName").String(),
		profile.Get("headline").String(),
		profile.Get("locationName").String(),
		profile.Get("industryName").String()), nil
}

// CompanyTool fetches a company page.
type CompanyTool struct {
	base
}

func (t *CompanyTool) Name() string { return "get_company" }
func (t *CompanyTool) Description() string {
	return "Obtener información de una empresa en LinkedIn."
}
func (t *CompanyTool) Parameters() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"company_id"},
		"properties": map[string]any{
			"company_id": map[string]any{
				"type":        "string",
				"description": "ID de la empresa en LinkedIn.",
			},
		},
	}
}

func (t *CompanyTool) Execute(ctx context.Context, params map[string]any) (string, error) {
	companyID := getString(params, "company_id")

	client, err := t.connect(ctx)
	if err != nil {
		return t.errorText("obtener información de la empresa", err), nil
	}

	company, err := client.GetCompany(ctx, companyID)
	if err != nil {
		return t.errorText("obtener información de la empresa", err), nil
	}

	return fmt.Sprintf(`Nombre: %s
Industria: %s
Sitio Web: %s
Tamaño: %s - %s empleados
Descripción: %s
`,
		company.Get("name").String(),
		company.Get("industryName").String(),
		company.Get("companyPageUrl").String(),
		company.Get("staffCountRange.start").String(),
		company.Get("staffCountRange.end").String(),
		company.Get("description").String()), nil
}

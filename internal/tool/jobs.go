package tool

import (
	"context"
	"fmt"
	"strings"
)

// SearchJobsTool searches job postings and expands each hit into its full
// posting.
//
// Unlike the other tools this one has no error guard: any delegated
// failure is returned to the host as-is.
type SearchJobsTool struct {
	base
}

func (t *SearchJobsTool) Name() string        { return "search_jobs" }
func (t *SearchJobsTool) Description() string { return "Search for jobs on LinkedIn." }
func (t *SearchJobsTool) Parameters() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"keywords"},
		"properties": map[string]any{
			"keywords": map[string]any{
				"type":        "string",
				"description": "Job search keywords.",
			},
			"limit": map[string]any{
				"type":        "integer",
				"description": "Maximum number of job results.",
				"default":     3,
			},
			"offset": map[string]any{
				"type":        "integer",
				"description": "Number of results to skip.",
				"default":     0,
			},
			"location": map[string]any{
				"type":        "string",
				"description": "Optional location filter.",
				"default":     "",
			},
		},
	}
}

func (t *SearchJobsTool) Execute(ctx context.Context, params map[string]any) (string, error) {
	keywords := getString(params, "keywords")
	location := getString(params, "location")
	limit := getInt(params, "limit", 3)
	offset := getInt(params, "offset", 0)

	client, err := t.connect(ctx)
	if err != nil {
		return "", err
	}

	jobs, err := client.SearchJobs(ctx, keywords, location, limit, offset)
	if err != nil {
		return "", err
	}

	var results strings.Builder
	for _, job := range jobs {
		jobID := trailingID(job.Get("entityUrn").String())
		detail, err := client.GetJob(ctx, jobID)
		if err != nil {
			return "", err
		}

		title := detail.Get("title").String()
		company := detail.Get("companyDetails.*.companyResolutionResult.name").String()
		description := detail.Get("description.text").String()
		jobLocation := detail.Get("formattedLocation").String()

		fmt.Fprintf(&results, "Job by %s at %s in %s: %s\n\n", title, company, jobLocation, description)
	}
	return results.String(), nil
}

// trailingID extracts the trailing segment of a colon-delimited resource
// name, e.g. "urn:li:job:12345" -> "12345".
func trailingID(urn string) string {
	if i := strings.LastIndex(urn, ":"); i >= 0 {
		return urn[i+1:]
	}
	return urn
}

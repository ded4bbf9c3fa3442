package sendgrid

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// GenerationDynamic is the template generation using handlebars-style
// runtime substitution; GenerationLegacy is the older static kind. The
// generation is immutable after creation.
const (
	GenerationDynamic = "dynamic"
	GenerationLegacy  = "legacy"
)

// CreateTemplateParams describes template creation. When Subject and
// HTMLContent are set, a first active version is created in a second call.
type CreateTemplateParams struct {
	Name         string
	Generation   string
	Subject      string
	HTMLContent  string
	PlainContent string
}

// TemplateVersionParams describes a template version create or update.
type TemplateVersionParams struct {
	Name                 string
	Subject              string
	HTMLContent          string
	PlainContent         string
	GeneratePlainContent *bool
	Active               *int
	Editor               string
	TestData             string
}

type templateCreateRequest struct {
	Name       string `json:"name"`
	Generation string `json:"generation"`
}

type templateUpdateRequest struct {
	Name string `json:"name"`
}

type templateVersionRequest struct {
	TemplateID           string `json:"template_id,omitempty"`
	Name                 string `json:"name"`
	Subject              string `json:"subject"`
	HTMLContent          string `json:"html_content,omitempty"`
	PlainContent         string `json:"plain_content,omitempty"`
	GeneratePlainContent *bool  `json:"generate_plain_content,omitempty"`
	Active               *int   `json:"active,omitempty"`
	Editor               string `json:"editor,omitempty"`
	TestData             string `json:"test_data,omitempty"`
}

type templateListResponse struct {
	Result   []Template `json:"result"`
	Metadata struct {
		Next string `json:"next"`
	} `json:"_metadata"`
}

// CreateTemplate creates a template and, when content params are present,
// its first version marked active. Two sequential calls; when the version
// call fails the freshly created shell is deleted so no orphan is left
// behind. If that compensating delete also fails the returned error names
// the orphaned template id for manual cleanup.
func (c *Client) CreateTemplate(ctx context.Context, p CreateTemplateParams) (Template, error) {
	generation := p.Generation
	if generation == "" {
		generation = GenerationDynamic
	}

	var tpl Template
	err := c.do(ctx, http.MethodPost, "/templates", nil, templateCreateRequest{
		Name:       p.Name,
		Generation: generation,
	}, &tpl)
	if err != nil {
		return Template{}, err
	}

	if p.Subject == "" && p.HTMLContent == "" {
		return tpl, nil
	}

	active := 1
	version, err := c.CreateTemplateVersion(ctx, tpl.ID, TemplateVersionParams{
		Name:         p.Name + " v1",
		Subject:      p.Subject,
		HTMLContent:  p.HTMLContent,
		PlainContent: p.PlainContent,
		Active:       &active,
	})
	if err != nil {
		if delErr := c.DeleteTemplate(ctx, tpl.ID); delErr != nil {
			return Template{}, fmt.Errorf("create first version: %w (template %s left orphaned: %v)", err, tpl.ID, delErr)
		}
		return Template{}, fmt.Errorf("create first version: %w", err)
	}

	tpl.Versions = append(tpl.Versions, version)
	return tpl, nil
}

// GetTemplate fetches a template with its versions.
func (c *Client) GetTemplate(ctx context.Context, templateID string) (Template, error) {
	var tpl Template
	if err := c.do(ctx, http.MethodGet, "/templates/"+templateID, nil, nil, &tpl); err != nil {
		return Template{}, err
	}
	return tpl, nil
}

// DeleteTemplate deletes a template and all its versions.
func (c *Client) DeleteTemplate(ctx context.Context, templateID string) error {
	return c.do(ctx, http.MethodDelete, "/templates/"+templateID, nil, nil, nil)
}

// UpdateTemplate renames a template.
func (c *Client) UpdateTemplate(ctx context.Context, templateID, name string) (Template, error) {
	var tpl Template
	err := c.do(ctx, http.MethodPatch, "/templates/"+templateID, nil, templateUpdateRequest{Name: name}, &tpl)
	if err != nil {
		return Template{}, err
	}
	return tpl, nil
}

// DuplicateTemplate clones a template under a new id. An empty name lets the
// provider pick one.
func (c *Client) DuplicateTemplate(ctx context.Context, templateID, name string) (Template, error) {
	var body any
	if name != "" {
		body = templateUpdateRequest{Name: name}
	}
	var tpl Template
	if err := c.do(ctx, http.MethodPost, "/templates/"+templateID, nil, body, &tpl); err != nil {
		return Template{}, err
	}
	return tpl, nil
}

// ListTemplatesParams filters and paginates the template listing.
type ListTemplatesParams struct {
	// Generations filters to "legacy", "dynamic", or both when empty.
	Generations []string
	// PageSize caps the page; the provider default applies when zero.
	PageSize int
	// PageToken continues a previous listing. Empty starts from the top.
	PageToken string
}

// ListTemplates returns one page of templates. Callers loop on
// NextPageToken to exhaust the listing; there is no auto-pagination.
func (c *Client) ListTemplates(ctx context.Context, p ListTemplatesParams) (TemplatePage, error) {
	query := url.Values{}
	if len(p.Generations) > 0 {
		query.Set("generations", strings.Join(p.Generations, ","))
	}
	pageSize := p.PageSize
	if pageSize <= 0 {
		pageSize = 100
	}
	query.Set("page_size", strconv.Itoa(pageSize))
	if p.PageToken != "" {
		query.Set("page_token", p.PageToken)
	}

	var resp templateListResponse
	if err := c.do(ctx, http.MethodGet, "/templates", query, nil, &resp); err != nil {
		return TemplatePage{}, err
	}
	return TemplatePage{
		Templates:     resp.Result,
		NextPageToken: nextPageToken(resp.Metadata.Next),
	}, nil
}

// nextPageToken extracts the page_token from the _metadata.next URL the
// provider returns, or empty when there is no further page.
func nextPageToken(next string) string {
	if next == "" {
		return ""
	}
	parsed, err := url.Parse(next)
	if err != nil {
		return ""
	}
	return parsed.Query().Get("page_token")
}

// CreateTemplateVersion creates a new version under a template. Setting
// Active to 1 makes it the live version; the provider deactivates the
// previous one.
func (c *Client) CreateTemplateVersion(ctx context.Context, templateID string, p TemplateVersionParams) (TemplateVersion, error) {
	var version TemplateVersion
	err := c.do(ctx, http.MethodPost, "/templates/"+templateID+"/versions", nil, templateVersionRequest{
		TemplateID:           templateID,
		Name:                 p.Name,
		Subject:              p.Subject,
		HTMLContent:          p.HTMLContent,
		PlainContent:         p.PlainContent,
		GeneratePlainContent: p.GeneratePlainContent,
		Active:               p.Active,
		Editor:               p.Editor,
		TestData:             p.TestData,
	}, &version)
	if err != nil {
		return TemplateVersion{}, err
	}
	return version, nil
}

// GetTemplateVersion fetches one version including its content bodies.
func (c *Client) GetTemplateVersion(ctx context.Context, templateID, versionID string) (TemplateVersion, error) {
	var version TemplateVersion
	path := fmt.Sprintf("/templates/%s/versions/%s", templateID, versionID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &version); err != nil {
		return TemplateVersion{}, err
	}
	return version, nil
}

// UpdateTemplateVersion replaces a version's editable fields.
func (c *Client) UpdateTemplateVersion(ctx context.Context, templateID, versionID string, p TemplateVersionParams) (TemplateVersion, error) {
	var version TemplateVersion
	path := fmt.Sprintf("/templates/%s/versions/%s", templateID, versionID)
	err := c.do(ctx, http.MethodPatch, path, nil, templateVersionRequest{
		Name:                 p.Name,
		Subject:              p.Subject,
		HTMLContent:          p.HTMLContent,
		PlainContent:         p.PlainContent,
		GeneratePlainContent: p.GeneratePlainContent,
		Active:               p.Active,
		Editor:               p.Editor,
		TestData:             p.TestData,
	}, &version)
	if err != nil {
		return TemplateVersion{}, err
	}
	return version, nil
}

// DeleteTemplateVersion deletes one version of a template.
func (c *Client) DeleteTemplateVersion(ctx context.Context, templateID, versionID string) error {
	path := fmt.Sprintf("/templates/%s/versions/%s", templateID, versionID)
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// ActivateTemplateVersion makes a version the live one for its template.
// The provider implicitly deactivates the previously active version; the
// single-active invariant is enforced remotely, not here.
func (c *Client) ActivateTemplateVersion(ctx context.Context, templateID, versionID string) (TemplateVersion, error) {
	var version TemplateVersion
	path := fmt.Sprintf("/templates/%s/versions/%s/activate", templateID, versionID)
	if err := c.do(ctx, http.MethodPost, path, nil, nil, &version); err != nil {
		return TemplateVersion{}, err
	}
	return version, nil
}

package sendgrid

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

type listCreateRequest struct {
	Name string `json:"name"`
}

type listResultResponse struct {
	Result []List `json:"result"`
}

// CreateList creates a marketing contact list.
func (c *Client) CreateList(ctx context.Context, name string) (List, error) {
	var list List
	if err := c.do(ctx, http.MethodPost, "/marketing/lists", nil, listCreateRequest{Name: name}, &list); err != nil {
		return List{}, err
	}
	return list, nil
}

// GetList fetches a list by id. A missing id surfaces as an APIError with
// status 404.
func (c *Client) GetList(ctx context.Context, listID string) (List, error) {
	var list List
	if err := c.do(ctx, http.MethodGet, "/marketing/lists/"+listID, nil, nil, &list); err != nil {
		return List{}, err
	}
	return list, nil
}

// DeleteList deletes a list. Contacts on the list are not deleted.
func (c *Client) DeleteList(ctx context.Context, listID string) error {
	return c.do(ctx, http.MethodDelete, "/marketing/lists/"+listID, nil, nil, nil)
}

// ListLists returns every marketing list on the account.
func (c *Client) ListLists(ctx context.Context) ([]List, error) {
	var resp listResultResponse
	if err := c.do(ctx, http.MethodGet, "/marketing/lists", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Result, nil
}

// AddContactsToList upserts the given emails as contacts and attaches them
// to the list. Membership is a set union, so re-adding is idempotent.
// Returns the provider job id.
func (c *Client) AddContactsToList(ctx context.Context, listID string, emails []string) (string, error) {
	contacts := make([]Contact, len(emails))
	for i, email := range emails {
		contacts[i] = Contact{Email: email}
	}
	var resp contactsJobResponse
	err := c.do(ctx, http.MethodPut, "/marketing/contacts", nil, contactsUpsertRequest{
		ListIDs:  []string{listID},
		Contacts: contacts,
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.JobID, nil
}

// RemoveContactsFromList detaches contacts from a list without deleting
// them. The membership endpoint takes contact ids, so emails are resolved
// through search first. Emails with no matching contact are ignored; when
// none match this is a no-op with a single round trip.
func (c *Client) RemoveContactsFromList(ctx context.Context, listID string, emails []string) error {
	contacts, err := c.SearchContactsByEmails(ctx, emails)
	if err != nil {
		return err
	}
	if len(contacts) == 0 {
		return nil
	}
	ids := make([]string, 0, len(contacts))
	for _, contact := range contacts {
		if contact.ID != "" {
			ids = append(ids, contact.ID)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	query := url.Values{"contact_ids": []string{strings.Join(ids, ",")}}
	path := fmt.Sprintf("/marketing/lists/%s/contacts", listID)
	return c.do(ctx, http.MethodDelete, path, query, nil, nil)
}

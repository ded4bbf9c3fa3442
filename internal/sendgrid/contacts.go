package sendgrid

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Contact writes are processed asynchronously by SendGrid: mutating calls
// return a job id, and the search index converges later. Callers needing
// read-your-writes must poll the search endpoints themselves.

type contactsUpsertRequest struct {
	ListIDs  []string  `json:"list_ids,omitempty"`
	Contacts []Contact `json:"contacts"`
}

type contactsJobResponse struct {
	JobID string `json:"job_id"`
}

type contactsSearchRequest struct {
	Query string `json:"query"`
}

type contactsSearchResponse struct {
	Result []Contact `json:"result"`
}

// AddContact upserts a marketing contact keyed by email. Calling twice with
// the same email updates the existing record. Returns the provider job id.
func (c *Client) AddContact(ctx context.Context, contact Contact) (string, error) {
	var resp contactsJobResponse
	err := c.do(ctx, http.MethodPut, "/marketing/contacts", nil, contactsUpsertRequest{
		Contacts: []Contact{contact},
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.JobID, nil
}

// DeleteContacts removes contacts by email. The delete endpoint operates on
// contact ids, so the emails are first resolved through the search-by-emails
// endpoint; unknown emails are skipped. Two round trips.
func (c *Client) DeleteContacts(ctx context.Context, emails []string) (string, error) {
	contacts, err := c.SearchContactsByEmails(ctx, emails)
	if err != nil {
		return "", err
	}
	if len(contacts) == 0 {
		return "", nil
	}
	ids := make([]string, 0, len(contacts))
	for _, contact := range contacts {
		if contact.ID != "" {
			ids = append(ids, contact.ID)
		}
	}
	query := url.Values{"ids": []string{strings.Join(ids, ",")}}
	var resp contactsJobResponse
	if err := c.do(ctx, http.MethodDelete, "/marketing/contacts", query, nil, &resp); err != nil {
		return "", err
	}
	return resp.JobID, nil
}

// ListAllContacts returns every contact that has an email address.
func (c *Client) ListAllContacts(ctx context.Context) ([]Contact, error) {
	var resp contactsSearchResponse
	err := c.do(ctx, http.MethodPost, "/marketing/contacts/search", nil, contactsSearchRequest{
		Query: "email IS NOT NULL",
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Result, nil
}

// ContactsByList returns the contacts that are members of the given list.
func (c *Client) ContactsByList(ctx context.Context, listID string) ([]Contact, error) {
	var resp contactsSearchResponse
	err := c.do(ctx, http.MethodPost, "/marketing/contacts/search", nil, contactsSearchRequest{
		Query: fmt.Sprintf("CONTAINS(list_ids, '%s')", listID),
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Result, nil
}

type contactsByEmailsRequest struct {
	Emails []string `json:"emails"`
}

type contactsByEmailsResponse struct {
	Result map[string]struct {
		Contact Contact `json:"contact"`
	} `json:"result"`
}

// SearchContactsByEmails resolves emails to full contact records. Emails
// without a matching contact are absent from the result.
func (c *Client) SearchContactsByEmails(ctx context.Context, emails []string) ([]Contact, error) {
	var resp contactsByEmailsResponse
	err := c.do(ctx, http.MethodPost, "/marketing/contacts/search/emails", nil, contactsByEmailsRequest{
		Emails: emails,
	}, &resp)
	if err != nil {
		return nil, err
	}
	contacts := make([]Contact, 0, len(resp.Result))
	for _, entry := range resp.Result {
		if entry.Contact.ID != "" || entry.Contact.Email != "" {
			contacts = append(contacts, entry.Contact)
		}
	}
	return contacts, nil
}

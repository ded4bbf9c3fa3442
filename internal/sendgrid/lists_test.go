package sendgrid

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

func TestCreateList(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/marketing/lists" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": "list-1", "name": "Newsletter", "contact_count": 0}`))
	})

	list, err := client.CreateList(context.Background(), "Newsletter")
	if err != nil {
		t.Fatalf("CreateList failed: %v", err)
	}
	if list.ID != "list-1" || list.Name != "Newsletter" {
		t.Errorf("unexpected list: %+v", list)
	}
}

func TestAddContactsToList(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/marketing/contacts" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req contactsUpsertRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if len(req.ListIDs) != 1 || req.ListIDs[0] != "list-1" {
			t.Errorf("expected list id on upsert, got %+v", req.ListIDs)
		}
		if len(req.Contacts) != 2 {
			t.Errorf("expected 2 contacts, got %d", len(req.Contacts))
		}
		w.WriteHeader(http.StatusAccepted)
		w.Write([]byte(`{"job_id": "job-7"}`))
	})

	jobID, err := client.AddContactsToList(context.Background(), "list-1", []string{"a@example.com", "b@example.com"})
	if err != nil {
		t.Fatalf("AddContactsToList failed: %v", err)
	}
	if jobID != "job-7" {
		t.Errorf("expected job id job-7, got %q", jobID)
	}
}

func TestRemoveContactsFromList(t *testing.T) {
	var removed string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/marketing/contacts/search/emails":
			w.Write([]byte(`{"result": {"a@example.com": {"contact": {"id": "c-1", "email": "a@example.com"}}}}`))
		case r.Method == http.MethodDelete && r.URL.Path == "/marketing/lists/list-1/contacts":
			removed = r.URL.Query().Get("contact_ids")
			w.WriteHeader(http.StatusAccepted)
			w.Write([]byte(`{"job_id": "job-9"}`))
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	})

	if err := client.RemoveContactsFromList(context.Background(), "list-1", []string{"a@example.com"}); err != nil {
		t.Fatalf("RemoveContactsFromList failed: %v", err)
	}
	if removed != "c-1" {
		t.Errorf("expected contact_ids=c-1, got %q", removed)
	}
}

func TestRemoveContactsFromListNoMatches(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"result": {}}`))
	})

	if err := client.RemoveContactsFromList(context.Background(), "list-1", []string{"ghost@example.com"}); err != nil {
		t.Fatalf("RemoveContactsFromList failed: %v", err)
	}
	if calls != 1 {
		t.Errorf("expected a single round trip, got %d", calls)
	}
}

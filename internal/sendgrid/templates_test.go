package sendgrid

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
)

func TestCreateTemplateShellOnly(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.Method != http.MethodPost || r.URL.Path != "/templates" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req templateCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Generation != GenerationDynamic {
			t.Errorf("expected dynamic generation default, got %q", req.Generation)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": "t-1", "name": "Welcome", "generation": "dynamic"}`))
	})

	tpl, err := client.CreateTemplate(context.Background(), CreateTemplateParams{Name: "Welcome"})
	if err != nil {
		t.Fatalf("CreateTemplate failed: %v", err)
	}
	if tpl.ID != "t-1" {
		t.Errorf("unexpected template: %+v", tpl)
	}
	if calls != 1 {
		t.Errorf("shell-only create must be a single call, got %d", calls)
	}
}

func TestCreateTemplateWithFirstVersion(t *testing.T) {
	var versionReq templateVersionRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/templates":
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id": "t-1", "name": "Welcome", "generation": "dynamic"}`))
		case r.Method == http.MethodPost && r.URL.Path == "/templates/t-1/versions":
			if err := json.NewDecoder(r.Body).Decode(&versionReq); err != nil {
				t.Fatalf("decode version request: %v", err)
			}
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id": "v-1", "template_id": "t-1", "active": 1, "name": "Welcome v1"}`))
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	})

	tpl, err := client.CreateTemplate(context.Background(), CreateTemplateParams{
		Name:        "Welcome",
		Subject:     "Welcome aboard",
		HTMLContent: "<h1>Hi</h1>",
	})
	if err != nil {
		t.Fatalf("CreateTemplate failed: %v", err)
	}
	if versionReq.Active == nil || *versionReq.Active != 1 {
		t.Error("first version must be created active")
	}
	if versionReq.Name != "Welcome v1" {
		t.Errorf("unexpected version name: %q", versionReq.Name)
	}
	if len(tpl.Versions) != 1 || tpl.Versions[0].ID != "v-1" {
		t.Errorf("expected version attached to template, got %+v", tpl.Versions)
	}
}

func TestCreateTemplateCompensatesOnVersionFailure(t *testing.T) {
	deleted := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/templates":
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id": "t-1", "name": "Welcome", "generation": "dynamic"}`))
		case r.Method == http.MethodPost && r.URL.Path == "/templates/t-1/versions":
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"errors": [{"message": "subject is invalid"}]}`))
		case r.Method == http.MethodDelete && r.URL.Path == "/templates/t-1":
			deleted = true
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	})

	_, err := client.CreateTemplate(context.Background(), CreateTemplateParams{
		Name:        "Welcome",
		Subject:     "bad",
		HTMLContent: "<h1>Hi</h1>",
	})
	if err == nil {
		t.Fatal("expected version failure to propagate")
	}
	if !deleted {
		t.Error("expected template shell to be deleted after version failure")
	}
}

func TestCreateTemplateReportsOrphan(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/templates":
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id": "t-1", "name": "Welcome", "generation": "dynamic"}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"errors": [{"message": "server error"}]}`))
		}
	})

	_, err := client.CreateTemplate(context.Background(), CreateTemplateParams{
		Name:        "Welcome",
		Subject:     "s",
		HTMLContent: "<p>x</p>",
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "t-1") {
		t.Errorf("error should name the orphaned template id, got %q", err.Error())
	}
}

func TestListTemplates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("generations"); got != "dynamic,legacy" {
			t.Errorf("unexpected generations filter: %q", got)
		}
		if got := q.Get("page_size"); got != "25" {
			t.Errorf("unexpected page size: %q", got)
		}
		if got := q.Get("page_token"); got != "tok-in" {
			t.Errorf("unexpected page token: %q", got)
		}
		w.Write([]byte(`{
			"result": [{"id": "t-1", "name": "Welcome", "generation": "dynamic"}],
			"_metadata": {"next": "https://api.sendgrid.com/v3/templates?page_size=25&page_token=tok-next"}
		}`))
	})

	page, err := client.ListTemplates(context.Background(), ListTemplatesParams{
		Generations: []string{"dynamic", "legacy"},
		PageSize:    25,
		PageToken:   "tok-in",
	})
	if err != nil {
		t.Fatalf("ListTemplates failed: %v", err)
	}
	if len(page.Templates) != 1 {
		t.Fatalf("expected 1 template, got %d", len(page.Templates))
	}
	if page.NextPageToken != "tok-next" {
		t.Errorf("expected next page token tok-next, got %q", page.NextPageToken)
	}
}

func TestListTemplatesLastPage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("page_size"); got != "100" {
			t.Errorf("expected default page size 100, got %q", got)
		}
		w.Write([]byte(`{"result": [], "_metadata": {}}`))
	})

	page, err := client.ListTemplates(context.Background(), ListTemplatesParams{})
	if err != nil {
		t.Fatalf("ListTemplates failed: %v", err)
	}
	if page.NextPageToken != "" {
		t.Errorf("expected empty token on last page, got %q", page.NextPageToken)
	}
}

func TestActivateTemplateVersion(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/templates/t-1/versions/v-2/activate" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"id": "v-2", "template_id": "t-1", "active": 1}`))
	})

	version, err := client.ActivateTemplateVersion(context.Background(), "t-1", "v-2")
	if err != nil {
		t.Fatalf("ActivateTemplateVersion failed: %v", err)
	}
	if version.Active != 1 {
		t.Errorf("expected active version, got %+v", version)
	}
}

func TestDuplicateTemplate(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/templates/t-1" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req templateUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Name != "Copy of Welcome" {
			t.Errorf("unexpected duplicate name: %q", req.Name)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": "t-2", "name": "Copy of Welcome", "generation": "dynamic"}`))
	})

	tpl, err := client.DuplicateTemplate(context.Background(), "t-1", "Copy of Welcome")
	if err != nil {
		t.Fatalf("DuplicateTemplate failed: %v", err)
	}
	if tpl.ID != "t-2" {
		t.Errorf("unexpected template: %+v", tpl)
	}
}

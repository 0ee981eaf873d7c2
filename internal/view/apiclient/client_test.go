package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lucasmrdev/meeting-planner/internal/domain/entities"
	agendaview "github.com/lucasmrdev/meeting-planner/internal/view/agenda"
)

func TestSaveContentField_SendsHeadersAndBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Fatalf("expected PATCH got %s", r.Method)
		}
		if r.URL.Path != "/v1/meetings/m1/content" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer token-1" {
			t.Fatalf("missing bearer token: %q", got)
		}
		if got := r.Header.Get("X-CSRF-Token"); got != "csrf-1" {
			t.Fatalf("missing anti-forgery token: %q", got)
		}

		var payload map[string]string
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if payload["field"] != "summary" || payload["content"] != "texto" {
			t.Fatalf("unexpected payload %v", payload)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{"code": 0, "message": "success"})
	}))
	defer ts.Close()

	client := New(ts.URL, "token-1", "csrf-1")
	if err := client.SaveContentField(context.Background(), "m1", "summary", "texto"); err != nil {
		t.Fatalf("save failed: %v", err)
	}
}

func TestSaveContentField_ServerRejection(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]interface{}{"message": "Unknown content field"})
	}))
	defer ts.Close()

	client := New(ts.URL, "token-1", "csrf-1")
	err := client.SaveContentField(context.Background(), "m1", "bogus", "texto")
	if err == nil {
		t.Fatal("expected error for rejected save")
	}
	var apiErr *apiError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 apiError, got %v", err)
	}
}

func TestReorder_ParsesReReadList(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/meetings/m1/agendas/reorder" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		var payload struct {
			Positions []struct {
				ID       string `json:"id"`
				Position int    `json:"position"`
			} `json:"positions"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if len(payload.Positions) != 2 {
			t.Fatalf("expected full order, got %d", len(payload.Positions))
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"code":    0,
			"message": "success",
			"data": map[string]interface{}{
				"notice": "Ordem atualizada com sucesso!",
				"agendas": []map[string]interface{}{
					{"id": "b", "title": "Discussão", "position": 1},
					{"id": "a", "title": "Abertura", "position": 2},
				},
			},
		})
	}))
	defer ts.Close()

	client := New(ts.URL, "token-1", "csrf-1")
	items, err := client.Reorder(context.Background(), "m1", []agendaview.Position{
		{ID: "b", Position: 1},
		{ID: "a", Position: 2},
	})
	if err != nil {
		t.Fatalf("reorder failed: %v", err)
	}
	if len(items) != 2 || items[0].ID != "b" || items[0].Position != 1 {
		t.Fatalf("unexpected items %+v", items)
	}
}

func TestUpdateTaskStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/tasks/t1/status" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		var payload map[string]string
		json.NewDecoder(r.Body).Decode(&payload)
		if payload["status"] != "completed" {
			t.Fatalf("unexpected status %q", payload["status"])
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"code": 0, "message": "success"})
	}))
	defer ts.Close()

	client := New(ts.URL, "token-1", "csrf-1")
	if err := client.UpdateTaskStatus(context.Background(), "t1", entities.TaskStatusCompleted); err != nil {
		t.Fatalf("update failed: %v", err)
	}
}

func TestFetchCSRFToken(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/csrf" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"code": 0, "message": "success",
			"data": map[string]string{"csrf_token": "fresh-token"},
		})
	}))
	defer ts.Close()

	client := New(ts.URL, "token-1", "")
	if err := client.FetchCSRFToken(context.Background()); err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if client.csrfToken != "fresh-token" {
		t.Fatalf("token not installed: %q", client.csrfToken)
	}
}

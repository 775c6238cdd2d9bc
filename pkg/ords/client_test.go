package ords_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"enterprise-advisors/pkg/ords"
)

func TestQuery(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "hr" || pass != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		switch r.URL.Query().Get("prompt") {
		case "list all employees":
			fmt.Fprint(w, `[{"name": "Alice", "department": "Sales"}, {"name": "Bob", "department": "IT"}]`)
		case "how many leave days":
			fmt.Fprint(w, `{"query_result": "You have 20 annual leave days."}`)
		case "nested answer":
			fmt.Fprint(w, `{"query_result": "", "reply": "Policy X applies."}`)
		default:
			fmt.Fprint(w, `plain text answer`)
		}
	}))
	defer ts.Close()

	client, err := ords.New(ords.Config{URL: ts.URL, Username: "hr", Password: "secret"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Record Array", func(t *testing.T) {
		res, err := client.Query(context.Background(), "list all employees")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Records) != 2 {
			t.Fatalf("expected 2 records, got %d", len(res.Records))
		}
		if res.Records[0]["name"] != "Alice" {
			t.Errorf("unexpected first record: %v", res.Records[0])
		}
	})

	t.Run("Answer Object", func(t *testing.T) {
		res, err := client.Query(context.Background(), "how many leave days")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Text != "You have 20 annual leave days." {
			t.Errorf("unexpected text %q", res.Text)
		}
	})

	t.Run("Skips Empty Answer Keys", func(t *testing.T) {
		res, err := client.Query(context.Background(), "nested answer")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Text != "Policy X applies." {
			t.Errorf("unexpected text %q", res.Text)
		}
	})

	t.Run("Plain Text Fallback", func(t *testing.T) {
		res, err := client.Query(context.Background(), "anything else")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Text != "plain text answer" {
			t.Errorf("unexpected text %q", res.Text)
		}
	})

	t.Run("Auth Failure", func(t *testing.T) {
		bad, _ := ords.New(ords.Config{URL: ts.URL, Username: "hr", Password: "wrong"})
		_, err := bad.Query(context.Background(), "list all employees")
		if !errors.Is(err, ords.ErrAuthFailed) {
			t.Errorf("expected ErrAuthFailed, got %v", err)
		}
	})
}

func TestTranslate(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		var req struct {
			Query string `json:"user_query"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		switch req.Query {
		case "list recent customers":
			fmt.Fprint(w, `[{"name": "Acme"}, {"name": "Globex"}]`)
		default:
			fmt.Fprint(w, `{"answer": "There are 42 customers."}`)
		}
	}))
	defer ts.Close()

	client, err := ords.New(ords.Config{URL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Answer Object", func(t *testing.T) {
		res, err := client.Translate(context.Background(), "how many customers are there")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Text != "There are 42 customers." {
			t.Errorf("unexpected answer %q", res.Text)
		}
	})

	t.Run("Record Array", func(t *testing.T) {
		res, err := client.Translate(context.Background(), "list recent customers")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Records) != 2 {
			t.Fatalf("expected 2 records, got %d", len(res.Records))
		}
		if res.Records[1]["name"] != "Globex" {
			t.Errorf("unexpected second record: %v", res.Records[1])
		}
	})
}

func TestConfigValidate(t *testing.T) {
	if _, err := ords.New(ords.Config{}); err == nil {
		t.Error("expected error for missing url")
	}
}

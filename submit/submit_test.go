package submit_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ja-he/inplace/submit"
)

func TestHTTPSubmitter(t *testing.T) {

	t.Run("submit", func(t *testing.T) {

		t.Run("POSTs the form and returns the response body", func(t *testing.T) {
			var gotKey, gotValue string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost {
					t.Errorf("expected POST, got %s", r.Method)
				}
				if err := r.ParseForm(); err != nil {
					t.Error("could not parse form:", err.Error())
				}
				gotKey = r.PostForm.Get("key")
				gotValue = r.PostForm.Get("value")
				w.Write([]byte("Canonical Value"))
			}))
			defer server.Close()

			s := submit.NewHTTPSubmitter(nil)
			response, err := s.Submit(context.Background(), server.URL, "name", "raw value")
			if err != nil {
				t.Fatal("unexpected error:", err.Error())
			}
			if gotKey != "name" || gotValue != "raw value" {
				t.Errorf("unexpected form data key='%s' value='%s'", gotKey, gotValue)
			}
			if response != "Canonical Value" {
				t.Errorf("unexpected response '%s'", response)
			}
		})

		t.Run("non-2xx status is an error", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", http.StatusInternalServerError)
			}))
			defer server.Close()

			s := submit.NewHTTPSubmitter(nil)
			_, err := s.Submit(context.Background(), server.URL, "name", "value")
			if err == nil {
				t.Error("expected error for HTTP 500")
			}
		})

		t.Run("unreachable endpoint is an error", func(t *testing.T) {
			s := submit.NewHTTPSubmitter(nil)
			_, err := s.Submit(context.Background(), "http://localhost:1/nope", "name", "value")
			if err == nil {
				t.Error("expected error for unreachable endpoint")
			}
		})
	})

	t.Run("load", func(t *testing.T) {

		t.Run("GETs the URL and returns the body", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodGet {
					t.Errorf("expected GET, got %s", r.Method)
				}
				w.Write([]byte(`["a", "b"]`))
			}))
			defer server.Close()

			s := submit.NewHTTPSubmitter(nil)
			response, err := s.Load(context.Background(), server.URL)
			if err != nil {
				t.Fatal("unexpected error:", err.Error())
			}
			if response != `["a", "b"]` {
				t.Errorf("unexpected response '%s'", response)
			}
		})

		t.Run("non-2xx status is an error", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "gone", http.StatusNotFound)
			}))
			defer server.Close()

			s := submit.NewHTTPSubmitter(nil)
			_, err := s.Load(context.Background(), server.URL)
			if err == nil {
				t.Error("expected error for HTTP 404")
			}
		})
	})

	t.Run("context cancellation aborts the call", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		s := submit.NewHTTPSubmitter(nil)
		_, err := s.Submit(ctx, server.URL, "name", "value")
		if err == nil {
			t.Error("expected error for cancelled context")
		}
	})
}

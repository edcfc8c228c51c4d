package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/termdock/termdock/internal/version"
)

func releaseServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestUpdateCheck_NewerRelease(t *testing.T) {
	srv := releaseServer(t, http.StatusOK, `{"tag_name":"v99.0.0"}`)

	check, err := NewUpdateService(srv.URL).Check(context.Background())
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if check.Current != version.Version {
		t.Errorf("Current = %q, want %q", check.Current, version.Version)
	}
	if check.Latest != "v99.0.0" {
		t.Errorf("Latest = %q", check.Latest)
	}
	if !check.Newer {
		t.Error("v99.0.0 should be newer than the running build")
	}
}

func TestUpdateCheck_SameRelease(t *testing.T) {
	srv := releaseServer(t, http.StatusOK, `{"tag_name":"v`+version.Version+`"}`)

	check, err := NewUpdateService(srv.URL).Check(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if check.Newer {
		t.Error("the running version is not newer than itself")
	}
}

func TestUpdateCheck_ServerError(t *testing.T) {
	srv := releaseServer(t, http.StatusForbidden, `{"message":"rate limited"}`)

	if _, err := NewUpdateService(srv.URL).Check(context.Background()); err == nil {
		t.Error("expected error on non-200 response")
	}
}

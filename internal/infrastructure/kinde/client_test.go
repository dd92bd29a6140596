package kinde

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/horsesharing/backend/internal/config"
)

func TestClaimsFullName(t *testing.T) {
	tests := []struct {
		name   string
		claims Claims
		want   string
	}{
		{
			name:   "given and family",
			claims: Claims{ID: "kp_1", GivenName: "Anna", FamilyName: "de Vries", Name: "ignored"},
			want:   "Anna de Vries",
		},
		{
			name:   "given only",
			claims: Claims{ID: "kp_1", GivenName: "Anna"},
			want:   "Anna",
		},
		{
			name:   "falls back to name",
			claims: Claims{ID: "kp_1", Name: "Anna de Vries"},
			want:   "Anna de Vries",
		},
		{
			name:   "falls back to username",
			claims: Claims{ID: "kp_1", PreferredUsername: "anna_dv"},
			want:   "anna_dv",
		},
		{
			name:   "placeholder from id",
			claims: Claims{ID: "kp_1"},
			want:   "user-kp_1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.claims.FullName(); got != tt.want {
				t.Errorf("FullName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func testClient(domain string) *Client {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewClient(&config.KindeConfig{Domain: domain}, log)
}

func TestUserProfileForwardsBearer(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"kp_1","given_name":"Anna","family_name":"de Vries","email":"anna@example.com"}`))
	}))
	defer srv.Close()

	claims, err := testClient(srv.URL).UserProfile(context.Background(), "tok123")
	if err != nil {
		t.Fatalf("UserProfile: %v", err)
	}
	if gotAuth != "Bearer tok123" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if claims.ID != "kp_1" || claims.Email != "anna@example.com" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestUserProfileRejectsNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	if _, err := testClient(srv.URL).UserProfile(context.Background(), "bad"); err == nil {
		t.Fatal("expected error for 401 response")
	}
}

func TestUserProfileRequiresID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"email":"anna@example.com"}`))
	}))
	defer srv.Close()

	if _, err := testClient(srv.URL).UserProfile(context.Background(), "tok"); err == nil {
		t.Fatal("expected error for response without id")
	}
}

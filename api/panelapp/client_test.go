package panelapp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/morikuni/failure/v2"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(srv.URL, WithHTTPClient(srv.Client()), WithUserAgent("ppa/test"))
	if err != nil {
		t.Fatalf("NewClient() error: %v", err)
	}
	return c
}

func TestGenesURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		genes   []string
		want    string
	}{
		{
			name:    "Single gene is uppercased",
			baseURL: DefaultBaseURL,
			genes:   []string{"brca1"},
			want:    "https://panelapp.genomicsengland.co.uk/api/v1/genes/BRCA1/",
		},
		{
			name:    "Multiple genes are comma joined",
			baseURL: DefaultBaseURL,
			genes:   []string{"brca1", "Tp53"},
			want:    "https://panelapp.genomicsengland.co.uk/api/v1/genes/BRCA1,%20TP53/",
		},
		{
			name:    "Base URL with path prefix",
			baseURL: "https://example.org/panelapp/",
			genes:   []string{"PKD1"},
			want:    "https://example.org/panelapp/api/v1/genes/PKD1/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClient(tt.baseURL)
			if err != nil {
				t.Fatalf("NewClient() error: %v", err)
			}
			if got := c.GenesURL(tt.genes).String(); got != tt.want {
				t.Errorf("GenesURL() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewClientInvalidBaseURL(t *testing.T) {
	_, err := NewClient("panelapp.genomicsengland.co.uk")
	if !failure.Is(err, ErrInvalidBaseURL) {
		t.Errorf("Expected error %v, got %v", ErrInvalidBaseURL, err)
	}
}

func TestFetchGenes(t *testing.T) {
	var gotPath, gotUA string
	var gotClose bool
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUA = r.Header.Get("User-Agent")
		gotClose = r.Close
		if r.Method != http.MethodGet {
			t.Errorf("unexpected method %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Add("X-Panel", "a")
		w.Header().Add("X-Panel", "b")
		w.Write([]byte(`{"count":0,"results":[]}`))
	})

	resp, err := c.FetchGenes(context.Background(), []string{"brca1", "tp53"})
	if err != nil {
		t.Fatalf("FetchGenes() error: %v", err)
	}

	if want := "/api/v1/genes/BRCA1, TP53/"; gotPath != want {
		t.Errorf("request path = %q, want %q", gotPath, want)
	}
	if gotUA != "ppa/test" {
		t.Errorf("User-Agent = %q", gotUA)
	}
	if !gotClose {
		t.Error("request was not sent with Connection: close")
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d", resp.StatusCode)
	}
	if diff := cmp.Diff(`{"count":0,"results":[]}`, string(resp.Body)); diff != "" {
		t.Errorf("Body mismatch (-want +got):\n%s", diff)
	}
	if got := resp.Headers["content-type"]; got != "application/json" {
		t.Errorf("content-type header = %q", got)
	}
	if got := resp.Headers["x-panel"]; got != "a, b" {
		t.Errorf("x-panel header = %q", got)
	}
	if got := resp.Header("Content-Type"); got != "application/json" {
		t.Errorf("Header(Content-Type) = %q", got)
	}
}

func TestFetchGenesStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   string
	}{
		{name: "Not found", status: http.StatusNotFound, want: "server error 404: Not Found"},
		{name: "Server error", status: http.StatusInternalServerError, want: "server error 500: Internal Server Error"},
		{name: "No content", status: http.StatusNoContent, want: "server error 204: No Content"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})

			_, err := c.FetchGenes(context.Background(), []string{"BRCA1"})
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !failure.Is(err, ErrUnexpectedStatus) {
				t.Errorf("Expected error %v, got %v", ErrUnexpectedStatus, err)
			}
			msg := failure.MessageOf(err).String()
			if !strings.Contains(msg, tt.want) {
				t.Errorf("message %q does not contain %q", msg, tt.want)
			}
		})
	}
}

func TestFetchGenesConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	c, err := NewClient(baseURL)
	if err != nil {
		t.Fatalf("NewClient() error: %v", err)
	}

	_, err = c.FetchGenes(context.Background(), []string{"BRCA1"})
	if !failure.Is(err, ErrRequestFailed) {
		t.Errorf("Expected error %v, got %v", ErrRequestFailed, err)
	}
}

func TestEntityURL(t *testing.T) {
	c, err := NewClient("")
	if err != nil {
		t.Fatalf("NewClient() error: %v", err)
	}
	want := "https://panelapp.genomicsengland.co.uk/panels/entities/BRCA2"
	if got := c.EntityURL("brca2").String(); got != want {
		t.Errorf("EntityURL() = %v, want %v", got, want)
	}
}

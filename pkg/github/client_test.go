package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, mux *http.ServeMux) (IGitHub, string) {
	t.Helper()
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)

	c, err := New(Config{BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c, ts.URL
}

func TestFetchDiff(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/octo/hello/pull/3.diff", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Accept"); got != DiffMediaType {
			t.Errorf("expected Accept %q, got %q", DiffMediaType, got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer gho_delegated" {
			t.Errorf("expected delegated bearer token, got %q", got)
		}
		fmt.Fprint(w, "diff --git a/x b/x\n+hello\n")
	})
	c, base := newTestClient(t, mux)

	diff, err := c.FetchDiff(context.Background(), base+"/octo/hello/pull/3.diff", "gho_delegated")
	if err != nil {
		t.Fatalf("FetchDiff: %v", err)
	}
	if !strings.Contains(diff, "+hello") {
		t.Errorf("unexpected diff %q", diff)
	}
}

func TestFetchDiff_Errors(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/missing.diff", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Not Found"}`, http.StatusNotFound)
	})
	c, base := newTestClient(t, mux)

	if _, err := c.FetchDiff(context.Background(), base+"/missing.diff", "tok"); err == nil {
		t.Fatal("expected error for 404")
	}
	if _, err := c.FetchDiff(context.Background(), base+"/missing.diff", ""); err != ErrMissingToken {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
}

func TestCreateComment(t *testing.T) {
	var got struct {
		Body string `json:"body"`
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octo/hello/issues/9/comments", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"id":1}`)
	})
	c, _ := newTestClient(t, mux)

	if err := c.CreateComment(context.Background(), "octo/hello", 9, "LGTM", "tok"); err != nil {
		t.Fatalf("CreateComment: %v", err)
	}
	if got.Body != "LGTM" {
		t.Errorf("unexpected body %q", got.Body)
	}

	if err := c.CreateComment(context.Background(), "not-a-repo", 9, "x", "tok"); err == nil {
		t.Fatal("expected error for invalid repo name")
	}
}

func TestListComments_Paginates(t *testing.T) {
	var base string
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octo/hello/issues/5/comments", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "2" {
			fmt.Fprint(w, `[{"body":"/link-wallet alice.testnet","user":{"login":"alice"},"author_association":"CONTRIBUTOR"}]`)
			return
		}
		w.Header().Set("Link", fmt.Sprintf(`<%s/repos/octo/hello/issues/5/comments?page=2>; rel="next"`, base))
		fmt.Fprint(w, `[{"body":"first","user":{"login":"bob"},"author_association":"OWNER"},{"body":"second"}]`)
	})
	c, url := newTestClient(t, mux)
	base = url

	comments, err := c.ListComments(context.Background(), "octo/hello", 5, "tok")
	if err != nil {
		t.Fatalf("ListComments: %v", err)
	}
	want := []Comment{
		{Body: "first", Author: "bob", AuthorAssociation: "OWNER"},
		{Body: "second"},
		{Body: "/link-wallet alice.testnet", Author: "alice", AuthorAssociation: "CONTRIBUTOR"},
	}
	if !reflect.DeepEqual(comments, want) {
		t.Errorf("expected %+v, got %+v", want, comments)
	}
}

func TestTruncateDiff(t *testing.T) {
	large := strings.Repeat("a", 60000)
	out, truncated := TruncateDiff(large, MaxDiffChars)
	if !truncated {
		t.Fatal("expected 60k diff to be truncated")
	}
	if !strings.HasPrefix(out, strings.Repeat("a", MaxDiffChars)) {
		t.Error("expected first 50000 characters to be kept")
	}
	if want := strings.Repeat("a", MaxDiffChars) + TruncationMarker(MaxDiffChars, 60000); out != want {
		t.Errorf("unexpected truncated output tail %q", out[MaxDiffChars:])
	}

	small := strings.Repeat("b", 40000)
	out, truncated = TruncateDiff(small, MaxDiffChars)
	if truncated || out != small {
		t.Error("expected 40k diff to be untouched")
	}
}

func TestTruncateDiff_MultiByte(t *testing.T) {
	out, truncated := TruncateDiff("héllo wörld", 5)
	if !truncated || !strings.HasPrefix(out, "héllo\n\n[diff truncated") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestSplitRepo(t *testing.T) {
	owner, repo, err := SplitRepo("octo/hello")
	if err != nil || owner != "octo" || repo != "hello" {
		t.Errorf("unexpected split %q %q %v", owner, repo, err)
	}
	for _, bad := range []string{"", "octo", "/hello", "octo/", "a/b/c"} {
		if _, _, err := SplitRepo(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

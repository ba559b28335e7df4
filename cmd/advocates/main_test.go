package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/wichananm65/advocate-directory/internal/advocate"
)

const advocatesPayload = `{"data":[
	{"id":"1","firstName":"Jane","lastName":"Doe","city":"Austin","degree":"MD","specialties":["Anxiety"],"yearsOfExperience":12,"phoneNumber":"5125550000"},
	{"id":"2","firstName":"Omar","lastName":"Phillips","city":"Boston","degree":"PhD","specialties":["Trauma","Anxiety"],"yearsOfExperience":4,"phoneNumber":"6175550101"},
	{"id":"3","firstName":"Raj","lastName":"Iyer","city":"Austin","degree":"PhD","specialties":["Grief"],"yearsOfExperience":21,"phoneNumber":"5125550103"}
]}`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, advocatesPayload)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp(&out)
	app.ErrWriter = io.Discard
	err := app.Run(append([]string{"advocates"}, args...))
	return out.String(), err
}

func TestSearch_Table(t *testing.T) {
	srv := newTestServer(t)

	out, err := run(t, "search", "--api", srv.URL, "-q", "austin", "--expert-only", "--degree", "MD")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	for _, want := range []string{"NAME", "Jane Doe", "12 (expert)", "+1 (512) 555-0000", "1 of 3 advocates"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Raj Iyer") {
		t.Fatalf("PhD advocate should be filtered out, got:\n%s", out)
	}
}

func TestSearch_JSON(t *testing.T) {
	srv := newTestServer(t)

	out, err := run(t, "search", "--api", srv.URL, "--specialty", "anxiety", "--json")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	var got []advocate.Response
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "2" {
		t.Fatalf("unexpected result %+v", got)
	}
}

func TestSearch_MinYears(t *testing.T) {
	srv := newTestServer(t)

	out, err := run(t, "search", "--api", srv.URL, "--min-years", "20")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !strings.Contains(out, "Raj Iyer") || !strings.Contains(out, "1 of 3 advocates") {
		t.Fatalf("unexpected output:\n%s", out)
	}

	if _, err := run(t, "search", "--api", srv.URL, "--min-years", "-1"); err == nil {
		t.Fatalf("expected an error for negative --min-years")
	}
}

func TestSearch_UnreachableServer(t *testing.T) {
	out, err := run(t, "search", "--api", "http://127.0.0.1:1", "--timeout", "2s")
	if err != nil {
		t.Fatalf("an unreachable server should yield an empty directory, got %v", err)
	}
	if !strings.Contains(out, "0 of 0 advocates") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestOptions(t *testing.T) {
	srv := newTestServer(t)

	out, err := run(t, "options", "--api", srv.URL)
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	want := "Degrees:\n  MD\n  PhD\nSpecialties:\n  Anxiety\n  Grief\n  Trauma\n"
	if out != want {
		t.Fatalf("expected:\n%s\ngot:\n%s", want, out)
	}
}

func TestInvalidLogLevel(t *testing.T) {
	if _, err := run(t, "--log-level", "loud", "options", "--api", "http://127.0.0.1:1"); err == nil {
		t.Fatalf("expected an error for an invalid log level")
	}
}

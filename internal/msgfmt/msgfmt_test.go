package msgfmt

import (
	"encoding/json"
	"strings"
	"testing"

	"xeplint/internal/driver"
	"xeplint/internal/msg"
)

func sampleStore(t *testing.T) *msg.Store {
	t.Helper()
	reg := msg.NewRegistry()
	missing := reg.MustRegister(msg.Error, 5, "missing-anchor")
	duplicate := reg.MustRegister(msg.Error, 3, "duplicate-anchor")

	store := msg.NewStore("doc.xep")
	store.Record(missing, msg.Location{Line: 10}, "section %q has no anchor", "Usage")
	rec := store.Record(duplicate, msg.Location{Line: 7}, "anchor %q has been used already", "intro")
	store.Attach(rec, duplicate, msg.Location{Line: 2}, "anchor %q has been first used here", "intro")
	return store
}

func TestText_PlainMatchesStoreRender(t *testing.T) {
	store := sampleStore(t)

	var fromStore, fromText strings.Builder
	if err := store.Render(&fromStore); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	if err := Text(&fromText, store, false); err != nil {
		t.Fatalf("Text() failed: %v", err)
	}
	if fromText.String() != fromStore.String() {
		t.Errorf("plain Text() diverges from Store.Render:\n%s\nvs:\n%s",
			fromText.String(), fromStore.String())
	}
}

func TestJSON(t *testing.T) {
	store := sampleStore(t)

	var out strings.Builder
	if err := JSON(&out, store); err != nil {
		t.Fatalf("JSON() failed: %v", err)
	}

	var decoded OutputJSON
	if err := json.Unmarshal([]byte(out.String()), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Count != 2 || len(decoded.Findings) != 2 {
		t.Fatalf("Count = %d, Findings = %d, want 2 records", decoded.Count, len(decoded.Findings))
	}

	// sorted order puts the duplicate (line 7) first
	first := decoded.Findings[0]
	if first.Main.Location.Line != 7 || first.Main.Name != "duplicate-anchor" {
		t.Errorf("first finding = %+v, want duplicate-anchor at line 7", first.Main)
	}
	if len(first.Related) != 1 || first.Related[0].Location.Line != 2 {
		t.Errorf("Related = %+v, want the first-use message at line 2", first.Related)
	}
	if first.Main.Severity != "error" || first.Main.Code != 3 {
		t.Errorf("Main identity = %s/%d, want error/3", first.Main.Severity, first.Main.Code)
	}
}

func TestSummary(t *testing.T) {
	results := []*driver.Result{
		{Path: "a.xep", Errors: 2, Warnings: 1},
		{Path: "docs/очень-длинный.xep", Conventions: 3},
	}

	var out strings.Builder
	if err := Summary(&out, results, false); err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 2 rows plus totals:\n%s", len(lines), out.String())
	}
	if !strings.Contains(lines[0], "2 errors") || !strings.Contains(lines[0], "1 warnings") {
		t.Errorf("row = %q", lines[0])
	}
	if !strings.HasPrefix(lines[2], "total") || !strings.Contains(lines[2], "2 errors") ||
		!strings.Contains(lines[2], "3 conventions") {
		t.Errorf("totals row = %q", lines[2])
	}
}

func TestSummary_SingleFileHasNoTotals(t *testing.T) {
	var out strings.Builder
	err := Summary(&out, []*driver.Result{{Path: "a.xep", Errors: 1}}, false)
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if strings.Contains(out.String(), "total") {
		t.Errorf("single-file summary has a totals row:\n%s", out.String())
	}
}

package checks

import (
	"strings"
	"testing"

	"xeplint/internal/msg"
	"xeplint/internal/xmltree"
)

// runCheck parses input as doc.xep and runs a single check over it.
func runCheck(t *testing.T, check Check, input string) *msg.Store {
	t.Helper()

	doc, err := xmltree.ParseString(input, "doc.xep")
	if err != nil {
		t.Fatalf("test document does not parse: %v", err)
	}
	reg := msg.NewRegistry()
	if err := check.Register(reg); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}
	store := msg.NewStore("doc.xep")
	check.Run(doc, store)
	return store
}

func render(t *testing.T, store *msg.Store) string {
	t.Helper()
	var out strings.Builder
	if err := store.Render(&out); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	return out.String()
}

func TestRegisterAll_NoConflicts(t *testing.T) {
	reg := msg.NewRegistry()
	for _, check := range All() {
		if err := check.Register(reg); err != nil {
			t.Errorf("check %s: %v", check.Name(), err)
		}
	}
}

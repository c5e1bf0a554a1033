package checks

import (
	"strings"
	"testing"
)

func TestExamples(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		findings int
	}{
		{
			name:     "well-formed example",
			input:    "<xep>\n<example><![CDATA[<message to='juliet'/>]]></example>\n</xep>\n",
			findings: 0,
		},
		{
			name:     "prose example is not XML and is ignored",
			input:    "<xep>\n<example>see the diagram above</example>\n</xep>\n",
			findings: 0,
		},
		{
			name: "multiple stanzas succeed after wrapping",
			input: "<xep>\n" +
				"<example><![CDATA[<message to='a'/><message to='b'/>]]></example>\n" +
				"</xep>\n",
			findings: 0,
		},
		{
			name: "malformed example is reported",
			input: "<xep>\n" +
				"<example><![CDATA[<message to='a'>\n" +
				"</msg>]]></example>\n" +
				"</xep>\n",
			findings: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := runCheck(t, &Examples{}, tt.input)
			if store.Len() != tt.findings {
				t.Errorf("got %d findings, want %d:\n%s",
					store.Len(), tt.findings, render(t, store))
			}
		})
	}
}

func TestExamples_CoordinateRemapping(t *testing.T) {
	// the example starts on document line 2; the mismatched end tag is on
	// local line 2, so the finding must land on document line 3
	input := "<xep>\n" +
		"<example><![CDATA[<message to='a'>\n" +
		"</msg>]]></example>\n" +
		"</xep>\n"

	store := runCheck(t, &Examples{}, input)
	got := render(t, store)
	if !strings.HasPrefix(got, "doc.xep:3:0: E-0004:example-parser:") {
		t.Errorf("finding not remapped into document coordinates:\n%s", got)
	}
}

func TestExamples_WrapFailureSupersedesFirstAttempt(t *testing.T) {
	// a second stanza trips the extra-content retry, and the retry fails
	// too; only the retry's verdict must be reported
	input := "<xep>\n" +
		"<example><![CDATA[<message to='a'/><message to='b'>]]></example>\n" +
		"</xep>\n"

	store := runCheck(t, &Examples{}, input)
	if store.Len() != 1 {
		t.Fatalf("got %d findings, want exactly the retry verdict:\n%s",
			store.Len(), render(t, store))
	}
	if got := render(t, store); strings.Contains(got, "extra content") {
		t.Errorf("first attempt's finding leaked past Clear:\n%s", got)
	}
}

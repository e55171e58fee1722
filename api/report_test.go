package api

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ka2n/ppa/api/field"
)

func TestReportDefaultFields(t *testing.T) {
	result, err := NewResult(loadFixture(t, "brca1.json"))
	if err != nil {
		t.Fatalf("NewResult() error: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteReport(&buf, result, field.DefaultSelection()); err != nil {
		t.Fatalf("WriteReport() error: %v", err)
	}

	want := strings.Join([]string{
		"* PANEL APP RESULTS for gene BRCA1 has 1 entries:",
		"* (Reporting default fields EVIDENCE, PHENOTYPES, and MODE_OF_INHERITANCE)",
		Separator,
		"EVIDENCE: A, B",
		"",
		"PHENOTYPES: -",
		"",
		"MODE_OF_INHERITANCE: AD",
		"",
		Separator,
		"",
	}, "\n")
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("WriteReport() mismatch (-want +got):\n%s", diff)
	}
}

func TestReportSelectedFields(t *testing.T) {
	result, err := NewResult(loadFixture(t, "genes.json"))
	if err != nil {
		t.Fatalf("NewResult() error: %v", err)
	}
	selection, err := field.Parse("entity_name,tags")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	got := Report(result, selection)

	want := strings.Join([]string{
		"* PANEL APP RESULTS for gene PKD1 has 2 entries:",
		"* (Reporting for entered fields: entity_name, tags)",
		Separator,
		"ENTITY_NAME: PKD1",
		"",
		"TAGS: -",
		"",
		Separator,
		"ENTITY_NAME: PKD2",
		"",
		"TAGS: founder-effect, mosaicism",
		"",
		Separator,
		"",
	}, "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Report() mismatch (-want +got):\n%s", diff)
	}
}

func TestSeparatorWidth(t *testing.T) {
	if len(Separator) != 79 || strings.Trim(Separator, "-") != "" {
		t.Errorf("unexpected separator %q", Separator)
	}
}

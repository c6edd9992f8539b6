package kaggle

import (
	"testing"
)

func TestParseTable(t *testing.T) {
	output := "name status\nfoo done"

	records := ParseTable(output)
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}

	record := records[0]
	if record["name"] != "foo" {
		t.Errorf("Expected name=foo, got %q", record["name"])
	}
	if record["status"] != "done" {
		t.Errorf("Expected status=done, got %q", record["status"])
	}
}

func TestParseTableMultipleRecords(t *testing.T) {
	output := "ref        title      author\nalice/nb1  First      alice\nbob/nb2    Second     bob\n"

	records := ParseTable(output)
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}

	if records[0]["ref"] != "alice/nb1" {
		t.Errorf("Expected ref=alice/nb1, got %q", records[0]["ref"])
	}
	if records[1]["author"] != "bob" {
		t.Errorf("Expected author=bob, got %q", records[1]["author"])
	}
}

func TestParseTableHeaderOnly(t *testing.T) {
	records := ParseTable("name status\n")
	if len(records) != 0 {
		t.Fatalf("Expected no records for header-only table, got %d", len(records))
	}
	if records == nil {
		t.Fatal("Expected empty slice, got nil")
	}
}

func TestParseTableEmpty(t *testing.T) {
	for _, output := range []string{"", "\n", "  \n  \n"} {
		records := ParseTable(output)
		if len(records) != 0 {
			t.Errorf("Expected no records for %q, got %d", output, len(records))
		}
		if records == nil {
			t.Errorf("Expected empty slice for %q, got nil", output)
		}
	}
}

func TestParseTableShortRow(t *testing.T) {
	// A row with fewer fields than headers keeps only the columns it has.
	records := ParseTable("name status votes\nfoo done")
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}

	if _, exists := records[0]["votes"]; exists {
		t.Errorf("Expected no votes column for short row, got %q", records[0]["votes"])
	}
	if records[0]["status"] != "done" {
		t.Errorf("Expected status=done, got %q", records[0]["status"])
	}
}

package datetime

import (
	"testing"
	"time"
)

func TestParse_Localized(t *testing.T) {
	got, err := Parse("25/12/2026 14:30")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	want := time.Date(2026, 12, 25, 14, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestParse_ISO(t *testing.T) {
	got, err := Parse("2026-12-25 14:30")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	want := time.Date(2026, 12, 25, 14, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestParse_LocalizedIsDayFirst(t *testing.T) {
	got, err := Parse("05/03/2026 09:00")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got.Day() != 5 || got.Month() != time.March {
		t.Fatalf("expected day-first parse, got %v", got)
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, value := range []string{"", "   ", "not a date", "45/13/2026 10:00"} {
		if _, err := Parse(value); err == nil {
			t.Fatalf("expected error for %q", value)
		}
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("31/01/2026")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got.Day() != 31 || got.Month() != time.January {
		t.Fatalf("unexpected date %v", got)
	}

	if _, err := ParseDate("2026-01-31"); err != nil {
		t.Fatalf("iso date should parse: %v", err)
	}
	if _, err := ParseDate("bogus"); err == nil {
		t.Fatal("expected error for bogus date")
	}
}

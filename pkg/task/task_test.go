package task

import (
	"errors"
	"testing"
	"time"
)

func TestDateKeyZeroPads(t *testing.T) {
	day := time.Date(987, time.March, 4, 23, 59, 0, 0, time.UTC)
	if got := DateKey(day); got != "0987-03-04" {
		t.Fatalf("expected 0987-03-04, got %s", got)
	}
}

func TestDateKeyUsesOwnLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	instant := time.Date(2024, time.June, 9, 20, 0, 0, 0, time.UTC)
	if got := DateKey(instant.In(tokyo)); got != "2024-06-10" {
		t.Fatalf("expected local date 2024-06-10, got %s", got)
	}
}

func TestParseDateKeyMidnight(t *testing.T) {
	got, err := ParseDateKey("2024-02-29", time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if _, err := ParseDateKey("2023-02-29", time.UTC); err == nil {
		t.Fatalf("expected error for non-existent date")
	}
}

func TestValidate(t *testing.T) {
	good := Task{DueDate: "2024-06-10", Time: "09:00", Tag: TagWork}
	if err := good.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := map[string]Task{
		"unpadded date": {DueDate: "2024-6-10", Time: "09:00", Tag: TagWork},
		"bad date":      {DueDate: "2024-13-01", Time: "09:00", Tag: TagWork},
		"unpadded time": {DueDate: "2024-06-10", Time: "9:00", Tag: TagWork},
		"bad time":      {DueDate: "2024-06-10", Time: "24:00", Tag: TagWork},
		"bad tag":       {DueDate: "2024-06-10", Time: "09:00", Tag: "fun"},
	}
	for name, tc := range cases {
		if err := tc.Validate(); !errors.Is(err, ErrInvalid) {
			t.Fatalf("%s: expected ErrInvalid, got %v", name, err)
		}
	}
}

func TestParseTag(t *testing.T) {
	tag, err := ParseTag(" Study ")
	if err != nil || tag != TagStudy {
		t.Fatalf("expected study, got %q (%v)", tag, err)
	}
	tag, err = ParseTag("")
	if err != nil || tag != TagOther {
		t.Fatalf("expected other for empty input, got %q (%v)", tag, err)
	}
	if _, err := ParseTag("hobby"); err == nil {
		t.Fatalf("expected error for unknown tag")
	}
}

func TestSortKeyOrdersDateBeforeTime(t *testing.T) {
	early := Task{DueDate: "2024-06-10", Time: "23:00"}
	late := Task{DueDate: "2024-06-11", Time: "01:00"}
	if !(early.SortKey() < late.SortKey()) {
		t.Fatalf("expected %s < %s", early.SortKey(), late.SortKey())
	}
}

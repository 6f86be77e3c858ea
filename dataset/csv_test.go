package dataset

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestReadCSVInfersCellTypes(t *testing.T) {
	src := " Platform ,Likes,Caption\nInstagram,120,hello world\nTwitter,,\n"

	table, err := ReadCSV(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cols := table.Columns()
	if len(cols) != 3 || cols[0] != "Platform" {
		t.Fatalf("expected trimmed header [Platform Likes Caption], got %v", cols)
	}
	if table.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", table.Len())
	}

	first := table.Row(0)
	if first["Platform"] != "Instagram" {
		t.Fatalf("expected string cell, got %#v", first["Platform"])
	}
	if likes, ok := first["Likes"].(float64); !ok || likes != 120 {
		t.Fatalf("expected numeric cell 120, got %#v", first["Likes"])
	}

	second := table.Row(1)
	if second["Likes"] != nil {
		t.Fatalf("expected empty cell to be nil, got %#v", second["Likes"])
	}
}

func TestReadCSVEmptySource(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	if !errors.Is(err, ErrEmptyCSV) {
		t.Fatalf("expected ErrEmptyCSV, got %v", err)
	}
}

func TestReadCSVHeaderOnly(t *testing.T) {
	table, err := ReadCSV(strings.NewReader("Platform,Likes\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.Len() != 0 {
		t.Fatalf("expected empty table, got %d rows", table.Len())
	}
	if len(table.Columns()) != 2 {
		t.Fatalf("expected 2 columns, got %v", table.Columns())
	}
}

func TestReadCSVShortRecord(t *testing.T) {
	cr := "A,B,C\n1,2,3\n"
	table, err := ReadCSV(strings.NewReader(cr))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.Len() != 1 {
		t.Fatalf("expected 1 row, got %d", table.Len())
	}
}

func TestWriteCSVRoundTrip(t *testing.T) {
	table := New([]string{"Platform", "Likes"})
	table.Append(Row{"Platform": "Instagram", "Likes": 120.0})
	table.Append(Row{"Platform": "TikTok", "Likes": nil})

	var buf bytes.Buffer
	if err := WriteCSV(&buf, table); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}

	back, err := ReadCSV(&buf)
	if err != nil {
		t.Fatalf("unexpected read error: %v", err)
	}
	if back.Len() != 2 {
		t.Fatalf("expected 2 rows back, got %d", back.Len())
	}
	if likes, ok := back.Row(0)["Likes"].(float64); !ok || likes != 120 {
		t.Fatalf("expected 120 back, got %#v", back.Row(0)["Likes"])
	}
	if back.Row(1)["Likes"] != nil {
		t.Fatalf("expected nil cell to survive the round trip, got %#v", back.Row(1)["Likes"])
	}
}

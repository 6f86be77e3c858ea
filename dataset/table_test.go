package dataset

import (
	"testing"
	"time"
)

func TestResolvePrefersCanonicalSpelling(t *testing.T) {
	testCases := []struct {
		name    string
		columns []string
		field   Field
		want    string
		wantOK  bool
	}{
		{
			name:    "canonical name wins",
			columns: []string{"platform", "Platform"},
			field:   FieldPlatform,
			want:    "Platform",
			wantOK:  true,
		},
		{
			name:    "lowercase fallback",
			columns: []string{"platform", "Likes"},
			field:   FieldPlatform,
			want:    "platform",
			wantOK:  true,
		},
		{
			name:    "posted date alias",
			columns: []string{"Posted_Date"},
			field:   FieldDate,
			want:    "Posted_Date",
			wantOK:  true,
		},
		{
			name:    "missing column",
			columns: []string{"Likes"},
			field:   FieldReach,
			wantOK:  false,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			got, ok := Resolve(testCase.columns, testCase.field)
			if ok != testCase.wantOK {
				t.Fatalf("expected ok=%t, got %t", testCase.wantOK, ok)
			}
			if got != testCase.want {
				t.Fatalf("expected %q, got %q", testCase.want, got)
			}
		})
	}
}

func TestTableCloneIsIndependent(t *testing.T) {
	orig := New([]string{"A"})
	orig.Append(Row{"A": 1.0})

	clone := orig.Clone()
	clone.Row(0)["A"] = 2.0
	clone.AddColumn("B")

	if orig.Row(0)["A"] != 1.0 {
		t.Fatalf("clone mutation leaked into original: %#v", orig.Row(0)["A"])
	}
	if orig.HasColumn("B") {
		t.Fatalf("clone column addition leaked into original")
	}
}

func TestTableFilter(t *testing.T) {
	table := New([]string{"Likes"})
	table.Append(Row{"Likes": 1.0})
	table.Append(Row{"Likes": 2.0})
	table.Append(Row{"Likes": 3.0})

	kept := table.Filter(func(r Row) bool {
		v, _ := Float(r["Likes"])
		return v >= 2
	})
	if kept.Len() != 2 {
		t.Fatalf("expected 2 rows kept, got %d", kept.Len())
	}
	if table.Len() != 3 {
		t.Fatalf("expected original untouched, got %d rows", table.Len())
	}
}

func TestTrimColumnNames(t *testing.T) {
	table := New([]string{" Platform ", "Likes"})
	table.Append(Row{" Platform ": "Instagram", "Likes": 1.0})

	table.TrimColumnNames()

	if !table.HasColumn("Platform") {
		t.Fatalf("expected trimmed column name, got %v", table.Columns())
	}
	if table.Row(0)["Platform"] != "Instagram" {
		t.Fatalf("expected row key rewritten, got %#v", table.Row(0))
	}
}

func TestFloatCoercion(t *testing.T) {
	testCases := []struct {
		name   string
		in     any
		want   float64
		wantOK bool
	}{
		{name: "float", in: 1.5, want: 1.5, wantOK: true},
		{name: "int", in: 3, want: 3, wantOK: true},
		{name: "numeric string", in: " 4.2 ", want: 4.2, wantOK: true},
		{name: "text", in: "Reel", wantOK: false},
		{name: "nil", in: nil, wantOK: false},
		{name: "time", in: time.Now(), wantOK: false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			got, ok := Float(testCase.in)
			if ok != testCase.wantOK || got != testCase.want {
				t.Fatalf("Float(%#v) = %v, %t; want %v, %t", testCase.in, got, ok, testCase.want, testCase.wantOK)
			}
		})
	}
}

func TestTextRendering(t *testing.T) {
	day := time.Date(2025, 3, 9, 14, 30, 0, 0, time.UTC)
	if got := Text(day); got != "2025-03-09" {
		t.Fatalf("expected date text 2025-03-09, got %q", got)
	}
	if got := Text(2.50); got != "2.5" {
		t.Fatalf("expected trailing zeros dropped, got %q", got)
	}
	if got := Text(nil); got != "" {
		t.Fatalf("expected empty text for nil, got %q", got)
	}
}

package dataset

import (
	"math"
	"testing"
)

func TestMedianSkipsNonNumericCells(t *testing.T) {
	values := []any{1.0, "not a number", nil, 3.0, "5"}

	m, ok := Median(values)
	if !ok {
		t.Fatalf("expected a median")
	}
	if m != 3 {
		t.Fatalf("expected median 3, got %v", m)
	}
}

func TestMeanEmptyColumn(t *testing.T) {
	if _, ok := Mean([]any{nil, "text"}); ok {
		t.Fatalf("expected no mean for a column without numbers")
	}
}

func TestSumEmptyColumnIsZero(t *testing.T) {
	if s := Sum(nil); s != 0 {
		t.Fatalf("expected 0, got %v", s)
	}
}

func TestRound(t *testing.T) {
	testCases := []struct {
		name   string
		in     float64
		places int
		want   float64
	}{
		{name: "two places", in: 3.14159, places: 2, want: 3.14},
		{name: "half rounds away from zero", in: 0.125, places: 2, want: 0.13},
		{name: "negative half rounds away from zero", in: -0.125, places: 2, want: -0.13},
		{name: "nan collapses", in: math.NaN(), places: 2, want: 0},
		{name: "inf collapses", in: math.Inf(1), places: 2, want: 0},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if got := Round(testCase.in, testCase.places); got != testCase.want {
				t.Fatalf("Round(%v, %d) = %v, want %v", testCase.in, testCase.places, got, testCase.want)
			}
		})
	}
}

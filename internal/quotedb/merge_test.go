package quotedb

import (
	"reflect"
	"testing"
)

func TestMerge(t *testing.T) {
	existing := []string{
		"20240101,1,2,0,1,100",
		"20240102,1,2,0,1,100",
	}

	tests := []struct {
		name     string
		existing []string
		incoming []string
		want     []string
	}{
		{
			name:     "incoming too short returns existing",
			existing: existing,
			incoming: []string{"header only"},
			want:     existing,
		},
		{
			name:     "empty incoming returns existing",
			existing: existing,
			incoming: nil,
			want:     existing,
		},
		{
			name:     "empty existing returns incoming",
			existing: nil,
			incoming: []string{"Date,Open", "20240103,9,9,9,9,900"},
			want:     []string{"Date,Open", "20240103,9,9,9,9,900"},
		},
		{
			name:     "no valid incoming lines returns existing",
			existing: existing,
			incoming: []string{"<html>", "error text", ""},
			want:     existing,
		},
		{
			name:     "overlapping row replaced, not duplicated",
			existing: existing,
			incoming: []string{"header", "20240102,9,9,9,9,900", "20240103,9,9,9,9,900"},
			want: []string{
				"20240101,1,2,0,1,100",
				"20240102,9,9,9,9,900",
				"20240103,9,9,9,9,900",
			},
		},
		{
			name:     "disjoint incoming appended after full prefix",
			existing: existing,
			incoming: []string{"header", "20240104,5,5,5,5,50"},
			want: []string{
				"20240101,1,2,0,1,100",
				"20240102,1,2,0,1,100",
				"20240104,5,5,5,5,50",
			},
		},
		{
			name: "blank lines in existing are skipped, not a scan boundary",
			existing: []string{
				"20240101,1,2,0,1,100",
				"",
				"20240102,1,2,0,1,100",
			},
			incoming: []string{"header", "20240103,9,9,9,9,900"},
			want: []string{
				"20240101,1,2,0,1,100",
				"20240102,1,2,0,1,100",
				"20240103,9,9,9,9,900",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.existing, tt.incoming)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Merge() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMergeIdempotent(t *testing.T) {
	existing := []string{
		"20240101,1,2,0,1,100",
		"20240102,1,2,0,1,100",
	}
	incoming := []string{"header", "20240102,9,9,9,9,900", "20240103,9,9,9,9,900"}

	once := Merge(existing, incoming)
	twice := Merge(once, incoming)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("repeated merge changed result:\nonce:  %v\ntwice: %v", once, twice)
	}
}

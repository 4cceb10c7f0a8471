package common

import (
	"reflect"
	"testing"
)

func TestAppendUnique(t *testing.T) {
	tests := []struct {
		name      string
		list      []string
		items     []string
		want      []string
		wantAdded int
	}{
		{
			name:      "append to empty",
			items:     []string{"A", "B"},
			want:      []string{"A", "B"},
			wantAdded: 2,
		},
		{
			name:      "keeps existing order",
			list:      []string{"A"},
			items:     []string{"B"},
			want:      []string{"A", "B"},
			wantAdded: 1,
		},
		{
			name:      "present item is a no-op",
			list:      []string{"A", "B"},
			items:     []string{"B", "A"},
			want:      []string{"A", "B"},
			wantAdded: 0,
		},
		{
			name:      "duplicates within items collapse to first",
			list:      []string{"A"},
			items:     []string{"C", "B", "C"},
			want:      []string{"A", "C", "B"},
			wantAdded: 2,
		},
		{
			name:      "matching is case sensitive",
			list:      []string{"paris"},
			items:     []string{"Paris"},
			want:      []string{"paris", "Paris"},
			wantAdded: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, added := AppendUnique(tt.list, tt.items...)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("AppendUnique(%q, %q) = %q, want %q", tt.list, tt.items, got, tt.want)
			}
			if added != tt.wantAdded {
				t.Errorf("added = %d, want %d", added, tt.wantAdded)
			}
		})
	}
}

func TestAppendUniqueIdempotent(t *testing.T) {
	once, _ := AppendUnique([]string{"A"}, "B", "C")
	twice, added := AppendUnique(once, "B", "C")
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("second append changed list: %q -> %q", once, twice)
	}
	if added != 0 {
		t.Fatalf("expected nothing added, got %d", added)
	}
}

func TestHead(t *testing.T) {
	list := []string{"1", "2", "3", "4", "5", "6"}
	if got := Head(list, 5); len(got) != 5 || got[4] != "5" {
		t.Errorf("Head(6 items, 5) = %q", got)
	}
	if got := Head(list[:1], 5); len(got) != 1 {
		t.Errorf("Head(1 item, 5) = %q", got)
	}
	if got := Head(nil, 5); len(got) != 0 {
		t.Errorf("Head(nil, 5) = %q", got)
	}
}

func TestIsBlank(t *testing.T) {
	for _, s := range []string{"", " ", "\t\n"} {
		if !IsBlank(s) {
			t.Errorf("IsBlank(%q) = false", s)
		}
	}
	if IsBlank(" x ") {
		t.Error(`IsBlank(" x ") = true`)
	}
}

package billing

import (
	"errors"
	"testing"
	"time"

	"github.com/kiranadev/inventory-billing-service/internal/apperr"
)

func TestPrefix(t *testing.T) {
	tests := []struct {
		name      string
		storeName string
		want      string
		wantErr   error
	}{
		{name: "two words", storeName: "Ganesh Traders", want: "GT"},
		{name: "three words", storeName: "Shree Balaji Traders", want: "SBT"},
		{name: "single word", storeName: "Traders", want: "T"},
		{name: "lowercase input is uppercased", storeName: "general traders", want: "GT"},
		{name: "leading digits contribute no initial", storeName: "24x7 Mart", want: "M"},
		{name: "extra whitespace ignored", storeName: "  Sri   Devi  Stores ", want: "SDS"},
		{name: "empty name", storeName: "", wantErr: apperr.ErrStoreNameEmpty},
		{name: "only numerals", storeName: "365 24", wantErr: apperr.ErrStoreNameEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Prefix(tt.storeName)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Prefix(%q) error = %v, wantErr %v", tt.storeName, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Prefix(%q) = %q, want %q", tt.storeName, got, tt.want)
			}
		})
	}
}

func TestGroupKey(t *testing.T) {
	april2024 := time.Date(2024, time.April, 12, 10, 0, 0, 0, time.UTC)
	if got := GroupKey("GT", april2024); got != "GT-2404" {
		t.Errorf("GroupKey() = %q, want GT-2404", got)
	}

	// Different months roll over to distinct groups.
	may2024 := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	if GroupKey("GT", april2024) == GroupKey("GT", may2024) {
		t.Error("expected distinct group keys across months")
	}

	dec := time.Date(2025, time.December, 31, 23, 59, 0, 0, time.UTC)
	if got := GroupKey("SBT", dec); got != "SBT-2512" {
		t.Errorf("GroupKey() = %q, want SBT-2512", got)
	}
}

func TestGroupBounds(t *testing.T) {
	low, high := GroupBounds("GT-2404")
	if low != "GT-2404" || high != "GT-2404Z" {
		t.Errorf("GroupBounds() = %q, %q", low, high)
	}
	// Every well-formed number in the group sorts inside the bounds.
	for _, bn := range []string{"GT-24040001", "GT-24049999"} {
		if !(bn >= low && bn < high) {
			t.Errorf("%q outside group bounds [%q, %q)", bn, low, high)
		}
	}
}

func TestNextInGroup(t *testing.T) {
	tests := []struct {
		name        string
		existing    []string
		want        string
		wantSkipped int
		wantErr     error
	}{
		{name: "empty group starts at 0001", want: "GT-24040001"},
		{
			name:     "increments the max",
			existing: []string{"GT-24040001", "GT-24040002", "GT-24040006"},
			want:     "GT-24040007",
		},
		{
			name:     "order of existing numbers does not matter",
			existing: []string{"GT-24040005", "GT-24040002"},
			want:     "GT-24040006",
		},
		{
			name:        "malformed entries are skipped",
			existing:    []string{"GT-24040003", "GT-2404XYZA", "GT-240400012", "HT-24040009"},
			want:        "GT-24040004",
			wantSkipped: 3,
		},
		{
			name:        "all malformed falls back to 0001",
			existing:    []string{"GT-2404-001"},
			want:        "GT-24040001",
			wantSkipped: 1,
		},
		{
			name:     "sequence exhaustion fails explicitly",
			existing: []string{"GT-24049999"},
			wantErr:  apperr.ErrSequenceExhausted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, skipped, err := NextInGroup("GT-2404", tt.existing)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NextInGroup() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("NextInGroup() = %q, want %q", got, tt.want)
			}
			if len(skipped) != tt.wantSkipped {
				t.Errorf("NextInGroup() skipped %d entries, want %d", len(skipped), tt.wantSkipped)
			}
		})
	}
}

// Serialized generation yields 0001..000N in call order.
func TestNextInGroupMonotonic(t *testing.T) {
	groupKey := "SBT-2409"
	var existing []string
	for i := 1; i <= 12; i++ {
		next, _, err := NextInGroup(groupKey, existing)
		if err != nil {
			t.Fatal(err)
		}
		want := groupKey + []string{"0001", "0002", "0003", "0004", "0005", "0006", "0007", "0008", "0009", "0010", "0011", "0012"}[i-1]
		if next != want {
			t.Fatalf("call %d produced %q, want %q", i, next, want)
		}
		existing = append(existing, next)
	}
}

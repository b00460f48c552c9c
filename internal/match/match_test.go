package match

import (
	"math/rand/v2"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name           string
		liked, asked   []int64
		wantOnlyLiked  []int64
		wantOnlyAsked  []int64
		wantMatched    []int64
		wantInteracted []int64
	}{
		{
			name:           "No likes at all",
			wantOnlyLiked:  []int64{},
			wantOnlyAsked:  []int64{},
			wantMatched:    []int64{},
			wantInteracted: []int64{},
		},
		{
			name:           "Outgoing and incoming without overlap",
			liked:          []int64{3},
			asked:          []int64{4},
			wantOnlyLiked:  []int64{3},
			wantOnlyAsked:  []int64{4},
			wantMatched:    []int64{},
			wantInteracted: []int64{3, 4},
		},
		{
			name:           "Mutual like becomes a match",
			liked:          []int64{5, 3, 9},
			asked:          []int64{9, 4, 3},
			wantOnlyLiked:  []int64{5},
			wantOnlyAsked:  []int64{4},
			wantMatched:    []int64{3, 9},
			wantInteracted: []int64{3, 4, 5, 9},
		},
		{
			name:           "Duplicate ids collapse",
			liked:          []int64{2, 2},
			asked:          []int64{2},
			wantOnlyLiked:  []int64{},
			wantOnlyAsked:  []int64{},
			wantMatched:    []int64{2},
			wantInteracted: []int64{2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.liked, tt.asked)
			assertIDs(t, "OnlyLiked", got.OnlyLiked, tt.wantOnlyLiked)
			assertIDs(t, "OnlyAsked", got.OnlyAsked, tt.wantOnlyAsked)
			assertIDs(t, "Matched", got.Matched, tt.wantMatched)
			assertIDs(t, "Interacted", got.Interacted, tt.wantInteracted)
		})
	}
}

// TestClassify_Partition checks the bucket invariants on random inputs.
func TestClassify_Partition(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 200; i++ {
		liked := randomIDs(r)
		asked := randomIDs(r)
		got := Classify(liked, asked)

		likedSet, askedSet := NewIDSet(liked...), NewIDSet(asked...)
		seen := make(map[int64]int)
		for _, bucket := range [][]int64{got.OnlyLiked, got.OnlyAsked, got.Matched} {
			for _, id := range bucket {
				seen[id]++
			}
		}
		for id, n := range seen {
			if n != 1 {
				t.Fatalf("id %d appears in %d buckets", id, n)
			}
		}

		union := likedSet.Union(askedSet)
		if len(seen) != len(union) {
			t.Fatalf("buckets cover %d ids, union has %d", len(seen), len(union))
		}
		for _, id := range got.Interacted {
			if !union.Has(id) {
				t.Fatalf("interacted id %d is not liked or asked", id)
			}
		}
		for _, id := range got.Matched {
			if !likedSet.Has(id) || !askedSet.Has(id) {
				t.Fatalf("matched id %d is not in both directions", id)
			}
		}
	}
}

func TestIsMatch(t *testing.T) {
	if !IsMatch(3, []int64{4, 3}) {
		t.Errorf("expected 3 to match when 3 already likes the viewer")
	}
	if IsMatch(3, nil) {
		t.Errorf("expected no match without incoming likes")
	}
}

func randomIDs(r *rand.Rand) []int64 {
	n := r.IntN(8)
	ids := make([]int64, n)
	for i := range ids {
		ids[i] = int64(r.IntN(10) + 1)
	}
	return ids
}

func assertIDs(t *testing.T, name string, got, want []int64) {
	t.Helper()
	if got == nil {
		t.Errorf("%s is nil, want empty slice", name)
	}
	if len(got) != len(want) {
		t.Errorf("%s got = %v, want %v", name, got, want)
		return
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("%s got = %v, want %v", name, got, want)
			return
		}
	}
}

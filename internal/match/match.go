package match

// Relations classifies the cats a viewer cat has interacted with.
//
// OnlyLiked, OnlyAsked and Matched are pairwise disjoint and their union is
// Interacted. Every slice is sorted ascending and never nil.
type Relations struct {
	// OnlyLiked holds cats the viewer likes that have not liked it back.
	OnlyLiked []int64
	// OnlyAsked holds cats that like the viewer without a like in return.
	OnlyAsked []int64
	// Matched holds cats with likes in both directions.
	Matched []int64
	// Interacted is every cat with a like in either direction.
	Interacted []int64
}

// Classify splits the outgoing (liked) and incoming (asked) like targets of
// one cat into relationship buckets.
func Classify(liked, asked []int64) Relations {
	likedSet := NewIDSet(liked...)
	askedSet := NewIDSet(asked...)

	return Relations{
		OnlyLiked:  likedSet.Difference(askedSet).Sorted(),
		OnlyAsked:  askedSet.Difference(likedSet).Sorted(),
		Matched:    likedSet.Intersection(askedSet).Sorted(),
		Interacted: likedSet.Union(askedSet).Sorted(),
	}
}

// IsMatch reports whether a like from a to b closes a mutual pair, given
// the set of cats that already like a.
func IsMatch(b int64, askedOfA []int64) bool {
	return NewIDSet(askedOfA...).Has(b)
}

package dendro

// Rollover correction. The dendrometer encoder reports cumulative size
// up to a hardware maximum; when growth passes it the reading wraps back
// toward zero. Readings after the wrap are reconstructed as
// threshold-plus-raw so the cumulative series stays monotonic.
//
// The correction is an explicit two-phase pipeline over records that are
// already sorted by timestamp: first locate the split point, then shift
// everything after it. Only the last wrap event is handled; a file with
// several independent wrap cycles is reported by the caller via the
// occurrence count.

// SplitPoint returns the index of the last record whose Size equals
// exactly threshold, and how many records sit at the threshold. With no
// such record the index is -1. Records must already be sorted by
// timestamp; "last" means most recent.
func SplitPoint(records []Record, threshold float64) (index, occurrences int) {
	index = -1
	for i, rec := range records {
		if rec.Size != nil && *rec.Size == threshold {
			index = i
			occurrences++
		}
	}
	return index, occurrences
}

// ApplyBaseline adds threshold to the Size of every record strictly
// after the split index. A split of -1 leaves all records unmodified.
func ApplyBaseline(records []Record, split int, threshold float64) {
	if split < 0 {
		return
	}
	for i := split + 1; i < len(records); i++ {
		if records[i].Size == nil {
			continue
		}
		corrected := *records[i].Size + threshold
		records[i].Size = &corrected
	}
}

// CorrectRollover runs both phases in place and returns the number of
// records found at the threshold so the caller can flag files that
// wrapped more than once.
func CorrectRollover(records []Record, threshold float64) int {
	split, occurrences := SplitPoint(records, threshold)
	ApplyBaseline(records, split, threshold)
	return occurrences
}

package pagesift

import (
	"sort"

	"github.com/cespare/xxhash/v2"
)

// ConflictPolicy decides what happens when two records share the
// configured key fields but differ in other field values.
type ConflictPolicy int

const (
	// ConflictKeepFirst drops the later record and records its chunk
	// index as provenance on the first. This is the default.
	ConflictKeepFirst ConflictPolicy = iota

	// ConflictKeepAll keeps conflicting records as distinct rows.
	ConflictKeepAll
)

// MergePolicy configures record deduplication.
type MergePolicy struct {
	// Keys names the fields that identify a record. Empty means exact
	// match across all field values.
	Keys []string

	// Conflict applies when Keys is set and two records share key
	// values but differ elsewhere.
	Conflict ConflictPolicy
}

// MergedRecord is one deduplicated record with its provenance: the
// ascending chunk indices that produced it.
type MergedRecord struct {
	Record Record `json:"record"`
	Chunks []int  `json:"chunks"`
}

// MergedResult is the deduplicated, ordered combination of all
// ParseResults for one request. It is derived solely from those
// results and recomputed fresh per request; merge never fabricates a
// record.
type MergedResult struct {
	Records []MergedRecord `json:"records"`
}

// Merge reconciles per-chunk parse results into one dataset. Results
// are consumed in ascending chunk-index order regardless of the order
// they arrive in, so concurrent completion timing never changes the
// output. First occurrence wins; later duplicates are dropped but
// their chunk index is appended to the kept record's provenance.
//
// Zero results, or successes that extracted nothing, yield an empty
// MergedResult. Merge fails only with EALLFAILED, when every result
// reports a failed parse.
func Merge(results []ParseResult, policy MergePolicy) (*MergedResult, error) {
	sorted := make([]ParseResult, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ChunkIndex < sorted[j].ChunkIndex
	})

	if len(sorted) > 0 && !anySucceeded(sorted) {
		return nil, Errorf(EALLFAILED, "all %d chunks failed parsing", len(sorted))
	}

	merged := &MergedResult{}
	byFull := make(map[uint64]int) // full-value hash -> record position
	byKey := make(map[uint64]int)  // key-field hash -> first record position

	for _, res := range sorted {
		if !res.Success {
			continue
		}
		for _, rec := range res.Records {
			full := hashRecord(rec, nil)
			if pos, ok := byFull[full]; ok {
				addProvenance(&merged.Records[pos], res.ChunkIndex)
				continue
			}

			if len(policy.Keys) > 0 {
				key := hashRecord(rec, policy.Keys)
				if pos, ok := byKey[key]; ok && policy.Conflict == ConflictKeepFirst {
					addProvenance(&merged.Records[pos], res.ChunkIndex)
					continue
				}
				if _, ok := byKey[key]; !ok {
					byKey[key] = len(merged.Records)
				}
			}

			byFull[full] = len(merged.Records)
			merged.Records = append(merged.Records, MergedRecord{
				Record: rec,
				Chunks: []int{res.ChunkIndex},
			})
		}
	}

	return merged, nil
}

func anySucceeded(results []ParseResult) bool {
	for _, r := range results {
		if r.Success {
			return true
		}
	}
	return false
}

func addProvenance(rec *MergedRecord, chunk int) {
	for _, c := range rec.Chunks {
		if c == chunk {
			return
		}
	}
	rec.Chunks = append(rec.Chunks, chunk)
}

// hashRecord computes a dedup key over the named fields, or over all
// fields (name-sorted, so field order never affects equality) when
// keys is nil.
func hashRecord(rec Record, keys []string) uint64 {
	if keys == nil {
		names := make([]string, 0, len(rec.Fields))
		for _, f := range rec.Fields {
			names = append(names, f.Name)
		}
		sort.Strings(names)
		keys = names
	}

	d := xxhash.New()
	for _, name := range keys {
		value, _ := rec.Get(name)
		_, _ = d.WriteString(name)
		_, _ = d.Write([]byte{0})
		_, _ = d.WriteString(value)
		_, _ = d.Write([]byte{0xff})
	}
	return d.Sum64()
}

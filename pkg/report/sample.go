package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
)

// SampleRecord is one sampled dialogue line. LineIndex is the line's index
// within its chapter's dialogue-only lines.
type SampleRecord struct {
	ChapterID string `json:"chapter_id"`
	LineIndex int    `json:"line_index"`
	Text      string `json:"text"`
}

// Reservoir keeps a fixed-capacity uniform random sample of a stream of
// dialogue lines (algorithm R). The first capacity offers always populate
// the reservoir; the i-th offer thereafter is admitted with probability
// capacity/i, replacing a uniformly chosen slot. The random source is owned
// by the reservoir, so a fixed seed over a fixed stream reproduces the exact
// same sample set.
type Reservoir struct {
	capacity int
	seen     int
	rng      *rand.Rand
	records  []SampleRecord
}

// NewReservoir creates a Reservoir with the given capacity and seed. A
// capacity of zero disables sampling.
func NewReservoir(capacity int, seed int64) *Reservoir {
	r := &Reservoir{
		capacity: capacity,
		rng:      rand.New(rand.NewSource(seed)),
	}
	if capacity > 0 {
		r.records = make([]SampleRecord, 0, capacity)
	}
	return r
}

// Offer presents one line of the stream to the reservoir.
func (r *Reservoir) Offer(rec SampleRecord) {
	if r.capacity <= 0 {
		return
	}
	r.seen++
	if len(r.records) < r.capacity {
		r.records = append(r.records, rec)
		return
	}
	if r.rng.Float64() < float64(r.capacity)/float64(r.seen) {
		r.records[r.rng.Intn(r.capacity)] = rec
	}
}

// Records returns the sampled records in reservoir order (not stream order).
func (r *Reservoir) Records() []SampleRecord {
	return r.records
}

// WriteSamples writes sample records as JSON lines, one record per line, in
// reservoir order.
func WriteSamples(path string, records []SampleRecord) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("encoding sample record: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing sample file: %w", err)
	}
	return nil
}

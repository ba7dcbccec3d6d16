package models

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ExtractionResult is the field mapping extracted from a lookup page.
// Keys keep the order in which they were first inserted; setting an
// existing key replaces its value in place.
type ExtractionResult struct {
	fields *orderedmap.OrderedMap[string, string]
}

// NewExtractionResult returns an empty result.
func NewExtractionResult() *ExtractionResult {
	return &ExtractionResult{fields: orderedmap.New[string, string]()}
}

// Set stores value under key, overwriting any previous value.
func (r *ExtractionResult) Set(key, value string) {
	r.fields.Set(key, value)
}

// Get returns the value stored under key.
func (r *ExtractionResult) Get(key string) (string, bool) {
	return r.fields.Get(key)
}

// Len returns the number of fields.
func (r *ExtractionResult) Len() int {
	return r.fields.Len()
}

// Keys returns the field names in insertion order.
func (r *ExtractionResult) Keys() []string {
	keys := make([]string, 0, r.fields.Len())
	for pair := r.fields.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Each calls fn for every field in insertion order.
func (r *ExtractionResult) Each(fn func(key, value string)) {
	for pair := r.fields.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// Map returns an unordered copy of the fields.
func (r *ExtractionResult) Map() map[string]string {
	m := make(map[string]string, r.fields.Len())
	r.Each(func(k, v string) { m[k] = v })
	return m
}

// MarshalJSON encodes the fields as a JSON object in insertion order.
func (r *ExtractionResult) MarshalJSON() ([]byte, error) {
	return r.fields.MarshalJSON()
}

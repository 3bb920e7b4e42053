// pkg/api/counts_v1.go
package api

// CountsV1 is the stable JSON schema for a k-mer frequency table.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type CountsV1 struct {
	Command string            `json:"command"`
	Input   string            `json:"input"`
	K       int               `json:"k"`
	Counts  map[string]uint64 `json:"counts"`
}

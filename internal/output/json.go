// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"jank/pkg/api"
)

// ToAPI converts a payload to the stable wire schema (v1).
func ToAPI(p Payload) api.CountsV1 {
	return api.CountsV1{
		Command: CommandLine(p.Input, p.K),
		Input:   p.Input,
		K:       p.K,
		Counts:  p.Table.Map(),
	}
}

// WriteJSON writes one indented JSON object. Map keys come out sorted.
func WriteJSON(w io.Writer, p Payload) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToAPI(p))
}

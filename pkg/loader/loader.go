package loader

import (
	"context"
	"fmt"

	"github.com/kaptinlin/jsonrepair"
	"github.com/tidwall/gjson"
)

// FileLoader defines the interface for reading corpus artifacts by path.
// Implementations may load files from disk or from an in-memory source,
// and may cache results.
type FileLoader interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
}

// ParseJSON parses a corpus artifact into a gjson document. Exported game
// data is occasionally malformed (trailing commas, truncated escapes), so a
// repair pass is attempted before giving up.
func ParseJSON(data []byte) (gjson.Result, error) {
	if gjson.ValidBytes(data) {
		return gjson.ParseBytes(data), nil
	}

	repaired, err := jsonrepair.JSONRepair(string(data))
	if err != nil {
		return gjson.Result{}, fmt.Errorf("json repair failed: %w", err)
	}
	if !gjson.Valid(repaired) {
		return gjson.Result{}, fmt.Errorf("artifact is not valid JSON after repair")
	}

	return gjson.Parse(repaired), nil
}

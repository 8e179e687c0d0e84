package catalog

import (
	"context"
	"fmt"
	"os"
)

// FileSource reads plugin records from a local plugin_details.json. The file
// holds the plain JSON array, not the base64 contents API envelope.
type FileSource struct {
	Path string
}

// Fetch reads and parses the local file
func (f FileSource) Fetch(ctx context.Context, report ReportFunc) ([]RawRecord, error) {
	if report == nil {
		report = func(Phase) {}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report(PhaseFetching)
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &FetchError{Message: fmt.Sprintf("plugin file not found: %s", f.Path), Err: err}
		}
		return nil, &FetchError{Message: "failed to read plugin file", Err: err}
	}

	report(PhaseProcessing)
	return ParseRecords(data)
}

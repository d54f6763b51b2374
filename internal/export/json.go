package export

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"

	"github.com/sells-group/leadgen-cli/internal/model"
)

// WriteJSON writes results as a pretty-printed JSON array, overwriting any
// existing file. A nil slice is written as an empty array, not null.
func WriteJSON(results []model.FinalResult, path string) error {
	if results == nil {
		results = []model.FinalResult{}
	}

	f, err := os.Create(path)
	if err != nil {
		return eris.Wrap(err, "export: create json file")
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return eris.Wrap(err, "export: encode json")
	}
	return nil
}

// ReadJSON loads a previously exported result file.
func ReadJSON(path string) ([]model.FinalResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "export: read json file")
	}

	var results []model.FinalResult
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, eris.Wrap(err, "export: decode json")
	}
	return results, nil
}

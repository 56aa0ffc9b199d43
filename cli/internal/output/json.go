package output

import (
	"encoding/json"
	"io"

	"github.com/reactome/releasefetch/ensembl"
	"github.com/reactome/releasefetch/instanceedit"
)

// JSONFormatter outputs in JSON format
type JSONFormatter struct {
	encoder *json.Encoder
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return &JSONFormatter{
		encoder: enc,
	}
}

// fetchResultOutput represents one retrieved source for JSON output
type fetchResultOutput struct {
	Source      string  `json:"source"`
	URL         string  `json:"url"`
	Destination string  `json:"destination"`
	Outcome     string  `json:"outcome"`
	Size        int64   `json:"size"`
	DurationSec float64 `json:"duration_seconds"`
	Error       string  `json:"error,omitempty"`
}

// FormatFetchResults outputs fetch results in JSON format
func (f *JSONFormatter) FormatFetchResults(results []FetchResult) error {
	output := make([]fetchResultOutput, len(results))
	failed := 0
	for i, r := range results {
		output[i] = fetchResultOutput{
			Source:      r.Source,
			URL:         r.URL,
			Destination: r.Destination,
			Outcome:     r.Outcome,
			Size:        r.Size,
			DurationSec: r.Duration.Seconds(),
		}
		if r.Err != nil {
			failed++
			output[i].Error = r.Err.Error()
		}
	}
	return f.encoder.Encode(map[string]interface{}{
		"results": output,
		"failed":  failed,
	})
}

// ensemblResultOutput represents an Ensembl response decision for JSON output
type ensemblResultOutput struct {
	URL               string  `json:"url"`
	Status            int     `json:"status"`
	Body              string  `json:"body"`
	OkToRetry         bool    `json:"ok_to_retry"`
	WaitSeconds       float64 `json:"wait_seconds"`
	RequestsRemaining int64   `json:"requests_remaining"`
}

// FormatEnsemblResult outputs an Ensembl result in JSON format
func (f *JSONFormatter) FormatEnsemblResult(url string, result ensembl.Result, remaining int64) error {
	return f.encoder.Encode(ensemblResultOutput{
		URL:               url,
		Status:            result.Status,
		Body:              result.Body,
		OkToRetry:         result.OkToRetry,
		WaitSeconds:       result.WaitTime.Seconds(),
		RequestsRemaining: remaining,
	})
}

// gunzipResultOutput represents a decompressed file for JSON output
type gunzipResultOutput struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Size   int64  `json:"size"`
}

// FormatGunzipResults outputs decompressed files in JSON format
func (f *JSONFormatter) FormatGunzipResults(results []GunzipResult) error {
	output := make([]gunzipResultOutput, len(results))
	for i, r := range results {
		output[i] = gunzipResultOutput(r)
	}
	return f.encoder.Encode(map[string]interface{}{
		"files": output,
	})
}

// instanceEditOutput represents an InstanceEdit for JSON output
type instanceEditOutput struct {
	DBID        int64  `json:"db_id"`
	DisplayName string `json:"display_name"`
	Note        string `json:"note"`
	DateTime    string `json:"date_time"`
	AuthorID    int64  `json:"author_id,omitempty"`
}

// FormatInstanceEdit outputs an InstanceEdit in JSON format
func (f *JSONFormatter) FormatInstanceEdit(edit *instanceedit.Instance) error {
	output := instanceEditOutput{
		DBID:        edit.DBID,
		DisplayName: edit.DisplayName,
		Note:        edit.Note,
		DateTime:    edit.DateTime.Format(instanceedit.DateTimeLayout),
	}
	if edit.Author != nil {
		output.AuthorID = edit.Author.DBID
	}
	return f.encoder.Encode(output)
}

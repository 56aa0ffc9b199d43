package output

import (
	"io"
	"time"

	"github.com/reactome/releasefetch/ensembl"
	"github.com/reactome/releasefetch/instanceedit"
)

// FetchResult is the outcome of retrieving one configured source.
type FetchResult struct {
	Source      string
	URL         string
	Destination string
	// Outcome is one of the metrics outcome labels.
	Outcome  string
	Size     int64
	Duration time.Duration
	Err      error
}

// GunzipResult is one decompressed file.
type GunzipResult struct {
	Source string
	Target string
	Size   int64
}

// Formatter defines the interface for different output formats
type Formatter interface {
	// FormatFetchResults outputs the outcome of every retrieved source
	FormatFetchResults(results []FetchResult) error

	// FormatEnsemblResult outputs the terminal decision for one Ensembl request
	FormatEnsemblResult(url string, result ensembl.Result, remaining int64) error

	// FormatGunzipResults outputs decompressed files
	FormatGunzipResults(results []GunzipResult) error

	// FormatInstanceEdit outputs a created InstanceEdit
	FormatInstanceEdit(edit *instanceedit.Instance) error
}

// Get returns the appropriate formatter based on format type
func Get(format string, w io.Writer) Formatter {
	switch format {
	case "json":
		return NewJSONFormatter(w)
	default:
		return NewHumanFormatter(w)
	}
}

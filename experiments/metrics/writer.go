package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// TurnRecord is one row of the turn records file.
type TurnRecord struct {
	Game      string // Game or experiment run identifier
	Config    int    // Config index, 0 for live games
	FreeStart int
	FreeEnd   int
	Targets   int
	Lines     int
	Deferred  int
	Stop      string
	TurnMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of dir named by the current timestamp.
func NewWriter(dir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(dir, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

// Dir returns the folder the files are written to.
func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteTurnRecords(records []TurnRecord) error {
	// Create a file
	path := filepath.Join(w.baseDir, "turn_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create turn records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	// Write header
	header := []string{"game", "config", "turn", "duration_us", "max_duration_us", "free_start", "free_end", "targets", "lines", "deferred", "stop"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write turn records header: %w", err)
	}

	// Write each row
	for _, record := range records {
		row := []string{
			record.Game,
			strconv.Itoa(record.Config),
			strconv.Itoa(record.Turn),
			strconv.FormatInt(record.Duration.Microseconds(), 10),
			strconv.FormatInt(record.MaxDuration.Microseconds(), 10),
			strconv.Itoa(record.FreeStart),
			strconv.Itoa(record.FreeEnd),
			strconv.Itoa(record.Targets),
			strconv.Itoa(record.Lines),
			strconv.Itoa(record.Deferred),
			record.Stop,
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write turn record row: %w", err)
		}
	}

	return nil
}

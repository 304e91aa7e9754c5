package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer dumps self-play records as CSV files under a timestamped run
// directory, one file per record kind.
type Writer struct {
	baseDir string
}

func NewWriter(root string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) BaseDir() string {
	return w.baseDir
}

func (w *Writer) WriteGameRecords(records []GameMetric) error {
	path := filepath.Join(w.baseDir, "game_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "seed", "score", "start_time", "duration", "total_moves"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.ID,
			strconv.FormatInt(record.Seed, 10),
			strconv.Itoa(record.Score),
			record.StartTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteMoveRecords(gameID string, records []MoveMetric) error {
	path := filepath.Join(w.baseDir, "move_records.csv")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open move records file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat move records file: %w", err)
	}

	writer := csv.NewWriter(f)
	defer writer.Flush()

	if info.Size() == 0 {
		header := []string{
			"game", "step", "season", "actions",
			"chosen_visits", "chosen_value",
			"goroutines", "duration", "episodes", "full_playouts", "cutoff",
		}
		if err := writer.Write(header); err != nil {
			return fmt.Errorf("failed to write move records header: %w", err)
		}
	}

	for _, record := range records {
		row := []string{
			gameID,
			strconv.Itoa(record.Step),
			strconv.Itoa(record.Season),
			strconv.Itoa(record.Actions),
			strconv.FormatFloat(record.ChosenVisits, 'f', -1, 64),
			strconv.FormatFloat(record.ChosenValue, 'f', 4, 64),
			strconv.Itoa(record.Goroutines),
			record.Duration.String(),
			strconv.Itoa(record.Episodes),
			strconv.Itoa(record.FullPlayouts),
			strconv.Itoa(record.Cutoff),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write move record row: %w", err)
		}
	}

	return nil
}

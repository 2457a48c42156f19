package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type PlayerConfig struct {
	ID         int
	Strategy   string
	Difficulty int
}

type GameRecord struct {
	GameMetric
}

type MoveRecord struct {
	Game string // GameMetric.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

func NewWriter(outputDir, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(outputDir, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

// write stores one CSV file with a header row.
func (w *Writer) write(file, kind string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s file: %w", kind, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", kind, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", kind, err)
	}
	return nil
}

func (w *Writer) WritePlayerConfigs(configs []PlayerConfig) error {
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Strategy,
			strconv.Itoa(config.Difficulty),
		})
	}
	header := []string{"id", "strategy", "difficulty"}
	return w.write("player_configs.csv", "player configs", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		scores := make([]string, len(record.Scores))
		for i, score := range record.Scores {
			scores[i] = strconv.Itoa(score)
		}
		rows = append(rows, []string{
			record.ID,
			strconv.FormatUint(record.Seed, 10),
			strconv.Itoa(record.MaxDepth),
			strconv.Itoa(record.Winner),
			strings.Join(scores, ";"),
			strconv.Itoa(record.TotalMoves),
			strconv.Itoa(record.Passes),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	header := []string{"id", "seed", "max_depth", "winner", "scores", "total_moves", "passes", "start_time", "end_time", "duration"}
	return w.write("game_records.csv", "game records", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Game,
			strconv.Itoa(record.Step),
			strconv.Itoa(record.Player),
			record.Action,
			strconv.Itoa(record.Score),
			record.Strategy,
			strconv.Itoa(record.Trials),
			strconv.Itoa(record.Successes),
			strconv.Itoa(record.Attempts),
			strconv.Itoa(record.InitialScore),
			strconv.Itoa(record.BestScore),
			record.Duration.String(),
		})
	}
	header := []string{"game", "step", "player", "action", "score", "strategy", "trials", "successes", "attempts", "initial_score", "best_score", "duration"}
	return w.write("move_records.csv", "move records", header, rows)
}

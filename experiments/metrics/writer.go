package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

type GameRecord struct {
	ID int
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of root named by the current timestamp and
// writes every file there.
func NewWriter(root string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, timestamp)
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

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			record.Winner,
			strconv.Itoa(record.Rounds),
			strconv.Itoa(record.TotalMoves),
			strconv.Itoa(record.Fallbacks),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	header := []string{"id", "winner", "rounds", "total_moves", "fallbacks", "start_time", "end_time", "duration"}
	return w.writeCSV("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Colour.String(),
			record.Move,
			strconv.Itoa(record.Depth),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Leaves),
			strconv.Itoa(record.Cutoffs),
			record.Duration.String(),
		})
	}
	header := []string{"game", "step", "colour", "move", "depth", "nodes", "leaves", "cutoffs", "duration"}
	return w.writeCSV("move_records.csv", header, rows)
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}

// WriteChart renders the nodes searched at every step of every game as an HTML
// line chart, one series per game. Moves without a search (random players) are skipped.
func (w *Writer) WriteChart(records []MoveRecord) error {
	steps := 0
	series := map[int][]MoveRecord{}
	order := []int{}
	for _, record := range records {
		if record.Nodes == 0 {
			continue
		}
		if _, ok := series[record.Game]; !ok {
			order = append(order, record.Game)
		}
		series[record.Game] = append(series[record.Game], record)
		steps = max(steps, record.Step+1)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Search effort",
			Subtitle: "nodes expanded per step",
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
	)

	var xAxis []string
	for i := 0; i < steps; i++ {
		xAxis = append(xAxis, strconv.Itoa(i))
	}
	line = line.SetXAxis(xAxis)

	for _, game := range order {
		items := make([]opts.LineData, steps)
		for i := range items {
			items[i] = opts.LineData{Value: "-"}
		}
		colours := []string{}
		for _, record := range series[game] {
			items[record.Step] = opts.LineData{Value: record.Nodes}
			colours = appendUnique(colours, record.Colour.String())
		}
		line.AddSeries(fmt.Sprintf("game %d (%s)", game, strings.Join(colours, "+")), items)
	}

	page := components.NewPage()
	page.AddCharts(
		line,
	)

	f, err := os.Create(filepath.Join(w.baseDir, "search_effort.html"))
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	err = page.Render(f)
	if err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

func appendUnique(values []string, value string) []string {
	for _, v := range values {
		if v == value {
			return values
		}
	}
	return append(values, value)
}

package requests

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"cpu-scheduler-simulator/internal/core"
)

var (
	ErrWorkloadNotFound = errors.New("workload file not found")
	ErrNoValidRecords   = errors.New("no valid process records")
)

// LoadCSVFile reads a workload file from disk.
func LoadCSVFile(path string) ([]core.Process, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrWorkloadNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("opening workload file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("%v: error closing workload file", err)
		}
	}()

	return LoadCSV(f)
}

// LoadCSV parses records of the form id,arrival,burst,priority after a header row.
// Short rows and rows with non-numeric times are skipped.
func LoadCSV(r io.Reader) ([]core.Process, error) {
	jobs, err := ReadJobs(r)
	if err != nil {
		return nil, err
	}
	return toWorkload(jobs)
}

func ReadJobs(r io.Reader) ([]Job, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	if len(rows) > 0 {
		rows = rows[1:] // header
	}

	jobs := make([]Job, 0, len(rows))
	for i, row := range rows {
		job, ok := parseRow(row)
		if !ok {
			log.Printf("skipping malformed workload row %d: %q", i+2, row)
			continue
		}
		jobs = append(jobs, job)
	}
	if len(jobs) == 0 {
		return nil, ErrNoValidRecords
	}
	return jobs, nil
}

func parseRow(row []string) (Job, bool) {
	if len(row) < 4 {
		return Job{}, false
	}
	arrival, err := strconv.Atoi(strings.TrimSpace(row[1]))
	if err != nil {
		return Job{}, false
	}
	burst, err := strconv.Atoi(strings.TrimSpace(row[2]))
	if err != nil {
		return Job{}, false
	}
	return Job{
		ProcessId:   strings.TrimSpace(row[0]),
		ArrivalTime: arrival,
		BurstTime:   burst,
		Priority:    row[3],
	}, true
}

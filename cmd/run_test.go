package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"cpu-scheduler-simulator/internal/requests"
	"cpu-scheduler-simulator/internal/responses"
	"cpu-scheduler-simulator/internal/schedulers"
)

func writeWorkload(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "case.csv")
	content := "id,arrival,burst,priority\nA,0,5,high\nB,1,3,low\nC,2,1,normal\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestPrintResults_Formats(t *testing.T) {
	workload, err := requests.LoadCSVFile(writeWorkload(t))
	require.NoError(t, err)
	results, err := schedulers.ScheduleAll(workload, schedulers.DefaultOptions())
	require.NoError(t, err)
	schedulers.SortByAlgorithm(results)

	var buf bytes.Buffer
	require.NoError(t, printResults(&buf, "json", results))
	var decoded []responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, results, decoded)

	buf.Reset()
	require.NoError(t, printResults(&buf, "yaml", results))
	var fromYAML []responses.ScheduleResponse
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &fromYAML))
	require.Len(t, fromYAML, len(results))
	assert.Equal(t, results[0].Timeline, fromYAML[0].Timeline)

	buf.Reset()
	require.NoError(t, printResults(&buf, "table", results))
	assert.Contains(t, buf.String(), "Algorithm Result: Priority Preemptive")

	assert.Error(t, printResults(&buf, "xml", results))
}

func TestRunCommand(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "reports")
	var stdout, stderr bytes.Buffer
	rootCLI.SetOut(&stdout)
	rootCLI.SetErr(&stderr)
	rootCLI.SetArgs([]string{"run", writeWorkload(t), "--format", "json", "--quantum", "2", "--out", outDir})
	t.Cleanup(func() { rootCLI.SetArgs(nil) })

	require.NoError(t, rootCLI.Execute())

	var results []responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &results))
	require.Len(t, results, len(schedulers.Algorithms))
	assert.Equal(t, schedulers.FirstComeFirstServeName, results[0].Algorithm)
	assert.Equal(t, schedulers.RoundRobinName, results[3].Algorithm)
	assert.Equal(t, 2, results[3].Timeline[0].End, "quantum flag must reach the scheduler")

	for _, r := range results {
		assert.FileExists(t, filepath.Join(outDir, r.FileName))
	}
}

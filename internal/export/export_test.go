package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tgscan/tg-file-scraper/internal/types"
)

func sampleRecords() []types.FileRecord {
	return []types.FileRecord{
		{
			Filename:   "ea.zip",
			MessageID:  105,
			Date:       "2024-03-01 12:30:00",
			Sender:     "Jane Doe",
			Caption:    "latest build, v2 \"final\"",
			FileSizeMB: 1.5,
			MessageURL: "https://t.me/mychannel/105",
		},
		{
			Filename:   "robot.ex4",
			MessageID:  101,
			Sender:     "@jdoe",
			FileSizeMB: 0.25,
			MessageURL: "https://t.me/mychannel/101",
		},
		{
			Filename:   "notes.txt",
			MessageID:  99,
			Sender:     "Unknown",
			MessageURL: "99",
		},
	}
}

func TestRecordCountConservation(t *testing.T) {
	records := sampleRecords()
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "out.csv")
	jsonPath := filepath.Join(dir, "out.json")

	require.NoError(t, WriteCSV(records, csvPath))
	require.NoError(t, WriteJSON(records, jsonPath))

	f, err := os.Open(csvPath)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	var decoded []types.FileRecord
	require.NoError(t, json.Unmarshal(data, &decoded))

	// Header plus one row per record; JSON array element per record.
	assert.Len(t, rows, len(records)+1)
	assert.Len(t, decoded, len(records))
	assert.Equal(t, records, decoded)
}

func TestCSVColumnsAndQuoting(t *testing.T) {
	records := sampleRecords()
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteCSV(records, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.NotEmpty(t, rows)
	assert.Equal(t, []string{"filename", "message_id", "date", "sender", "caption", "file_size_mb", "message_url"}, rows[0])

	// Export order mirrors collector order; embedded commas and quotes in the
	// caption survive the round trip.
	assert.Equal(t, "ea.zip", rows[1][0])
	assert.Equal(t, "105", rows[1][1])
	assert.Equal(t, `latest build, v2 "final"`, rows[1][4])
	assert.Equal(t, "1.5", rows[1][5])
	assert.Equal(t, "robot.ex4", rows[2][0])
	assert.Equal(t, "notes.txt", rows[3][0])
}

func TestEmptyExportIsNoOp(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "out.csv")
	jsonPath := filepath.Join(dir, "out.json")

	require.NoError(t, WriteCSV(nil, csvPath))
	require.NoError(t, WriteJSON(nil, jsonPath))

	_, err := os.Stat(csvPath)
	assert.True(t, os.IsNotExist(err), "empty export must not create a CSV file")
	_, err = os.Stat(jsonPath)
	assert.True(t, os.IsNotExist(err), "empty export must not create a JSON file")
}

func TestExportOverwritesDeterministically(t *testing.T) {
	records := sampleRecords()
	path := filepath.Join(t.TempDir(), "out.csv")

	require.NoError(t, WriteCSV(records, path))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, WriteCSV(records, path))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

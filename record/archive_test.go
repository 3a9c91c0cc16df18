package record

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func zipArchive(t *testing.T, members map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range members {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestFromArchiveReadsMemberCSV(t *testing.T) {
	data := zipArchive(t, map[string]string{
		"README.txt":     "not a csv",
		"shots_2023.csv": "shotID,goal\n1,0\n2,1\n",
	})
	opts := CSVOptions{ColumnTypes: map[string]ColumnType{"shotID": Int, "goal": Int}}

	seq, err := FromArchive(data, "shots_2023.csv", opts)

	require.NoError(t, err)
	require.Len(t, seq, 2)
	assert.Equal(t, 1, seq[0]["shotID"])
	assert.Equal(t, 1, seq[1]["goal"])
}

func TestFromArchiveMissingMember(t *testing.T) {
	data := zipArchive(t, map[string]string{"other.csv": "a\n1\n"})

	_, err := FromArchive(data, "shots_2023.csv", CSVOptions{})

	var missing *MissingMemberError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "shots_2023.csv", missing.Name)
}

func TestFromArchiveMalformedArchive(t *testing.T) {
	_, err := FromArchive([]byte("this is not a zip file"), "shots_2023.csv", CSVOptions{})

	var malformed *MalformedArchiveError
	require.ErrorAs(t, err, &malformed)
}

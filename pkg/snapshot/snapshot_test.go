package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSnapshot(t *testing.T) {
	ValidateSnapshot(t, map[string]interface{}{
		"hand":  "5D | 3H 2D 4C 8S",
		"total": 8,
	}, 0)
}

func TestNextFilename(t *testing.T) {
	a := assert.New(t)

	a.Equal(filepath.Join("testdata", "snapshot.TestNextFilename-0.json"), nextFilename(0))
	a.Equal(filepath.Join("testdata", "snapshot.TestNextFilename-1.json"), nextFilename(0))
}

func TestWrite(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "nested", "snap.json")
	assert.NoError(t, write(filename, []byte(`{"a": 1}`)))

	data, err := os.ReadFile(filename)
	assert.NoError(t, err)
	assert.Equal(t, "{\"a\": 1}\n", string(data))
}

package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// UpdateEnv is the environment variable that forces snapshots to be rewritten
const UpdateEnv = "UPDATE_SNAPSHOTS"

var funcCount = make(map[string]int)

// ValidateSnapshot compares the indented JSON form of obj against testdata/<func>-<n>.json.
// depth is the number of helper frames between the test function and this call.
// A missing snapshot (or UPDATE_SNAPSHOTS=1) writes the file instead of comparing.
func ValidateSnapshot(t *testing.T, obj interface{}, depth int, msgAndArgs ...interface{}) {
	t.Helper()

	filename := nextFilename(1 + depth)

	objJSON, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		t.Fatalf("could not marshal snapshot: %v", err)
	}

	expects, err := os.ReadFile(filename)
	if err != nil && !os.IsNotExist(err) {
		t.Fatalf("could not read snapshot %s: %v", filename, err)
	}

	if os.IsNotExist(err) || os.Getenv(UpdateEnv) == "1" {
		if err := write(filename, objJSON); err != nil {
			t.Fatalf("could not write snapshot %s: %v", filename, err)
		}

		return
	}

	if !assert.Equal(t, strings.Trim(string(expects), "\n"), strings.Trim(string(objJSON), "\n"), msgAndArgs...) {
		t.Logf("snapshot %s", filename)
	}
}

// nextFilename names the snapshot after the calling function and how many times it has asked
func nextFilename(skip int) string {
	pc, _, _, _ := runtime.Caller(skip + 1)
	funcName := filepath.Base(runtime.FuncForPC(pc).Name())

	call := funcCount[funcName]
	funcCount[funcName] = call + 1

	return filepath.Join("testdata", fmt.Sprintf("%s-%d.json", funcName, call))
}

func write(filename string, data []byte) error {
	logrus.WithField("filename", filename).Info("writing snapshot file")
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return err
	}

	return os.WriteFile(filename, append(data, '\n'), 0644)
}

package tests

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

//nolint:gochecknoglobals
var shouldUpdate = flag.Bool("update", false, "")

func GetGoldenFilePath(filePath string) string {
	return path.Join("testdata", "golden", fmt.Sprintf("%s.json", filePath))
}

func GetFixture(t *testing.T, fileName string) []byte {
	t.Helper()

	content, err := os.ReadFile(path.Join("testdata", "fixtures", fmt.Sprintf("%s.json", fileName)))
	if err != nil {
		t.Fatal(errors.Wrap(err, "unable to read fixture"))
	}
	return content
}

// AssertJSON compares actual with the golden file fileName, both being
// decoded first so key order and formatting do not matter. Run the tests
// with -update to rewrite the golden files.
func AssertJSON(t *testing.T, fileName string, actual string) {
	t.Helper()

	filePath := GetGoldenFilePath(fileName)
	if *shouldUpdate {
		err := os.WriteFile(filePath, []byte(actual), 0o600)
		if err != nil {
			t.Fatal(errors.Wrap(err, "unable to write goldenfile"))
		}
	}

	var actualMap map[string]any
	err := json.Unmarshal([]byte(actual), &actualMap)
	if err != nil {
		t.Fatal(errors.Wrap(err, "unable to unmarshall actual json"))
	}
	var expectedMap map[string]any
	fileContent, err := os.ReadFile(filePath)
	if err != nil {
		t.Fatal(errors.Wrap(err, "unable to read golden file content"))
	}
	err = json.Unmarshal(fileContent, &expectedMap)
	if err != nil {
		t.Fatal(errors.Wrap(err, "unable to unmarshall goldenfile json"))
	}
	require.Equal(t, expectedMap, actualMap)
}

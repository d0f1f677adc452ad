package tablatal_test

import (
	"bytes"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KimNorgaard/go-nodaire/tablatal"
	"github.com/stretchr/testify/require"
)

var update = flag.Bool("update", false, "update golden files")

// The golden file holds the indented JSON projection of the parsed rows,
// followed by one line per diagnostic.
func TestGolden(t *testing.T) {
	files, err := filepath.Glob("testdata/*.tbtl")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			src, err := os.ReadFile(file)
			require.NoError(t, err)

			res, err := tablatal.Parse(src)
			require.NoError(t, err)

			var buf bytes.Buffer
			out, err := json.MarshalIndent(res, "", "  ")
			require.NoError(t, err)
			buf.Write(out)
			buf.WriteByte('\n')
			for _, msg := range res.Errors.Messages() {
				buf.WriteString(msg)
				buf.WriteByte('\n')
			}

			goldenFile := strings.TrimSuffix(file, ".tbtl") + ".golden"
			if *update {
				require.NoError(t, os.WriteFile(goldenFile, buf.Bytes(), 0o644))
			}

			expected, err := os.ReadFile(goldenFile)
			require.NoError(t, err, "Golden file not found. Run with -update to create it.")
			require.Equal(t, string(expected), buf.String())
		})
	}
}

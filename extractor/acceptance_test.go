package extractor_test

import (
	"embed"
	"path"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/shibukawa/sqlsegment"
	"github.com/shibukawa/sqlsegment/extractor"
	"github.com/shibukawa/sqlsegment/parser"
	"github.com/shibukawa/sqlsegment/segment"
	"github.com/shibukawa/sqlsegment/testhelper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/acceptancetests/*/*.sql testdata/acceptancetests/*/*.yaml
var acceptanceTests embed.FS

type acceptanceCase struct {
	Dialect  sqlsegment.Dialect `yaml:"dialect"`
	Error    string             `yaml:"error"`
	Segments segment.SelectView `yaml:"segments"`
}

func TestAcceptance(t *testing.T) {
	dirs, err := testhelper.GetAcceptanceTestDirs(acceptanceTests, "testdata/acceptancetests")
	require.NoError(t, err)
	require.NotEmpty(t, dirs)

	for _, dir := range dirs {
		t.Run(path.Base(dir), func(t *testing.T) {
			input, err := testhelper.ReadTestFile(acceptanceTests, dir, "input.sql")
			require.NoError(t, err)

			data, err := testhelper.ReadTestFile(acceptanceTests, dir, "expected.yaml")
			require.NoError(t, err)

			var expected acceptanceCase
			require.NoError(t, yaml.UnmarshalWithOptions(data, &expected, yaml.Strict()))

			result, err := parser.Parse(string(input), expected.Dialect)
			if testhelper.IsErrorTest(dir) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), expected.Error)

				return
			}
			require.NoError(t, err)

			stmt, err := extractor.SelectExtractor{}.Extract(result.Root, result.Placeholders)
			require.NoError(t, err)

			// Compared as YAML so absent and empty clauses read the same.
			want, err := yaml.Marshal(expected.Segments)
			require.NoError(t, err)

			got, err := yaml.Marshal(stmt.Describe())
			require.NoError(t, err)

			assert.Equal(t, string(want), string(got))
		})
	}
}

package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFleet(t *testing.T) {
	t.Run("skips comments and blank lines", func(t *testing.T) {
		input := "# index name size\n0 Carrier 4\n\n1 Destroyer 2\n# trailing\n"

		fleet, err := ParseFleet(strings.NewReader(input), NewStandardRules())

		require.NoError(t, err)
		require.Equal(t, Fleet{
			{ID: 0, Name: "Carrier", Size: 4},
			{ID: 1, Name: "Destroyer", Size: 2},
		}, fleet)
	})

	tests := []struct {
		name  string
		input string
	}{
		{"missing field", "0 Carrier\n"},
		{"non-numeric size", "0 Carrier big\n"},
		{"non-positive size", "0 Carrier 0\n"},
		{"duplicate index", "0 Carrier 4\n0 Destroyer 2\n"},
		{"too large for board", "0 Carrier 7\n"},
		{"too many ships", "0 A 1\n1 B 1\n2 C 1\n3 D 1\n4 E 1\n5 F 1\n"},
		{"empty", "# nothing\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFleet(strings.NewReader(tt.input), NewStandardRules())

			var configErr *ConfigurationError
			require.ErrorAs(t, err, &configErr)
		})
	}
}

func TestLoadFleet(t *testing.T) {
	t.Run("reads a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ships.txt")
		require.NoError(t, os.WriteFile(path, []byte("0 Carrier 4\n1 Destroyer 2\n"), 0644))

		fleet, err := LoadFleet(path, NewStandardRules())

		require.NoError(t, err)
		require.Len(t, fleet, 2)
	})

	t.Run("missing file is a configuration error", func(t *testing.T) {
		_, err := LoadFleet(filepath.Join(t.TempDir(), "missing.txt"), NewStandardRules())

		var configErr *ConfigurationError
		require.ErrorAs(t, err, &configErr)
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("reports the offending line", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ships.txt")
		require.NoError(t, os.WriteFile(path, []byte("# header\n0 Carrier 4\n1 Destroyer\n"), 0644))

		_, err := LoadFleet(path, NewStandardRules())

		var configErr *ConfigurationError
		require.ErrorAs(t, err, &configErr)
		require.Equal(t, 3, configErr.Line)
	})
}

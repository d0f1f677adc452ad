package nodaire_test

import (
	"testing"

	nodaire "github.com/KimNorgaard/go-nodaire"
	"github.com/stretchr/testify/require"
)

func TestParseError(t *testing.T) {
	err := nodaire.ParseError{Line: 4, Message: "Duplicate key"}
	require.Equal(t, "line 4: Duplicate key", err.Error())
}

func TestParseErrors(t *testing.T) {
	t.Run("empty collection", func(t *testing.T) {
		require.Empty(t, nodaire.ParseErrors{}.Error())
		require.Empty(t, nodaire.ParseErrors{}.Messages())
	})

	t.Run("reports the first entry", func(t *testing.T) {
		errs := nodaire.ParseErrors{
			{Line: 2, Message: "Unexpected indent"},
			{Line: 5, Message: "Duplicate key"},
		}
		require.Equal(t, "nodaire: parsing error at line 2: Unexpected indent", errs.Error())
		require.Equal(t, []string{
			"line 2: Unexpected indent",
			"line 5: Duplicate key",
		}, errs.Messages())
	})
}

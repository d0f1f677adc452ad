package csv_test

import (
	"testing"

	nodaire "github.com/KimNorgaard/go-nodaire"
	"github.com/KimNorgaard/go-nodaire/csv"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	src := "NAME,AGE,COLOR\n" +
		"Erica,12,Opal\n" +
		"Alex,23,Cyan\n"

	res, err := csv.Parse([]byte(src))
	require.NoError(t, err)
	require.True(t, res.Valid())
	require.Equal(t, []string{"name", "age", "color"}, res.Keys)
	require.Equal(t, []csv.Record{
		{"name": "Erica", "age": "12", "color": "Opal"},
		{"name": "Alex", "age": "23", "color": "Cyan"},
	}, res.Rows)
}

func TestQuotedFields(t *testing.T) {
	src := "NAME,NOTE\n" +
		"Erica,\"loves commas, apparently\"\n"

	res, err := csv.Parse([]byte(src))
	require.NoError(t, err)
	require.True(t, res.Valid())
	require.Equal(t, "loves commas, apparently", res.Rows[0]["note"])
}

func TestRaggedRows(t *testing.T) {
	src := "A,B,C\n" +
		"1,2\n" +
		"1,2,3,4\n"

	res, err := csv.Parse([]byte(src))
	require.NoError(t, err)
	require.True(t, res.Valid())
	require.Equal(t, []csv.Record{
		{"a": "1", "b": "2", "c": ""},
		{"a": "1", "b": "2", "c": "3"},
	}, res.Rows)
}

func TestCommentsAndBlanksSkipped(t *testing.T) {
	src := "; people\n" +
		"NAME,AGE\n" +
		"\n" +
		"Erica,12\n"

	res, err := csv.Parse([]byte(src))
	require.NoError(t, err)
	require.True(t, res.Valid())
	require.Len(t, res.Rows, 1)
}

func TestDuplicateColumn(t *testing.T) {
	src := "NAME,AGE,Name\n" +
		"Erica,12,Eri\n"

	res, err := csv.Parse([]byte(src))
	require.NoError(t, err)
	require.False(t, res.Valid())
	require.Equal(t, nodaire.ParseErrors{
		{Line: 1, Message: "Duplicate column"},
	}, res.Errors)
	require.Equal(t, []string{"name", "age", "name"}, res.Keys)
	require.Equal(t, csv.Record{"name": "Erica", "age": "12"}, res.Rows[0])
}

func TestPreserveKeys(t *testing.T) {
	src := "Full Name,AGE\nErica,12\n"
	res, err := csv.Parse([]byte(src), csv.PreserveKeys())
	require.NoError(t, err)
	require.Equal(t, []string{"Full Name", "AGE"}, res.Keys)
}

func TestHeaderOnly(t *testing.T) {
	res, err := csv.Parse([]byte("NAME,AGE\n"))
	require.NoError(t, err)
	require.True(t, res.Valid())
	require.Equal(t, []string{"name", "age"}, res.Keys)
	require.Empty(t, res.Rows)
}

func TestEmptyInput(t *testing.T) {
	res, err := csv.Parse(nil)
	require.NoError(t, err)
	require.True(t, res.Valid())
	require.Empty(t, res.Keys)
	require.Empty(t, res.Rows)
}

func TestParseStrict(t *testing.T) {
	t.Run("raises on duplicate column", func(t *testing.T) {
		_, err := csv.ParseStrict([]byte("A,B,A\n1,2,3\n"))
		require.Error(t, err)

		var perrs nodaire.ParseErrors
		require.ErrorAs(t, err, &perrs)
		require.Equal(t, "Duplicate column", perrs[0].Message)
	})

	t.Run("succeeds on valid input", func(t *testing.T) {
		res, err := csv.ParseStrict([]byte("A,B\n1,2\n"))
		require.NoError(t, err)
		require.True(t, res.Valid())
	})
}

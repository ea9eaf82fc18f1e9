package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/gsheet-go/pkg/gsheet/models"
)

func TestValuesOptions(t *testing.T) {
	opts, err := valuesOptions("columns", "formula")
	require.NoError(t, err)
	assert.Equal(t, models.DimensionColumns, opts.MajorDimension)
	assert.Equal(t, models.Formula, opts.ValueRenderOption)

	opts, err = valuesOptions("rows", "unformatted")
	require.NoError(t, err)
	assert.Equal(t, models.DimensionRows, opts.MajorDimension)
	assert.Equal(t, models.UnformattedValue, opts.ValueRenderOption)

	_, err = valuesOptions("diagonal", "formatted")
	assert.Error(t, err)
	_, err = valuesOptions("rows", "pretty")
	assert.Error(t, err)
}

func TestCommandTree(t *testing.T) {
	for _, cmd := range []interface{ Name() string }{
		newInfoCmd(), newValuesCmd(), newCellsCmd(), newUpdateCmd(), newExportCmd(), newDumpCmd(),
	} {
		assert.NotEmpty(t, cmd.Name())
	}

	export := newExportCmd()
	require.NotNil(t, export.Flags().Lookup("output"))
	assert.Equal(t, "o", export.Flags().Lookup("output").Shorthand)
	assert.Equal(t, "utf-8", export.Flags().Lookup("charset").DefValue)
}

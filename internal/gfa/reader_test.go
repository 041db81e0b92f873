package gfa

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hnikaein/stark/internal/graph"
	"github.com/hnikaein/stark/internal/levellog"
)

func silentLogger() *levellog.Logger { return levellog.New(int(levellog.Off)) }

func TestReadGFA1Basic(t *testing.T) {
	in := "S\t1\tACGTACGT\nS\t2\tACGTTTTT\nL\t1\t+\t2\t+\t3M\n"
	g, k, err := Read(strings.NewReader(in), silentLogger())
	require.NoError(t, err)
	assert.Equal(t, 4, k)
	assert.Equal(t, 2, g.NodeCount())
	assert.EqualValues(t, 1, graph.CountEdges(g))
}

func TestReadGFA2AutoDetect(t *testing.T) {
	in := "S\t1\t8\tACGTACGT\nS\t2\t8\tACGTTTTT\nE\t*\t1+\t2+\t0\t8\t0\t8\t3M\n"
	g, k, err := Read(strings.NewReader(in), silentLogger())
	require.NoError(t, err)
	assert.Equal(t, 4, k)
	assert.EqualValues(t, 1, graph.CountEdges(g))
}

func TestReadLateEdgeResolution(t *testing.T) {
	in := "S\t1\tACGTACGT\nL\t1\t+\t2\t+\t3M\nS\t2\tACGTTTTT\n"
	g, _, err := Read(strings.NewReader(in), silentLogger())
	require.NoError(t, err)
	assert.EqualValues(t, 1, graph.CountEdges(g), "late-resolved edge missing")
}

func TestReadUnresolvedEdgeIsWarningNotError(t *testing.T) {
	in := "S\t1\tACGTACGT\nL\t1\t+\t2\t+\t3M\n"
	g, _, err := Read(strings.NewReader(in), silentLogger())
	require.NoError(t, err)
	assert.EqualValues(t, 0, graph.CountEdges(g), "unresolved reference must not create an edge")
}

func TestReadKMismatchIsHardError(t *testing.T) {
	in := "S\t1\tAAAA\nS\t2\tCCCC\nS\t3\tGGGG\nL\t1\t+\t2\t+\t3M\nL\t2\t+\t3\t+\t2M\n"
	_, _, err := Read(strings.NewReader(in), silentLogger())
	assert.True(t, errors.Is(err, ErrKMismatch), "err = %v, want ErrKMismatch", err)
}

func TestReadUnrecognizedLineIsDiscardedNotFatal(t *testing.T) {
	in := "H\tVN:Z:1.0\nX\tsome junk\nS\t1\tACGT\n"
	g, _, err := Read(strings.NewReader(in), silentLogger())
	require.NoError(t, err)
	assert.Equal(t, 1, g.NodeCount())
}

func TestReadEmptyInput(t *testing.T) {
	_, _, err := Read(strings.NewReader(""), silentLogger())
	assert.True(t, errors.Is(err, ErrNoInput), "err = %v, want ErrNoInput", err)
}

package gfa

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/grailbio/base/file"
	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"

	"github.com/hnikaein/stark/internal/graph"
)

var newline = []byte{'\n'}

// Write emits the graph as bluntified GFA v1: one S line per live node
// followed by one L line per edge endpoint (left-edges with source side
// "-", right-edges with source side "+"), with an always-literal "0M"
// overlap since a blunt graph carries no implicit overlap on any edge.
// Nodes are written in the graph's node-map order, which is increasing
// NodeID order (see graph.Graph.Each).
func Write(w io.Writer, g *graph.Graph) error {
	bw := bufio.NewWriter(w)
	var err error
	g.Each(func(n *graph.Node) {
		if err != nil {
			return
		}
		err = writeSegment(bw, n)
	})
	if err != nil {
		return errors.Wrap(err, "writing segment lines")
	}
	g.Each(func(n *graph.Node) {
		if err != nil {
			return
		}
		err = writeLinks(bw, n)
	})
	if err != nil {
		return errors.Wrap(err, "writing link lines")
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "flushing GFA output")
	}
	return nil
}

func writeSegment(w *bufio.Writer, n *graph.Node) error {
	if _, err := w.WriteString("S\t"); err != nil {
		return err
	}
	if _, err := w.WriteString(strconv.FormatInt(int64(n.ID), 10)); err != nil {
		return err
	}
	if err := w.WriteByte('\t'); err != nil {
		return err
	}
	if _, err := w.Write(n.Seq.Bytes()); err != nil {
		return err
	}
	_, err := w.Write(newline)
	return err
}

func writeLinks(w *bufio.Writer, n *graph.Node) error {
	id := strconv.FormatInt(int64(n.ID), 10)
	for _, e := range n.LeftEdges.Items() {
		if err := writeLink(w, id, "-", e); err != nil {
			return err
		}
	}
	for _, e := range n.RightEdges.Items() {
		if err := writeLink(w, id, "+", e); err != nil {
			return err
		}
	}
	return nil
}

func writeLink(w *bufio.Writer, id, fromSide string, e graph.SignedNodeId) error {
	sign := "-"
	if e.Negative() {
		sign = "+"
	}
	_, err := w.WriteString("L\t" + id + "\t" + fromSide + "\t" +
		strconv.FormatInt(int64(e.Node()), 10) + "\t" + sign + "\t0M\n")
	return err
}

// CreateOutput opens path for writing, transparently gzip-compressing
// when path ends in ".gz". Accepts anything
// github.com/grailbio/base/file can create, including remote URLs.
func CreateOutput(ctx context.Context, path string) (io.WriteCloser, error) {
	f, err := file.Create(ctx, path)
	if err != nil {
		return nil, errors.Wrapf(err, "creating %s", path)
	}
	w := f.Writer(ctx)
	if !strings.HasSuffix(path, ".gz") {
		return struct {
			io.Writer
			io.Closer
		}{w, closerFunc(func() error { return f.Close(ctx) })}, nil
	}
	gz := gzip.NewWriter(w)
	return struct {
		io.Writer
		io.Closer
	}{gz, closerFunc(func() error {
		gzErr := gz.Close()
		fErr := f.Close(ctx)
		if gzErr != nil {
			return gzErr
		}
		return fErr
	})}, nil
}

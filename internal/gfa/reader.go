// Package gfa reads and writes Graphical Fragment Assembly graphs (v1
// and v2), translating between GFA's textual S/L/E records and the
// in-memory graph model in internal/graph.
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
	"github.com/hnikaein/stark/internal/levellog"
)

const maxLineBytes = 50000

type lateEdge struct {
	fromName string
	fromSign byte
	toName   string
	toSign   byte
}

// Read parses a GFA v1 or v2 stream into a graph.Graph, returning the
// overlap length k derived from the first edge record seen (or -1 if
// the input carries no edges). Node names are a parse-time-only key;
// the returned graph identifies nodes solely by their assigned
// graph.NodeID.
func Read(r io.Reader, logger *levellog.Logger) (*graph.Graph, int, error) {
	g := graph.NewGraph()
	nodeIDs := make(map[string]graph.NodeID)
	var lateEdges []lateEdge
	version := 1
	k := -1
	sawAnyLine := false

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes+1024)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		sawAnyLine = true
		fields := strings.Fields(line)
		switch fields[0] {
		case "H":
			if len(fields) < 2 || !strings.HasPrefix(fields[1], "VN:Z:") {
				logger.Warnf("line not supported: %s", line)
				continue
			}
			if v, err := parseLeadingInt(fields[1][5:]); err == nil {
				version = v
			}
		case "S":
			name, seq, err := parseSegment(fields, &version)
			if err != nil {
				return nil, 0, errors.Wrapf(err, "parsing segment line %q", line)
			}
			nodeIDs[name] = g.AddNode([]byte(seq), 0, 0)
		case "L":
			fromName, fromSign, toName, toSign, overlap, err := parseLink(fields)
			if err != nil {
				return nil, 0, errors.Wrapf(err, "parsing link line %q", line)
			}
			if err := resolveOrQueue(g, nodeIDs, &lateEdges, fromName, fromSign, toName, toSign, overlap, &k, logger); err != nil {
				return nil, 0, err
			}
		case "E":
			fromName, fromSign, toName, toSign, overlap, err := parseEdge(fields)
			if err != nil {
				return nil, 0, errors.Wrapf(err, "parsing edge line %q", line)
			}
			if err := resolveOrQueue(g, nodeIDs, &lateEdges, fromName, fromSign, toName, toSign, overlap, &k, logger); err != nil {
				return nil, 0, err
			}
		default:
			logger.Warnf("line not supported: %c %s", fields[0][0], line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, 0, errors.Wrap(err, "reading GFA stream")
	}
	if !sawAnyLine {
		return nil, 0, ErrNoInput
	}

	for _, e := range lateEdges {
		fromID, fromOK := nodeIDs[e.fromName]
		toID, toOK := nodeIDs[e.toName]
		if !fromOK || !toOK {
			logger.Warnf("undefined node reference: %s -> %s", e.fromName, e.toName)
			continue
		}
		_ = g.AddEdge(fromID, e.fromSign, toID, e.toSign)
	}
	return g, k, nil
}

func resolveOrQueue(g *graph.Graph, nodeIDs map[string]graph.NodeID, lateEdges *[]lateEdge,
	fromName string, fromSign byte, toName string, toSign byte, overlap int, k *int, logger *levellog.Logger) error {
	newK := overlap + 1
	if *k == -1 {
		*k = newK
	} else if *k != newK {
		logger.Errorf("different k's: %d - %d", *k, newK)
		return ErrKMismatch
	}
	fromID, fromOK := nodeIDs[fromName]
	toID, toOK := nodeIDs[toName]
	if fromOK && toOK {
		return g.AddEdge(fromID, fromSign, toID, toSign)
	}
	*lateEdges = append(*lateEdges, lateEdge{fromName, fromSign, toName, toSign})
	return nil
}

func parseSegment(fields []string, version *int) (name, seq string, err error) {
	if len(fields) < 3 {
		return "", "", ErrMalformed
	}
	name = fields[1]
	if *version == 2 || isDigitByte(fields[2][0]) {
		*version = 2
		if len(fields) < 4 {
			return "", "", ErrMalformed
		}
		return name, fields[3], nil
	}
	return name, fields[2], nil
}

func parseLink(fields []string) (fromName string, fromSign byte, toName string, toSign byte, overlap int, err error) {
	if len(fields) < 6 {
		err = ErrMalformed
		return
	}
	fromName, toName = fields[1], fields[3]
	fromSign, toSign = fields[2][0], fields[4][0]
	overlap, err = parseLeadingInt(fields[5])
	return
}

// parseEdge parses a GFA2 E record: eid sid1 sid2 beg1 end1 beg2 end2
// alignment. sid1/sid2 carry their orientation as their last byte
// (e.g. "11+"); beg1/end1/beg2/end2 are positional fields this package
// has no use for and are discarded; alignment's leading decimal run is
// the overlap length, with any trailing CIGAR/"$" text ignored.
func parseEdge(fields []string) (fromName string, fromSign byte, toName string, toSign byte, overlap int, err error) {
	if len(fields) < 9 {
		err = ErrMalformed
		return
	}
	sid1, sid2 := fields[2], fields[3]
	if len(sid1) < 2 || len(sid2) < 2 {
		err = ErrMalformed
		return
	}
	fromName, fromSign = sid1[:len(sid1)-1], sid1[len(sid1)-1]
	toName, toSign = sid2[:len(sid2)-1], sid2[len(sid2)-1]
	overlap, err = parseLeadingInt(fields[8])
	return
}

func parseLeadingInt(s string) (int, error) {
	i := 0
	for i < len(s) && isDigitByte(s[i]) {
		i++
	}
	if i == 0 {
		return 0, ErrMalformed
	}
	return strconv.Atoi(s[:i])
}

func isDigitByte(b byte) bool {
	return b >= '0' && b <= '9'
}

// OpenInput opens path for reading, transparently decompressing when
// path ends in ".gz". Accepts anything github.com/grailbio/base/file
// can open, including remote URLs, not just local paths.
func OpenInput(ctx context.Context, path string) (io.ReadCloser, error) {
	f, err := file.Open(ctx, path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	r := f.Reader(ctx)
	if !strings.HasSuffix(path, ".gz") {
		return struct {
			io.Reader
			io.Closer
		}{r, closerFunc(func() error { return f.Close(ctx) })}, nil
	}
	gz, err := gzip.NewReader(r)
	if err != nil {
		_ = f.Close(ctx)
		return nil, errors.Wrapf(err, "opening gzip stream %s", path)
	}
	return struct {
		io.Reader
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

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

package logicsim

import (
	"strconv"
	"strings"

	"fortio.org/safecast"
	"github.com/pkg/errors"
)

// A BundleRecord is one chip carried by an export bundle: the chip's declared
// name followed by the text lines of its definition and wire-layout payloads.
//
type BundleRecord struct {
	Name       string
	Definition []string
	Wiring     []string
}

// An ImportResult reports what ImportBundle wrote: the storage paths of the
// newly written definition files and the renames applied to avoid name
// collisions, keyed by original name.
//
type ImportResult struct {
	Paths   []string
	Renames map[string]string
}

// ParseBundle splits a multi-chip export blob into its records. The format is
// length-prefixed throughout: a record count line, then per record a name
// line, a definition line count followed by that many lines, and a wiring
// line count followed by that many lines.
//
func ParseBundle(blob string) ([]BundleRecord, error) {
	lines := strings.Split(strings.ReplaceAll(blob, "\r\n", "\n"), "\n")
	pos := 0
	next := func() (string, error) {
		if pos >= len(lines) {
			return "", errors.New("truncated bundle")
		}
		l := lines[pos]
		pos++
		return l, nil
	}
	count := func(what string) (int, error) {
		l, err := next()
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseInt(strings.TrimSpace(l), 10, 64)
		if err != nil {
			return 0, errors.Wrapf(err, "bad %s count %q", what, l)
		}
		n, err := safecast.Conv[int](v)
		if err != nil || n < 0 {
			return 0, errors.Errorf("bad %s count %d", what, v)
		}
		return n, nil
	}

	nrec, err := count("record")
	if err != nil {
		return nil, err
	}
	recs := make([]BundleRecord, 0, nrec)
	for i := 0; i < nrec; i++ {
		var br BundleRecord
		if br.Name, err = next(); err != nil {
			return nil, err
		}
		br.Name = strings.TrimSpace(br.Name)
		if br.Name == "" {
			return nil, errors.Errorf("bundle record %d has an empty name", i)
		}
		for _, sec := range []*[]string{&br.Definition, &br.Wiring} {
			n, err := count(br.Name)
			if err != nil {
				return nil, err
			}
			for j := 0; j < n; j++ {
				l, err := next()
				if err != nil {
					return nil, err
				}
				*sec = append(*sec, l)
			}
		}
		recs = append(recs, br)
	}
	return recs, nil
}

// ImportBundle merges an export bundle into storage without name collisions.
// taken holds the chip names already present locally. A colliding chip gets
// an incrementing numeric suffix until its name is free, and every reference
// to it, its own declared name as well as any later bundle chip's component
// reference, is rewritten to the new name. Renames accumulate across the
// batch, so a renamed dependency's consumers pick up the updated name too.
//
func ImportBundle(st Storage, taken []string, blob string) (*ImportResult, error) {
	recs, err := ParseBundle(blob)
	if err != nil {
		return nil, err
	}
	used := make(map[string]bool, len(taken))
	for _, n := range taken {
		used[n] = true
	}
	res := &ImportResult{Renames: make(map[string]string)}
	for i := range recs {
		br := &recs[i]
		rec, err := ParseRecord(strings.Join(br.Definition, "\n"))
		if err != nil {
			return nil, errors.Wrapf(err, "bundle chip %q", br.Name)
		}
		for j := range rec.SavedComponentChips {
			pc := &rec.SavedComponentChips[j]
			if nn, ok := res.Renames[pc.ChipName]; ok {
				pc.ChipName = nn
			}
		}
		if used[rec.Name] {
			base := rec.Name
			for n := 1; ; n++ {
				cand := base + strconv.Itoa(n)
				if !used[cand] {
					res.Renames[base] = cand
					rec.Name = cand
					break
				}
			}
		}
		used[rec.Name] = true

		text, err := rec.Encode()
		if err != nil {
			return nil, err
		}
		defPath := rec.Name + ChipFileExt
		if err := st.WriteChip(defPath, text); err != nil {
			return nil, errors.Wrapf(err, "write chip %q", rec.Name)
		}
		if len(br.Wiring) > 0 {
			if err := st.WriteChip(rec.Name+LayoutFileExt, strings.Join(br.Wiring, "\n")); err != nil {
				return nil, errors.Wrapf(err, "write chip %q layout", rec.Name)
			}
		}
		res.Paths = append(res.Paths, defPath)
	}
	return res, nil
}

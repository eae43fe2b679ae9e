package logicsim

import (
	"log"
	"sort"

	"github.com/pkg/errors"
)

// An UpgradeFn rewrites a legacy-schema record text into the current schema.
// It is an external compatibility transform: the loader only decides when to
// invoke it (see NeedsUpgrade), never how it rewrites.
//
type UpgradeFn func(raw string) (string, error)

// A Display is an externally supplied visual container. When a chip is opened
// for editing, its placements and wires are reported here so a front end can
// draw them. Implementations must not mutate the chip.
//
type Display interface {
	PlaceChip(c *Chip, x, y float64)
	PlaceWire(w *Wire)
}

// Storage abstracts the workspace chip definitions live in. Paths are opaque
// keys chosen by the implementation; the engine only ever round-trips them.
//
type Storage interface {
	ReadChip(path string) (string, error)
	WriteChip(path, text string) error
	ChipPaths() ([]string, error)
}

// A RecordStatus reports the outcome of building one chip record. Err is nil
// on success.
//
type RecordStatus struct {
	Name string
	Err  error
}

// A Loader builds composite chip templates from saved records. The zero value
// is ready to use: no legacy upgrading, warnings to the standard logger.
//
type Loader struct {
	// Upgrade, when set, converts legacy-schema record texts before parsing.
	Upgrade UpgradeFn
	// Logf receives informational warnings about skipped records. It has no
	// control-flow effect. Defaults to log.Printf.
	Logf func(format string, args ...interface{})
}

func (ld *Loader) logf(format string, args ...interface{}) {
	if ld.Logf != nil {
		ld.Logf(format, args...)
		return
	}
	log.Printf(format, args...)
}

// ParseRecord normalizes one raw record text: legacy records are first passed
// through the configured Upgrade transform, then decoded and default-filled.
//
func (ld *Loader) ParseRecord(raw string) (ChipRecord, error) {
	if NeedsUpgrade(raw) {
		if ld.Upgrade == nil {
			return ChipRecord{}, errors.New("legacy-schema record and no upgrade transform configured")
		}
		up, err := ld.Upgrade(raw)
		if err != nil {
			return ChipRecord{}, errors.Wrap(err, "upgrade legacy record")
		}
		raw = up
	}
	return ParseRecord(raw)
}

// BuildLibrary turns the full set of chip records plus the primitive chip set
// into a library of fully built, internally wired composite templates.
//
// Records are sorted by creation index and built in that order, so that every
// component a composite places already exists in the library when the
// composite is built. A record that fails to build is logged and skipped
// without aborting the rest of the load; the per-record outcomes are returned
// alongside the library. A primitive that fails to register is fatal and
// returns a PrimitiveLoadError.
//
func (ld *Loader) BuildLibrary(records []ChipRecord, prims []*ChipSpec) (*Library, []RecordStatus, error) {
	lib := NewLibrary()
	for _, p := range prims {
		if err := lib.Add(p); err != nil {
			return nil, nil, &PrimitiveLoadError{Name: p.Name, Err: err}
		}
	}

	recs := append([]ChipRecord(nil), records...)
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].CreationIndex < recs[j].CreationIndex
	})

	statuses := make([]RecordStatus, 0, len(recs))
	for i := range recs {
		rec := &recs[i]
		spec, err := ld.buildRecord(lib, rec)
		if err == nil {
			err = lib.Add(spec)
		}
		if err != nil {
			ld.logf("logicsim: skipping chip %q: %v", rec.Name, err)
		}
		statuses = append(statuses, RecordStatus{Name: rec.Name, Err: err})
	}
	return lib, statuses, nil
}

// BuildLibraryFromTexts parses every raw record text and builds the library
// from the ones that parse. Parse failures appear in the returned statuses
// like build failures do.
//
func (ld *Loader) BuildLibraryFromTexts(raws []string, prims []*ChipSpec) (*Library, []RecordStatus, error) {
	var (
		records []ChipRecord
		failed  []RecordStatus
	)
	for _, raw := range raws {
		rec, err := ld.ParseRecord(raw)
		if err != nil {
			ld.logf("logicsim: skipping unparseable record: %v", err)
			failed = append(failed, RecordStatus{Name: rec.Name, Err: err})
			continue
		}
		records = append(records, rec)
	}
	lib, statuses, err := ld.BuildLibrary(records, prims)
	if err != nil {
		return nil, nil, err
	}
	return lib, append(failed, statuses...), nil
}

// LoadStorage reads every chip definition in st and builds the library from
// them.
//
func (ld *Loader) LoadStorage(st Storage, prims []*ChipSpec) (*Library, []RecordStatus, error) {
	paths, err := st.ChipPaths()
	if err != nil {
		return nil, nil, errors.Wrap(err, "enumerate chip definitions")
	}
	raws := make([]string, 0, len(paths))
	for _, p := range paths {
		raw, err := st.ReadChip(p)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "read chip definition %q", p)
		}
		raws = append(raws, raw)
	}
	return ld.BuildLibraryFromTexts(raws, prims)
}

// buildRecord turns one record into a composite template, resolving every
// component placement against the library and wiring the placements' saved
// input pins. The record's wiring invariant is bounds-checked here; the
// cyclic flag on a saved input pin is carried onto the link untouched.
func (ld *Loader) buildRecord(lib *Library, rec *ChipRecord) (*ChipSpec, error) {
	s := &ChipSpec{
		Name:       rec.Name,
		Colour:     rec.Colour,
		NameColour: rec.NameColour,
		Creation:   rec.CreationIndex,
		Folder:     rec.FolderName,
		Scale:      rec.Scale,
	}
	for ci := range rec.SavedComponentChips {
		pc := &rec.SavedComponentChips[ci]
		sub, ok := lib.Lookup(pc.ChipName)
		if !ok {
			return nil, &MissingComponentError{Chip: rec.Name, Component: pc.ChipName}
		}
		if len(pc.InputPins) != len(sub.Inputs) || len(pc.OutputPins) != len(sub.Outputs) {
			return nil, errors.Errorf("component %d (%s): saved pin count does not match template",
				ci, pc.ChipName)
		}
		slot := PartSlot{Spec: sub, X: pc.PosX, Y: pc.PosY}
		for _, ip := range pc.InputPins {
			slot.Inputs = append(slot.Inputs, PinSpec{Name: ip.Name, Type: ip.WireType})
		}
		for _, op := range pc.OutputPins {
			slot.Outputs = append(slot.Outputs, PinSpec{Name: op.Name, Type: op.WireType})
		}
		s.Parts = append(s.Parts, slot)
	}
	for ci := range rec.SavedComponentChips {
		pc := &rec.SavedComponentChips[ci]
		for pi, ip := range pc.InputPins {
			if ip.ParentChipIndex == Unconnected {
				continue
			}
			if ip.ParentChipIndex < 0 || ip.ParentChipIndex >= len(s.Parts) {
				return nil, errors.Errorf("component %d input %q: source component %d out of range",
					ci, ip.Name, ip.ParentChipIndex)
			}
			src := &s.Parts[ip.ParentChipIndex]
			if ip.ParentChipOutputIndex < 0 || ip.ParentChipOutputIndex >= len(src.Outputs) {
				return nil, errors.Errorf("component %d input %q: source pin %d out of range on %s",
					ci, ip.Name, ip.ParentChipOutputIndex, src.Spec.Name)
			}
			s.Links = append(s.Links, Link{
				FromPart: ip.ParentChipIndex,
				FromPin:  ip.ParentChipOutputIndex,
				ToPart:   ci,
				ToPin:    pi,
				Cyclic:   ip.IsCyclic,
			})
		}
	}
	s.deriveInterface()
	// Prove the template builds before registering it: a bad connection is a
	// record defect and must skip the record, not fail later placements.
	if _, err := s.Instantiate(); err != nil {
		return nil, err
	}
	return s, nil
}

// OpenChip instantiates a built chip for editing. Placements and wires are
// reported to disp when it is non-nil, and the saved wire layout, when given,
// is merged onto the instance's wires.
//
func (ld *Loader) OpenChip(lib *Library, name string, disp Display, layout *WireLayoutRecord) (*Chip, error) {
	spec, ok := lib.Lookup(name)
	if !ok {
		return nil, errors.Errorf("chip %q not in library", name)
	}
	c, err := spec.Instantiate()
	if err != nil {
		return nil, errors.Wrapf(err, "open chip %q", name)
	}
	if layout != nil {
		MergeWireLayout(c, layout)
	}
	if disp != nil {
		for i, p := range c.parts {
			slot := &spec.Parts[i]
			disp.PlaceChip(p, slot.X, slot.Y)
		}
		for _, w := range c.wires {
			disp.PlaceWire(w)
		}
	}
	return c, nil
}

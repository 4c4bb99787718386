package portdash

// SourceTable couples one successfully parsed source with its provenance.
type SourceTable struct {
	Info      SourceInfo
	Positions []Position
}

// Merge concatenates the parsed sources into one canonical table, preserving
// per-source row order and the order the sources are given in. There is no
// deduplication: the same symbol held at two brokerages is two distinct
// positions. Zero sources yield an empty table, one source yields exactly
// that source's rows.
func Merge(sources ...SourceTable) *Table {
	t := &Table{}
	for _, s := range sources {
		s.Info.Rows = len(s.Positions)
		t.Positions = append(t.Positions, s.Positions...)
		t.Sources = append(t.Sources, s.Info)
	}
	return t
}

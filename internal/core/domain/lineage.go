package domain

// LineageResult is the outcome of formatting one taxon id. A nil Err means
// Lineage holds the formatted string, which may legitimately be empty when
// no ancestor carries a recognized rank. A non-nil Err means the lookup
// failed and Lineage must be ignored.
type LineageResult struct {
	Lineage string
	Err     error
}

// OK reports whether the lookup succeeded.
func (r LineageResult) OK() bool {
	return r.Err == nil
}

// LineageOK wraps a formatted lineage string in a successful result.
func LineageOK(lineage string) LineageResult {
	return LineageResult{Lineage: lineage}
}

// LineageFailure wraps a lookup failure in a result.
func LineageFailure(err error) LineageResult {
	return LineageResult{Err: err}
}

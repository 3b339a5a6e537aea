package compare

import "axlab.dev/variant/pkg/variant"

// mismatch ignores every tag. Comparators embed it and override only the
// callbacks of their own category, so anything else keeps the initial
// Incomparable result.
type mismatch struct{}

func (mismatch) VisitNull()                  {}
func (mismatch) VisitBoolean(bool)           {}
func (mismatch) VisitPositiveInteger(uint64) {}
func (mismatch) VisitNegativeInteger(uint64) {}
func (mismatch) VisitFloat(float64)          {}
func (mismatch) VisitString(string)          {}
func (mismatch) VisitRawText(string, int)    {}
func (mismatch) VisitArray(*variant.Array)   {}
func (mismatch) VisitObject(*variant.Object) {}

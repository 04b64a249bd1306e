package solver

// DecisionType records why a move was forced, or why a position holds an
// error, contradiction, or ambiguity.
type DecisionType int

const (
	// None means no decision was recorded.
	None DecisionType = iota
	// Speculation marks a move queued by the one-ply speculation phase.
	Speculation
	// WallSatisfiedHavingOpenFaces is a forced-mark reason.
	WallSatisfiedHavingOpenFaces
	// WallDepsEqualOpenFaces is a forced-bulb reason.
	WallDepsEqualOpenFaces
	// IsolatedMark is a forced-bulb reason.
	IsolatedMark
	// IsolatedEmptySquare is a forced-bulb reason.
	IsolatedEmptySquare
	// BulbsSeeEachOther is a contradiction: two bulbs share an unobstructed line.
	BulbsSeeEachOther
	// WallHasTooManyBulbs is a contradiction: adjacent bulbs exceed the wall's dependency.
	WallHasTooManyBulbs
	// WallCannotBeSatisfied is a contradiction: too few open faces remain.
	WallCannotBeSatisfied
	// MarkCannotBeIlluminated is a contradiction: a mark has no visible empty neighbour.
	MarkCannotBeIlluminated
	// ViolatesSingleUniqueSolution is an ambiguity: more than one solution exists.
	ViolatesSingleUniqueSolution
)

var decisionTypeNames = [...]string{
	None:                          "None",
	Speculation:                   "Speculation",
	WallSatisfiedHavingOpenFaces:  "WallSatisfiedHavingOpenFaces",
	WallDepsEqualOpenFaces:        "WallDepsEqualOpenFaces",
	IsolatedMark:                  "IsolatedMark",
	IsolatedEmptySquare:           "IsolatedEmptySquare",
	BulbsSeeEachOther:             "BulbsSeeEachOther",
	WallHasTooManyBulbs:           "WallHasTooManyBulbs",
	WallCannotBeSatisfied:         "WallCannotBeSatisfied",
	MarkCannotBeIlluminated:       "MarkCannotBeIlluminated",
	ViolatesSingleUniqueSolution:  "ViolatesSingleUniqueSolution",
}

// String implements fmt.Stringer.
func (d DecisionType) String() string {
	if int(d) < 0 || int(d) >= len(decisionTypeNames) {
		return "DecisionType(?)"
	}
	return decisionTypeNames[d]
}

// isClusteredDecisionType reports whether two moves sharing this decision type and a
// reference coord should be grouped into the same Hint cluster.
func isClusteredDecisionType(d DecisionType) bool {
	switch d {
	case WallSatisfiedHavingOpenFaces, WallDepsEqualOpenFaces, IsolatedMark:
		return true
	default:
		return false
	}
}

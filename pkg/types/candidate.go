package types

// CandidateKind identifies which dofile naming rule produced a candidate
type CandidateKind int

const (
	// CandidateSpecific is <target>.do
	CandidateSpecific CandidateKind = iota + 1

	// CandidateExtension is default<ext>.do
	CandidateExtension

	// CandidateDefault is default.do
	CandidateDefault
)

// String returns the string representation of the kind
func (k CandidateKind) String() string {
	switch k {
	case CandidateSpecific:
		return "specific"
	case CandidateExtension:
		return "extension"
	case CandidateDefault:
		return "default"
	default:
		return "unknown"
	}
}

// Candidate is a dofile path derived from a target together with what the
// filesystem said about it.
type Candidate struct {
	Kind CandidateKind
	Path string

	// Exists is false when the path was not found
	Exists bool

	// Executable is true when the owner execute bit is set
	Executable bool
}

// Dofile is the recipe chosen by the resolver for a target
type Dofile struct {
	Path   string
	Kind   CandidateKind
	Target Target
}

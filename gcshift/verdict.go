package gcshift

type Verdict int

const (
	NotFound Verdict = iota
	Locked
	// Exempt means the dragged item ignores collisions.
	Exempt
	Free
	Partial
	Blocked
	Shifted
	// GapConflict means the dragged item only intrudes on a neighbor's gap.
	GapConflict
	CascadeFailed
)

func (v Verdict) String() string {
	switch v {
	case NotFound:
		return "not-found"
	case Locked:
		return "locked"
	case Exempt:
		return "exempt"
	case Free:
		return "free"
	case Partial:
		return "partial"
	case Blocked:
		return "blocked"
	case Shifted:
		return "shifted"
	case GapConflict:
		return "gap-conflict"
	case CascadeFailed:
		return "cascade-failed"
	default:
		return "unknown"
	}
}

func (v Verdict) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

package gcdrag

type Kind int

const (
	Move Kind = iota
	Resize
)

func (k Kind) String() string {
	switch k {
	case Move:
		return "move"
	case Resize:
		return "resize"
	}
	return "unknown"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

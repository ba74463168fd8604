package domain

type Regulator string

const (
	RegulatorEngland         Regulator = "GB-ENG"
	RegulatorScotland        Regulator = "GB-SCT"
	RegulatorWales           Regulator = "GB-WLS"
	RegulatorNorthernIreland Regulator = "GB-NIR"
)

// RegulatorSet is the whitelist of jurisdiction codes the facade accepts.
// It is built once at composition time and never mutated, so tests can
// substitute their own set without touching globals.
type RegulatorSet struct {
	codes map[Regulator]struct{}
}

func NewRegulatorSet(codes ...Regulator) RegulatorSet {
	s := RegulatorSet{codes: make(map[Regulator]struct{}, len(codes))}
	for _, c := range codes {
		s.codes[c] = struct{}{}
	}
	return s
}

// DefaultRegulators returns the four UK jurisdiction codes.
func DefaultRegulators() RegulatorSet {
	return NewRegulatorSet(
		RegulatorEngland,
		RegulatorScotland,
		RegulatorWales,
		RegulatorNorthernIreland,
	)
}

func (s RegulatorSet) Contains(r Regulator) bool {
	_, ok := s.codes[r]
	return ok
}

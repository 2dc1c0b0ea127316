package cache

// Keyer derives cache keys for each pipeline stage.
type Keyer interface {
	// GeneratorsKey keys the generators derived from a matrix pattern hash.
	GeneratorsKey(patternHash string) string

	// GroupKey keys the group enumerated from a generator list hash.
	GroupKey(generatorsHash string) string

	// CircuitKey keys the preparation circuit of a matrix pattern hash.
	CircuitKey(patternHash string, opts CircuitKeyOpts) string
}

// CircuitKeyOpts holds the options that change the circuit for a given
// matrix.
type CircuitKeyOpts struct {
	EdgeMode string `json:"edge_mode"`
}

// keyVersion is bumped whenever a cached encoding changes.
const keyVersion = "v1"

// DefaultKeyer builds keys of the form "<stage>:<sha256 of inputs>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// GeneratorsKey implements Keyer.
func (DefaultKeyer) GeneratorsKey(patternHash string) string {
	return hashKey("generators", keyVersion, patternHash)
}

// GroupKey implements Keyer.
func (DefaultKeyer) GroupKey(generatorsHash string) string {
	return hashKey("group", keyVersion, generatorsHash)
}

// CircuitKey implements Keyer.
func (DefaultKeyer) CircuitKey(patternHash string, opts CircuitKeyOpts) string {
	return hashKey("circuit", keyVersion, patternHash, opts)
}

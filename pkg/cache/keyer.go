package cache

// Keyer generates cache keys for the cacheable pipeline stages.
// Keys must incorporate every input that affects the cached value, so
// that changing an option never serves a stale result.
type Keyer interface {
	// LayoutKey generates a key for layout caching.
	// chartHash is the content hash of the normalized schedule.
	LayoutKey(chartHash string, opts LayoutKeyOpts) string

	// ArtifactKey generates a key for artifact caching.
	// layoutHash is the content hash of the serialized layout.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts holds the layout options that affect the computed
// layout and therefore the cache key.
type LayoutKeyOpts struct {
	TitleWidth    float64 `json:"title_width"`
	MaxMonthWidth float64 `json:"max_month_width"`
	Legend        bool    `json:"legend"`
	Seed          uint64  `json:"seed"`
}

// ArtifactKeyOpts holds the render options that affect an artifact.
type ArtifactKeyOpts struct {
	Format string  `json:"format"`
	Scale  float64 `json:"scale"`
}

// DefaultKeyer generates keys by hashing the inputs together with the
// relevant options.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// LayoutKey generates a key for layout caching.
func (k *DefaultKeyer) LayoutKey(chartHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", chartHash, opts)
}

// ArtifactKey generates a key for artifact caching.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)

package bertlv

/*
opts.go contains the functional options accepted by the decoding
entry points of this package.
*/

/*
Option configures a decoding operation. Instances are passed in-line as
variadic input to [Parse], [Unmarshal], [NewPacket] and [ReadTLV].
*/
type Option func(*config)

/*
DefaultMaxDepth is the nesting bound applied to constructed elements
when no [WithMaxDepth] option is given.
*/
const DefaultMaxDepth = 4096

type config struct {
	maxDepth int
}

func newConfig(opts ...Option) (cfg config) {
	cfg.maxDepth = DefaultMaxDepth
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return
}

/*
WithMaxDepth returns an [Option] bounding the nesting depth of
constructed elements. The outermost element is at depth one. Exceeding
the bound yields [ErrDepthExceeded]. A value of zero or less selects
[DefaultMaxDepth]; the bound cannot be removed, as the parser descends
recursively.
*/
func WithMaxDepth(n int) Option {
	return func(cfg *config) {
		if n <= 0 {
			n = DefaultMaxDepth
		}
		cfg.maxDepth = n
	}
}

/*
depthLimit returns the effective nesting bound of the receiver.
*/
func (r config) depthLimit() int {
	if r.maxDepth <= 0 {
		return DefaultMaxDepth
	}
	return r.maxDepth
}

/*
String returns the string representation of the receiver instance.
*/
func (r config) String() string {
	return "max-depth:" + itoa(r.depthLimit())
}

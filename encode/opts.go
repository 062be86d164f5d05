package encode

type EncodeOption func(*EncState)

// EncodeColors colours record prefixes and quoted names with c. A nil c
// turns colouring off.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}

// NewState returns an encoder state configured by opts.
func NewState(opts ...EncodeOption) *EncState {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

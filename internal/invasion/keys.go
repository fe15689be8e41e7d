package invasion

// NoKey is the key identifier emitted before any key has been pressed.
const NoKey = ""

// KeyStream forwards key identifiers from the input surface.
type KeyStream struct {
	emit func(string)
}

// Start sends NoKey to emit immediately, then every pressed key.
func (k *KeyStream) Start(emit func(string)) {
	k.emit = emit
	emit(NoKey)
}

// Press forwards a key. Repeats are not collapsed.
func (k *KeyStream) Press(key string) {
	if k.emit != nil {
		k.emit(key)
	}
}

// Stop detaches the stream; later presses are dropped.
func (k *KeyStream) Stop() {
	k.emit = nil
}

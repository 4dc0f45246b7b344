package input

// State holds the direction masks for both players. It is mutated by key
// events between ticks and read once per tick.
type State struct {
	bindings [2]Binding
	masks    [2]DirectionMask
}

// NewState creates an input state with every key released.
func NewState(bindings [2]Binding) *State {
	return &State{bindings: bindings}
}

// Apply folds a key event into the masks. When the event is a key-down of
// a fire key it returns the index of the player that fired and true.
// Fire is edge-triggered: key-up of a fire key does nothing.
func (s *State) Apply(ev KeyEvent) (player int, fire bool) {
	for i, b := range s.bindings {
		if bit := b.direction(ev.Key); bit != 0 {
			if ev.Down {
				s.masks[i] = s.masks[i].Set(bit)
			} else {
				s.masks[i] = s.masks[i].Clear(bit)
			}
		}
		if ev.Down && ev.Key != KeyUnknown && ev.Key == b.Fire {
			player, fire = i, true
		}
	}
	return player, fire
}

// Mask returns the held directions for player index i.
func (s *State) Mask(i int) DirectionMask {
	return s.masks[i]
}

// Bindings returns the key layout for both players.
func (s *State) Bindings() [2]Binding {
	return s.bindings
}


package sim

// Input is the polled input snapshot for one frame.
// The zero value means no input.
type Input struct {
	Jump bool // Jump key is currently held
	Slow bool // Slow key is currently held
}

// inputSampler turns the held jump flag into a one-shot request.
// Once a jump fires, the request stays consumed until the key is released.
type inputSampler struct {
	jumpConsumed bool
}

func (s *inputSampler) sample(in Input) Input {
	if !in.Jump {
		s.jumpConsumed = false
	}
	return Input{
		Jump: in.Jump && !s.jumpConsumed,
		Slow: in.Slow,
	}
}

func (s *inputSampler) consumeJump() {
	s.jumpConsumed = true
}

func (s *inputSampler) reset() {
	s.jumpConsumed = false
}

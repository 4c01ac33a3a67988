package gxgui

// Sound is a short effect. Playback is delegated to a Speaker so widgets
// never touch the audio device.
type Sound struct {
	data []byte
	out  Speaker
}

// NewSound binds encoded sample data to the speaker that will play it.
func NewSound(data []byte, out Speaker) *Sound {
	return &Sound{data: data, out: out}
}

func (s *Sound) Data() []byte { return s.data }

// Play is a no-op for a nil sound, an empty sound or one without a speaker.
func (s *Sound) Play() {
	if s == nil || s.out == nil || len(s.data) == 0 {
		return
	}
	s.out.Play(s)
}

package internal

import (
	"github.com/BrandonKowalski/gxgui/pkg/gxgui"
	"github.com/veandco/go-sdl2/mix"
	"github.com/veandco/go-sdl2/sdl"
)

const chunkCacheSize = 32

// Mixer plays widget sounds through SDL_mixer. Decoded chunks are cached
// per Sound.
type Mixer struct {
	open   bool
	chunks *Cache[*gxgui.Sound, *mix.Chunk]
}

// OpenMixer opens the audio device. A machine without audio yields an
// error; callers may carry on with a silent host.
func OpenMixer() (*Mixer, error) {
	if err := mix.OpenAudio(mix.DEFAULT_FREQUENCY, mix.DEFAULT_FORMAT, 2, 1024); err != nil {
		return nil, gxgui.NewInfrastructureError("open_audio", err)
	}

	return &Mixer{
		open: true,
		chunks: NewCache(chunkCacheSize, func(_ *gxgui.Sound, c *mix.Chunk) {
			c.Free()
		}),
	}, nil
}

func (m *Mixer) Play(s *gxgui.Sound) {
	if m == nil || !m.open || s == nil || len(s.Data()) == 0 {
		return
	}

	chunk, ok := m.chunks.Get(s)
	if !ok {
		var err error
		chunk, err = decodeChunk(s.Data())
		if err != nil {
			GetInternalLogger().Error("Unable to decode sound", "error", err)
			return
		}
		m.chunks.Set(s, chunk)
	}

	if _, err := chunk.Play(-1, 0); err != nil {
		GetInternalLogger().Debug("No free mixer channel", "error", err)
	}
}

func decodeChunk(data []byte) (*mix.Chunk, error) {
	rw, err := sdl.RWFromMem(data)
	if err != nil {
		return nil, gxgui.NewInfrastructureError("read_sound", err)
	}

	chunk, err := mix.LoadWAVRW(rw, true)
	if err != nil {
		return nil, gxgui.NewInfrastructureError("decode_sound", err)
	}
	return chunk, nil
}

func (m *Mixer) Close() {
	if m == nil || !m.open {
		return
	}
	m.chunks.Purge()
	mix.CloseAudio()
	m.open = false
}

package audio

import (
	"encoding/binary"
	"math"

	"github.com/vovakirdan/cleancity/internal/controller"
)

// SampleRate is the output rate of every synthesized sound.
const SampleRate = 48000

const (
	bytesPerFrame = 4     // 16-bit stereo
	envelope      = 0.005 // Seconds of attack and release per note
)

// note is a single tone. A zero frequency is a rest.
type note struct {
	freq float64
	dur  float64
}

var cueNotes = map[controller.Cue][]note{
	controller.CueCollect:  {{1318.5, 0.05}, {1760, 0.07}},
	controller.CueDelivery: {{523.3, 0.08}, {659.3, 0.08}, {784, 0.14}},
	controller.CueDeath:    {{440, 0.12}, {330, 0.12}, {220, 0.3}},
	controller.CueLose:     {{196, 0.25}, {0, 0.05}, {185, 0.25}, {0, 0.05}, {174.6, 0.6}},
	controller.CueWin:      {{523.3, 0.12}, {659.3, 0.12}, {784, 0.12}, {1046.5, 0.45}},
}

var trackNotes = map[controller.Track][]note{
	controller.TrackStreet: {
		{130.8, 0.25}, {0, 0.25}, {196, 0.25}, {0, 0.25},
		{220, 0.25}, {0, 0.25}, {174.6, 0.25}, {196, 0.25},
		{130.8, 0.25}, {164.8, 0.25}, {196, 0.25}, {0, 0.25},
		{146.8, 0.25}, {0, 0.25}, {196, 0.5},
	},
}

// Gains keep cues above the music.
const (
	cueGain   = 0.5
	trackGain = 0.3
)

// render synthesizes notes as 16-bit little-endian stereo PCM.
func render(notes []note, sampleRate int, gain float64) []byte {
	total := 0
	for _, n := range notes {
		total += frames(n.dur, sampleRate)
	}

	buf := make([]byte, total*bytesPerFrame)
	off := 0
	for _, n := range notes {
		count := frames(n.dur, sampleRate)
		edge := frames(envelope, sampleRate)
		for i := 0; i < count; i++ {
			var v float64
			if n.freq > 0 {
				t := float64(i) / float64(sampleRate)
				v = math.Sin(2*math.Pi*n.freq*t) * gain * shape(i, count, edge)
			}
			s := uint16(int16(v * math.MaxInt16))
			binary.LittleEndian.PutUint16(buf[off:], s)
			binary.LittleEndian.PutUint16(buf[off+2:], s)
			off += bytesPerFrame
		}
	}
	return buf
}

func frames(seconds float64, sampleRate int) int {
	if seconds <= 0 {
		return 0
	}
	return int(seconds * float64(sampleRate))
}

// shape is a linear attack/release envelope that avoids clicks between notes.
func shape(i, count, edge int) float64 {
	if edge <= 0 {
		return 1
	}
	if i < edge {
		return float64(i) / float64(edge)
	}
	if tail := count - 1 - i; tail < edge {
		return float64(tail) / float64(edge)
	}
	return 1
}

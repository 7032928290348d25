package midi

import (
	"gitlab.com/gomidi/midi/v2/smf"
)

// Excerpt cuts s down to the notes at or after ticksOffset, keeping at most
// maxNotes note events per track (0 keeps them all). Notes before the offset
// are dropped; other events before it (tempo, program changes) are kept and
// moved to the start so the excerpt still plays with the right setup. The
// note-offs of dropped notes are dropped with them.
func Excerpt(s *smf.SMF, ticksOffset uint64, maxNotes int) *smf.SMF {
	var res smf.SMF
	res.TimeFormat = s.TimeFormat

	for _, track := range s.Tracks {
		var newTrack smf.Track
		var absTicks, last uint64
		var numNoteOnOff int
		dropped := make(map[[2]uint8]int)
	TrackEventLoop:
		for _, evt := range track {
			absTicks += uint64(evt.Delta)
			if isEndOfTrack(evt.Message) {
				break
			}
			var pos uint64
			if absTicks > ticksOffset {
				pos = absTicks - ticksOffset
			}

			var channel, key, velocity uint8
			isOn := evt.Message.GetNoteOn(&channel, &key, &velocity) && velocity > 0
			isOff := !isOn && (evt.Message.GetNoteOn(&channel, &key, &velocity) ||
				evt.Message.GetNoteOff(&channel, &key, &velocity))
			isNote := isOn || isOff
			note := [2]uint8{channel, key}

			if isOff && dropped[note] > 0 {
				dropped[note]--
				continue
			}
			if isOn && absTicks < ticksOffset {
				dropped[note]++
				continue
			}
			if isOff && absTicks < ticksOffset {
				continue
			}

			evt.Delta = uint32(pos - last)
			last = pos
			newTrack = append(newTrack, evt)

			if isNote {
				numNoteOnOff++
				if maxNotes > 0 && numNoteOnOff >= maxNotes {
					break TrackEventLoop
				}
			}
		}
		newTrack.Close(0)

		res.Tracks = append(res.Tracks, newTrack)
	}

	return &res
}

// isEndOfTrack matches the meta event FF 2F 00.
func isEndOfTrack(m smf.Message) bool {
	return len(m) >= 2 && m[0] == 0xFF && m[1] == 0x2F
}

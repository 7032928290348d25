package midi

import (
	"sort"

	"github.com/jsphweid/harmondex/model"
	"gitlab.com/gomidi/midi/v2/smf"
)

// percussion channel; its keys are drum sounds, not pitches
const drumChannel = 9

func reduceEvents(s *smf.SMF) []model.ReducedEvent {
	var res []model.ReducedEvent
	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			var channel, key, velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				if channel == drumChannel {
					continue
				}
				res = append(res, model.ReducedEvent{
					Ticks:     absTicks,
					Offset:    s.TimeAt(absTicks),
					IsNoteOff: velocity == 0,
					Note:      key,
				})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				if channel == drumChannel {
					continue
				}
				res = append(res, model.ReducedEvent{
					Ticks:     absTicks,
					Offset:    s.TimeAt(absTicks),
					IsNoteOff: true,
					Note:      key,
				})
			}
		}
	}

	// earlier first, and note offs before note ons at the same tick
	sort.SliceStable(res, func(i, j int) bool {
		if res[i].Ticks != res[j].Ticks {
			return res[i].Ticks < res[j].Ticks
		}
		return res[i].IsNoteOff && !res[j].IsNoteOff
	})
	return res
}

func snapshot(pressed map[uint8]int) model.Pitches {
	res := make(model.Pitches, 0, len(pressed))
	for note := range pressed {
		res = append(res, note)
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}

// GetSonorities returns, for every tick at which at least one note starts,
// the keys held once all events at that tick are applied. Sonorities are in
// time order. Overlapping notes on the same key from different channels or
// tracks count once.
func GetSonorities(s *smf.SMF) []model.Sonority {
	events := reduceEvents(s)

	var res []model.Sonority
	pressed := make(map[uint8]int)
	for i := 0; i < len(events); {
		tick := events[i].Ticks
		started := false
		for ; i < len(events) && events[i].Ticks == tick; i++ {
			evt := events[i]
			if evt.IsNoteOff {
				if pressed[evt.Note] > 1 {
					pressed[evt.Note]--
				} else {
					delete(pressed, evt.Note)
				}
				continue
			}
			pressed[evt.Note]++
			started = true
		}
		if started && len(pressed) > 0 {
			res = append(res, model.Sonority{
				Ticks:   tick,
				Offset:  events[i-1].Offset,
				Pitches: snapshot(pressed),
			})
		}
	}
	return res
}

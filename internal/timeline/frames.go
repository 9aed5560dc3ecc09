package timeline

import (
	"fmt"

	"lol-predictor/internal/riot"
)

// ErrMalformed marks a timeline the reducer cannot make sense of. Matches
// failing with it are dead-lettered rather than retried.
type ErrMalformed struct {
	Reason string
}

func (e *ErrMalformed) Error() string {
	return fmt.Sprintf("malformed timeline: %s", e.Reason)
}

// FrameAt returns the frame at the given minute boundary. Frames arrive one
// per minute, so the minute doubles as the slice index.
func FrameAt(tl *riot.TimelineResponse, minute int) (*riot.TimelineFrame, error) {
	frames := tl.Info.Frames
	if minute < 0 || minute >= len(frames) {
		return nil, &ErrMalformed{Reason: fmt.Sprintf("no frame at minute %d (have %d)", minute, len(frames))}
	}
	return &frames[minute], nil
}

// LastEvent returns the final event of the timeline, which on a completed
// match is the GAME_END event carrying the winner and the closing timestamp.
func LastEvent(tl *riot.TimelineResponse) (*riot.TimelineEvent, error) {
	frames := tl.Info.Frames
	if len(frames) == 0 {
		return nil, &ErrMalformed{Reason: "timeline has no frames"}
	}
	events := frames[len(frames)-1].Events
	if len(events) == 0 {
		return nil, &ErrMalformed{Reason: "final frame has no events"}
	}
	return &events[len(events)-1], nil
}

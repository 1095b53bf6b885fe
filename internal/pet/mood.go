package pet

import "strings"

// Mood is the pet's persistent display state
type Mood int

const (
	Idle Mood = iota
	Happy
	Sad
	Hungry
)

// BaseMoods lists every mood a pet can settle in
var BaseMoods = []Mood{Idle, Happy, Sad, Hungry}

func (m Mood) String() string {
	switch m {
	case Idle:
		return "Idle"
	case Happy:
		return "Happy"
	case Sad:
		return "Sad"
	case Hungry:
		return "Hungry"
	default:
		return "Unknown"
	}
}

// Valid reports whether m is one of the base moods
func (m Mood) Valid() bool {
	return m >= Idle && m <= Hungry
}

// ParseMood converts a case-insensitive mood name
func ParseMood(s string) (Mood, bool) {
	for _, m := range BaseMoods {
		if strings.EqualFold(m.String(), s) {
			return m, true
		}
	}
	return Idle, false
}

// Activity is a transient override that supersedes the mood for a fixed time
// and always resolves to Happy.
type Activity int

const (
	ActivityNone Activity = iota
	ActivitySnack
	ActivityPlay
)

func (a Activity) String() string {
	switch a {
	case ActivitySnack:
		return "Snack"
	case ActivityPlay:
		return "Play"
	default:
		return "None"
	}
}

// Visual identifies a material slot on the balloon
type Visual int

const (
	VisualIdle Visual = iota
	VisualHappy
	VisualSad
	VisualHungry
	VisualSnack
	VisualPlay
)

// Visuals lists all material slots
var Visuals = []Visual{VisualIdle, VisualHappy, VisualSad, VisualHungry, VisualSnack, VisualPlay}

func (v Visual) String() string {
	switch v {
	case VisualIdle:
		return "idle"
	case VisualHappy:
		return "happy"
	case VisualSad:
		return "sad"
	case VisualHungry:
		return "hungry"
	case VisualSnack:
		return "snack"
	case VisualPlay:
		return "play"
	default:
		return "unknown"
	}
}

// Clip identifies a sound clip
type Clip int

const (
	ClipNone Clip = iota
	ClipHappy
	ClipSad
	ClipHungry
	ClipSnack
	ClipPlay
	ClipPop
)

func (c Clip) String() string {
	switch c {
	case ClipHappy:
		return "happy"
	case ClipSad:
		return "sad"
	case ClipHungry:
		return "hungry"
	case ClipSnack:
		return "snack"
	case ClipPlay:
		return "play"
	case ClipPop:
		return "pop"
	default:
		return "none"
	}
}

// Cue is everything the presentation layer needs to show a state
type Cue struct {
	Visual    Visual
	Animation string
	Clip      Clip
}

var moodCues = map[Mood]Cue{
	Idle:   {Visual: VisualIdle, Animation: AnimIdle, Clip: ClipNone},
	Happy:  {Visual: VisualHappy, Animation: AnimHappy, Clip: ClipHappy},
	Sad:    {Visual: VisualSad, Animation: AnimSad, Clip: ClipSad},
	Hungry: {Visual: VisualHungry, Animation: AnimHungry, Clip: ClipHungry},
}

var activityCues = map[Activity]Cue{
	ActivitySnack: {Visual: VisualSnack, Animation: AnimGiveSnack, Clip: ClipSnack},
	ActivityPlay:  {Visual: VisualPlay, Animation: AnimPlay, Clip: ClipPlay},
}

// popCue has no visual; the balloon keeps its last material until removed.
var popCue = Cue{Animation: AnimPop, Clip: ClipPop}

// MoodCue returns the presentation cue for a mood
func MoodCue(m Mood) Cue {
	return moodCues[m]
}

// ActivityCue returns the presentation cue for an activity
func ActivityCue(a Activity) Cue {
	return activityCues[a]
}

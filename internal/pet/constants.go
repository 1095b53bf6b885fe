package pet

import "time"

// Timing defaults
const (
	DefaultFadeDuration  = 1 * time.Second
	DefaultSnackDuration = 4 * time.Second
	DefaultPlayDuration  = 4 * time.Second
	DefaultPopDelay      = 200 * time.Millisecond // Pop animation length before the balloon is removed
)

// StatusPrefix is prepended to the state name in the status text
const StatusPrefix = "Pet State: "

// Animation names understood by the animator
const (
	AnimIdle      = "Idle"
	AnimHappy     = "Happy"
	AnimSad       = "Sad"
	AnimHungry    = "Hungry"
	AnimGiveSnack = "GiveSnack"
	AnimPlay      = "Play"
	AnimPop       = "Pop"
)

// Default material colours
const (
	ColorIdle   = "#B8C0CC"
	ColorHappy  = "#FFD23F"
	ColorSad    = "#4A6FA5"
	ColorHungry = "#E07A5F"
	ColorSnack  = "#F4A261"
	ColorPlay   = "#9B5DE5"
)

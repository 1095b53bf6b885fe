package ui

import (
	"time"

	"balloonpet/internal/pet"
)

// Animation holds the animation the balloon is playing
type Animation struct {
	Name      string
	StartTime time.Time
}

// AnimationFrames contains ASCII art frames for each named animation
var AnimationFrames = map[string][]string{
	pet.AnimIdle: {
		`
   .---.
  / - - \
 |   _   |
  \     /
   '-.-'
     |
     |`,
		`
   .---.
  / - - \
 |   _   |
  \     /
   '-.-'
      |
     |`,
	},
	pet.AnimHappy: {
		`
   .---.
  / ^ ^ \
 |  \_/  |
  \     /
   '-.-'
     |
     |`,
		`
   .---.  *
  / ^ ^ \
 |  \_/  |
  \     /
   '-.-'
    |
     |`,
	},
	pet.AnimSad: {
		`
   .---.
  / ; ; \
 |   ^   |
  \     /
   '-.-'
     |
     |`,
		`

   .---.
  / ; ; \
 |   ^   |
  \     /
   '-.-'
     |`,
	},
	pet.AnimHungry: {
		`
   .---.
  / o o \
 |   O   |
  \     /
   '-.-'
     |
     |`,
		`
   .---.
  / o o \
 |   o   |  *grumble*
  \     /
   '-.-'
     |
     |`,
	},
	pet.AnimGiveSnack: {
		`
   .---.
  / o o \  🍬
 |   O   |
  \     /
   '-.-'
     |`,
		`
   .---.
  / o o \ 🍬
 |   O   |
  \     /
   '-.-'
     |`,
		`
   .---.
  / ^ ^ \
 |  ~~~  | *nom*
  \     /
   '-.-'
     |`,
		`
   .---.
  / ^ ^ \
 |  \_/  | *munch*
  \     /
   '-.-'
     |`,
	},
	pet.AnimPlay: {
		`
   .---.
  / ^ ^ \      🎈
 |  \_/  |
  \     /
   '-.-'
     |`,
		`
    .---.
   / ^ ^ \   🎈
  |  \_/  |
   \     /
    '-.-'
      |`,
		`
   .---.
  / > < \  🎈
 |  \_/  |
  \     /
   '-.-'
     |  *boing*`,
		`
  .---.
 / ^ ^ \
|  \_/  |  🎈
 \     /
  '-.-'
    |`,
	},
	pet.AnimPop: {
		`
   .---.
  / O O \
 |   o   |
  \     /
   '-.-'
     |`,
		`
  \  |  /
 -- POP --
  /  |  \
`,
	},
}

// loopingAnimations repeat until replaced; the rest hold their last frame
var loopingAnimations = map[string]bool{
	pet.AnimIdle:   true,
	pet.AnimHappy:  true,
	pet.AnimSad:    true,
	pet.AnimHungry: true,
}

// AnimationFrameDuration is how long each frame displays
const AnimationFrameDuration = 200 * time.Millisecond

// AnimationTotalFrames returns the number of frames for an animation
func AnimationTotalFrames(name string) int {
	return len(AnimationFrames[name])
}

// FrameIndex returns which frame of anim is showing at now
func FrameIndex(anim Animation, now time.Time) int {
	total := AnimationTotalFrames(anim.Name)
	if total == 0 {
		return 0
	}
	elapsed := now.Sub(anim.StartTime)
	if elapsed < 0 {
		elapsed = 0
	}
	frame := int(elapsed / AnimationFrameDuration)
	if loopingAnimations[anim.Name] {
		return frame % total
	}
	if frame >= total {
		return total - 1
	}
	return frame
}

// GetAnimationFrame returns the art for anim at now
func GetAnimationFrame(anim Animation, now time.Time) string {
	frames := AnimationFrames[anim.Name]
	if len(frames) == 0 {
		return ""
	}
	return frames[FrameIndex(anim, now)]
}

// IsAnimationComplete returns true once a one-shot animation has shown every
// frame. Looping animations never complete.
func IsAnimationComplete(anim Animation, now time.Time) bool {
	if loopingAnimations[anim.Name] {
		return false
	}
	total := AnimationTotalFrames(anim.Name)
	return now.Sub(anim.StartTime) >= time.Duration(total)*AnimationFrameDuration
}

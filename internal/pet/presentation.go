package pet

import (
	"log"

	"github.com/lucasb-eyer/go-colorful"
)

// Renderer is the balloon's material surface
type Renderer interface {
	ApplyMaterial(v Visual)
	SetTint(c colorful.Color)
}

// Animator plays named animations on the balloon
type Animator interface {
	Play(name string)
}

// AudioPlayer plays one-shot clips attached to the balloon
type AudioPlayer interface {
	PlayOneShot(c Clip)
	Stop()
}

// Instance is a live pet placed in the scene
type Instance interface {
	Renderer() Renderer
	Animator() Animator
	Audio() AudioPlayer
	Destroy()
}

// StatusText is the UI line showing the pet's state
type StatusText interface {
	SetText(text string)
}

type nopRenderer struct{}

func (nopRenderer) ApplyMaterial(Visual)   {}
func (nopRenderer) SetTint(colorful.Color) {}

type nopAnimator struct{}

func (nopAnimator) Play(string) {}

type nopAudio struct{}

func (nopAudio) PlayOneShot(Clip) {}
func (nopAudio) Stop()            {}

type nopStatus struct{}

func (nopStatus) SetText(string) {}

// handles holds the bound presentation of one pet. Missing pieces are swapped
// for no-ops at bind time so operations never need to check them again.
type handles struct {
	inst     Instance
	renderer Renderer
	animator Animator
	audio    AudioPlayer
}

func bindHandles(inst Instance) handles {
	h := handles{
		inst:     inst,
		renderer: inst.Renderer(),
		animator: inst.Animator(),
		audio:    inst.Audio(),
	}
	if h.renderer == nil {
		log.Printf("pet: instance has no renderer, materials will not change")
		h.renderer = nopRenderer{}
	}
	if h.animator == nil {
		log.Printf("pet: instance has no animator, animations will not play")
		h.animator = nopAnimator{}
	}
	if h.audio == nil {
		log.Printf("pet: instance has no audio source, clips will not play")
		h.audio = nopAudio{}
	}
	return h
}

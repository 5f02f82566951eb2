// Package project holds the settings value consumed by the timeline core.
// Project is an immutable value type: every settings group has one update
// function returning a new value, so no caller ever observes a shared
// mutable cell.
package project

import (
	"github.com/ivlev/text2video/internal/timeline"
)

// Pacing selects how the content duration is derived.
type Pacing struct {
	Mode          string   `yaml:"mode"` // preset name or "custom"
	CustomSeconds *float64 `yaml:"custom_seconds,omitempty"`
}

// Ending describes the optional terminal card appended after the content.
type Ending struct {
	Enabled  bool    `yaml:"enabled"`
	Seconds  float64 `yaml:"seconds"`
	Title    string  `yaml:"title,omitempty"`
	Subtitle string  `yaml:"subtitle,omitempty"`
	QRURL    string  `yaml:"qr_url,omitempty"`
}

// Configured reports whether the card carries any visible content.
func (e Ending) Configured() bool {
	return e.Title != "" || e.Subtitle != "" || e.QRURL != ""
}

// Audio references the attached soundtrack.
type Audio struct {
	Path string `yaml:"path,omitempty"`
}

// Attached reports whether a soundtrack is referenced.
func (a Audio) Attached() bool {
	return a.Path != ""
}

// Project is the complete settings value for one video.
type Project struct {
	Version string `yaml:"version"`
	Text    string `yaml:"text"`
	Pacing  Pacing `yaml:"pacing"`
	Ending  Ending `yaml:"ending"`
	Audio   Audio  `yaml:"audio"`
}

// New returns a project with the default settings.
func New() Project {
	return Project{
		Version: "1.0",
		Pacing:  Pacing{Mode: "normal"},
		Ending:  Ending{Seconds: 5},
	}
}

// WithText returns a copy with the text content replaced.
func (p Project) WithText(text string) Project {
	p.Text = text
	return p
}

// WithPacing returns a copy with the pacing group replaced.
func (p Project) WithPacing(pc Pacing) Project {
	p.Pacing = pc
	return p
}

// WithEnding returns a copy with the ending-card group replaced.
func (p Project) WithEnding(e Ending) Project {
	p.Ending = e
	return p
}

// WithAudio returns a copy with the audio group replaced.
func (p Project) WithAudio(a Audio) Project {
	p.Audio = a
	return p
}

// Duration computes the duration model for the current settings.
func (p Project) Duration() (timeline.Duration, error) {
	return timeline.ComputeDuration(p.Text, p.Pacing.Mode, p.Pacing.CustomSeconds, p.Ending.Enabled, p.Ending.Seconds)
}

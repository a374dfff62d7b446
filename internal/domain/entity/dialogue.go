package entity

import (
	"regexp"
	"strings"
)

// Side is the screen edge an avatar rests at
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// DialogueLine is one spoken line
type DialogueLine struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// EmojiAsset maps an inline token name to an image URL
type EmojiAsset struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// AvatarAsset maps a speaker to an image URL and a resting side
type AvatarAsset struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Position Side   `json:"position"`
}

// Script is the dialogue document: ordered lines plus the image lookups
type Script struct {
	Dialogue []DialogueLine `json:"dialogue"`
	Emojis   []EmojiAsset   `json:"emojies"`
	Avatars  []AvatarAsset  `json:"avatars"`
}

// Avatar returns the avatar for a speaker, or fallback when the speaker has
// no entry.
func (s *Script) Avatar(name string, fallback AvatarAsset) AvatarAsset {
	for _, a := range s.Avatars {
		if a.Name == name {
			return a
		}
	}
	return fallback
}

// Span is a run of text or an inline image. Exactly one field is set.
type Span struct {
	Text  string
	Image string
}

// RichText is a line of text with inline images
type RichText []Span

var tokenPattern = regexp.MustCompile(`\{([^}]+)\}`)

// ExpandTokens replaces every {name} marker whose name is known with an
// image span. Unknown markers stay as literal text, braces included.
func ExpandTokens(text string, known func(name string) bool) RichText {
	var out RichText
	var buf strings.Builder
	last := 0
	for _, m := range tokenPattern.FindAllStringSubmatchIndex(text, -1) {
		name := text[m[2]:m[3]]
		if !known(name) {
			continue
		}
		buf.WriteString(text[last:m[0]])
		if buf.Len() > 0 {
			out = append(out, Span{Text: buf.String()})
			buf.Reset()
		}
		out = append(out, Span{Image: name})
		last = m[1]
	}
	buf.WriteString(text[last:])
	if buf.Len() > 0 {
		out = append(out, Span{Text: buf.String()})
	}
	return out
}

// String renders the line with images as <img src="name"/> references
func (r RichText) String() string {
	var b strings.Builder
	for _, s := range r {
		if s.Image != "" {
			b.WriteString(`<img src="`)
			b.WriteString(s.Image)
			b.WriteString(`"/>`)
			continue
		}
		b.WriteString(s.Text)
	}
	return b.String()
}

// Images returns the image names referenced by the line in order
func (r RichText) Images() []string {
	var names []string
	for _, s := range r {
		if s.Image != "" {
			names = append(names, s.Image)
		}
	}
	return names
}

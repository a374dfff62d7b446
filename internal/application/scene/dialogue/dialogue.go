// Package dialogue implements the dialogue playback scene: a remote script
// is played line by line with sliding avatars and inline emoji.
package dialogue

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/sync/errgroup"

	"github.com/younwookim/showcase/internal/application/scene"
	"github.com/younwookim/showcase/internal/application/task"
	"github.com/younwookim/showcase/internal/application/tween"
	"github.com/younwookim/showcase/internal/domain/entity"
	"github.com/younwookim/showcase/internal/infrastructure/config"
)

// Group is the animation group owned by the scene
const Group = "magicWords"

const (
	avatarRest   = 100 // how far outside the screen avatars wait
	avatarBottom = 100
	textRise     = 50
	textMargin   = 150
	textSize     = 24
)

var avatarPlaceholder = color.RGBA{200, 200, 220, 255}

// Source provides the dialogue script and converts the images it refers to
type Source interface {
	FetchScript(ctx context.Context) (*entity.Script, error)
	ConvertImage(ctx context.Context, name, url string, maxSize int) error
}

// Scene is the dialogue playback scene
type Scene struct {
	ctx *scene.Context
	cfg config.DialogueConfig
	src Source

	script *entity.Script
	emoji  map[string]bool

	left, right *entity.Node
	text        *entity.Node
	speaker     string
	line        entity.RichText
	shown       int

	loop      *task.Task
	stopped   bool
	destroyed bool

	title text.Face
	face  text.Face
}

// New creates an unloaded dialogue scene reading from src
func New(ctx *scene.Context, src Source) *Scene {
	w, h := ctx.Width(), ctx.Height()
	cx, cy := ctx.Center()
	s := &Scene{
		ctx:   ctx,
		cfg:   ctx.Config.Dialogue,
		src:   src,
		emoji: make(map[string]bool),
		left:  entity.NewNode(-avatarRest, h-avatarBottom),
		right: entity.NewNode(w+avatarRest, h-avatarBottom),
		text:  entity.NewNode(cx, cy-textRise),
	}
	s.text.Alpha = 0
	return s
}

// Load fetches the script, then converts every emoji and avatar image in
// parallel. A failed script fetch fails the load; a failed image is logged
// and skipped.
func (s *Scene) Load(co *task.Co) error {
	var script *entity.Script
	err := co.Await(s.ctx.Mailbox.Run(func() error {
		ctx, cancel := s.deadline()
		defer cancel()
		fetched, err := s.src.FetchScript(ctx)
		script = fetched
		return err
	}))
	if err != nil {
		return fmt.Errorf("failed to fetch dialogue: %w", err)
	}

	if err := co.Await(s.ctx.Mailbox.Run(func() error {
		return s.convertImages(script)
	})); err != nil {
		return err
	}

	s.script = script
	for _, e := range script.Emojis {
		if s.ctx.Assets.Has(emojiKey(e.Name)) {
			s.emoji[e.Name] = true
		}
	}
	log.Printf("[Dialogue] loaded %d lines, %d/%d emoji", len(script.Dialogue), len(s.emoji), len(script.Emojis))

	if s.ctx.Widgets != nil {
		s.title = s.ctx.Widgets.FaceOfSize(32)
		s.face = s.ctx.Widgets.FaceOfSize(textSize)
	}
	return nil
}

// convertImages runs off the frame loop
func (s *Scene) convertImages(script *entity.Script) error {
	ctx, cancel := s.deadline()
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, s.cfg.MaxConcurrentFetches))
	convert := func(key, url string, size int) {
		g.Go(func() error {
			if err := s.src.ConvertImage(gctx, key, url, size); err != nil {
				log.Printf("[Dialogue] skipping image: %v", err)
			}
			return nil
		})
	}
	for _, e := range script.Emojis {
		convert(emojiKey(e.Name), e.URL, s.cfg.EmojiSize)
	}
	for _, a := range script.Avatars {
		convert(avatarKey(a.Name), a.URL, s.cfg.AvatarSize)
	}
	return g.Wait()
}

// deadline bounds remote work by the configured timeout; zero means none
func (s *Scene) deadline() (context.Context, context.CancelFunc) {
	if s.cfg.Timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), s.cfg.Timeout)
}

func emojiKey(name string) string  { return "emoji_" + name }
func avatarKey(name string) string { return "avatar_" + name }

// OnEnter starts playback as its own task
func (s *Scene) OnEnter(co *task.Co) error {
	s.loop = task.Go("dialogue", s.run)
	return nil
}

// run plays the script forever, pausing between passes
func (s *Scene) run(co *task.Co) error {
	for {
		for _, line := range s.script.Dialogue {
			if err := s.play(co, line); err != nil {
				return err
			}
		}
		if err := s.sleep(co, s.cfg.Restart); err != nil {
			return err
		}
	}
}

// play slides the speaker in, shows the line, then hides both again
func (s *Scene) play(co *task.Co, line entity.DialogueLine) error {
	fallback := entity.AvatarAsset{Name: s.cfg.DefaultAvatar, Position: entity.SideLeft}
	avatar := s.script.Avatar(line.Name, fallback)
	node := s.left
	if avatar.Position == entity.SideRight {
		node = s.right
	}
	node.Texture = avatarKey(avatar.Name)
	rest := node.X
	cx, _ := s.ctx.Center()

	if err := s.animate(co, node, tween.Values{tween.PropX: cx}, s.cfg.Slide, tween.QuadOut); err != nil {
		return err
	}

	s.speaker = line.Name
	s.line = entity.ExpandTokens(line.Text, func(name string) bool { return s.emoji[name] })
	if err := s.animate(co, s.text, tween.Values{tween.PropAlpha: 1}, s.cfg.Fade, tween.QuadInOut); err != nil {
		return err
	}
	if err := s.sleep(co, s.cfg.Hold); err != nil {
		return err
	}
	if err := s.animate(co, s.text, tween.Values{tween.PropAlpha: 0}, s.cfg.Fade, tween.QuadInOut); err != nil {
		return err
	}
	if err := s.animate(co, node, tween.Values{tween.PropX: rest}, s.cfg.Slide, tween.QuadIn); err != nil {
		return err
	}
	s.shown++
	return nil
}

func (s *Scene) animate(co *task.Co, node *entity.Node, to tween.Values, d time.Duration, ease tween.EasingFunc) error {
	if s.stopped {
		return task.ErrStopped
	}
	return task.AwaitTween(co, s.ctx.Tweens.CreateIn(Group, node).To(to, d).Easing(ease))
}

func (s *Scene) sleep(co *task.Co, d time.Duration) error {
	if s.stopped {
		return task.ErrStopped
	}
	return task.Sleep(co, s.ctx.Tweens, Group, d)
}

// Shown returns the number of lines played to the end
func (s *Scene) Shown() int {
	return s.shown
}

// Line returns the line currently on screen
func (s *Scene) Line() (speaker string, line entity.RichText) {
	return s.speaker, s.line
}

// Update does nothing; everything in this scene is a tween
func (s *Scene) Update(dt time.Duration) {}

// Draw renders the avatars and the current line
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.destroyed {
		return
	}
	size := float64(s.cfg.AvatarSize)
	for _, node := range []*entity.Node{s.left, s.right} {
		if node.Texture == "" {
			continue
		}
		scene.DrawSprite(screen, s.ctx.Assets.Texture(node.Texture), node, size, size, avatarPlaceholder)
	}
	s.drawLine(screen)
	scene.DrawTitle(screen, s.title, scene.DialoguePlayback.Title(), s.ctx.Width())
}

func (s *Scene) drawLine(screen *ebiten.Image) {
	if s.face == nil || s.text.Alpha <= 0 || len(s.line) == 0 {
		return
	}
	measure := func(str string) float64 { return text.Advance(str, s.face) }
	emoji := float64(s.cfg.EmojiSize)
	rows := layout(s.line, s.ctx.Width()-textMargin, measure, emoji)
	lineHeight := max(emoji, textSize*1.3)
	top := s.text.Y - lineHeight*float64(len(rows))/2

	for i, r := range rows {
		left := s.text.X - r.Width/2
		y := top + lineHeight*float64(i)
		for _, p := range r.Pieces {
			if p.Image != "" {
				tex := s.ctx.Assets.Texture(emojiKey(p.Image))
				if tex == nil {
					continue
				}
				op := &ebiten.DrawImageOptions{}
				op.GeoM.Translate(left+p.X, y)
				op.ColorScale.ScaleAlpha(float32(s.text.Alpha))
				screen.DrawImage(tex, op)
				continue
			}
			op := &text.DrawOptions{}
			op.GeoM.Translate(left+p.X, y)
			op.ColorScale.ScaleAlpha(float32(s.text.Alpha))
			text.Draw(screen, p.Text, s.face, op)
		}
	}
}

// OnExit raises the stopped flag and stops playback. No further tween is
// started once it returns.
func (s *Scene) OnExit(co *task.Co) error {
	s.stopped = true
	if s.loop != nil {
		s.loop.Stop()
		if err := s.loop.Err(); err != nil && !errors.Is(err, task.ErrStopped) && !errors.Is(err, tween.ErrCancelled) {
			return err
		}
	}
	return nil
}

// Destroy stops playback, cancels the scene's tweens and drops the script
func (s *Scene) Destroy() {
	if s.destroyed {
		return
	}
	s.destroyed = true
	s.stopped = true
	if s.loop != nil {
		s.loop.Stop()
	}
	s.ctx.Tweens.DestroyGroup(Group)
	s.script = nil
	s.line = nil
}

package dialogue

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/showcase/internal/application/scene"
	"github.com/younwookim/showcase/internal/application/task"
	"github.com/younwookim/showcase/internal/application/tween"
	"github.com/younwookim/showcase/internal/domain/entity"
	"github.com/younwookim/showcase/internal/infrastructure/assets"
	"github.com/younwookim/showcase/internal/infrastructure/config"
)

const frame = 10 * time.Millisecond

type fakeSource struct {
	reg      *assets.Registry
	script   *entity.Script
	fetchErr error
	broken   map[string]bool

	mu        sync.Mutex
	converted []string
}

func (f *fakeSource) FetchScript(ctx context.Context) (*entity.Script, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.script, nil
}

func (f *fakeSource) ConvertImage(ctx context.Context, name, url string, maxSize int) error {
	f.mu.Lock()
	f.converted = append(f.converted, name)
	f.mu.Unlock()
	if f.broken[url] {
		return fmt.Errorf("failed to fetch image %s: %w", name, errors.New("404"))
	}
	f.reg.Put(name, image.NewRGBA(image.Rect(0, 0, maxSize, maxSize)))
	return nil
}

func testScript() *entity.Script {
	return &entity.Script{
		Dialogue: []entity.DialogueLine{
			{Name: "Sheldon", Text: "Hi {smile}"},
			{Name: "Leonard", Text: "Bye {unknown}"},
			{Name: "Stranger", Text: "who?"},
		},
		Emojis: []entity.EmojiAsset{
			{Name: "smile", URL: "http://img/smile"},
			{Name: "sad", URL: "http://img/broken"},
		},
		Avatars: []entity.AvatarAsset{
			{Name: "Sheldon", URL: "http://img/sheldon", Position: entity.SideLeft},
			{Name: "Leonard", URL: "http://img/leonard", Position: entity.SideRight},
			{Name: "Penny", URL: "http://img/penny", Position: entity.SideLeft},
		},
	}
}

func testContext() *scene.Context {
	return &scene.Context{
		Tweens:  tween.NewScheduler(),
		Mailbox: task.NewMailbox(8),
		Assets:  assets.NewRegistry(),
		Config: &config.ShowcaseConfig{
			Display: config.DisplayConfig{ScreenWidth: 800, ScreenHeight: 600},
			Dialogue: config.DialogueConfig{
				Timeout:              time.Second,
				MaxConcurrentFetches: 2,
				AvatarSize:           16,
				EmojiSize:            8,
				DefaultAvatar:        "Penny",
				Slide:                100 * time.Millisecond,
				Fade:                 50 * time.Millisecond,
				Hold:                 100 * time.Millisecond,
				Restart:              200 * time.Millisecond,
			},
		},
	}
}

func newSource(ctx *scene.Context) *fakeSource {
	return &fakeSource{
		reg:    ctx.Assets,
		script: testScript(),
		broken: map[string]bool{"http://img/broken": true},
	}
}

// load runs Load to the end, draining the mailbox like the frame loop does
func load(t *testing.T, s *Scene, ctx *scene.Context) error {
	t.Helper()
	tk := task.Go("load", s.Load)
	deadline := time.Now().Add(2 * time.Second)
	for !tk.Finished() && time.Now().Before(deadline) {
		ctx.Mailbox.Drain()
		time.Sleep(time.Millisecond)
	}
	require.True(t, tk.Finished(), "load did not finish")
	return tk.Err()
}

func entered(t *testing.T) (*Scene, *scene.Context) {
	t.Helper()
	ctx := testContext()
	s := New(ctx, newSource(ctx))
	require.NoError(t, load(t, s, ctx))
	require.NoError(t, task.Go("enter", s.OnEnter).Err())
	return s, ctx
}

func ticksUntil(ctx *scene.Context, cond func() bool) int {
	n := 0
	for !cond() && n < 10000 {
		ctx.Tweens.Tick(frame)
		n++
	}
	return n
}

func TestLoad_SkipsBrokenImages(t *testing.T) {
	ctx := testContext()
	src := newSource(ctx)
	s := New(ctx, src)

	require.NoError(t, load(t, s, ctx))

	assert.Len(t, src.converted, 5)
	assert.True(t, ctx.Assets.Has("emoji_smile"))
	assert.False(t, ctx.Assets.Has("emoji_sad"))
	assert.True(t, ctx.Assets.Has("avatar_Leonard"))
	assert.Equal(t, map[string]bool{"smile": true}, s.emoji)
}

func TestLoad_FetchFailure(t *testing.T) {
	ctx := testContext()
	src := newSource(ctx)
	src.fetchErr = errors.New("connection refused")
	s := New(ctx, src)

	err := load(t, s, ctx)

	assert.ErrorContains(t, err, "failed to fetch dialogue")
	assert.ErrorContains(t, err, "connection refused")
	assert.Empty(t, src.converted)
}

func TestNew_NodesStartOffScreen(t *testing.T) {
	ctx := testContext()
	s := New(ctx, newSource(ctx))

	assert.Equal(t, -100.0, s.left.X)
	assert.Equal(t, 900.0, s.right.X)
	assert.Equal(t, 500.0, s.left.Y)
	assert.Equal(t, 0.0, s.text.Alpha)
	assert.Equal(t, 250.0, s.text.Y)
}

func TestPlayback_LinesInOrder(t *testing.T) {
	s, ctx := entered(t)

	ticksUntil(ctx, func() bool { speaker, _ := s.Line(); return speaker == "Sheldon" })
	_, line := s.Line()
	assert.Equal(t, `Hi <img src="smile"/>`, line.String())
	assert.Equal(t, 400.0, s.left.X)
	assert.Equal(t, "avatar_Sheldon", s.left.Texture)
	assert.Equal(t, 900.0, s.right.X)

	ticksUntil(ctx, func() bool { speaker, _ := s.Line(); return speaker == "Leonard" })
	_, line = s.Line()
	assert.Equal(t, "Bye {unknown}", line.String(), "unknown tokens stay literal")
	assert.Equal(t, 400.0, s.right.X)
	assert.Equal(t, -100.0, s.left.X)
	assert.Equal(t, 1, s.Shown())

	ticksUntil(ctx, func() bool { speaker, _ := s.Line(); return speaker == "Stranger" })
	assert.Equal(t, "avatar_Penny", s.left.Texture, "unknown speakers use the default avatar")
	assert.Equal(t, 400.0, s.left.X)
	assert.Equal(t, 900.0, s.right.X)
}

func TestPlayback_Restarts(t *testing.T) {
	s, ctx := entered(t)

	n := ticksUntil(ctx, func() bool { return s.Shown() == 4 })

	assert.Less(t, n, 10000)
	speaker, _ := s.Line()
	assert.Equal(t, "Sheldon", speaker)
}

func TestOnExit_StartsNoFurtherTweens(t *testing.T) {
	s, ctx := entered(t)
	for i := 0; i < 15; i++ {
		ctx.Tweens.Tick(frame)
	}

	require.NoError(t, task.Go("exit", s.OnExit).Err())

	started := ctx.Tweens.Stats().Started
	g, ok := ctx.Tweens.Group(Group)
	require.True(t, ok)
	assert.Equal(t, 0, g.Len())
	for i := 0; i < 200; i++ {
		ctx.Tweens.Tick(frame)
	}
	assert.Equal(t, started, ctx.Tweens.Stats().Started)
}

func TestDestroy_Idempotent(t *testing.T) {
	s, ctx := entered(t)
	ctx.Tweens.Tick(frame)

	s.Destroy()
	assert.NotPanics(t, s.Destroy)

	_, ok := ctx.Tweens.Group(Group)
	assert.False(t, ok)
	assert.True(t, s.loop.Finished())
}

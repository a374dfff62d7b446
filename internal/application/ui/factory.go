// Package ui builds the ebitenui widgets shared by the host and the scenes.
package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	buttonIdle     = color.RGBA{20, 40, 80, 230}
	buttonHover    = color.RGBA{40, 70, 130, 240}
	buttonPressed  = color.RGBA{10, 25, 50, 255}
	buttonDisabled = color.RGBA{60, 60, 70, 200}
	labelColor     = color.RGBA{255, 255, 255, 255}
	labelDisabled  = color.RGBA{150, 150, 150, 255}
)

// Factory creates styled widgets
type Factory struct {
	source *text.GoTextFaceSource
	face   text.Face
}

// NewFactory loads the UI font
func NewFactory() (*Factory, error) {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	return &Factory{
		source: s,
		face:   &text.GoTextFace{Source: s, Size: 18},
	}, nil
}

// Face returns the default UI face
func (f *Factory) Face() text.Face {
	return f.face
}

// FaceOfSize returns a face of the UI font at size
func (f *Factory) FaceOfSize(size float64) text.Face {
	return &text.GoTextFace{Source: f.source, Size: size}
}

// Button creates a text button calling onClick when clicked
func (f *Factory) Button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(buttonIdle),
			Hover:    image.NewNineSliceColor(buttonHover),
			Pressed:  image.NewNineSliceColor(buttonPressed),
			Disabled: image.NewNineSliceColor(buttonDisabled),
		}),
		widget.ButtonOpts.Text(label, f.face, &widget.ButtonTextColor{
			Idle:     labelColor,
			Disabled: labelDisabled,
		}),
		widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(10)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// MenuItem is one button of a menu
type MenuItem struct {
	Label   string
	OnClick func()
}

// Menu is a row of buttons anchored to the bottom of the screen
type Menu struct {
	ui      *ebitenui.UI
	buttons []*widget.Button
	enabled bool
}

// Menu lays items out left to right at the bottom center of the screen
func (f *Factory) Menu(items []MenuItem) *Menu {
	return f.Panel(items, widget.AnchorLayoutPositionCenter, widget.AnchorLayoutPositionEnd)
}

// Panel lays items out in a row anchored at the given positions
func (f *Factory) Panel(items []MenuItem, horizontal, vertical widget.AnchorLayoutPosition) *Menu {
	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(16)),
		)),
	)
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: horizontal,
				VerticalPosition:   vertical,
			}),
		),
	)
	root.AddChild(row)

	m := &Menu{ui: &ebitenui.UI{Container: root}, enabled: true}
	for _, item := range items {
		b := f.Button(item.Label, item.OnClick)
		row.AddChild(b)
		m.buttons = append(m.buttons, b)
	}
	return m
}

// SetEnabled enables or disables every button
func (m *Menu) SetEnabled(enabled bool) {
	if m.enabled == enabled {
		return
	}
	m.enabled = enabled
	for _, b := range m.buttons {
		b.GetWidget().Disabled = !enabled
	}
}

// Enabled reports whether the buttons accept clicks
func (m *Menu) Enabled() bool {
	return m.enabled
}

// SetLabel changes the label of the button at index
func (m *Menu) SetLabel(index int, label string) {
	if index < 0 || index >= len(m.buttons) {
		return
	}
	if t := m.buttons[index].Text(); t != nil {
		t.Label = label
	}
}

// Update processes input for the widgets
func (m *Menu) Update() {
	m.ui.Update()
}

// Draw renders the widgets
func (m *Menu) Draw(screen *ebiten.Image) {
	m.ui.Draw(screen)
}

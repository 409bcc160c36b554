package ui

import (
	"bytes"
	"fmt"
	"image/color"

	cfg "github.com/automoto/bounce/config"
	"github.com/automoto/bounce/shared/leveldata"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// TitleInfo is what the title screen shows besides its buttons.
type TitleInfo struct {
	Levels           []leveldata.Level
	HighScore        int
	CampaignComplete bool
}

// TitleUI is the title screen: a start button, one button per level and the
// best score.
type TitleUI struct {
	UI *ebitenui.UI

	OnStart       func()
	OnSelectLevel func(id int)

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewTitleUI(info TitleInfo, onStart func(), onSelectLevel func(id int)) (*TitleUI, error) {
	ui := &TitleUI{
		OnStart:       onStart,
		OnSelectLevel: onSelectLevel,
	}
	if err := ui.loadFonts(); err != nil {
		return nil, err
	}
	ui.buildUI(info)
	return ui, nil
}

func (ui *TitleUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load UI font: %w", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 56}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 22}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 16}
	return nil
}

func (ui *TitleUI) buildUI(info TitleInfo) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.Menu.Title, &ui.titleFace, &widget.LabelColor{
			Idle: cfg.Menu.TitleColor,
		}),
	))

	if info.CampaignComplete {
		contentContainer.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(cfg.Menu.CampaignComplete, &ui.normalFace, &widget.LabelColor{
				Idle: cfg.BrightGreen,
			}),
		))
	}

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(fmt.Sprintf("High score: %d", info.HighScore), &ui.normalFace, &widget.LabelColor{
			Idle: cfg.Menu.TextColor,
		}),
	))

	contentContainer.AddChild(ui.newButton("Start New Game", ui.normalFace, 260, 48, func() {
		if ui.OnStart != nil {
			ui.OnStart()
		}
	}))

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Level select", &ui.smallFace, &widget.LabelColor{
			Idle: cfg.Menu.TextColor,
		}),
	))
	contentContainer.AddChild(ui.buildLevelGrid(info.Levels))

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Arrows move, Space jumps (twice in the air), P pauses", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 200, 255},
		}),
	))

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *TitleUI) buildLevelGrid(levels []leveldata.Level) *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(3),
			widget.GridLayoutOpts.Spacing(8, 8),
		)),
	)

	for _, lvl := range levels {
		id := lvl.ID
		label := fmt.Sprintf("%d. %s", id, lvl.Name)
		container.AddChild(ui.newButton(label, ui.smallFace, 180, 34, func() {
			if ui.OnSelectLevel != nil {
				ui.OnSelectLevel(id)
			}
		}))
	}

	return container
}

func (ui *TitleUI) newButton(label string, face text.Face, w, h int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(w, h)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(cfg.Menu.ButtonColor),
			Hover:    image.NewNineSliceColor(cfg.Menu.ButtonHover),
			Pressed:  image.NewNineSliceColor(cfg.Menu.ButtonPressed),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 50, 255}),
		}),
		widget.ButtonOpts.Text(label, &face, &widget.ButtonTextColor{
			Idle:     cfg.Menu.TextColor,
			Hover:    cfg.White,
			Pressed:  color.RGBA{200, 200, 220, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (ui *TitleUI) Update() {
	ui.UI.Update()
}

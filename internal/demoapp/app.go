// Package demoapp wires configuration, the libVLC player and range sliders
// into a single demo window. It shows controlled and uncontrolled sliders
// side by side.
package demoapp

import (
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	config "github.com/edward-ap/rangeslider/internal/config"
	playerpkg "github.com/edward-ap/rangeslider/internal/player"
	"github.com/edward-ap/rangeslider/internal/slider"
	ui "github.com/edward-ap/rangeslider/internal/ui"
)

// App owns the fyne application, the window, the player and the sliders.
type App struct {
	fa     fyne.App
	w      fyne.Window
	player *playerpkg.Player
	config *config.Config

	playBtn   *widget.Button
	volSlider *ui.RangeSlider
	volLabel  *widget.Label
	status    *widget.Label

	// sliders built from config, in config order
	sliders []*ui.RangeSlider
}

// NewApp loads configuration and builds the window.
func NewApp() *App {
	cfg, err := config.Load()
	if err != nil {
		log.Println("config load error:", err)
		cfg = &config.Config{StreamURL: config.DefaultStreamURL, Volume: config.DefaultVolume, WindowW: config.DefaultWidth, WindowH: config.DefaultHeight}
	}

	fa := app.NewWithID(config.AppID)
	if cfg.SmallHandle {
		ui.UseSmallHandleTheme()
	}
	w := fa.NewWindow("Range Slider")
	w.SetMaster()
	w.Resize(fyne.NewSize(float32(cfg.WindowW), float32(cfg.WindowH)))

	a := &App{
		fa:     fa,
		w:      w,
		player: playerpkg.NewPlayer(cfg.Volume),
		config: cfg,
	}
	a.buildUI()
	a.w.SetOnClosed(a.player.Release)

	go func() {
		err := a.player.Init()
		ui.CallOnMain(func() {
			if err != nil {
				a.status.SetText("VLC unavailable, volume is local only")
				log.Println("player init error:", err)
				return
			}
			a.status.SetText("VLC ready")
			a.syncVolume()
		})
	}()
	return a
}

// Run enters the fyne event loop.
func (a *App) Run() {
	a.w.ShowAndRun()
}

func (a *App) buildUI() {
	a.status = widget.NewLabel("Initializing VLC…")
	rows := []fyne.CanvasObject{
		a.buildVolumeRow(),
		widget.NewSeparator(),
	}
	for _, sc := range a.config.Sliders {
		rows = append(rows, a.buildSliderRow(sc))
	}
	rows = append(rows, widget.NewSeparator(), a.buildToggles(), a.status)
	a.w.SetContent(container.NewVScroll(container.NewVBox(rows...)))
}

// buildVolumeRow builds the controlled volume slider. The player owns the
// level: the slider only proposes values and is synced back from the player.
func (a *App) buildVolumeRow() fyne.CanvasObject {
	a.playBtn = widget.NewButtonWithIcon("", theme.MediaPlayIcon(), a.togglePlay)
	a.playBtn.Importance = widget.LowImportance
	a.volLabel = widget.NewLabel(strconv.Itoa(a.player.Volume()))

	p := slider.Props{
		Bounds: slider.DefaultBounds(),
		Value:  slider.Float(float64(a.player.Volume())),
		OnChange: func(c slider.Change) {
			a.setVolume(int(math.Round(c.Value)))
		},
		AfterChange: func(c slider.Change) {
			log.Printf("volume committed at %v", c.Value)
		},
	}
	a.volSlider = ui.NewRangeSlider(p)

	head := container.NewHBox(a.playBtn, widget.NewLabel("Volume (controlled)"), layout.NewSpacer(), a.volLabel)
	return container.NewVBox(head, a.volSlider, ui.NewBoundsCaption(p.Bounds).CanvasObject())
}

// buildSliderRow builds an uncontrolled (or config-controlled) slider whose
// value label follows OnChange.
func (a *App) buildSliderRow(sc config.SliderConfig) fyne.CanvasObject {
	p := sc.Props()
	value := widget.NewLabel("")

	var s *ui.RangeSlider
	p.OnChange = func(c slider.Change) {
		value.SetText(formatValue(c.Value, sc.Step))
		// config-controlled sliders accept every proposal
		if s != nil && s.Mode() == slider.Controlled {
			s.SetValue(c.Value)
		}
	}
	p.AfterChange = func(c slider.Change) {
		log.Printf("%s committed at %s", sc.Label, formatValue(c.Value, sc.Step))
	}
	s = ui.NewRangeSlider(p)
	value.SetText(formatValue(s.Value(), sc.Step))
	a.sliders = append(a.sliders, s)

	head := container.NewHBox(widget.NewLabel(sc.Label), layout.NewSpacer(), value)
	return container.NewVBox(head, s, ui.NewBoundsCaption(sc.Bounds()).CanvasObject())
}

func (a *App) buildToggles() fyne.CanvasObject {
	disabled := widget.NewCheck("Disable all", func(on bool) {
		for i, s := range a.sliders {
			if on {
				s.Disable()
			} else if !a.config.Sliders[i].Disabled {
				s.Enable()
			}
		}
	})
	readOnly := widget.NewCheck("Read-only all", func(on bool) {
		for i, s := range a.sliders {
			s.SetReadOnly(on || a.config.Sliders[i].ReadOnly)
		}
	})
	return container.NewHBox(disabled, readOnly)
}

// setVolume hands a proposed level to the player and syncs the slider from
// whatever the player kept.
func (a *App) setVolume(v int) {
	if err := a.player.SetVolume(v); err != nil && !errors.Is(err, playerpkg.ErrNotInitialized) {
		log.Println("set volume error:", err)
	}
	a.syncVolume()
}

func (a *App) syncVolume() {
	v := a.player.Volume()
	a.volSlider.SetValue(float64(v))
	a.volLabel.SetText(strconv.Itoa(v))
}

func (a *App) togglePlay() {
	if a.player.IsPlaying() {
		a.player.Stop()
		a.playBtn.SetIcon(theme.MediaPlayIcon())
		return
	}
	url := strings.TrimSpace(a.config.StreamURL)
	if err := a.player.Load(url); err != nil {
		dialog.ShowError(fmt.Errorf("cannot load stream: %w", err), a.w)
		return
	}
	if err := a.player.Play(); err != nil {
		dialog.ShowError(err, a.w)
		return
	}
	a.playBtn.SetIcon(theme.MediaStopIcon())
}

// formatValue prints v with as many decimals as the step has.
func formatValue(v, step float64) string {
	decimals := 0
	s := strconv.FormatFloat(step, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		decimals = len(s) - i - 1
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

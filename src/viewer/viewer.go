// Package viewer shows rendered charts in Fyne windows, one at a time.
//
// Fyne requires its event loop on the main goroutine, so Run owns the loop and
// executes the caller's job on a worker goroutine. Show is called from that job
// and blocks until the user closes the chart window.
package viewer

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"strings"
	"sync"
	"time"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/CarlosSanchess/benchcharts/src/logging"
	"github.com/CarlosSanchess/benchcharts/src/render"
)

const appID = "com.benchcharts.viewer"

// Options configure the viewer.
type Options struct {
	Theme       string // "dark" (default) or "light", any case
	FollowWidth bool   // re-render when the window width changes
}

// Viewer opens chart windows on a Fyne app.
type Viewer struct {
	app  fyne.App
	opts Options

	// onOpen is called on the UI goroutine after a chart window is shown.
	onOpen func(fyne.Window)
}

// New wraps an existing Fyne app.
func New(a fyne.App, opts Options) *Viewer {
	if strings.EqualFold(strings.TrimSpace(opts.Theme), "light") {
		a.Settings().SetTheme(&variantTheme{variant: theme.VariantLight})
	} else {
		a.Settings().SetTheme(&variantTheme{variant: theme.VariantDark})
	}
	return &Viewer{app: a, opts: opts}
}

// Run starts the Fyne event loop on the calling goroutine, runs job on a worker
// goroutine and quits the loop once job returns. It returns job's error.
// Must be called from main.
func Run(opts Options, job func(v *Viewer) error) error {
	a := app.NewWithID(appID)
	v := New(a, opts)
	// The first window is the master window; it is never shown and only keeps
	// the driver loop alive while no chart window is open.
	_ = a.NewWindow("benchcharts")
	errc := make(chan error, 1)
	a.Lifecycle().SetOnStarted(func() {
		go func() {
			errc <- job(v)
			fyne.Do(a.Quit)
		}()
	})
	a.Run()
	select {
	case err := <-errc:
		return err
	default:
		// loop ended before the job finished (e.g. the OS asked the app to quit)
		return nil
	}
}

// Show opens a window with img and blocks until it is closed or ctx is done.
// When redraw is non-nil and FollowWidth is set the chart is re-rendered to
// follow the window width.
func (v *Viewer) Show(ctx context.Context, title string, img image.Image, redraw render.RedrawFunc) error {
	closed := make(chan struct{})
	var once sync.Once
	var w fyne.Window
	fyne.DoAndWait(func() {
		w = v.open(title, img, redraw, func() { once.Do(func() { close(closed) }) })
	})
	select {
	case <-closed:
		logging.Debugf("[viewer] closed %q", title)
		return nil
	case <-ctx.Done():
		fyne.Do(w.Close)
		<-closed
		return ctx.Err()
	}
}

func (v *Viewer) open(title string, img image.Image, redraw render.RedrawFunc, onClosed func()) fyne.Window {
	w := v.app.NewWindow(title)
	b := img.Bounds()

	chartImg := canvas.NewImageFromImage(img)
	chartImg.FillMode = canvas.ImageFillContain
	chartImg.SetMinSize(fyne.NewSize(float32(b.Dx())/2, float32(b.Dy())/2))

	fileName := render.FileName(title, render.FormatPNG)
	top := container.NewHBox(
		widget.NewButton("Export PNG…", func() { exportChartPNG(w, chartImg, fileName) }),
		layout.NewSpacer(),
		widget.NewButton("Close", w.Close),
	)
	w.SetContent(container.NewBorder(top, nil, nil, nil, chartImg))
	w.Resize(fyne.NewSize(float32(b.Dx()), float32(b.Dy())+top.MinSize().Height))

	done := make(chan struct{})
	w.SetOnClosed(func() {
		close(done)
		onClosed()
	})
	if canv := w.Canvas(); canv != nil {
		for _, mod := range []fyne.KeyModifier{fyne.KeyModifierSuper, fyne.KeyModifierControl} {
			canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: mod}, func(fyne.Shortcut) { w.Close() })
			canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: mod}, func(fyne.Shortcut) { exportChartPNG(w, chartImg, fileName) })
		}
	}
	if redraw != nil && v.opts.FollowWidth {
		go followWidth(chartImg, redraw, done, b.Dx())
	}
	w.Show()
	if v.onOpen != nil {
		v.onOpen(w)
	}
	return w
}

// followWidth polls the image widget size and re-renders when the width changes.
func followWidth(img *canvas.Image, redraw render.RedrawFunc, done <-chan struct{}, prevW int) {
	t := time.NewTicker(300 * time.Millisecond)
	defer t.Stop()
	for {
		select {
		case <-done:
			return
		case <-t.C:
			var curW int
			fyne.DoAndWait(func() { curW = int(img.Size().Width) })
			if curW <= 0 || absInt(curW-prevW) < 8 {
				continue
			}
			prevW = curW
			fresh, err := redraw(render.FitSize(curW))
			if err != nil {
				logging.Warnf("[viewer] redraw at width %d failed: %v", curW, err)
				continue
			}
			fyne.Do(func() {
				img.Image = fresh
				img.Refresh()
			})
		}
	}
}

// exportChartPNG writes the currently displayed chart through a save dialog.
func exportChartPNG(w fyne.Window, img *canvas.Image, defaultName string) {
	if img == nil || img.Image == nil {
		dialog.ShowInformation("Export", "No chart to export.", w)
		return
	}
	fs := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, w)
			return
		}
		if wc == nil {
			return
		}
		defer wc.Close()
		if err := png.Encode(wc, img.Image); err != nil {
			dialog.ShowError(err, w)
			return
		}
		logging.Infof("[viewer] exported %s", wc.URI().Path())
	}, w)
	fs.SetFileName(defaultName)
	fs.Show()
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// variantTheme pins the default theme to one variant regardless of OS setting.
type variantTheme struct {
	variant fyne.ThemeVariant
}

func (t *variantTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(name, t.variant)
}
func (t *variantTheme) Font(style fyne.TextStyle) fyne.Resource { return theme.DefaultTheme().Font(style) }
func (t *variantTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}
func (t *variantTheme) Size(name fyne.ThemeSizeName) float32 { return theme.DefaultTheme().Size(name) }

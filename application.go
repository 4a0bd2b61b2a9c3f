package loopscroll

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v3"
)

const (
	updatesQueueSize = 100
	// Resize events closer together than this are coalesced.
	resizePause = 50 * time.Millisecond
	// DefaultFrameRate is the number of ticks per second delivered to the
	// root primitive.
	DefaultFrameRate = 60
	// maxFrameDelta caps the time passed to a single tick so a stalled loop
	// does not make animations jump.
	maxFrameDelta = 0.25
)

// DoubleClickInterval is the longest time between two clicks that still
// counts as a double click.
var DoubleClickInterval = 500 * time.Millisecond

// MouseAction is a logical mouse action derived from raw tcell mouse events.
type MouseAction int16

const (
	MouseMove MouseAction = iota
	MouseLeftDown
	MouseLeftUp
	MouseLeftClick
	MouseLeftDoubleClick
	MouseMiddleDown
	MouseMiddleUp
	MouseMiddleClick
	MouseMiddleDoubleClick
	MouseRightDown
	MouseRightUp
	MouseRightClick
	MouseRightDoubleClick
	MouseScrollUp
	MouseScrollDown
	MouseScrollLeft
	MouseScrollRight
)

// queuedUpdate is a function to run on the event loop. done, if set,
// receives one value once f returned.
type queuedUpdate struct {
	f    func()
	done chan struct{}
}

// mouseState is what the event loop remembers between mouse events.
type mouseState struct {
	// capture receives all mouse events until its handler releases it.
	capture      Primitive
	lastX, lastY int
	downX, downY int
	lastClick    time.Time
	buttons      tcell.ButtonMask
}

// pasteState collects the keys of a bracketed paste.
type pasteState struct {
	active bool
	text   strings.Builder
}

// Application owns the terminal and runs the event loop. Key, paste and
// mouse events go to the root primitive; the commands its handlers return
// are executed by the loop. When the root implements [Ticker] it is ticked at
// the frame rate so animated widgets such as [LoopList] move without input.
//
//	if err := loopscroll.NewApplication().SetRoot(list).Run(); err != nil {
//	    log.Fatal(err)
//	}
type Application struct {
	sync.RWMutex

	// Only Run sets the screen and only Stop clears it.
	screen tcell.Screen

	focus Primitive
	root  Primitive

	events  chan tcell.Event
	updates chan queuedUpdate

	// Owned by the event loop goroutine.
	mouse       mouseState
	paste       pasteState
	lastResize  time.Time
	resizeTimer *time.Timer

	// forceRedraw clears the screen before the next frame.
	forceRedraw bool

	frameRate   int
	enableMouse bool
	logger      *slog.Logger
}

func NewApplication() *Application {
	return &Application{
		updates:     make(chan queuedUpdate, updatesQueueSize),
		frameRate:   DefaultFrameRate,
		enableMouse: true,
		logger:      slog.New(slog.DiscardHandler),
	}
}

// SetFrameRate sets the number of ticks per second. Zero or less disables
// ticking. It must be called before Run.
func (a *Application) SetFrameRate(rate int) *Application {
	a.Lock()
	defer a.Unlock()
	a.frameRate = rate
	return a
}

// EnableMouse toggles mouse reporting. It must be called before Run.
func (a *Application) EnableMouse(enable bool) *Application {
	a.Lock()
	defer a.Unlock()
	a.enableMouse = enable
	return a
}

// SetLogger sets the logger for event loop diagnostics.
func (a *Application) SetLogger(logger *slog.Logger) *Application {
	a.Lock()
	defer a.Unlock()
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	a.logger = logger
	return a
}

// Run initializes the terminal and processes events until [Application.Stop]
// is called. It returns terminal errors reported by tcell.
func (a *Application) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}

	a.Lock()
	a.screen = screen
	a.forceRedraw = true
	if a.enableMouse {
		screen.EnableMouse()
	}
	screen.EnablePaste()
	a.events = screen.EventQ()
	frameRate, logger := a.frameRate, a.logger
	a.Unlock()

	// A panic would leave the terminal in raw mode.
	defer func() {
		if p := recover(); p != nil {
			a.Stop()
			panic(p)
		}
	}()

	a.draw()

	// A nil channel never delivers, which disables ticking.
	var frames <-chan time.Time
	if frameRate > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(frameRate))
		defer ticker.Stop()
		frames = ticker.C
	}
	lastFrame := time.Now()
	logger.Debug("event loop started", "frame_rate", frameRate)

	var runErr error
	for {
		select {
		case now := <-frames:
			dt := min(now.Sub(lastFrame).Seconds(), maxFrameDelta)
			lastFrame = now
			if a.tick(dt) {
				a.draw()
			}

		case event := <-a.events:
			if event == nil {
				logger.Debug("event loop stopped")
				return runErr
			}
			if err := a.handleEvent(event); err != nil {
				logger.Error("terminal error", "err", err)
				runErr = err
				a.Stop()
			}

		case update := <-a.updates:
			update.f()
			if update.done != nil {
				update.done <- struct{}{}
			}
		}
	}
}

// handleEvent dispatches one terminal event and redraws if a handler asked
// for it.
func (a *Application) handleEvent(event tcell.Event) error {
	switch event := event.(type) {
	case *tcell.EventKey:
		if a.paste.active {
			a.collectPaste(event)
			return nil
		}
		if root := a.rootPrimitive(); root != nil && root.HasFocus() {
			a.executeAndDraw(root.InputHandler(event))
		}
	case *tcell.EventPaste:
		a.handlePaste(event)
	case *tcell.EventResize:
		a.handleResize(event)
	case *tcell.EventMouse:
		if a.dispatchMouse(event) {
			a.draw()
		}
	case *tcell.EventError:
		return event
	}
	return nil
}

func (a *Application) collectPaste(event *tcell.EventKey) {
	switch event.Key() {
	case tcell.KeyRune:
		a.paste.text.WriteString(event.Str())
	case tcell.KeyEnter:
		a.paste.text.WriteByte('\n')
	case tcell.KeyTab:
		a.paste.text.WriteByte('\t')
	}
}

func (a *Application) handlePaste(event *tcell.EventPaste) {
	switch {
	case event.Start():
		a.paste.active = true
		a.paste.text.Reset()
	case event.End():
		a.paste.active = false
		root := a.rootPrimitive()
		if root == nil || !root.HasFocus() || a.paste.text.Len() == 0 {
			return
		}
		a.executeAndDraw(root.PasteHandler(a.paste.text.String()))
	}
}

// handleResize redraws at once and again after a burst of resizes settles,
// since terminals may report the final size late.
func (a *Application) handleResize(event *tcell.EventResize) {
	a.Lock()
	a.forceRedraw = true
	a.Unlock()

	if time.Since(a.lastResize) < resizePause {
		if a.resizeTimer != nil {
			a.resizeTimer.Stop()
		}
		a.resizeTimer = time.AfterFunc(resizePause, func() {
			a.events <- event
		})
	}
	a.lastResize = time.Now()
	a.draw()
}

func (a *Application) executeAndDraw(cmd Command) {
	if a.executeCommand(cmd) {
		a.draw()
	}
}

func (a *Application) rootPrimitive() Primitive {
	a.RLock()
	defer a.RUnlock()
	return a.root
}

// tick advances the root primitive by dt seconds and reports whether it
// needs to be redrawn.
func (a *Application) tick(dt float64) bool {
	ticker, ok := a.rootPrimitive().(Ticker)
	if !ok {
		return false
	}
	return ticker.Tick(dt)
}

// dispatchMouse turns a raw mouse event into mouse actions and sends each to
// the capturing primitive, or to the root when nothing captures the mouse.
// It reports whether any handler asked for a redraw.
func (a *Application) dispatchMouse(event *tcell.EventMouse) (redraw bool) {
	x, y := event.Position()
	buttons := event.Buttons()
	changed := buttons ^ a.mouse.buttons
	moved := x != a.mouse.downX || y != a.mouse.downY
	pressed := false

	fire := func(action MouseAction) {
		target := a.mouse.capture
		if target == nil {
			target = a.rootPrimitive()
		}
		if target == nil {
			return
		}
		capture, cmd := target.MouseHandler(action, event)
		a.mouse.capture = capture
		if a.executeCommand(cmd) {
			redraw = true
		}
	}

	if x != a.mouse.lastX || y != a.mouse.lastY {
		fire(MouseMove)
		a.mouse.lastX, a.mouse.lastY = x, y
	}

	for _, b := range []struct {
		button                  tcell.ButtonMask
		down, up, click, dclick MouseAction
	}{
		{tcell.ButtonPrimary, MouseLeftDown, MouseLeftUp, MouseLeftClick, MouseLeftDoubleClick},
		{tcell.ButtonMiddle, MouseMiddleDown, MouseMiddleUp, MouseMiddleClick, MouseMiddleDoubleClick},
		{tcell.ButtonSecondary, MouseRightDown, MouseRightUp, MouseRightClick, MouseRightDoubleClick},
	} {
		if changed&b.button == 0 {
			continue
		}
		if buttons&b.button != 0 {
			fire(b.down)
			pressed = true
			continue
		}
		fire(b.up)
		if moved {
			continue
		}
		if now := time.Now(); now.Sub(a.mouse.lastClick) > DoubleClickInterval {
			fire(b.click)
			a.mouse.lastClick = now
		} else {
			fire(b.dclick)
			a.mouse.lastClick = time.Time{}
		}
	}

	for _, w := range []struct {
		button tcell.ButtonMask
		action MouseAction
	}{
		{tcell.WheelUp, MouseScrollUp},
		{tcell.WheelDown, MouseScrollDown},
		{tcell.WheelLeft, MouseScrollLeft},
		{tcell.WheelRight, MouseScrollRight},
	} {
		if buttons&w.button != 0 {
			fire(w.action)
		}
	}

	a.mouse.buttons = buttons
	if pressed {
		a.mouse.downX, a.mouse.downY = x, y
	}
	return redraw
}

// Stop restores the terminal, which makes Run return.
func (a *Application) Stop() {
	a.Lock()
	defer a.Unlock()
	if a.screen == nil {
		return
	}
	a.screen.Fini()
	a.screen = nil
}

// Draw redraws the screen from the event loop. It deadlocks when called on
// the event loop goroutine itself.
func (a *Application) Draw() *Application {
	a.QueueUpdate(func() {
		a.draw()
	})
	return a
}

func (a *Application) draw() {
	a.Lock()
	screen, root, force := a.screen, a.root, a.forceRedraw
	a.forceRedraw = false
	a.Unlock()

	if screen == nil || root == nil {
		return
	}

	width, height := screen.Size()
	root.SetRect(0, 0, width, height)
	// tcell diffs against its back buffer, so only forced redraws clear it.
	if force {
		screen.Clear()
	}
	root.Draw(screen)
	screen.Show()
}

// SetRoot sets the primitive that fills the screen and focuses it.
func (a *Application) SetRoot(root Primitive) *Application {
	a.Lock()
	a.root = root
	a.forceRedraw = true
	a.Unlock()

	a.SetFocus(root)
	return a
}

// SetFocus blurs the focused primitive and focuses p. p may pass the focus
// on to a child through the delegate.
func (a *Application) SetFocus(p Primitive) *Application {
	a.Lock()
	if a.focus != nil {
		a.focus.Blur()
	}
	a.focus = p
	if a.screen != nil {
		a.screen.HideCursor()
	}
	a.Unlock()

	if p != nil {
		p.Focus(func(p Primitive) {
			a.SetFocus(p)
		})
	}
	return a
}

// GetFocus returns the focused primitive or nil.
func (a *Application) GetFocus() Primitive {
	a.RLock()
	defer a.RUnlock()
	return a.focus
}

// QueueUpdate runs f on the event loop and waits for it to finish. Other
// goroutines must use it to touch primitives.
func (a *Application) QueueUpdate(f func()) *Application {
	done := make(chan struct{})
	a.updates <- queuedUpdate{f: f, done: done}
	<-done
	return a
}

// QueueUpdateDraw is QueueUpdate followed by a redraw.
func (a *Application) QueueUpdateDraw(f func()) *Application {
	return a.QueueUpdate(func() {
		f()
		a.draw()
	})
}

// executeCommand runs cmd and reports whether the screen needs a redraw.
func (a *Application) executeCommand(cmd Command) bool {
	switch c := cmd.(type) {
	case nil:
		return false
	case BatchCommand:
		redraw := false
		for _, item := range c {
			if a.executeCommand(item) {
				redraw = true
			}
		}
		return redraw
	case RedrawCommand:
		return true
	case QuitCommand:
		a.Stop()
		return false
	case SetFocusCommand:
		if c.Target == nil {
			return false
		}
		changed := a.GetFocus() != c.Target
		a.SetFocus(c.Target)
		return changed
	case SetTitleCommand:
		a.RLock()
		screen := a.screen
		a.RUnlock()
		if screen != nil {
			screen.SetTitle(string(c))
		}
		return false
	case ConsumeEventCommand:
		return false
	default:
		a.logger.Warn("unknown command", "type", fmt.Sprintf("%T", cmd))
		return false
	}
}

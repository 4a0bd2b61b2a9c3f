package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ayn2op/loopscroll"
	"github.com/ayn2op/loopscroll/help"
	"github.com/ayn2op/loopscroll/keybind"
	"github.com/ayn2op/loopscroll/layers"
	"github.com/gdamore/tcell/v3"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var errNotTerminal = errors.New("run needs a terminal on stdout")

const helpLayer = "help"

func newRunCommand(root *rootOptions) *cobra.Command {
	flags := &listFlags{}
	var frameRate int
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Show the looping list in the terminal.",
		Example: `
loopscroll run --count 50
loopscroll run --axis horizontal --fix-place front --items red,green,blue
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := root.listSettings(cmd, flags)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("frame-rate") {
				s.FrameRate = frameRate
			}
			logger, closer, err := root.logger()
			if err != nil {
				return err
			}
			defer closer.Close()
			return run(s, logger)
		},
	}
	flags.register(cmd.Flags())
	cmd.Flags().IntVar(&frameRate, "frame-rate", loopscroll.DefaultFrameRate, "animation ticks per second")
	return cmd
}

func run(s settings, logger *slog.Logger) error {
	if fd := os.Stdout.Fd(); !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return errNotTerminal
	}

	list, err := s.newList()
	if err != nil {
		return err
	}
	list.SetLogger(logger)
	list.SetFixedFunc(func(totalIndex, itemIndex int, label string) {
		logger.Info("fixed", "total_index", totalIndex, "item_index", itemIndex, "label", label)
		list.SetTitle(fmt.Sprintf("%s: %s", s.Title, label))
	})

	screen := newMainScreen(list)
	screen.popup.
		SetFocusFunc(func() { logger.Debug("help opened") }).
		SetBlurFunc(func() { logger.Debug("help closed") })
	app := loopscroll.NewApplication().
		SetLogger(logger).
		SetFrameRate(s.FrameRate).
		SetRoot(screen)

	// SIGTERM restores the terminal like a quit key does.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGTERM)
	defer func() {
		signal.Stop(signals)
		close(signals)
	}()
	go func() {
		if sig, ok := <-signals; ok {
			logger.Info("stopping", "signal", sig)
			app.QueueUpdate(app.Stop)
		}
	}()

	logger.Info("starting", "items", len(s.labels()), "axis", s.Axis, "fix_place", s.FixPlace)
	return app.Run()
}

// appKeyMap adds the application bindings to the list bindings.
type appKeyMap struct {
	loopscroll.ListKeyMap
	Help keybind.Keybind
	Quit keybind.Keybind
}

func newAppKeyMap(list loopscroll.ListKeyMap) appKeyMap {
	return appKeyMap{
		ListKeyMap: list,
		Help: keybind.NewKeybind(
			keybind.WithKeys("?"),
			keybind.WithHelp("?", "help"),
		),
		Quit: keybind.NewKeybind(
			keybind.WithKeys("q", "esc", "ctrl+c"),
			keybind.WithHelp("q", "quit"),
		),
	}
}

func (k appKeyMap) ShortHelp() []keybind.Keybind {
	return append(k.ListKeyMap.ShortHelp(), k.Help, k.Quit)
}

func (k appKeyMap) FullHelp() [][]keybind.Keybind {
	return append(k.ListKeyMap.FullHelp(), []keybind.Keybind{k.Help, k.Quit})
}

// mainScreen stacks the list and the help popup and handles the application
// keys before the list sees them.
type mainScreen struct {
	*layers.Layers
	list  *loopscroll.LoopList[string]
	popup *help.Help
	keys  appKeyMap
}

func newMainScreen(list *loopscroll.LoopList[string]) *mainScreen {
	keys := newAppKeyMap(list.KeyMap())
	list.SetFooter(keybind.HelpText(" • ", keys.ShortHelp()...))

	popup := help.New().SetKeyMap(keys).SetShowAll(true)
	popup.SetBorders(loopscroll.BordersAll)
	popup.SetBorderSet(loopscroll.BorderSetRound())
	popup.SetBorderPadding(0, 0, 1, 1)
	popup.SetTitle("keys")
	width, height := popup.Size()

	s := &mainScreen{Layers: layers.New(), list: list, popup: popup, keys: keys}
	s.SetBackgroundLayerStyle(tcell.StyleDefault.Dim(true))
	s.AddLayer(list, layers.WithName("list"), layers.WithResize(true))
	s.AddLayer(popup,
		layers.WithName(helpLayer),
		layers.WithOverlay(),
		layers.WithCentered(width+4, height+2),
		layers.WithVisible(false),
	)
	return s
}

// InputHandler quits, toggles the help popup or passes the key on. Any key
// closes an open popup. Keys the list handles also update the terminal title
// to the item the list is heading to.
func (s *mainScreen) InputHandler(event *tcell.EventKey) loopscroll.Command {
	switch {
	case keybind.Matches(event, s.keys.Quit):
		return loopscroll.QuitCommand{}
	case keybind.Matches(event, s.keys.Help):
		s.ToggleLayer(helpLayer)
		return loopscroll.RedrawCommand{}
	case s.Visible(helpLayer):
		s.HideLayer(helpLayer)
		return loopscroll.RedrawCommand{}
	}
	cmd := s.Layers.InputHandler(event)
	if cmd == nil {
		return nil
	}
	return loopscroll.AppendCommand(cmd, s.titleCommand())
}

func (s *mainScreen) titleCommand() loopscroll.Command {
	engine := s.list.Engine()
	index := engine.CurrentIndex()
	if engine.Mode() != loopscroll.ModeFree {
		index = engine.State().TargetIndex
	}
	return loopscroll.SetTitleCommand("loopscroll: " + engine.Item(index).Data)
}

var (
	_ loopscroll.Primitive = &mainScreen{}
	_ loopscroll.Ticker    = &mainScreen{}
)

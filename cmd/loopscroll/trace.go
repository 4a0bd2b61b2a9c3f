package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/ayn2op/loopscroll"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
)

type traceOptions struct {
	steps     int
	dt        float64
	viewport  int
	scroll    int
	jump      int
	fling     float64
	drag      float64
	dragSteps int
	render    bool
	noColor   bool
}

func newTraceCommand(root *rootOptions) *cobra.Command {
	flags := &listFlags{}
	opts := &traceOptions{}
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Tick the list without a terminal and print every frame.",
		Example: `
loopscroll trace --scroll 3
loopscroll trace --drag -7.5 --drag-steps 5 --steps 60 --render
loopscroll trace --fling 120 --no-color
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := root.listSettings(cmd, flags)
			if err != nil {
				return err
			}
			logger, closer, err := root.logger()
			if err != nil {
				return err
			}
			defer closer.Close()

			if opts.noColor {
				color.NoColor = true
			}
			t, err := newTracer(s, opts, cmd.Flags().Changed("scroll"), cmd.Flags().Changed("jump"))
			if err != nil {
				return err
			}
			t.list.SetLogger(logger)
			return t.run(cmd.OutOrStdout())
		},
	}
	flags.register(cmd.Flags())
	cmd.Flags().IntVar(&opts.steps, "steps", 30, "number of ticks")
	cmd.Flags().Float64Var(&opts.dt, "dt", 1.0/loopscroll.DefaultFrameRate, "seconds per tick")
	cmd.Flags().IntVar(&opts.viewport, "viewport", 10, "viewport extent in cells")
	cmd.Flags().IntVar(&opts.scroll, "scroll", 0, "scroll to this total index before the first tick")
	cmd.Flags().IntVar(&opts.jump, "jump", 0, "force the view onto this total index before the first tick")
	cmd.Flags().Float64Var(&opts.fling, "fling", 0, "surface velocity before the first tick")
	cmd.Flags().Float64Var(&opts.drag, "drag", 0, "drag the surface by this many cells")
	cmd.Flags().IntVar(&opts.dragSteps, "drag-steps", 5, "ticks the drag is spread over")
	cmd.Flags().BoolVar(&opts.render, "render", false, "print the list as drawn after the last tick")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	return cmd
}

type traceEvent struct {
	totalIndex int
	itemIndex  int
	label      string
}

// tracer drives a list drawn into an off-screen canvas.
type tracer struct {
	opts   *traceOptions
	list   *loopscroll.LoopList[string]
	canvas *loopscroll.Canvas
	events []traceEvent
}

func newTracer(s settings, opts *traceOptions, scroll, jump bool) (*tracer, error) {
	if opts.steps <= 0 || opts.dt <= 0 || opts.viewport <= 0 {
		return nil, fmt.Errorf("%w: steps, dt and viewport must be positive", loopscroll.ErrInvalidConfig)
	}

	list, err := s.newList()
	if err != nil {
		return nil, err
	}
	list.SetBorders(loopscroll.BordersNone)
	list.SetTitle("")

	// One extra cell across the axis holds the indicator.
	width, height := s.ItemWidth+1, opts.viewport
	if s.Axis == loopscroll.AxisHorizontal {
		width, height = opts.viewport, s.ItemHeight+1
	}
	t := &tracer{
		opts:   opts,
		list:   list,
		canvas: loopscroll.NewCanvas(width, height),
	}
	list.SetRect(0, 0, width, height)
	list.SetFixedFunc(func(totalIndex, itemIndex int, label string) {
		t.events = append(t.events, traceEvent{totalIndex, itemIndex, label})
	})
	// The first draw sizes the viewport.
	list.Draw(t.canvas)

	engine := list.Engine()
	if jump {
		engine.ForceScroll(opts.jump)
	}
	if scroll {
		engine.Scroll(opts.scroll)
	}
	if opts.fling != 0 {
		list.Surface().Fling(opts.fling)
	}
	return t, nil
}

func (t *tracer) run(out io.Writer) error {
	free := color.New(color.Faint)
	auto := color.New(color.FgYellow)
	fixed := color.New(color.FgGreen, color.Bold)
	event := color.New(color.FgCyan)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("STEP", "OFFSET", "VELOCITY", "MODE", "INDEX", "ITEM", "EVENT")
	t.addRow(tbl, 0, free, auto, fixed, event)

	surface := t.list.Surface()
	pointer := 0.0
	if t.opts.drag != 0 {
		surface.BeginDrag(pointer)
	}
	for step := 1; step <= t.opts.steps; step++ {
		if surface.Dragging() {
			if step <= t.opts.dragSteps {
				pointer += t.opts.drag / float64(max(t.opts.dragSteps, 1))
				surface.DragTo(pointer, t.opts.dt)
			} else {
				surface.EndDrag()
			}
		}
		t.list.Tick(t.opts.dt)
		t.list.Draw(t.canvas)
		t.addRow(tbl, step, free, auto, fixed, event)
	}

	if _, err := fmt.Fprintln(out, tbl); err != nil {
		return err
	}
	if t.opts.render {
		if _, err := fmt.Fprintf(out, "\n%s\n", t.canvas); err != nil {
			return err
		}
	}
	return nil
}

func (t *tracer) addRow(tbl *uitable.Table, step int, free, auto, fixed, event *color.Color) {
	engine := t.list.Engine()
	mode := engine.Mode()
	modeColor := free
	switch mode {
	case loopscroll.ModeAutoScroll:
		modeColor = auto
	case loopscroll.ModeFixed:
		modeColor = fixed
	}

	label, _ := engine.CurrentItem()
	var note string
	if len(t.events) > 0 {
		e := t.events[len(t.events)-1]
		note = event.Sprintf("fixed %d (item %d %q)", e.totalIndex, e.itemIndex, e.label)
		t.events = t.events[:0]
	}
	tbl.AddRow(
		step,
		strconv.FormatFloat(engine.Offset(), 'f', 2, 64),
		strconv.FormatFloat(t.list.Surface().Velocity(), 'f', 2, 64),
		modeColor.Sprint(mode),
		engine.CurrentIndex(),
		label,
		note,
	)
}

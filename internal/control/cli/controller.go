package cli

import (
	"context"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/inplace/event"
	"github.com/ja-he/inplace/input"
	"github.com/ja-he/inplace/internal/logbuf"
	"github.com/ja-he/inplace/internal/tui"
	"github.com/ja-he/inplace/page"
	"github.com/ja-he/inplace/session"
	"github.com/ja-he/inplace/styling"
	"github.com/ja-he/inplace/submit"
	"github.com/ja-he/inplace/ui"
)

type controllerEvent int

const (
	controllerEventRender controllerEvent = iota
	controllerEventExit
)

// Controller wires a page pane, a session manager, and a terminal screen into
// a running demo program.
type Controller struct {
	screenHandler *tui.ScreenHandler
	screenEvents  tui.EventPollable
	renderControl ui.RenderOrchestratorControl

	pane    *tui.PagePane
	logPane *tui.LogPane
	manager *session.Manager

	showLog bool

	controllerEvents chan controllerEvent

	lastMouseButtons tcell.ButtonMask
}

// NewController constructs and returns a new demo Controller for the given
// page.
func NewController(
	pg *page.Page,
	settings session.Settings,
	submitter submit.Submitter,
	sheet *styling.Stylesheet,
) *Controller {
	controller := Controller{
		controllerEvents: make(chan controllerEvent, 32),
	}

	dispatcher := event.NewDispatcher()
	controller.manager = session.NewManager(settings, submitter, dispatcher)

	controller.screenHandler = tui.NewScreenHandler()
	controller.screenEvents = controller.screenHandler.GetEventPollable()
	controller.renderControl = controller.screenHandler

	renderer := ui.NewConstrainedRenderer(controller.screenHandler, controller.screenHandler.Dimensions)
	controller.pane = tui.NewPagePane(renderer, controller.screenHandler, pg, controller.manager, sheet, controller.activateField)

	logRenderer := ui.NewConstrainedRenderer(controller.screenHandler, func() (x, y, w, h int) {
		_, _, screenW, screenH := controller.screenHandler.Dimensions()
		return 0, screenH - (screenH / 2), screenW, screenH / 2
	})
	controller.logPane = tui.NewLogPane(
		logRenderer,
		sheet,
		func() bool { return controller.showLog },
		func() string { return "log" },
		&logbuf.GlobalMemoryLogReaderWriter,
	)

	// submits resolve on their own goroutines, so their events are posted
	// into the screen's event stream to wake the polling loop for a redraw
	dispatcher.SubscribeAll(func(e event.Event) {
		controller.pane.SetStatus(statusText(e))
		controller.screenHandler.PostEvent(tcell.NewEventInterrupt(nil))
	})

	return &controller
}

func statusText(e event.Event) string {
	switch e.Kind {
	case event.SessionStart:
		return fmt.Sprintf("editing '%s'", e.FieldKey)
	case event.SubmitSuccess:
		return fmt.Sprintf("submitted '%s' -> %s", e.FieldKey, e.Display)
	case event.SubmitFailure:
		return fmt.Sprintf("submit of '%s' failed: %s", e.FieldKey, e.Err)
	case event.Cancel:
		return fmt.Sprintf("cancelled edit of '%s'", e.FieldKey)
	default:
		return string(e.Kind)
	}
}

func (c *Controller) activateField(field *page.Field) {
	_, err := c.manager.Activate(context.Background(), field)
	if err != nil {
		log.Warn().Err(err).Str("field", field.Key).Msg("could not activate field for editing")
		c.pane.SetStatus(fmt.Sprintf("cannot edit '%s': %s", field.Key, err))
	}
}

func (c *Controller) draw() {
	c.renderControl.Clear()
	c.pane.Draw()
	c.logPane.Draw()
	c.renderControl.Show()
}

// emptyRenderEvents consumes all pending render events (and returns whether
// it encountered an exit event while doing so).
func emptyRenderEvents(c chan controllerEvent) bool {
	for {
		select {
		case bufferedEvent := <-c:
			switch bufferedEvent {
			case controllerEventRender:
				continue
			case controllerEventExit:
				return true
			}
		default:
			return false
		}
	}
}

// Run executes the main loops of the program until exit.
func (c *Controller) Run() {
	log.Info().Msg("inplace demo TUI started")

	var wg sync.WaitGroup

	// Run the main render loop, that renders or exits when prompted accordingly
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer c.screenHandler.Fini()
		for controllerEvent := range c.controllerEvents {
			switch controllerEvent {
			case controllerEventRender:
				// empty all further render events before rendering
				exitEventEncounteredOnEmpty := emptyRenderEvents(c.controllerEvents)
				if exitEventEncounteredOnEmpty {
					return
				}
				c.draw()

			case controllerEventExit:
				return

			default:
				log.Error().Interface("event", controllerEvent).Msgf("unhandled controller event")
			}
		}
	}()

	// Run the event tracking loop, that waits for and processes events and
	// pings for a redraw (or program exit) after each event.
	go func() {
		for {
			ev := c.screenEvents.PollEvent()

			switch e := ev.(type) {
			case *tcell.EventKey:
				key := input.KeyFromTcellEvent(e)
				inputApplied := c.pane.HandleKey(key)
				if !inputApplied {
					switch {
					case key.Key == tcell.KeyRune && key.Ch == 'l' && !c.pane.Editing():
						c.showLog = !c.showLog
					case key.Key == tcell.KeyRune && key.Ch == 'q' && !c.pane.Editing():
						c.controllerEvents <- controllerEventExit
						return
					default:
						log.Debug().Str("key", key.ToDebugString()).Msg("could not apply key input")
					}
				}

			case *tcell.EventMouse:
				buttons := e.Buttons()
				pressed := buttons & ^c.lastMouseButtons
				c.lastMouseButtons = buttons
				if pressed&tcell.Button1 != 0 {
					x, y := e.Position()
					c.pane.HandleMouseClick(x, y)
				}

			case *tcell.EventResize:
				c.screenHandler.NeedsSync()

			case *tcell.EventInterrupt:
				// posted to wake this loop when a submit resolved; the
				// render below picks up the new state
			}

			c.controllerEvents <- controllerEventRender
		}
	}()

	c.controllerEvents <- controllerEventRender

	wg.Wait()
}

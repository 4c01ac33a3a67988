package router

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/BrandonKowalski/gxgui/pkg/gxgui"
)

// Menu is a type-safe identifier for menus.
// Applications define their own Menu constants using iota.
type Menu int

// MenuFunc runs a menu until it produces a result.
// The input and result types are menu-specific.
type MenuFunc func(ctx context.Context, input any) (result any, err error)

// TransitionFunc is called after each menu completes to pick the next one.
// It receives the menu that just completed, its result, and the stack.
//
// Return (menu, input) to navigate to a new menu.
// Return stack.Pop() values to go back.
// Return (MenuExit, nil) to stop the router.
type TransitionFunc func(from Menu, result any, stack *Stack) (next Menu, input any)

// MenuExit is a special Menu value that signals the router to exit.
const MenuExit Menu = -1

// Back is the result handed to the transition function when a menu was
// cancelled by the user.
type Back struct{}

var (
	ErrNoTransition = errors.New("router: no transition function set")
	ErrUnknownMenu  = errors.New("router: menu not registered")
)

// Router manages menu navigation.
type Router struct {
	menus      map[Menu]MenuFunc
	transition TransitionFunc
	stack      *Stack
	logger     *slog.Logger
}

// New creates a new Router.
func New() *Router {
	return &Router{
		menus:  make(map[Menu]MenuFunc),
		stack:  NewStack(),
		logger: slog.New(slog.DiscardHandler),
	}
}

// Register adds a menu to the router.
func (r *Router) Register(menu Menu, fn MenuFunc) *Router {
	r.menus[menu] = fn
	return r
}

// OnTransition sets the function that determines navigation flow.
func (r *Router) OnTransition(fn TransitionFunc) *Router {
	r.transition = fn
	return r
}

// WithLogger logs every transition to l at debug level.
func (r *Router) WithLogger(l *slog.Logger) *Router {
	if l != nil {
		r.logger = l
	}
	return r
}

// Run starts at the given menu and keeps going until the transition function
// returns MenuExit, a menu fails, or ctx is done.
func (r *Router) Run(ctx context.Context, start Menu, input any) error {
	if r.transition == nil {
		return ErrNoTransition
	}

	current := start
	currentInput := input

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fn, ok := r.menus[current]
		if !ok {
			return fmt.Errorf("%w: %d", ErrUnknownMenu, current)
		}

		result, err := fn(ctx, currentInput)
		switch {
		case gxgui.IsCancelled(err):
			result = Back{}
		case err != nil:
			return fmt.Errorf("router: menu %d error: %w", current, err)
		}

		next, nextInput := r.transition(current, result, r.stack)
		r.logger.Debug("menu transition", "from", int(current), "to", int(next), "depth", r.stack.Len())

		if next == MenuExit {
			return nil
		}

		current = next
		currentInput = nextInput
	}
}

// Stack returns the navigation stack for use in transition functions.
func (r *Router) Stack() *Stack {
	return r.stack
}

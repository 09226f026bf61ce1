package cli

import (
	"io"
	"os"
	"time"

	"github.com/alexanderramin/dayline/internal/service"
	"github.com/spf13/pflag"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Timeline   service.TimelineService
	Completion service.CompletionService
	Directives service.DirectiveService
	Activity   service.ActivityService
	Profile    service.ProfileService
	Foods      service.FoodService

	// Bootstrap, when set, runs before any command with the root's
	// persistent flags. It loads config and wires the services above.
	Bootstrap func(flags *pflag.FlagSet) error
	// Shutdown, when set, runs after a successful command.
	Shutdown func() error

	Location *time.Location
	Now      func() time.Time
	Stdin    io.Reader

	IsInteractive func() bool
}

func (a *App) now() time.Time {
	now := time.Now()
	if a.Now != nil {
		now = a.Now()
	}
	if a.Location != nil {
		now = now.In(a.Location)
	}
	return now
}

func (a *App) stdin() io.Reader {
	if a.Stdin != nil {
		return a.Stdin
	}
	return os.Stdin
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

package facade

import (
	"github.com/rs/zerolog"

	"puremvc/pkg/core/controller"
	"puremvc/pkg/core/model"
	"puremvc/pkg/core/view"
	"puremvc/pkg/mvc"
)

// Config encapsulates the collaborators a Facade is built from. Nil fields
// are replaced by the package defaults.
type Config struct {
	Model      mvc.Model
	View       mvc.View
	Controller mvc.Controller
	// CommandFactory is only used when Controller is nil.
	CommandFactory mvc.CommandFactory
	// Logger, when set, is installed on every default core actor and on any
	// supplied actor exposing SetLogger.
	Logger *zerolog.Logger
}

type loggerSetter interface {
	SetLogger(zerolog.Logger)
}

// NewWithConfig constructs a Facade from cfg.
func NewWithConfig(cfg Config) *Facade {
	if cfg.Model == nil {
		cfg.Model = model.New()
	}
	if cfg.View == nil {
		cfg.View = view.New()
	}
	if cfg.Controller == nil {
		cfg.Controller = controller.New(cfg.CommandFactory)
	}
	f := New(cfg.Model, cfg.View, cfg.Controller)
	if cfg.Logger != nil {
		f.log = *cfg.Logger
		for _, actor := range []any{cfg.Model, cfg.View, cfg.Controller} {
			if ls, ok := actor.(loggerSetter); ok {
				ls.SetLogger(*cfg.Logger)
			}
		}
	}
	return f
}

package mvc

// Command fulfils the use-case started by a Notification.
type Command interface {
	Execute(Notification) error
}

// Notifier is implemented by collaborators that send their own notifications.
// The framework injects the Facade before handing the collaborator out.
type Notifier interface {
	SetFacade(Facade)
}

// Mediator is a named view-facing collaborator held by the View.
type Mediator interface {
	Name() string
	ViewComponent() any
	SetViewComponent(any)
	ListNotificationInterests() []string
	HandleNotification(Notification) error
	OnRegister()
	OnRemove()
}

// Proxy is a named data-facing collaborator held by the Model.
type Proxy interface {
	Name() string
	Data() any
	SetData(any)
	OnRegister()
	OnRemove()
}

// ObserverRegistry is the publisher side of the View as seen by the Controller.
type ObserverRegistry interface {
	// RegisterObserver appends o to the observers of notifications named name.
	RegisterObserver(name string, o *Observer) error
	// NotifyObservers calls the observers of n's name in registration order.
	NotifyObservers(n Notification) error
}

// Model is the proxy registry.
type Model interface {
	RegisterProxy(Proxy) error
	RetrieveProxy(name string) Proxy
	RemoveProxy(name string) Proxy
	HasProxy(name string) bool
}

// View is the observer and mediator registry.
type View interface {
	ObserverRegistry
	RemoveObserver(name string, context any)
	RegisterMediator(Mediator) error
	RetrieveMediator(name string) Mediator
	RemoveMediator(name string) Mediator
	HasMediator(name string) bool
}

// Controller maps notification names to commands.
type Controller interface {
	SetObserverRegistry(ObserverRegistry)
	SetFacade(Facade)
	RegisterCommand(name string, ctor CommandConstructor) (CommandConstructor, error)
	RemoveCommand(name string) CommandConstructor
	HasCommand(name string) bool
	ExecuteCommand(Notification) error
}

// Facade is the single entry point application code talks to.
type Facade interface {
	RegisterCommand(name string, ctor CommandConstructor) (CommandConstructor, error)
	RemoveCommand(name string) CommandConstructor
	HasCommand(name string) bool

	RegisterProxy(Proxy) error
	RetrieveProxy(name string) Proxy
	RemoveProxy(name string) Proxy
	HasProxy(name string) bool

	RegisterMediator(Mediator) error
	RetrieveMediator(name string) Mediator
	RemoveMediator(name string) Mediator
	HasMediator(name string) bool

	SendNotification(name string, body any, typ string) error
	NotifyObservers(Notification) error
}

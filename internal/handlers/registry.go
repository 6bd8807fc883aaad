package handlers

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	HealthHandler      *HealthHandler
	UserHandler        *UserHandler
	ApplicationHandler *ApplicationHandler
}

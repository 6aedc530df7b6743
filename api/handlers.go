package api

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(deps dependencies, rt router) *routeHandlers {
	return &routeHandlers{
		projectHandler: newProjectHandler(deps.store, rt.site),
		profileHandler: newProfileHandler(deps.profile, rt.site),
		contactHandler: newContactHandler(deps.sender, rt.contactTimeout),
		siteHandler:    newSiteHandler(deps.store, rt.site, rt.startupTime),
	}
}

package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for the hosting UI layer.
type ServiceContainer struct {
	Project  ProjectSvcFacade
	User     UserSvcFacade
	Settings SettingsSvcFacade
}

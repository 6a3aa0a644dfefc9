package navigation

// View represents the current view in the UI
type View int

const (
	ViewProjects View = iota
	ViewServices
	ViewLogs
	ViewEnvForm
)

// String returns the string representation of the view
func (v View) String() string {
	switch v {
	case ViewProjects:
		return "projects"
	case ViewServices:
		return "services"
	case ViewLogs:
		return "logs"
	case ViewEnvForm:
		return "env"
	default:
		return "unknown"
	}
}

package page

// Tab identifies one panel of the detail view.
type Tab string

const (
	TabOverview      Tab = "overview"
	TabDefinition    Tab = "definition"
	TabFormulas      Tab = "formulas"
	TabCode          Tab = "code"
	TabVisualization Tab = "visualization"
	TabUseCases      Tab = "use-cases"
)

// Tabs lists the panels in navigation order.
var Tabs = []Tab{TabOverview, TabDefinition, TabFormulas, TabCode, TabVisualization, TabUseCases}

var tabLabels = map[Tab]string{
	TabOverview:      "Overview",
	TabDefinition:    "Definition",
	TabFormulas:      "Formulas",
	TabCode:          "Code",
	TabVisualization: "Visualization",
	TabUseCases:      "Use Cases",
}

// ParseTab maps a query value to a tab. Unknown values select the overview.
func ParseTab(s string) Tab {
	if t, ok := LookupTab(s); ok {
		return t
	}
	return TabOverview
}

// LookupTab reports whether s names a tab.
func LookupTab(s string) (Tab, bool) {
	t := Tab(s)
	_, ok := tabLabels[t]
	return t, ok
}

// Label returns the navigation label.
func (t Tab) Label() string {
	return tabLabels[t]
}

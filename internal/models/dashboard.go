package models

// KPISet mirrors GET /dashboard/kpis.
type KPISet struct {
	ActiveProjects  int     `json:"activeProjects"`
	TasksInProgress int     `json:"tasksInProgress"`
	TeamMembers     int     `json:"teamMembers"`
	CompletionRate  float64 `json:"completionRate"`
}

// Activity is a single entry of the dashboard activity feed.
type Activity struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Message   string `json:"message"`
	Actor     string `json:"actor,omitempty"`
	Timestamp string `json:"timestamp"`
}

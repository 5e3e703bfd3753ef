package models

type ProjectStatus string

const (
	ProjectActive  ProjectStatus = "active"
	ProjectPending ProjectStatus = "pending"
	ProjectBlocked ProjectStatus = "blocked"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectActive, ProjectPending, ProjectBlocked:
		return true
	}
	return false
}

// Project is a read-only summary for the dashboard; projects are
// always fetched live from the remote API and never cached locally.
type Project struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Status      ProjectStatus   `json:"status"`
	Owner       string          `json:"owner,omitempty"`
	Deadline    string          `json:"deadline,omitempty"`
	Tasks       []TaskSummary   `json:"tasks,omitempty"`
	TeamMembers []MemberSummary `json:"teamMembers,omitempty"`
}

type TaskSummary struct {
	ID     string     `json:"id"`
	Title  string     `json:"title"`
	Status TaskStatus `json:"status"`
}

type MemberSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

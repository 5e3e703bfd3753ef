// Package services mediates between the remote gateway and the local
// cache store. Every write tries the remote first and transparently
// falls back to an equivalent local mutation; every result says which
// path produced it so callers and tests never have to scrape logs.
package services

import "flowboard/internal/models"

// Source tells a caller which side of the dual-source model answered.
type Source string

const (
	SourceRemote Source = "remote"
	SourceLocal  Source = "local-fallback"
)

// Result is the envelope for operations without a payload (delete).
type Result struct {
	Source  Source `json:"source"`
	Warning string `json:"warning,omitempty"`
}

type TaskResult struct {
	Task    models.Task `json:"data"`
	Source  Source      `json:"source"`
	Warning string      `json:"warning,omitempty"`
}

type TaskListResult struct {
	Tasks   []models.Task `json:"data"`
	Source  Source        `json:"source"`
	Warning string        `json:"warning,omitempty"`
}

type MemberResult struct {
	Member  models.TeamMember `json:"data"`
	Source  Source            `json:"source"`
	Warning string            `json:"warning,omitempty"`
}

type MemberListResult struct {
	Members []models.TeamMember `json:"data"`
	Source  Source              `json:"source"`
	Warning string              `json:"warning,omitempty"`
}

func fallbackWarning(err error) string {
	if err == nil {
		return ""
	}
	return "remote unavailable, served from local cache: " + err.Error()
}

package models

import "time"

type MemberRole string

const (
	RoleAdmin     MemberRole = "admin"
	RoleDeveloper MemberRole = "developer"
	RoleDesigner  MemberRole = "designer"
	RoleManager   MemberRole = "manager"
	RoleAnalyst   MemberRole = "analyst"
	RoleOther     MemberRole = "other"
)

func (r MemberRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleDeveloper, RoleDesigner, RoleManager, RoleAnalyst, RoleOther:
		return true
	}
	return false
}

type MemberStatus string

const (
	MemberActive   MemberStatus = "active"
	MemberAway     MemberStatus = "away"
	MemberInactive MemberStatus = "inactive"
)

func (s MemberStatus) Valid() bool {
	switch s {
	case MemberActive, MemberAway, MemberInactive:
		return true
	}
	return false
}

type TeamMember struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Email      string       `json:"email"`
	Role       MemberRole   `json:"role"`
	Status     MemberStatus `json:"status"`
	Department string       `json:"department,omitempty"`
	Phone      string       `json:"phone,omitempty"`
	Location   string       `json:"location,omitempty"`
	Bio        string       `json:"bio,omitempty"`
	Avatar     string       `json:"avatar,omitempty"`
	JoinDate   string       `json:"joinDate"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt"`
}

// MemberDraft is validated client-side before any network or cache
// mutation happens.
type MemberDraft struct {
	Name       string       `json:"name" validate:"required"`
	Email      string       `json:"email" validate:"required,email"`
	Role       MemberRole   `json:"role" validate:"required,oneof=admin developer designer manager analyst other"`
	Status     MemberStatus `json:"status" validate:"required,oneof=active away inactive"`
	Department string       `json:"department"`
	Phone      string       `json:"phone"`
	Location   string       `json:"location"`
	Bio        string       `json:"bio"`
	Avatar     string       `json:"avatar"`
	JoinDate   string       `json:"joinDate" validate:"required,datetime=2006-01-02"`
}

type MemberPatch struct {
	Name       *string       `json:"name,omitempty"`
	Email      *string       `json:"email,omitempty" validate:"omitempty,email"`
	Role       *MemberRole   `json:"role,omitempty" validate:"omitempty,oneof=admin developer designer manager analyst other"`
	Status     *MemberStatus `json:"status,omitempty" validate:"omitempty,oneof=active away inactive"`
	Department *string       `json:"department,omitempty"`
	Phone      *string       `json:"phone,omitempty"`
	Location   *string       `json:"location,omitempty"`
	Bio        *string       `json:"bio,omitempty"`
	Avatar     *string       `json:"avatar,omitempty"`
	JoinDate   *string       `json:"joinDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

func (p MemberPatch) Apply(m *TeamMember) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Email != nil {
		m.Email = *p.Email
	}
	if p.Role != nil {
		m.Role = *p.Role
	}
	if p.Status != nil {
		m.Status = *p.Status
	}
	if p.Department != nil {
		m.Department = *p.Department
	}
	if p.Phone != nil {
		m.Phone = *p.Phone
	}
	if p.Location != nil {
		m.Location = *p.Location
	}
	if p.Bio != nil {
		m.Bio = *p.Bio
	}
	if p.Avatar != nil {
		m.Avatar = *p.Avatar
	}
	if p.JoinDate != nil {
		m.JoinDate = *p.JoinDate
	}
	m.UpdatedAt = time.Now().UTC()
}

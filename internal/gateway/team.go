package gateway

import (
	"context"
	"net/http"

	"flowboard/internal/models"
)

func (c *Client) ListMembers(ctx context.Context) ([]models.TeamMember, error) {
	var out []wireMember
	if err := c.do(ctx, http.MethodGet, "/team", nil, nil, &out); err != nil {
		return nil, err
	}
	return membersFromWire(out), nil
}

func (c *Client) CreateMember(ctx context.Context, draft models.MemberDraft) (models.TeamMember, error) {
	var out wireMember
	if err := c.do(ctx, http.MethodPost, "/team", nil, memberDraftToWire(draft), &out); err != nil {
		return models.TeamMember{}, err
	}
	return memberFromWire(out), nil
}

func (c *Client) UpdateMember(ctx context.Context, id string, patch models.MemberPatch) (models.TeamMember, error) {
	var out wireMember
	if err := c.do(ctx, http.MethodPut, "/team/"+id, nil, memberPatchToWire(patch), &out); err != nil {
		return models.TeamMember{}, err
	}
	return memberFromWire(out), nil
}

func (c *Client) DeleteMember(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/team/"+id, nil, nil, nil)
}

func memberPatchToWire(p models.MemberPatch) map[string]interface{} {
	body := make(map[string]interface{})
	if p.Name != nil {
		body["name"] = *p.Name
	}
	if p.Email != nil {
		body["email"] = *p.Email
	}
	if p.Role != nil {
		body["role"] = roleToWire(*p.Role)
	}
	if p.Status != nil {
		body["status"] = memberStatusToWire(*p.Status)
	}
	if p.Department != nil {
		body["department"] = *p.Department
	}
	if p.Phone != nil {
		body["phone"] = *p.Phone
	}
	if p.Location != nil {
		body["location"] = *p.Location
	}
	if p.Bio != nil {
		body["bio"] = *p.Bio
	}
	if p.Avatar != nil {
		body["avatar_url"] = *p.Avatar
	}
	if p.JoinDate != nil {
		body["join_date"] = *p.JoinDate
	}
	return body
}

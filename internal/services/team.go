package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"

	"flowboard/internal/cachestore"
	"flowboard/internal/models"
)

type TeamGateway interface {
	ListMembers(ctx context.Context) ([]models.TeamMember, error)
	CreateMember(ctx context.Context, draft models.MemberDraft) (models.TeamMember, error)
	UpdateMember(ctx context.Context, id string, patch models.MemberPatch) (models.TeamMember, error)
	DeleteMember(ctx context.Context, id string) error
}

// TeamService mirrors TaskService for team members: remote-first CRUD
// with the local cache as fallback, plus client-side validation that
// runs before anything touches the network or the cache.
type TeamService struct {
	gw       TeamGateway
	store    *cachestore.Store
	breaker  *Breaker
	validate *validator.Validate
}

func NewTeamService(gw TeamGateway, store *cachestore.Store, breaker *Breaker) *TeamService {
	return &TeamService{
		gw:       gw,
		store:    store,
		breaker:  breaker,
		validate: validator.New(),
	}
}

func (s *TeamService) List(ctx context.Context) (MemberListResult, error) {
	var remote []models.TeamMember
	err := s.breaker.Execute(func() error {
		var listErr error
		remote, listErr = s.gw.ListMembers(ctx)
		return listErr
	})
	if err == nil {
		return MemberListResult{Members: remote, Source: SourceRemote}, nil
	}
	log.Printf("team: remote list failed, serving cache snapshot: %v", err)

	return MemberListResult{
		Members: s.store.Members(),
		Source:  SourceLocal,
		Warning: fallbackWarning(err),
	}, nil
}

func (s *TeamService) Create(ctx context.Context, draft models.MemberDraft) (MemberResult, error) {
	if err := s.validate.Struct(draft); err != nil {
		return MemberResult{}, fmt.Errorf("invalid team member: %w", err)
	}

	var created models.TeamMember
	err := s.breaker.Execute(func() error {
		var createErr error
		created, createErr = s.gw.CreateMember(ctx, draft)
		return createErr
	})
	if err == nil {
		return MemberResult{Member: created, Source: SourceRemote}, nil
	}
	log.Printf("team: remote create failed, writing to cache: %v", err)

	now := time.Now().UTC()
	member := models.TeamMember{
		ID:         mintID("team"),
		Name:       draft.Name,
		Email:      draft.Email,
		Role:       draft.Role,
		Status:     draft.Status,
		Department: draft.Department,
		Phone:      draft.Phone,
		Location:   draft.Location,
		Bio:        draft.Bio,
		Avatar:     draft.Avatar,
		JoinDate:   draft.JoinDate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	members := append(s.store.Members(), member)
	s.store.SaveMembers(members)

	return MemberResult{Member: member, Source: SourceLocal, Warning: fallbackWarning(err)}, nil
}

func (s *TeamService) Update(ctx context.Context, id string, patch models.MemberPatch) (MemberResult, error) {
	if err := s.validate.Struct(patch); err != nil {
		return MemberResult{}, fmt.Errorf("invalid team member update: %w", err)
	}

	var updated models.TeamMember
	err := s.breaker.Execute(func() error {
		var updateErr error
		updated, updateErr = s.gw.UpdateMember(ctx, id, patch)
		return updateErr
	})
	if err == nil {
		return MemberResult{Member: updated, Source: SourceRemote}, nil
	}
	log.Printf("team: remote update failed, mutating cache: %v", err)

	members := s.store.Members()
	idx := findMember(members, id)
	if idx < 0 {
		return MemberResult{}, fmt.Errorf("member %s not in local cache after remote failure: %w", id, err)
	}
	patch.Apply(&members[idx])
	s.store.SaveMembers(members)

	return MemberResult{Member: members[idx], Source: SourceLocal, Warning: fallbackWarning(err)}, nil
}

func (s *TeamService) Delete(ctx context.Context, id string) (Result, error) {
	err := s.breaker.Execute(func() error {
		return s.gw.DeleteMember(ctx, id)
	})
	if err == nil {
		return Result{Source: SourceRemote}, nil
	}
	log.Printf("team: remote delete failed, dropping from cache: %v", err)

	members := s.store.Members()
	idx := findMember(members, id)
	if idx < 0 {
		return Result{}, fmt.Errorf("member %s not in local cache after remote failure: %w", id, err)
	}
	members = append(members[:idx], members[idx+1:]...)
	s.store.SaveMembers(members)

	return Result{Source: SourceLocal, Warning: fallbackWarning(err)}, nil
}

func findMember(members []models.TeamMember, id string) int {
	for i := range members {
		if members[i].ID == id {
			return i
		}
	}
	return -1
}

package notices

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rlozano/campus-canteen-backend/pkg/db/models"
	"github.com/rlozano/campus-canteen-backend/pkg/enums"
	pkgerrors "github.com/rlozano/campus-canteen-backend/pkg/errors"
)

// Service exposes notice creation and listing. Notices have no update or
// delete surface.
type Service interface {
	Create(ctx context.Context, req CreateNoticeRequest) (*models.Notice, error)
	List(ctx context.Context) ([]models.Notice, error)
}

type service struct {
	repo Repository
}

// NewService wires notices dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "notices repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, req CreateNoticeRequest) (*models.Notice, error) {
	noticeType := enums.NoticeTypeInfo
	if raw := strings.TrimSpace(req.Type); raw != "" {
		parsed, ok := enums.ParseNoticeType(raw)
		if !ok {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid notice type").
				WithDetails(map[string]any{"type": raw})
		}
		noticeType = parsed
	}

	notice := &models.Notice{
		ID:      uuid.New(),
		Title:   strings.TrimSpace(req.Title),
		Message: strings.TrimSpace(req.Message),
		Type:    noticeType,
		Urgent:  req.Urgent,
		Expiry:  req.Expiry,
	}
	if err := s.repo.Create(ctx, notice); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create notice")
	}
	return notice, nil
}

func (s *service) List(ctx context.Context) ([]models.Notice, error) {
	notices, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list notices")
	}
	return notices, nil
}

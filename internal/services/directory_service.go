package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	dto "workbase.com/workbase/internal/data_models"
	"workbase.com/workbase/internal/export"
	model "workbase.com/workbase/internal/models"
	repository "workbase.com/workbase/internal/repositories"
)

const announcementLimit = 50

// DirectoryService backs the team directory, kudos wall and announcements.
// These records are shared across the organisation rather than owned.
type DirectoryService struct {
	repo *repository.DirectoryRepository
	now  func() time.Time
}

func NewDirectoryService(repo *repository.DirectoryRepository) *DirectoryService {
	return &DirectoryService{repo: repo, now: utcNow}
}

func (s *DirectoryService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*model.Employee, error) {
	name, err := requireText(req.Name, "name")
	if err != nil {
		return nil, err
	}
	email, err := requireText(req.Email, "email")
	if err != nil {
		return nil, err
	}

	now := s.now()
	employee := &model.Employee{
		ID:         uuid.NewString(),
		Name:       name,
		Email:      strings.ToLower(email),
		Title:      req.Title,
		Department: req.Department,
		AvatarURL:  req.AvatarURL,
		Version:    1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.CreateEmployee(ctx, employee); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}
	return employee, nil
}

func (s *DirectoryService) GetEmployee(ctx context.Context, id string) (*model.Employee, error) {
	return s.repo.FindEmployee(ctx, id)
}

func (s *DirectoryService) ListEmployees(ctx context.Context, department, query string) ([]model.Employee, error) {
	return s.repo.ListEmployees(ctx, department, query)
}

func (s *DirectoryService) UpdateEmployee(ctx context.Context, id string, req dto.UpdateEmployeeRequest) (*model.Employee, error) {
	employee, err := s.repo.FindEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if employee.Name, err = requireText(*req.Name, "name"); err != nil {
			return nil, err
		}
	}
	if req.Email != nil {
		email, err := requireText(*req.Email, "email")
		if err != nil {
			return nil, err
		}
		employee.Email = strings.ToLower(email)
	}
	if req.Title != nil {
		employee.Title = *req.Title
	}
	if req.Department != nil {
		employee.Department = *req.Department
	}
	if req.AvatarURL != nil {
		employee.AvatarURL = *req.AvatarURL
	}

	employee.Version = req.Version
	if err := s.repo.UpdateEmployee(ctx, employee); err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}
	employee.UpdatedAt = s.now()
	return employee, nil
}

func (s *DirectoryService) DeleteEmployee(ctx context.Context, id string) error {
	return s.repo.DeleteEmployee(ctx, id)
}

func (s *DirectoryService) GiveKudos(ctx context.Context, fromID, employeeID string, req dto.GiveKudosRequest) (*model.Kudos, error) {
	message, err := requireText(req.Message, "message")
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.FindEmployee(ctx, employeeID); err != nil {
		return nil, err
	}

	kudos := &model.Kudos{
		ID:           uuid.NewString(),
		FromID:       fromID,
		ToEmployeeID: employeeID,
		Message:      message,
		CreatedAt:    s.now(),
	}
	if err := s.repo.CreateKudos(ctx, kudos); err != nil {
		return nil, fmt.Errorf("failed to give kudos: %w", err)
	}
	return kudos, nil
}

func (s *DirectoryService) ListKudos(ctx context.Context, employeeID string) ([]model.Kudos, error) {
	if _, err := s.repo.FindEmployee(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.repo.ListKudos(ctx, employeeID)
}

func (s *DirectoryService) CreateAnnouncement(ctx context.Context, authorID string, req dto.CreateAnnouncementRequest) (*model.Announcement, error) {
	title, err := requireText(req.Title, "title")
	if err != nil {
		return nil, err
	}

	a := &model.Announcement{
		ID:        uuid.NewString(),
		AuthorID:  authorID,
		Title:     title,
		Body:      req.Body,
		Pinned:    req.Pinned,
		CreatedAt: s.now(),
	}
	if err := s.repo.CreateAnnouncement(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to create announcement: %w", err)
	}
	return a, nil
}

func (s *DirectoryService) ListAnnouncements(ctx context.Context) ([]model.Announcement, error) {
	return s.repo.ListAnnouncements(ctx, announcementLimit)
}

func (s *DirectoryService) DeleteAnnouncement(ctx context.Context, id string) error {
	return s.repo.DeleteAnnouncement(ctx, id)
}

// ExportDirectory renders the filtered directory as an XLSX workbook.
func (s *DirectoryService) ExportDirectory(ctx context.Context, department string) ([]byte, error) {
	employees, err := s.repo.ListEmployees(ctx, department, "")
	if err != nil {
		return nil, err
	}
	return export.Directory(employees)
}

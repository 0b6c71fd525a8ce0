package services

import (
	"context"

	"github.com/santisala23-sys/exito/internal/core/calendar"
	"github.com/santisala23-sys/exito/internal/core/domain"
)

type TaskService struct {
	repo domain.TaskRepository
}

func NewTaskService(repo domain.TaskRepository) *TaskService {
	return &TaskService{
		repo: repo,
	}
}

type CreateTaskInput struct {
	Title   string
	DueDate *calendar.Date
}

// ListOpen returns the tasks still to do, newest first.
func (s *TaskService) ListOpen(ctx context.Context) ([]*domain.Task, error) {
	return s.repo.ListOpen(ctx)
}

func (s *TaskService) Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error) {
	task, err := domain.NewTask(input.Title, input.DueDate)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *TaskService) Complete(ctx context.Context, id string) error {
	return s.repo.Complete(ctx, id)
}

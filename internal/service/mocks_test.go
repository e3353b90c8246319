package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/LawrenceKuria/task-manager-fullstack/internal/domain"
)

type mockUserRepository struct {
	users     map[string]*domain.User
	createErr error
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[string]*domain.User)}
}

func (m *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	if _, ok := m.users[user.Username]; ok {
		return errors.New("duplicate username")
	}
	u := *user
	m.users[user.Username] = &u
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	u, ok := m.users[username]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, ok := m.users[username]
	return ok, nil
}

type mockTaskListRepository struct {
	lists map[uuid.UUID]*domain.TaskList
}

func newMockTaskListRepository() *mockTaskListRepository {
	return &mockTaskListRepository{lists: make(map[uuid.UUID]*domain.TaskList)}
}

func (m *mockTaskListRepository) Create(ctx context.Context, list *domain.TaskList) error {
	copied := *list
	m.lists[list.ID] = &copied
	return nil
}

func (m *mockTaskListRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.TaskList, error) {
	l, ok := m.lists[id]
	if !ok {
		return nil, nil
	}
	copied := *l
	return &copied, nil
}

func (m *mockTaskListRepository) List(ctx context.Context) ([]*domain.TaskList, error) {
	out := make([]*domain.TaskList, 0, len(m.lists))
	for _, l := range m.lists {
		copied := *l
		out = append(out, &copied)
	}
	return out, nil
}

func (m *mockTaskListRepository) Update(ctx context.Context, list *domain.TaskList) error {
	if _, ok := m.lists[list.ID]; !ok {
		return nil
	}
	copied := *list
	m.lists[list.ID] = &copied
	return nil
}

func (m *mockTaskListRepository) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.lists, id)
	return nil
}

func (m *mockTaskListRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	_, ok := m.lists[id]
	return ok, nil
}

type mockTaskRepository struct {
	tasks map[uuid.UUID]*domain.Task
}

func newMockTaskRepository() *mockTaskRepository {
	return &mockTaskRepository{tasks: make(map[uuid.UUID]*domain.Task)}
}

func (m *mockTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	copied := *task
	m.tasks[task.ID] = &copied
	return nil
}

func (m *mockTaskRepository) GetByListAndID(ctx context.Context, listID, taskID uuid.UUID) (*domain.Task, error) {
	t, ok := m.tasks[taskID]
	if !ok || t.TaskListID != listID {
		return nil, nil
	}
	copied := *t
	return &copied, nil
}

func (m *mockTaskRepository) ListByTaskList(ctx context.Context, listID uuid.UUID) ([]*domain.Task, error) {
	out := make([]*domain.Task, 0)
	for _, t := range m.tasks {
		if t.TaskListID == listID {
			copied := *t
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (m *mockTaskRepository) Update(ctx context.Context, task *domain.Task) error {
	existing, ok := m.tasks[task.ID]
	if !ok || existing.TaskListID != task.TaskListID {
		return nil
	}
	copied := *task
	m.tasks[task.ID] = &copied
	return nil
}

func (m *mockTaskRepository) DeleteByListAndID(ctx context.Context, listID, taskID uuid.UUID) error {
	t, ok := m.tasks[taskID]
	if ok && t.TaskListID == listID {
		delete(m.tasks, taskID)
	}
	return nil
}

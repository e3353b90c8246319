package dto

import (
	"testing"

	"github.com/google/uuid"

	"github.com/LawrenceKuria/task-manager-fullstack/internal/domain"
)

func TestCreateTaskRequest_Validate(t *testing.T) {
	presetID := uuid.New()
	badPriority := domain.TaskPriority("URGENT")
	goodPriority := domain.TaskPriorityHigh

	cases := []struct {
		name    string
		req     CreateTaskRequest
		wantErr bool
	}{
		{"valid minimal", CreateTaskRequest{Title: "buy milk"}, false},
		{"valid with priority", CreateTaskRequest{Title: "buy milk", Priority: &goodPriority}, false},
		{"preset ID", CreateTaskRequest{ID: &presetID, Title: "buy milk"}, true},
		{"blank title", CreateTaskRequest{Title: "   "}, true},
		{"unknown priority", CreateTaskRequest{Title: "buy milk", Priority: &badPriority}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestUpdateTaskRequest_Validate(t *testing.T) {
	id := uuid.New()

	cases := []struct {
		name    string
		req     UpdateTaskRequest
		wantErr bool
	}{
		{
			"valid",
			UpdateTaskRequest{ID: &id, Title: "x", Priority: domain.TaskPriorityLow, Status: domain.TaskStatusClosed},
			false,
		},
		{
			"blank title",
			UpdateTaskRequest{ID: &id, Title: " ", Priority: domain.TaskPriorityLow, Status: domain.TaskStatusOpen},
			true,
		},
		{
			"unknown priority",
			UpdateTaskRequest{ID: &id, Title: "x", Priority: "URGENT", Status: domain.TaskStatusOpen},
			true,
		},
		{
			"unknown status",
			UpdateTaskRequest{ID: &id, Title: "x", Priority: domain.TaskPriorityLow, Status: "DONE"},
			true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

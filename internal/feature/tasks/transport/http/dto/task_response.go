package dto

import "task_backend/internal/feature/tasks/domain/entity"

// TaskRes is the wire representation of a task.
type TaskRes struct {
	ID          string `json:"id"`
	Owner       uint   `json:"owner"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	DueDate     string `json:"dueDate,omitempty"`
	Completed   bool   `json:"completed"`
}

// NewTaskRes converts a task entity to its wire representation.
func NewTaskRes(t *entity.Task) TaskRes {
	res := TaskRes{
		ID:          t.ID,
		Owner:       t.UserID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		Completed:   t.Completed,
	}
	if t.DueDate != nil {
		res.DueDate = t.DueDate.Format(dueDateLayout)
	}
	return res
}

// NewTaskListRes converts a slice of task entities, preserving order.
func NewTaskListRes(tasks []entity.Task) []TaskRes {
	res := make([]TaskRes, 0, len(tasks))
	for i := range tasks {
		res = append(res, NewTaskRes(&tasks[i]))
	}
	return res
}

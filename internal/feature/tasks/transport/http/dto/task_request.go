// Package dto defines data transfer objects for the tasks feature's HTTP transport layer.
package dto

import (
	"fmt"
	"time"
)

// dueDateLayout is the wire format for due dates.
const dueDateLayout = "2006-01-02"

// CreateTaskReq represents the request body for POST /api/tasks.
type CreateTaskReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	DueDate     string `json:"dueDate"`
}

// UpdateTaskReq represents the request body for PUT /api/tasks/:id.
// Pointer fields distinguish "absent" from "set to zero value" so partial
// updates leave untouched fields alone.
type UpdateTaskReq struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"dueDate"`
	Completed   *bool   `json:"completed"`
}

// ParseDueDate parses a YYYY-MM-DD due date. An empty string means no due
// date and yields nil.
func ParseDueDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dueDateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("dueDate must use the %s format", dueDateLayout)
	}
	return &t, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// TaskState is the lifecycle state of a user task.
type TaskState string

const (
	TaskCreated   TaskState = "CREATED"
	TaskCompleted TaskState = "COMPLETED"
	TaskCanceled  TaskState = "CANCELED"
)

// Task is a user task produced by a process instance and shown in the
// tasklist. It may be claimed by (assigned to) a single user.
type Task struct {
	ID                  string         `json:"id"`
	Name                string         `json:"name"`
	ProcessName         string         `json:"processName,omitempty"`
	ProcessDefinitionID string         `json:"processDefinitionId,omitempty"`
	FormKey             string         `json:"formKey,omitempty"`
	JobKey              string         `json:"jobKey,omitempty"`
	Assignee            string         `json:"assignee,omitempty"`
	CandidateGroups     []string       `json:"candidateGroups,omitempty"`
	Variables           map[string]any `json:"variables,omitempty"`
	CreationTime        string         `json:"creationTime,omitempty"`
	TaskState           TaskState      `json:"taskState,omitempty"`
}

// Assigned reports whether somebody has claimed the task.
func (t Task) Assigned() bool {
	return t.Assignee != ""
}

// AssignedTo reports whether the task is claimed by username.
func (t Task) AssignedTo(username string) bool {
	return t.Assigned() && t.Assignee == username
}

// FormSchema is the raw form definition attached to a task. Its semantics
// belong to the form viewer; the client only passes it through.
type FormSchema json.RawMessage

// MarshalJSON returns the schema as is, "null" when it is empty.
func (s FormSchema) MarshalJSON() ([]byte, error) {
	if len(s) == 0 {
		return []byte("null"), nil
	}
	return s, nil
}

// UnmarshalJSON keeps a copy of data. A JSON null leaves the schema empty.
func (s *FormSchema) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = nil
		return nil
	}
	*s = append((*s)[0:0], data...)
	return nil
}

// TaskDocument is a task together with the schema of its form.
type TaskDocument struct {
	Task   Task       `json:"task"`
	Schema FormSchema `json:"schema,omitempty"`
}

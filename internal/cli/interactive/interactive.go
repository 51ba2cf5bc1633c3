// Package interactive provides survey-based prompts for commands that
// support an interactive mode.
package interactive

import (
	"github.com/AlecAivazis/survey/v2"
)

// TaskAnswers holds the fields collected when creating a task interactively.
type TaskAnswers struct {
	Description string
	Priority    string
}

// CreateTask prompts for the fields of a new task.
func CreateTask() (TaskAnswers, error) {
	questions := []*survey.Question{
		{
			Name:     "description",
			Prompt:   &survey.Input{Message: "Task description:"},
			Validate: survey.Required,
		},
		{
			Name: "priority",
			Prompt: &survey.Select{
				Message: "Priority:",
				Options: []string{"HIGH", "MEDIUM", "LOW", "NONE"},
				Default: "NONE",
			},
		},
	}

	var answers TaskAnswers
	if err := survey.Ask(questions, &answers); err != nil {
		return TaskAnswers{}, err
	}
	return answers, nil
}

// NoteAnswers holds the fields collected when creating a note interactively.
type NoteAnswers struct {
	Title   string
	Content string
}

// CreateNote prompts for the fields of a new note.
func CreateNote() (NoteAnswers, error) {
	questions := []*survey.Question{
		{
			Name:     "title",
			Prompt:   &survey.Input{Message: "Note title:"},
			Validate: survey.Required,
		},
		{
			Name:   "content",
			Prompt: &survey.Multiline{Message: "Content:"},
		},
	}

	var answers NoteAnswers
	if err := survey.Ask(questions, &answers); err != nil {
		return NoteAnswers{}, err
	}
	return answers, nil
}

package seed

import (
	"encoding/json"
	"fmt"
	"os"

	"studyhub/internal/app/models"
)

// bankEntry is one question as stored in the external bank file
type bankEntry struct {
	Content string            `json:"题目"`
	Options map[string]string `json:"选项"`
	Answer  string            `json:"答案"`
}

// bankFile is the bank document: subjects mapped to their questions
type bankFile struct {
	Subjects map[string][]bankEntry `json:"初中题库"`
}

// LoadQuestionBank reads the bank file and flattens it into question rows.
// The options mapping is re-serialized to JSON for the options column.
func LoadQuestionBank(path string) ([]models.Question, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read question bank: %w", err)
	}

	var bank bankFile
	if err := json.Unmarshal(content, &bank); err != nil {
		return nil, fmt.Errorf("failed to parse question bank: %w", err)
	}

	var questions []models.Question
	for subject, entries := range bank.Subjects {
		for _, entry := range entries {
			options, err := json.Marshal(entry.Options)
			if err != nil {
				return nil, fmt.Errorf("failed to serialize options: %w", err)
			}
			questions = append(questions, models.Question{
				Subject: subject,
				Content: entry.Content,
				Options: string(options),
				Answer:  entry.Answer,
			})
		}
	}

	return questions, nil
}

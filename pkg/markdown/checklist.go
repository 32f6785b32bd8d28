package markdown

import (
	"regexp"
	"strings"
)

var (
	taskPattern   = regexp.MustCompile(`(?m)^\s*[-*+] \[([ xX])\] (.+)$`)
	fencedPattern = regexp.MustCompile("(?s)```.*?```")
	inlinePattern = regexp.MustCompile("`[^`]+`")
)

// Task is one GFM task list item.
type Task struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// Progress summarizes the task list items of a note.
type Progress struct {
	Total     int     `json:"total"`
	Completed int     `json:"completed"`
	Percent   float64 `json:"percent"`
}

// Tasks extracts task list items, ignoring anything inside code.
func Tasks(src string) []Task {
	src = fencedPattern.ReplaceAllString(src, "")
	src = inlinePattern.ReplaceAllString(src, "")

	matches := taskPattern.FindAllStringSubmatch(src, -1)
	tasks := make([]Task, 0, len(matches))
	for _, m := range matches {
		tasks = append(tasks, Task{
			Text: strings.TrimSpace(m[2]),
			Done: m[1] != " ",
		})
	}
	return tasks
}

// TaskProgress counts completed task list items. A note without tasks has Total 0.
func TaskProgress(src string) Progress {
	var p Progress
	for _, t := range Tasks(src) {
		p.Total++
		if t.Done {
			p.Completed++
		}
	}
	if p.Total > 0 {
		p.Percent = float64(p.Completed) / float64(p.Total) * 100
	}
	return p
}

package main

import (
	"github.com/benjamonnguyen/daytrack"
)

type RefreshMsg struct {
	dashboard daytrack.Dashboard
	tasks     []daytrack.Task
	habits    []daytrack.Habit
	goals     []daytrack.Goal
}

type ResultMsg struct {
	text string
}

type ErrorMsg struct {
	err error
}

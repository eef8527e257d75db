package schedule

import "errors"

var (
	ErrTemplateNotFound = errors.New("schedule template not found")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrScheduleNotFound = errors.New("1c schedule not found")
	ErrNoActiveSchedule = errors.New("employee has no active schedule")
	ErrBackdated        = errors.New("start date is not after the current assignment start")
)

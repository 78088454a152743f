package scheduler

import "github.com/bhavanabc05/AI-timetable-clash-detector/internal/models"

func newEntry(course, teacher, year, room, day, start, end string) models.Entry {
	startMin, err := models.ParseClock(start)
	if err != nil {
		panic(err)
	}
	endMin, err := models.ParseClock(end)
	if err != nil {
		panic(err)
	}
	return models.Entry{
		Course:   course,
		Teacher:  teacher,
		Year:     year,
		Room:     room,
		Day:      day,
		Start:    start,
		End:      end,
		StartMin: startMin,
		EndMin:   endMin,
	}
}

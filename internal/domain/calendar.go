package domain

import "time"

// WeekStart возвращает понедельник 00:00 недели, в которую попадает ref
func WeekStart(ref time.Time) time.Time {
	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	// time.Weekday: Sunday == 0, а неделя календаря начинается с понедельника
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// WeekWindow возвращает полуоткрытое окно недели [monday, monday+7d)
func WeekWindow(ref time.Time) (start, end time.Time) {
	start = WeekStart(ref)
	return start, start.AddDate(0, 0, 7)
}

package course

// RecordAttendance upserts the presence of a student on a date.
// Re-marking the same (student, date) pair overwrites the prior value.
func (c *Course) RecordAttendance(studentID int, date string, present bool) {
	if c.Attendance == nil {
		c.Attendance = make(map[int]map[string]bool)
	}
	if c.Attendance[studentID] == nil {
		c.Attendance[studentID] = make(map[string]bool)
	}
	c.Attendance[studentID][date] = present
}

// AttendanceOn returns the recorded presence for a student on a date and
// whether any record exists for that date.
func (c *Course) AttendanceOn(studentID int, date string) (present, ok bool) {
	records, ok := c.Attendance[studentID]
	if !ok {
		return false, false
	}
	present, ok = records[date]
	return present, ok
}

// AttendancePercent returns 100 * presentDays / recordedDays for a student.
// A student with no records gets 0.0, not an error.
func (c *Course) AttendancePercent(studentID int) float64 {
	records := c.Attendance[studentID]
	if len(records) == 0 {
		return 0.0
	}
	var present int
	for _, p := range records {
		if p {
			present++
		}
	}
	return float64(present) / float64(len(records)) * 100.0
}

// AttendancePercents materializes the attendance percentage of every
// student with at least one record.
func (c *Course) AttendancePercents() map[int]float64 {
	percents := make(map[int]float64, len(c.Attendance))
	for studentID := range c.Attendance {
		percents[studentID] = c.AttendancePercent(studentID)
	}
	return percents
}

package domain

// ActivityRecorder counts domain activity for metrics.
type ActivityRecorder interface {
	UserRegistered(isOrganizer bool)
	OrganizationSaved()
	OrganizationUnsaved()
	EventRegistered()
	AttendanceMarked(points int)
}

// NopActivityRecorder discards all activity.
type NopActivityRecorder struct{}

func (NopActivityRecorder) UserRegistered(bool) {}
func (NopActivityRecorder) OrganizationSaved() {}
func (NopActivityRecorder) OrganizationUnsaved() {}
func (NopActivityRecorder) EventRegistered() {}
func (NopActivityRecorder) AttendanceMarked(int) {}

package metrics

import (
	"strconv"

	"communityhub/internal/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Community activity metrics
var (
	UsersRegistered = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "users_registered_total",
			Help:      "Total number of user registrations",
		},
		[]string{"organizer"},
	)

	OrganizationFollows = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "organization_follows_total",
			Help:      "Total number of organization save and unsave actions",
		},
		[]string{"action"},
	)

	EventRegistrations = promauto.With(Registry).NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "event_registrations_total",
			Help:      "Total number of event RSVPs",
		},
	)

	AttendanceMarked = promauto.With(Registry).NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "attendance_marked_total",
			Help:      "Total number of participants marked as attended",
		},
	)

	PointsAwarded = promauto.With(Registry).NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "points_awarded_total",
			Help:      "Total number of points credited to users for attendance",
		},
	)
)

// ActivityRecorder publishes domain activity to the package counters.
type ActivityRecorder struct{}

var _ domain.ActivityRecorder = ActivityRecorder{}

func (ActivityRecorder) UserRegistered(isOrganizer bool) {
	UsersRegistered.WithLabelValues(strconv.FormatBool(isOrganizer)).Inc()
}

func (ActivityRecorder) OrganizationSaved() {
	OrganizationFollows.WithLabelValues("save").Inc()
}

func (ActivityRecorder) OrganizationUnsaved() {
	OrganizationFollows.WithLabelValues("unsave").Inc()
}

func (ActivityRecorder) EventRegistered() {
	EventRegistrations.Inc()
}

func (ActivityRecorder) AttendanceMarked(points int) {
	AttendanceMarked.Inc()
	if points > 0 {
		PointsAwarded.Add(float64(points))
	}
}

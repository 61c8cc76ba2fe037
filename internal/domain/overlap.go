package domain

import "github.com/sosuke1217/mobilis-ticket-sub000/pkg/types"

// HasConflict reports whether the candidate interval [start, end) collides
// with any active reservation in existing, applying each existing
// reservation's own buffer as a symmetric exclusion zone:
//
//	(A.start - buffer) < B.end && (A.end + buffer) > B.start
//
// The inequalities are strict, so with a zero buffer an interval that
// exactly abuts another (A.end == B.start) is not a conflict.
// excludeID skips one reservation, letting an update validate against
// everything but itself.
func HasConflict(existing []*Reservation, start, end types.TimeString, globalBufferMinutes int, excludeID *int64) bool {
	return FindConflict(existing, start, end, globalBufferMinutes, excludeID) != nil
}

// FindConflict returns the first active reservation whose buffered interval
// intersects [start, end), or nil when the candidate is free.
func FindConflict(existing []*Reservation, start, end types.TimeString, globalBufferMinutes int, excludeID *int64) *Reservation {
	startMin := start.Minutes()
	endMin := end.Minutes()

	for _, r := range existing {
		if excludeID != nil && r.ID == *excludeID {
			continue
		}
		if !r.IsActive() {
			continue
		}

		buffer := r.BufferMinutes(globalBufferMinutes)

		if r.StartTime.Minutes()-buffer < endMin && r.EndTime.Minutes()+buffer > startMin {
			return r
		}
	}

	return nil
}

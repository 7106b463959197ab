package domain

// Assign computes which title each participant writes in the given round.
//
// Participants must be ordered by join time and titles by creation time.
// Participant at join index i writes the title at index (i + round - 1) mod n,
// so round 1 is the identity mapping and each subsequent round shifts the
// rotation by one. With one title per participant this is a bijection, and no
// participant sees the same title twice as long as the room has at most n
// rounds.
//
// Returns an empty map when the round is not yet meaningful (round < 1) or
// when the participant and title counts diverge.
func Assign(participants []*Participant, titles []*Title, round int) map[uint]uint {
	assignments := make(map[uint]uint)

	n := len(titles)
	if round < 1 || n == 0 || len(participants) != n {
		return assignments
	}

	for i, p := range participants {
		assignments[p.ID] = titles[(i+round-1)%n].ID
	}
	return assignments
}

// AssignmentsFor returns the rotation for the room's current round, or an
// empty map while the room has not started writing.
func AssignmentsFor(room *Room, participants []*Participant, titles []*Title) map[uint]uint {
	if room.Status != RoomStatusInProgress && room.Status != RoomStatusCompleted {
		return map[uint]uint{}
	}
	return Assign(participants, titles, room.CurrentRound)
}

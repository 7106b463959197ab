package domain

// The room phase only ever moves forward:
// waiting -> title_input -> in_progress -> completed.
// Transitions out of title_input and in_progress are side effects of title
// and page submissions; the decision logic lives here so the write paths can
// stay thin and the rules stay testable without a database.

// AllTitlesIn reports whether every participant has submitted a title, which
// moves the room from title_input to in_progress at round 1.
func AllTitlesIn(titleCount, participantCount int) bool {
	return participantCount > 0 && titleCount == participantCount
}

// RoundOutcome is the result of re-checking round coverage after a page write.
type RoundOutcome int

const (
	// RoundOutcomeNone leaves the room unchanged: some titles still lack a
	// page for the current round.
	RoundOutcomeNone RoundOutcome = iota
	// RoundOutcomeAdvance increments CurrentRound.
	RoundOutcomeAdvance
	// RoundOutcomeComplete moves the room to completed.
	RoundOutcomeComplete
)

// NextAfterPage recomputes, from scratch, whether every title in the room now
// has a page for the current round, and if so whether that finishes the game
// or merely starts the next round. roundPages must be the pages written in
// room.CurrentRound.
func NextAfterPage(room *Room, titles []*Title, roundPages []*Page) RoundOutcome {
	if len(titles) == 0 {
		return RoundOutcomeNone
	}

	covered := make(map[uint]bool, len(roundPages))
	for _, p := range roundPages {
		covered[p.TitleID] = true
	}
	for _, t := range titles {
		if !covered[t.ID] {
			return RoundOutcomeNone
		}
	}

	if room.CurrentRound >= room.Pages {
		return RoundOutcomeComplete
	}
	return RoundOutcomeAdvance
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllTitlesIn(t *testing.T) {
	assert.False(t, AllTitlesIn(0, 0))
	assert.False(t, AllTitlesIn(0, 3))
	assert.False(t, AllTitlesIn(2, 3))
	assert.True(t, AllTitlesIn(3, 3))
}

func TestNextAfterPageRoundIncomplete(t *testing.T) {
	room := &Room{Pages: 3, CurrentRound: 1}
	titles := []*Title{{ID: 1}, {ID: 2}}
	pages := []*Page{{TitleID: 1, Round: 1}}

	assert.Equal(t, RoundOutcomeNone, NextAfterPage(room, titles, pages))
}

func TestNextAfterPageAdvancesRound(t *testing.T) {
	room := &Room{Pages: 3, CurrentRound: 1}
	titles := []*Title{{ID: 1}, {ID: 2}}
	pages := []*Page{
		{TitleID: 1, Round: 1},
		{TitleID: 2, Round: 1},
	}

	assert.Equal(t, RoundOutcomeAdvance, NextAfterPage(room, titles, pages))
}

func TestNextAfterPageCompletesOnFinalRound(t *testing.T) {
	room := &Room{Pages: 2, CurrentRound: 2}
	titles := []*Title{{ID: 1}, {ID: 2}}
	pages := []*Page{
		{TitleID: 1, Round: 2},
		{TitleID: 2, Round: 2},
	}

	assert.Equal(t, RoundOutcomeComplete, NextAfterPage(room, titles, pages))
}

func TestNextAfterPageNoTitles(t *testing.T) {
	room := &Room{Pages: 2, CurrentRound: 1}

	assert.Equal(t, RoundOutcomeNone, NextAfterPage(room, nil, nil))
}

func TestNextAfterPageIgnoresExtraPagesForCoveredTitle(t *testing.T) {
	room := &Room{Pages: 3, CurrentRound: 1}
	titles := []*Title{{ID: 1}, {ID: 2}}
	pages := []*Page{
		{TitleID: 1, Round: 1},
		{TitleID: 1, Round: 1},
	}

	assert.Equal(t, RoundOutcomeNone, NextAfterPage(room, titles, pages))
}

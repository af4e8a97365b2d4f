// internal/teetime/tournament.go
package teetime

// tournamentBasePrestige is the flat reputation payout for hosting any
// tournament to completion, before the participation-scaled bonus.
const tournamentBasePrestige = 10.0

// CompleteTournamentResult carries the new state and the prestige earned.
type CompleteTournamentResult struct {
	State         TournamentState `json:"state"`
	Revenue       float64         `json:"revenue"`
	PrestigeDelta float64         `json:"prestige_delta"`
	Completed     bool            `json:"completed"`
}

// ScheduleTournament inserts the tournament into the scheduled set. It is
// a set-insert by id: scheduling an id already scheduled, or one already
// completed, is a no-op.
func ScheduleTournament(s TournamentState, t Tournament) TournamentState {
	for _, existing := range s.Scheduled {
		if existing.ID == t.ID {
			return s
		}
	}
	for _, id := range s.CompletedIDs {
		if id == t.ID {
			return s
		}
	}
	out := s.clone()
	out.Scheduled = append(out.Scheduled, t)
	return out
}

// CancelTournament removes a scheduled tournament by id; unknown ids are a
// no-op.
func CancelTournament(s TournamentState, id string) TournamentState {
	for i, t := range s.Scheduled {
		if t.ID == id {
			out := s.clone()
			out.Scheduled = append(out.Scheduled[:i], out.Scheduled[i+1:]...)
			return out
		}
	}
	return s
}

// TournamentOn returns the scheduled tournament running on the given day,
// if any. A tournament covers days [DayOfYear, DayOfYear+Duration).
func TournamentOn(s TournamentState, day int) (Tournament, bool) {
	for _, t := range s.Scheduled {
		if day >= t.DayOfYear && day < t.DayOfYear+t.Duration {
			return t, true
		}
	}
	return Tournament{}, false
}

// IsTournamentDay reports whether any scheduled tournament covers the day.
func IsTournamentDay(s TournamentState, day int) bool {
	_, ok := TournamentOn(s, day)
	return ok
}

// TournamentAvailableSlots reports how many of the day's slots remain open
// to regular play under the tournament: none for a full closure, total
// minus the reserved block otherwise.
func TournamentAvailableSlots(t Tournament, totalSlots int) int {
	if t.FullClosure {
		return 0
	}
	open := totalSlots - t.ReservedSlots
	if open < 0 {
		return 0
	}
	return open
}

// AvailableSlotsOn reports the day's open slot count accounting for any
// scheduled tournament; with none scheduled all slots are open.
func AvailableSlotsOn(s TournamentState, day, totalSlots int) int {
	if t, ok := TournamentOn(s, day); ok {
		return TournamentAvailableSlots(t, totalSlots)
	}
	return totalSlots
}

// CompleteTournament moves a scheduled tournament to the completed set,
// accruing entry-fee revenue and the participant count. Prestige scales
// linearly with turnout against capacity on top of a fixed baseline.
// Completing an id that is not scheduled returns the state unchanged.
func CompleteTournament(s TournamentState, id string, participants int) CompleteTournamentResult {
	idx := -1
	for i, t := range s.Scheduled {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return CompleteTournamentResult{State: s}
	}

	out := s.clone()
	t := out.Scheduled[idx]
	out.Scheduled = append(out.Scheduled[:idx], out.Scheduled[idx+1:]...)
	out.CompletedIDs = append(out.CompletedIDs, t.ID)

	revenue := t.EntryFee * float64(participants)
	out.TotalRevenue += revenue
	out.TotalParticipants += participants

	prestige := tournamentBasePrestige
	if t.MaxParticipants > 0 {
		prestige += t.PrestigeBonus * float64(participants) / float64(t.MaxParticipants)
	}

	return CompleteTournamentResult{
		State:         out,
		Revenue:       revenue,
		PrestigeDelta: prestige,
		Completed:     true,
	}
}

package ticket

// ComputeStats derives summary counts from a collection. Pure function of
// its input: no state, no side effects, no failure mode.
//
// Total counts every ticket. The per-status counts only cover the three
// recognized statuses, so a ticket with a missing or unrecognized status
// contributes to Total and to no bucket.
func ComputeStats(tickets []Ticket) Stats {
	stats := Stats{Total: len(tickets)}
	for _, t := range tickets {
		switch t.Status {
		case StatusOpen:
			stats.Open++
		case StatusInProgress:
			stats.InProgress++
		case StatusClosed:
			stats.Closed++
		}
	}
	return stats
}

package schedulers

import (
	"log"

	"cpu-scheduler-simulator/internal/core"
)

// selectionKey ranks ready processes; the lowest key is dispatched.
type selectionKey func(p *core.Process) int

func byBurst(p *core.Process) int     { return p.Burst }
func byRemaining(p *core.Process) int { return p.Remaining }
func byPriority(p *core.Process) int  { return p.Priority }

// simulation is what every algorithm hands to the report builder.
type simulation struct {
	timeline        core.Timeline
	processes       []core.Process
	contextSwitches int
	makespan        int
}

// normalizedSwitches drops the first dispatch from the tally; it is not a switch.
func normalizedSwitches(count int) int {
	if count > 0 {
		return count - 1
	}
	return 0
}

// runNonPreemptive dispatches the ready process with the lowest key to completion,
// breaking ties by arrival and then by input order.
func runNonPreemptive(processes []core.Process, key selectionKey) simulation {
	var (
		clock, done int
		switches    int
		lastID      string
		dispatched  bool
		tl          core.Timeline
	)
	for done < len(processes) {
		selected := -1
		nextArrival := -1
		for i := range processes {
			p := &processes[i]
			if p.Finished() {
				continue
			}
			if p.Arrival > clock {
				if nextArrival < 0 || p.Arrival < nextArrival {
					nextArrival = p.Arrival
				}
				continue
			}
			if selected < 0 || readyBefore(p, &processes[selected], key) {
				selected = i
			}
		}

		if selected < 0 {
			tl.Idle(clock, nextArrival)
			clock = nextArrival
			continue
		}

		p := &processes[selected]
		if !dispatched || lastID != p.ID {
			switches++
			lastID = p.ID
			dispatched = true
		}
		log.Println("pid:", p.ID, "dispatched at", clock)
		p.Start = clock
		clock += p.Burst
		p.Remaining = 0
		p.Finish = clock
		tl.Run(p.Start, clock, p.ID)
		done++
	}

	return simulation{
		timeline:        tl,
		processes:       processes,
		contextSwitches: normalizedSwitches(switches),
		makespan:        clock,
	}
}

func readyBefore(a, b *core.Process, key selectionKey) bool {
	if ka, kb := key(a), key(b); ka != kb {
		return ka < kb
	}
	// equal arrival keeps the earlier index, since callers scan in input order
	return a.Arrival < b.Arrival
}

// runPreemptive advances the clock one unit at a time, re-selecting the ready process
// with the lowest key at every unit; ties go to the earlier process in input order.
// A new segment opens whenever the selection changes or the CPU leaves an idle gap,
// and each opened segment counts as a context switch.
func runPreemptive(processes []core.Process, key selectionKey) simulation {
	var (
		clock, done  int
		switches     int
		active       = -1
		segmentStart int
		tl           core.Timeline
	)
	for done < len(processes) {
		selected := -1
		nextArrival := -1
		for i := range processes {
			p := &processes[i]
			if p.Remaining == 0 {
				continue
			}
			if p.Arrival > clock {
				if nextArrival < 0 || p.Arrival < nextArrival {
					nextArrival = p.Arrival
				}
				continue
			}
			if selected < 0 || key(p) < key(&processes[selected]) {
				selected = i
			}
		}

		if selected < 0 {
			// nothing is running here: the last dispatch finished or nothing arrived yet
			clock = nextArrival
			continue
		}

		if selected != active {
			if active >= 0 {
				tl.Run(segmentStart, clock, processes[active].ID)
				log.Println("pid:", processes[active].ID, "preempted at", clock)
			} else {
				tl.Idle(tl.End(), clock)
			}
			switches++
			active = selected
			segmentStart = clock
		}

		p := &processes[selected]
		if p.Start == core.NotStarted {
			p.Start = clock
		}
		p.Remaining--
		clock++
		if p.Remaining == 0 {
			p.Finish = clock
			tl.Run(segmentStart, clock, p.ID)
			active = -1
			done++
		}
	}

	return simulation{
		timeline:        tl,
		processes:       processes,
		contextSwitches: normalizedSwitches(switches),
		makespan:        clock,
	}
}

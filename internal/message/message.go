// Package message picks the short encouragement printed after an activity
// is recorded, and turns domain errors into user-facing wording.
package message

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/alexanderramin/timetrack/internal/domain"
)

// Pick draws one candidate. It returns "" for an empty list.
func Pick(rng *rand.Rand, candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	return candidates[rng.Intn(len(candidates))]
}

// ForEvent returns an encouragement for e. previous is the event e
// followed, nil on an empty log.
func ForEvent(rng *rand.Rand, e domain.Event, previous *domain.Event) string {
	return Pick(rng, Candidates(e, previous))
}

// Candidates lists every message that fits e.
func Candidates(e domain.Event, previous *domain.Event) []string {
	switch e.Type {
	case domain.ActivityArrive:
		return arrival(e.At)
	case domain.ActivityBreak:
		var workStart *time.Time
		if previous != nil && previous.Type.StartsWork() {
			workStart = &previous.At
		}
		return breakStart(e.At, workStart)
	case domain.ActivityResume:
		var started *time.Time
		if previous != nil && previous.Type == domain.ActivityBreak {
			started = &previous.At
		}
		return resume(e.At, started)
	case domain.ActivityLeave:
		return leave(e.At)
	}
	return nil
}

func arrival(at time.Time) []string {
	var msgs []string
	switch h := at.Hour(); {
	case h <= 7:
		msgs = append(msgs, "Early start! Welcome, and have a good day.")
	case h <= 9:
		msgs = append(msgs, "Good morning.")
	case h >= 10:
		msgs = append(msgs, "A late start today? Enjoy your work anyway.")
	}
	switch at.Weekday() {
	case time.Monday:
		msgs = append(msgs, "Have a good start into the new week!", "New week, new chances!")
	case time.Friday:
		msgs = append(msgs, "Last day of the week, almost there!", "Only a few hours until the weekend.")
	case time.Saturday:
		msgs = append(msgs, "Working on a Saturday? Sorry to hear that.", "Saturday shift. Hang in there, it will be over soon.")
	}
	return append(msgs, "Welcome and have a nice day!")
}

func breakStart(at time.Time, workStart *time.Time) []string {
	var msgs []string
	if workStart != nil {
		worked := at.Sub(*workStart)
		msg := describeSpan(worked) + " of work."
		if worked >= 4*time.Hour {
			msg += " Time for a well-deserved break."
		} else {
			msg += " A coffee break can't hurt."
		}
		msgs = append(msgs, msg)
	}

	switch h := at.Hour(); {
	case h < 11:
		msgs = append(msgs, fmt.Sprintf("%d o'clock. Breakfast time!", h))
	case h <= 13:
		msgs = append(msgs, fmt.Sprintf("%s. A good time for lunch.", at.Format("15:04")))
	default:
		msgs = append(msgs, "Coffee?", "Good idea, take a break and relax a little.")
	}
	return append(msgs,
		"Enjoy your break!",
		"Relax a little; problems look smaller after a break.",
		"See you soon!",
	)
}

// describeSpan renders d as "2 hours and 05 minutes", dropping a minute
// part of two minutes or less once there are full hours.
func describeSpan(d time.Duration) string {
	hours := int(d / time.Hour)
	minutes := int((d % time.Hour) / time.Minute)

	var b strings.Builder
	switch {
	case hours > 1:
		fmt.Fprintf(&b, "%d hours", hours)
	case hours == 1:
		b.WriteString("1 hour")
	}
	if hours > 0 && minutes > 2 {
		b.WriteString(" and ")
	}
	if hours == 0 || minutes > 2 {
		fmt.Fprintf(&b, "%02d minutes", minutes)
	}
	return b.String()
}

func resume(at time.Time, breakStarted *time.Time) []string {
	var msgs []string
	switch h := at.Hour(); {
	case h <= 12:
		msgs = append(msgs,
			"Welcome back, with fresh energy for the rest of the day!",
			"The rest of the day is ahead of you, with new strength.")
	case h >= 15:
		msgs = append(msgs,
			"Just a few more hours. Closing time is near!",
			"Almost there. Hang in.")
	}

	if breakStarted != nil {
		minutes := int(at.Sub(*breakStarted) / time.Minute)
		unit := "minutes"
		if minutes == 1 {
			unit = "minute"
		}
		msgs = append(msgs, fmt.Sprintf("%d %s break. Welcome back and enjoy the rest of your day.", minutes, unit))
		switch {
		case minutes < 30:
			msgs = append(msgs,
				"Quick coffee break done? Back to getting things done!",
				"That was a short one! Welcome back!")
		case minutes < 45:
			msgs = append(msgs, "An average break, now back to work.")
		default:
			msgs = append(msgs,
				"That was a long break. Looks like a longer day today.",
				fmt.Sprintf("A generous %d minute break. Hope you feel refreshed :)", minutes))
		}
	}

	return append(msgs,
		"Welcome back at your desk.",
		"Back to work! Enjoy!",
		"Welcome back.")
}

func leave(at time.Time) []string {
	var msgs []string
	switch h := at.Hour(); {
	case h <= 14:
		msgs = append(msgs,
			"Leaving early today? Go ahead, you earned it.",
			"Short day, enjoy your afternoon.")
	case h < 18:
		msgs = append(msgs,
			"Have a nice evening.",
			"Enjoy your dinner and your evening!")
	default:
		msgs = append(msgs,
			"Leaving late today?",
			"Did the work keep you interested, or did something have to be finished today?",
			"Finally. Sleep well!")
	}
	switch at.Weekday() {
	case time.Friday:
		msgs = append(msgs,
			"It's Friday! Have a nice weekend!",
			"And that's the week done.")
	case time.Saturday:
		msgs = append(msgs,
			"A Saturday shift is over. Enjoy your Sunday.",
			"About time this week was over, isn't it?")
	}
	return append(msgs,
		"A fine time to leave. It always is. :)",
		"Go home, tomorrow is another day.")
}

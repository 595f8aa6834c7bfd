package message

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/timetrack/internal/domain"
	"github.com/alexanderramin/timetrack/internal/repository"
)

// DescribeError returns the wording shown to the user for err.
func DescribeError(err error) string {
	if err == nil {
		return ""
	}

	var te *domain.TransitionError
	if errors.As(err, &te) {
		return describeTransition(te)
	}

	var de *domain.DayError
	switch {
	case errors.As(err, &de) && errors.Is(err, domain.ErrNoArrivalForDate):
		return fmt.Sprintf("There is no arrival on %s.", de.Date.Format("02.01.2006"))
	case errors.Is(err, domain.ErrNoArrivalForDate):
		return "There is no arrival on that day."
	case errors.Is(err, domain.ErrOutOfOrder):
		return "That entry would not be later than your last one. Check the offset. (" + err.Error() + ")"
	case errors.Is(err, domain.ErrDataConsistency):
		return "The time log contains a sequence that makes no sense: " + err.Error()
	case errors.Is(err, repository.ErrDuplicateEvent):
		return "This entry already exists."
	}
	return err.Error()
}

func describeTransition(te *domain.TransitionError) string {
	var msg string
	switch {
	case errors.Is(te.Kind, domain.ErrNotWorking):
		msg = "You can't leave or take a break if you're not here in the first place."
		switch te.Last {
		case domain.ActivityBreak:
			msg += " You are on a break right now."
		case domain.ActivityLeave, domain.ActivityNone:
			msg += " As far as I know, you're still at home."
		}
	case errors.Is(te.Kind, domain.ErrNotBreaking):
		msg = "You can't resume working if you're not on a break."
		switch te.Last {
		case domain.ActivityArrive, domain.ActivityResume:
			msg += " As far as I know, you're here and working."
		case domain.ActivityLeave, domain.ActivityNone:
			msg += " As far as I know, you're still at home."
		}
	case errors.Is(te.Kind, domain.ErrHaveNotLeft):
		msg = "You can't start your day while you're already (or still?) here."
		switch te.Last {
		case domain.ActivityArrive, domain.ActivityResume:
			msg += " As far as I know, you're here and working."
		case domain.ActivityBreak:
			msg += " It looks like you're on a break."
		}
	default:
		msg = te.Error()
	}
	return msg
}

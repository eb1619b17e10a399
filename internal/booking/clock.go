package booking

import "time"

const dateLayout = "2006-01-02"

// minutesOfDay parses an HH:MM wall-clock string into minutes since
// midnight. The format is strict: two digits, a colon, two digits.
// Chronological comparisons work on the returned value, never on the
// raw strings.
func minutesOfDay(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, ErrInvalidTime
	}
	for _, i := range [4]int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, ErrInvalidTime
		}
	}
	hour := int(s[0]-'0')*10 + int(s[1]-'0')
	minute := int(s[3]-'0')*10 + int(s[4]-'0')
	if hour > 23 || minute > 59 {
		return 0, ErrInvalidTime
	}
	return hour*60 + minute, nil
}

// canonicalDate validates a YYYY-MM-DD string as a real calendar date
// and returns it in canonical form.
func canonicalDate(s string) (string, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", ErrInvalidDate
	}
	return t.Format(dateLayout), nil
}

// slotStart resolves the local wall-clock instant a slot begins.
func slotStart(date string, startMinutes int) time.Time {
	day, _ := time.ParseInLocation(dateLayout, date, time.Local)
	return day.Add(time.Duration(startMinutes) * time.Minute)
}

// today returns the current calendar day in slot date form.
func today() string {
	return time.Now().Format(dateLayout)
}

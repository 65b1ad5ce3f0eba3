// internal/domain/homework/homework.go
package homework

import "fmt"

// Status is the review state reported by the homework API.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

var verdicts = map[Status]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// Verdict returns the human-readable text for a known status.
func Verdict(s Status) (string, bool) {
	v, ok := verdicts[s]
	return v, ok
}

// Terminal reports whether no further transitions are expected after s.
func (s Status) Terminal() bool {
	return s == StatusApproved
}

// Homework is the part of a homework record the bot cares about.
type Homework struct {
	Name   string
	Status Status
}

// FromRecord extracts name and status from a decoded homework record.
// Missing fields are left empty.
func FromRecord(record map[string]any) Homework {
	return Homework{
		Name:   stringField(record, "homework_name"),
		Status: Status(stringField(record, "status")),
	}
}

// ParseStatus builds the notification text for a homework record.
func ParseStatus(record map[string]any) (string, error) {
	hw := FromRecord(record)
	if hw.Name == "" {
		return "", fmt.Errorf("%w: homework_name=%v", ErrHomeworkName, record["homework_name"])
	}
	if hw.Status == "" {
		return "", fmt.Errorf("%w: status=%v", ErrEmptyStatus, record["status"])
	}
	verdict, ok := Verdict(hw.Status)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUndocumentedStatus, hw.Status)
	}
	return fmt.Sprintf("Изменился статус проверки работы \"%s\". %s", hw.Name, verdict), nil
}

func stringField(record map[string]any, key string) string {
	switch v := record[key].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

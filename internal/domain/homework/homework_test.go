package homework

import (
	"errors"
	"testing"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name    string
		record  map[string]any
		want    string
		wantErr error
	}{
		{
			name:   "approved",
			record: map[string]any{"homework_name": "lesson1", "status": "approved"},
			want:   `Изменился статус проверки работы "lesson1". Работа проверена: ревьюеру всё понравилось. Ура!`,
		},
		{
			name:   "reviewing",
			record: map[string]any{"homework_name": "lesson2", "status": "reviewing"},
			want:   `Изменился статус проверки работы "lesson2". Работа взята на проверку ревьюером.`,
		},
		{
			name:   "rejected",
			record: map[string]any{"homework_name": "lesson3", "status": "rejected"},
			want:   `Изменился статус проверки работы "lesson3". Работа проверена: у ревьюера есть замечания.`,
		},
		{
			name:    "missing name",
			record:  map[string]any{"status": "approved"},
			wantErr: ErrHomeworkName,
		},
		{
			name:    "empty name",
			record:  map[string]any{"homework_name": "", "status": "approved"},
			wantErr: ErrHomeworkName,
		},
		{
			name:    "missing status",
			record:  map[string]any{"homework_name": "lesson1"},
			wantErr: ErrEmptyStatus,
		},
		{
			name:    "empty status",
			record:  map[string]any{"homework_name": "lesson1", "status": ""},
			wantErr: ErrEmptyStatus,
		},
		{
			name:    "undocumented status",
			record:  map[string]any{"homework_name": "lesson1", "status": "lost"},
			wantErr: ErrUndocumentedStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStatus(tt.record)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				if got != "" {
					t.Errorf("expected empty message on error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("message mismatch:\n got: %s\nwant: %s", got, tt.want)
			}
		})
	}
}

func TestStatusTerminal(t *testing.T) {
	if !StatusApproved.Terminal() {
		t.Error("approved should be terminal")
	}
	for _, s := range []Status{StatusReviewing, StatusRejected, "unknown"} {
		if s.Terminal() {
			t.Errorf("%q should not be terminal", s)
		}
	}
}

func TestFromRecord(t *testing.T) {
	hw := FromRecord(map[string]any{"homework_name": "lesson1", "status": "reviewing", "id": 7})
	if hw.Name != "lesson1" || hw.Status != StatusReviewing {
		t.Errorf("unexpected homework: %+v", hw)
	}

	empty := FromRecord(map[string]any{})
	if empty != (Homework{}) {
		t.Errorf("expected zero homework for empty record, got %+v", empty)
	}
}

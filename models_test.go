package daytrack

import "testing"

func TestParseEnums(t *testing.T) {
	if p, err := ParsePriority(" high"); err != nil || p != PriorityHigh {
		t.Errorf("expected HIGH, got %q (%v)", p, err)
	}
	if _, err := ParsePriority("urgent"); err == nil {
		t.Error("expected error for unknown priority")
	}
	if c, err := ParseCategory("Learning"); err != nil || c != CategoryLearning {
		t.Errorf("expected LEARNING, got %q (%v)", c, err)
	}
	if _, err := ParseCategory("chores"); err == nil {
		t.Error("expected error for unknown category")
	}
	if f, err := ParseFrequency("weekly"); err != nil || f != FrequencyWeekly {
		t.Errorf("expected WEEKLY, got %q (%v)", f, err)
	}
	if _, err := ParseFrequency("hourly"); err == nil {
		t.Error("expected error for unknown frequency")
	}
}

func TestNewRecordDefaults(t *testing.T) {
	task := NewTask("write report")
	if task.Priority != PriorityMedium || task.Category != CategoryPersonal {
		t.Errorf("expected MEDIUM/PERSONAL defaults, got %s/%s", task.Priority, task.Category)
	}
	if h := NewHabit("read"); h.Frequency != FrequencyDaily {
		t.Errorf("expected DAILY default, got %s", h.Frequency)
	}
}

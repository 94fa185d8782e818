package stats

import (
	"testing"
)

func TestPercentage(t *testing.T) {
	tests := []struct {
		name     string
		score    float64
		maxScore float64
		want     float64
		ok       bool
	}{
		{"full marks", 92, 100, 92.0, true},
		{"rounds to one decimal", 45, 50, 90.0, true},
		{"repeating decimal", 1, 3, 33.3, true},
		{"above max passes through", 110, 100, 110.0, true},
		{"zero max excluded", 50, 0, 0, false},
		{"negative max excluded", 50, -10, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Percentage(tt.score, tt.maxScore)
			if ok != tt.ok {
				t.Fatalf("Percentage(%v, %v) ok = %v, want %v", tt.score, tt.maxScore, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("Percentage(%v, %v) = %v, want %v", tt.score, tt.maxScore, got, tt.want)
			}
		})
	}
}

func TestStudentAverages(t *testing.T) {
	students := []StudentInfo{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	grades := []GradeRecord{
		{StudentID: "a", Score: 92, MaxScore: 100},
		{StudentID: "a", Score: 45, MaxScore: 50},
		{StudentID: "b", Score: 10, MaxScore: 0}, // unusable, must not count as 0%
	}

	averages := StudentAverages(students, grades)
	if len(averages) != 1 {
		t.Fatalf("expected 1 averaged student, got %d", len(averages))
	}
	if averages[0].Student.ID != "a" {
		t.Errorf("expected student a, got %s", averages[0].Student.ID)
	}
	if averages[0].Average != 91.0 {
		t.Errorf("average = %v, want 91.0", averages[0].Average)
	}
	if averages[0].GradeCount != 2 {
		t.Errorf("grade count = %d, want 2", averages[0].GradeCount)
	}
}

func TestStudentAveragesExcludesZeroGradeStudents(t *testing.T) {
	students := []StudentInfo{{ID: "a"}, {ID: "empty"}}
	grades := []GradeRecord{{StudentID: "a", Score: 80, MaxScore: 100}}

	averages := StudentAverages(students, grades)
	for _, avg := range averages {
		if avg.Student.ID == "empty" {
			t.Fatal("student with no grades must be excluded, not shown as 0")
		}
	}
	ranked := TopAverages(averages, 10)
	if len(ranked) != 1 {
		t.Fatalf("top list should hold exactly the averaged student, got %d entries", len(ranked))
	}
}

func TestAttendanceRates(t *testing.T) {
	students := []StudentInfo{{ID: "a"}, {ID: "none"}}
	records := []AttendanceRecord{
		{StudentID: "a", Status: "present"},
		{StudentID: "a", Status: "present"},
		{StudentID: "a", Status: "absent"},
		{StudentID: "a", Status: "late"},
		{StudentID: "a", Status: "excused"},
	}

	rates := AttendanceRates(students, records)
	if len(rates) != 2 {
		t.Fatalf("expected 2 rated students, got %d", len(rates))
	}

	// late and excused count toward total days but not present days
	if rates[0].Rate != 40.0 {
		t.Errorf("rate = %v, want 40.0", rates[0].Rate)
	}
	if rates[0].PresentDays != 2 || rates[0].TotalDays != 5 {
		t.Errorf("days = %d/%d, want 2/5", rates[0].PresentDays, rates[0].TotalDays)
	}

	// a student with no rows gets rate 0, unlike the grades case where
	// they would be excluded
	if rates[1].Student.ID != "none" {
		t.Fatalf("student without records missing from rates")
	}
	if rates[1].Rate != 0 {
		t.Errorf("rate for student without records = %v, want 0", rates[1].Rate)
	}
}

func TestCourseKeyword(t *testing.T) {
	if got := CourseKeyword("دورة البراعم"); got != "البراعم" {
		t.Errorf("CourseKeyword = %q, want %q", got, "البراعم")
	}
	if got := CourseKeyword("البراعم"); got != "البراعم" {
		t.Errorf("CourseKeyword without prefix = %q, want unchanged", got)
	}
}

func TestMatchesCourse(t *testing.T) {
	keyword := CourseKeyword("دورة البراعم")

	// any of the four candidate fields may carry the course text
	tests := []struct {
		name    string
		student StudentInfo
		want    bool
	}{
		{"class_name", StudentInfo{ClassName: "دورة البراعم"}, true},
		{"grade_ar", StudentInfo{GradeAr: "دورة البراعم"}, true},
		{"grade", StudentInfo{Grade: "البراعم - أ"}, true},
		{"subclass_name", StudentInfo{SubclassName: "براعم"}, false},
		{"subclass containing keyword", StudentInfo{SubclassName: "صف البراعم الأول"}, true},
		{"no field matches", StudentInfo{GradeAr: "دورة الأشبال"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesCourse(tt.student, keyword); got != tt.want {
				t.Errorf("MatchesCourse = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCourseAverages(t *testing.T) {
	students := []StudentInfo{
		{ID: "a", GradeAr: "دورة البراعم"},
		{ID: "b", ClassName: "دورة البراعم"},
		{ID: "c", GradeAr: "دورة الأشبال"},
		{ID: "d", GradeAr: "دورة البراعم"}, // no grades, must not drag the course down
	}
	grades := []GradeRecord{
		{StudentID: "a", Score: 90, MaxScore: 100},
		{StudentID: "b", Score: 70, MaxScore: 100},
		{StudentID: "c", Score: 50, MaxScore: 100},
	}
	courses := []CourseAverage{
		{Name: "Buds", NameAr: "دورة البراعم"},
		{Name: "Cubs", NameAr: "دورة الأشبال"},
		{Name: "Empty", NameAr: "دورة الزهور"},
	}

	averages := StudentAverages(students, grades)
	result := CourseAverages(courses, students, averages)
	if len(result) != 3 {
		t.Fatalf("expected 3 courses, got %d", len(result))
	}
	if result[0].Average != 80.0 || result[0].StudentCount != 2 {
		t.Errorf("Buds = %v over %d students, want 80.0 over 2", result[0].Average, result[0].StudentCount)
	}
	if result[1].Average != 50.0 || result[1].StudentCount != 1 {
		t.Errorf("Cubs = %v over %d students, want 50.0 over 1", result[1].Average, result[1].StudentCount)
	}
	if result[2].Average != 0 || result[2].StudentCount != 0 {
		t.Errorf("Empty course = %v over %d students, want 0 over 0", result[2].Average, result[2].StudentCount)
	}
}

func TestRankByAverageStableTies(t *testing.T) {
	averages := []StudentAverage{
		{Student: StudentInfo{ID: "first"}, Average: 90},
		{Student: StudentInfo{ID: "second"}, Average: 90},
		{Student: StudentInfo{ID: "third"}, Average: 95},
	}

	ranked := RankByAverage(averages)
	if ranked[0].Student.ID != "third" {
		t.Errorf("ranked[0] = %s, want third", ranked[0].Student.ID)
	}
	// tie keeps original iteration order
	if ranked[1].Student.ID != "first" || ranked[2].Student.ID != "second" {
		t.Errorf("tie order = %s, %s; want first, second", ranked[1].Student.ID, ranked[2].Student.ID)
	}

	if len(TopAverages(averages, 2)) != 2 {
		t.Error("TopAverages(2) should slice to 2 entries")
	}
	if len(TopAverages(averages, 10)) != 3 {
		t.Error("TopAverages larger than the list returns everything")
	}
}

package store

import "github.com/edusga/sga-admin/internal/model"

// EnrollmentFormState models the enrollment form's dependent fields:
// the visible course list is filtered by the selected subject, and a
// course selection that falls outside the filtered set is cleared. The
// rule is re-evaluated on every subject or course-list change.
type EnrollmentFormState struct {
	studentID int
	subjectID int
	courseID  int
	courses   []model.Course
}

func NewEnrollmentFormState(courses []model.Course) *EnrollmentFormState {
	return &EnrollmentFormState{courses: courses}
}

func (f *EnrollmentFormState) SelectStudent(id int) { f.studentID = id }

// SelectSubject picks a subject and clears the course selection when
// the chosen course does not belong to it.
func (f *EnrollmentFormState) SelectSubject(id int) {
	f.subjectID = id
	f.applyReset()
}

// SelectCourse picks a course from the visible set. Selecting a course
// outside the set is ignored and reported false.
func (f *EnrollmentFormState) SelectCourse(id int) bool {
	for _, c := range f.VisibleCourses() {
		if c.ID == id {
			f.courseID = id
			return true
		}
	}
	return false
}

// SetCourses replaces the full course list, re-evaluating the reset.
func (f *EnrollmentFormState) SetCourses(courses []model.Course) {
	f.courses = courses
	f.applyReset()
}

// VisibleCourses returns the courses belonging to the selected subject,
// or every course while no subject is selected.
func (f *EnrollmentFormState) VisibleCourses() []model.Course {
	if f.subjectID == 0 {
		return f.courses
	}
	visible := make([]model.Course, 0, len(f.courses))
	for _, c := range f.courses {
		if c.SubjectID == f.subjectID {
			visible = append(visible, c)
		}
	}
	return visible
}

func (f *EnrollmentFormState) StudentID() int { return f.studentID }
func (f *EnrollmentFormState) SubjectID() int { return f.subjectID }
func (f *EnrollmentFormState) CourseID() int  { return f.courseID }

// Form assembles the submit payload; ok is false until student, subject
// and course are all selected.
func (f *EnrollmentFormState) Form() (form model.EnrollmentForm, ok bool) {
	if f.studentID == 0 || f.subjectID == 0 || f.courseID == 0 {
		return form, false
	}
	return model.EnrollmentForm{
		StudentID: f.studentID,
		CourseID:  f.courseID,
		SubjectID: f.subjectID,
	}, true
}

func (f *EnrollmentFormState) applyReset() {
	if f.courseID == 0 {
		return
	}
	for _, c := range f.VisibleCourses() {
		if c.ID == f.courseID {
			return
		}
	}
	f.courseID = 0
}

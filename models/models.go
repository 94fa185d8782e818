package models

// ParentLoginRequest for parent and teacher authentication
type ParentLoginRequest struct {
	Mobile   string `json:"mobile" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminLoginRequest for admin authentication
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Parent model
type Parent struct {
	ID           string `json:"id"`
	Mobile       string `json:"mobile"`
	Name         string `json:"name"`
	NameAr       string `json:"name_ar"`
	Relationship string `json:"relationship"`
	CreatedAt    string `json:"created_at"`
}

// CreateParentRequest for parent registration
type CreateParentRequest struct {
	Mobile       string `json:"mobile" binding:"required"`
	Password     string `json:"password" binding:"required"`
	Name         string `json:"name" binding:"required"`
	NameAr       string `json:"name_ar" binding:"required"`
	Relationship string `json:"relationship"`
}

// Teacher model
type Teacher struct {
	ID        string `json:"id"`
	Mobile    string `json:"mobile"`
	Name      string `json:"name"`
	NameAr    string `json:"name_ar"`
	CreatedAt string `json:"created_at"`
}

// CreateTeacherRequest for teacher registration
type CreateTeacherRequest struct {
	Mobile   string `json:"mobile" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
	NameAr   string `json:"name_ar" binding:"required"`
}

// Admin model
type Admin struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Name      string `json:"name"`
	NameAr    string `json:"name_ar"`
	CreatedAt string `json:"created_at"`
}

// Student model
type Student struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	NameAr       string `json:"name_ar"`
	Grade        string `json:"grade"`
	GradeAr      string `json:"grade_ar"`
	ClassName    string `json:"class_name"`
	SubclassName string `json:"subclass_name"`
	ParentID     string `json:"parent_id"`
	CreatedAt    string `json:"created_at"`
}

// CreateStudentRequest for student creation
type CreateStudentRequest struct {
	Name         string `json:"name" binding:"required"`
	NameAr       string `json:"name_ar" binding:"required"`
	Grade        string `json:"grade"`
	GradeAr      string `json:"grade_ar"`
	ClassName    string `json:"class_name"`
	SubclassName string `json:"subclass_name"`
	ParentID     string `json:"parent_id" binding:"required"`
}

// Grade model
type Grade struct {
	ID        string  `json:"id"`
	StudentID string  `json:"student_id"`
	TeacherID *string `json:"teacher_id"`
	Subject   string  `json:"subject"`
	SubjectAr string  `json:"subject_ar"`
	Score     float64 `json:"score"`
	MaxScore  float64 `json:"max_score"`
	Date      string  `json:"date"`
	CreatedAt string  `json:"created_at"`
}

// CreateGradeRequest for grade creation. Score and max_score are not
// cross-validated; percentages above 100 are accepted.
type CreateGradeRequest struct {
	StudentID string   `json:"student_id" binding:"required"`
	TeacherID *string  `json:"teacher_id"`
	Subject   string   `json:"subject" binding:"required"`
	SubjectAr string   `json:"subject_ar"`
	Score     *float64 `json:"score" binding:"required"`
	MaxScore  *float64 `json:"max_score" binding:"required"`
	Date      string   `json:"date"`
}

// Attendance model
type Attendance struct {
	ID        string  `json:"id"`
	StudentID string  `json:"student_id"`
	TeacherID *string `json:"teacher_id"`
	Date      string  `json:"date"`
	Status    string  `json:"status"`
	Notes     string  `json:"notes"`
	CreatedAt string  `json:"created_at"`
}

// CreateAttendanceRequest for attendance submission
type CreateAttendanceRequest struct {
	StudentID string  `json:"student_id" binding:"required"`
	TeacherID *string `json:"teacher_id"`
	Date      string  `json:"date" binding:"required"`
	Status    string  `json:"status" binding:"required,oneof=present absent late excused"`
	Notes     string  `json:"notes"`
}

// Announcement model
type Announcement struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	TitleAr   string  `json:"title_ar"`
	Content   string  `json:"content"`
	ContentAr string  `json:"content_ar"`
	TeacherID *string `json:"teacher_id"`
	CreatedAt string  `json:"created_at"`
}

// CreateAnnouncementRequest for announcement creation
type CreateAnnouncementRequest struct {
	Title     string  `json:"title" binding:"required"`
	TitleAr   string  `json:"title_ar" binding:"required"`
	Content   string  `json:"content"`
	ContentAr string  `json:"content_ar"`
	TeacherID *string `json:"teacher_id"`
}

// Event model
type Event struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	TitleAr       string `json:"title_ar"`
	Description   string `json:"description"`
	DescriptionAr string `json:"description_ar"`
	Date          string `json:"date"`
	Type          string `json:"type"`
	CreatedAt     string `json:"created_at"`
}

// CreateEventRequest for event creation
type CreateEventRequest struct {
	Title         string `json:"title" binding:"required"`
	TitleAr       string `json:"title_ar" binding:"required"`
	Description   string `json:"description"`
	DescriptionAr string `json:"description_ar"`
	Date          string `json:"date" binding:"required"`
	Type          string `json:"type"`
}

// SlideshowImage model
type SlideshowImage struct {
	ID           string `json:"id"`
	ImageURL     string `json:"image_url"`
	Title        string `json:"title"`
	TitleAr      string `json:"title_ar"`
	DisplayOrder int    `json:"display_order"`
	IsActive     bool   `json:"is_active"`
	CreatedAt    string `json:"created_at"`
}

// CreateSlideRequest for slideshow creation. ImageData is a base64
// payload; ImageURL may be given instead to reference an existing file.
type CreateSlideRequest struct {
	ImageData    string `json:"image_data"`
	ImageURL     string `json:"image_url"`
	Title        string `json:"title"`
	TitleAr      string `json:"title_ar"`
	DisplayOrder *int   `json:"display_order"`
	IsActive     *bool  `json:"is_active"`
}

// EvaluationForm model
type EvaluationForm struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	NameAr      string               `json:"name_ar"`
	Description string               `json:"description"`
	IsActive    bool                 `json:"is_active"`
	CreatedAt   string               `json:"created_at"`
	Questions   []EvaluationQuestion `json:"questions,omitempty"`
}

// CreateFormRequest for evaluation form creation
type CreateFormRequest struct {
	Name        string `json:"name" binding:"required"`
	NameAr      string `json:"name_ar" binding:"required"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

// EvaluationQuestion model
type EvaluationQuestion struct {
	ID           string         `json:"id"`
	FormID       string         `json:"form_id"`
	Question     string         `json:"question"`
	QuestionAr   string         `json:"question_ar"`
	AnswerType   string         `json:"answer_type"`
	DisplayOrder int            `json:"display_order"`
	CreatedAt    string         `json:"created_at"`
	Options      []AnswerOption `json:"options,omitempty"`
}

// CreateQuestionRequest for evaluation question creation
type CreateQuestionRequest struct {
	FormID       string `json:"form_id" binding:"required"`
	Question     string `json:"question" binding:"required"`
	QuestionAr   string `json:"question_ar" binding:"required"`
	AnswerType   string `json:"answer_type" binding:"required"`
	DisplayOrder *int   `json:"display_order"`
}

// AnswerOption model
type AnswerOption struct {
	ID           string `json:"id"`
	QuestionID   string `json:"question_id"`
	OptionText   string `json:"option_text"`
	OptionTextAr string `json:"option_text_ar"`
	OptionValue  int    `json:"option_value"`
	DisplayOrder int    `json:"display_order"`
	CreatedAt    string `json:"created_at"`
}

// CreateOptionRequest for answer option creation
type CreateOptionRequest struct {
	QuestionID   string `json:"question_id" binding:"required"`
	OptionText   string `json:"option_text" binding:"required"`
	OptionTextAr string `json:"option_text_ar" binding:"required"`
	OptionValue  *int   `json:"option_value" binding:"required"`
	DisplayOrder *int   `json:"display_order"`
}

// StudentEvaluation model
type StudentEvaluation struct {
	ID             string             `json:"id"`
	StudentID      string             `json:"student_id"`
	FormID         string             `json:"form_id"`
	TeacherID      *string            `json:"teacher_id"`
	EvaluationDate string             `json:"evaluation_date"`
	Notes          string             `json:"notes"`
	CreatedAt      string             `json:"created_at"`
	Answers        []EvaluationAnswer `json:"answers,omitempty"`
}

// SubmitEvaluationRequest for student evaluation submission
type SubmitEvaluationRequest struct {
	StudentID      string                `json:"student_id" binding:"required"`
	FormID         string                `json:"form_id" binding:"required"`
	TeacherID      *string               `json:"teacher_id"`
	EvaluationDate string                `json:"evaluation_date" binding:"required"`
	Notes          string                `json:"notes"`
	Answers        []SubmitAnswerRequest `json:"answers" binding:"required,dive"`
}

// SubmitAnswerRequest is one answer within an evaluation submission
type SubmitAnswerRequest struct {
	QuestionID string `json:"question_id" binding:"required"`
	OptionID   string `json:"option_id" binding:"required"`
}

// EvaluationAnswer model
type EvaluationAnswer struct {
	ID           string `json:"id"`
	EvaluationID string `json:"evaluation_id"`
	QuestionID   string `json:"question_id"`
	OptionID     string `json:"option_id"`
	CreatedAt    string `json:"created_at"`
}

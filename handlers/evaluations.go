package handlers

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"madrasati/models"
	"madrasati/utils"
)

// CreateFormHandler creates an evaluation form
func CreateFormHandler(c *gin.Context) {
	var req models.CreateFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	form := models.EvaluationForm{
		ID:          utils.NewID(),
		Name:        req.Name,
		NameAr:      req.NameAr,
		Description: req.Description,
		IsActive:    isActive,
		CreatedAt:   utils.Now(),
	}

	db := c.MustGet("db").(*sql.DB)
	_, err := db.Exec(`
		INSERT INTO evaluation_forms (id, name, name_ar, description, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		form.ID, form.Name, form.NameAr, form.Description, form.IsActive, form.CreatedAt)
	if err != nil {
		log.Printf("Error inserting form: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusCreated, form)
}

// ListFormsHandler lists all evaluation forms
func ListFormsHandler(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)
	rows, err := db.Query(`
		SELECT id, name, name_ar, description, is_active, created_at
		FROM evaluation_forms ORDER BY created_at`)
	if err != nil {
		log.Printf("Error querying forms: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	defer rows.Close()

	forms := []models.EvaluationForm{}
	for rows.Next() {
		var f models.EvaluationForm
		if err := rows.Scan(&f.ID, &f.Name, &f.NameAr, &f.Description, &f.IsActive, &f.CreatedAt); err != nil {
			log.Printf("Error scanning form: %v", err)
			continue
		}
		forms = append(forms, f)
	}

	c.JSON(http.StatusOK, forms)
}

func loadQuestions(db *sql.DB, formID string) ([]models.EvaluationQuestion, error) {
	rows, err := db.Query(`
		SELECT id, form_id, question, question_ar, answer_type, display_order, created_at
		FROM evaluation_questions WHERE form_id = ? ORDER BY display_order`, formID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := []models.EvaluationQuestion{}
	for rows.Next() {
		var q models.EvaluationQuestion
		if err := rows.Scan(&q.ID, &q.FormID, &q.Question, &q.QuestionAr, &q.AnswerType, &q.DisplayOrder, &q.CreatedAt); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}

	for i := range questions {
		optRows, err := db.Query(`
			SELECT id, question_id, option_text, option_text_ar, option_value, display_order, created_at
			FROM answer_options WHERE question_id = ? ORDER BY display_order`, questions[i].ID)
		if err != nil {
			return nil, err
		}
		options := []models.AnswerOption{}
		for optRows.Next() {
			var o models.AnswerOption
			if err := optRows.Scan(&o.ID, &o.QuestionID, &o.OptionText, &o.OptionTextAr, &o.OptionValue, &o.DisplayOrder, &o.CreatedAt); err != nil {
				optRows.Close()
				return nil, err
			}
			options = append(options, o)
		}
		optRows.Close()
		questions[i].Options = options
	}

	return questions, nil
}

// GetFormHandler fetches a form with its questions and options
func GetFormHandler(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)
	var f models.EvaluationForm
	err := db.QueryRow(`
		SELECT id, name, name_ar, description, is_active, created_at
		FROM evaluation_forms WHERE id = ?`, c.Param("id")).Scan(
		&f.ID, &f.Name, &f.NameAr, &f.Description, &f.IsActive, &f.CreatedAt)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Form not found"})
		return
	} else if err != nil {
		log.Printf("Error querying form: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	f.Questions, err = loadQuestions(db, f.ID)
	if err != nil {
		log.Printf("Error querying questions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, f)
}

// UpdateFormHandler updates a form's fields
func UpdateFormHandler(c *gin.Context) {
	var req models.CreateFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	db := c.MustGet("db").(*sql.DB)
	result, err := db.Exec(`
		UPDATE evaluation_forms
		SET name = ?, name_ar = ?, description = ?, is_active = ?
		WHERE id = ?`,
		req.Name, req.NameAr, req.Description, isActive, c.Param("id"))
	if err != nil {
		log.Printf("Error updating form: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if n, _ := result.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Form not found"})
		return
	}

	GetFormHandler(c)
}

// DeleteFormHandler deletes a form, its questions and their options
func DeleteFormHandler(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)
	result, err := db.Exec(`DELETE FROM evaluation_forms WHERE id = ?`, c.Param("id"))
	if err != nil {
		log.Printf("Error deleting form: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if n, _ := result.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Form not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// CreateQuestionHandler adds a question to an existing form
func CreateQuestionHandler(c *gin.Context) {
	var req models.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	db := c.MustGet("db").(*sql.DB)

	var exists bool
	if err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM evaluation_forms WHERE id = ?)`, req.FormID).Scan(&exists); err != nil {
		log.Printf("Error checking form: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Form not found"})
		return
	}

	displayOrder := 0
	if req.DisplayOrder != nil {
		displayOrder = *req.DisplayOrder
	} else {
		if err := db.QueryRow(`SELECT COALESCE(MAX(display_order), 0) + 1 FROM evaluation_questions WHERE form_id = ?`, req.FormID).Scan(&displayOrder); err != nil {
			log.Printf("Error querying display order: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
	}

	question := models.EvaluationQuestion{
		ID:           utils.NewID(),
		FormID:       req.FormID,
		Question:     req.Question,
		QuestionAr:   req.QuestionAr,
		AnswerType:   req.AnswerType,
		DisplayOrder: displayOrder,
		CreatedAt:    utils.Now(),
	}

	_, err := db.Exec(`
		INSERT INTO evaluation_questions (id, form_id, question, question_ar, answer_type, display_order, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		question.ID, question.FormID, question.Question, question.QuestionAr,
		question.AnswerType, question.DisplayOrder, question.CreatedAt)
	if err != nil {
		log.Printf("Error inserting question: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusCreated, question)
}

// UpdateQuestionHandler updates a question's fields
func UpdateQuestionHandler(c *gin.Context) {
	var req models.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	displayOrder := 0
	if req.DisplayOrder != nil {
		displayOrder = *req.DisplayOrder
	}

	db := c.MustGet("db").(*sql.DB)
	result, err := db.Exec(`
		UPDATE evaluation_questions
		SET question = ?, question_ar = ?, answer_type = ?, display_order = ?
		WHERE id = ?`,
		req.Question, req.QuestionAr, req.AnswerType, displayOrder, c.Param("id"))
	if err != nil {
		log.Printf("Error updating question: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if n, _ := result.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
		return
	}

	var q models.EvaluationQuestion
	if err := db.QueryRow(`
		SELECT id, form_id, question, question_ar, answer_type, display_order, created_at
		FROM evaluation_questions WHERE id = ?`, c.Param("id")).Scan(
		&q.ID, &q.FormID, &q.Question, &q.QuestionAr, &q.AnswerType, &q.DisplayOrder, &q.CreatedAt); err != nil {
		log.Printf("Error querying question: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, q)
}

// DeleteQuestionHandler deletes a question and its options
func DeleteQuestionHandler(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)
	result, err := db.Exec(`DELETE FROM evaluation_questions WHERE id = ?`, c.Param("id"))
	if err != nil {
		log.Printf("Error deleting question: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if n, _ := result.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// CreateOptionHandler adds an answer option to an existing question
func CreateOptionHandler(c *gin.Context) {
	var req models.CreateOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	db := c.MustGet("db").(*sql.DB)

	var exists bool
	if err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM evaluation_questions WHERE id = ?)`, req.QuestionID).Scan(&exists); err != nil {
		log.Printf("Error checking question: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
		return
	}

	displayOrder := 0
	if req.DisplayOrder != nil {
		displayOrder = *req.DisplayOrder
	} else {
		if err := db.QueryRow(`SELECT COALESCE(MAX(display_order), 0) + 1 FROM answer_options WHERE question_id = ?`, req.QuestionID).Scan(&displayOrder); err != nil {
			log.Printf("Error querying display order: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
	}

	option := models.AnswerOption{
		ID:           utils.NewID(),
		QuestionID:   req.QuestionID,
		OptionText:   req.OptionText,
		OptionTextAr: req.OptionTextAr,
		OptionValue:  *req.OptionValue,
		DisplayOrder: displayOrder,
		CreatedAt:    utils.Now(),
	}

	_, err := db.Exec(`
		INSERT INTO answer_options (id, question_id, option_text, option_text_ar, option_value, display_order, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		option.ID, option.QuestionID, option.OptionText, option.OptionTextAr,
		option.OptionValue, option.DisplayOrder, option.CreatedAt)
	if err != nil {
		log.Printf("Error inserting option: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusCreated, option)
}

// UpdateOptionHandler updates an answer option's fields
func UpdateOptionHandler(c *gin.Context) {
	var req models.CreateOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	displayOrder := 0
	if req.DisplayOrder != nil {
		displayOrder = *req.DisplayOrder
	}

	db := c.MustGet("db").(*sql.DB)
	result, err := db.Exec(`
		UPDATE answer_options
		SET option_text = ?, option_text_ar = ?, option_value = ?, display_order = ?
		WHERE id = ?`,
		req.OptionText, req.OptionTextAr, *req.OptionValue, displayOrder, c.Param("id"))
	if err != nil {
		log.Printf("Error updating option: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if n, _ := result.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Option not found"})
		return
	}

	var o models.AnswerOption
	if err := db.QueryRow(`
		SELECT id, question_id, option_text, option_text_ar, option_value, display_order, created_at
		FROM answer_options WHERE id = ?`, c.Param("id")).Scan(
		&o.ID, &o.QuestionID, &o.OptionText, &o.OptionTextAr, &o.OptionValue, &o.DisplayOrder, &o.CreatedAt); err != nil {
		log.Printf("Error querying option: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, o)
}

// DeleteOptionHandler deletes an answer option
func DeleteOptionHandler(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)
	result, err := db.Exec(`DELETE FROM answer_options WHERE id = ?`, c.Param("id"))
	if err != nil {
		log.Printf("Error deleting option: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if n, _ := result.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Option not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// SubmitEvaluationHandler records a student evaluation and its answers
// in one transaction. Each answer's option must belong to its question.
func SubmitEvaluationHandler(c *gin.Context) {
	var req models.SubmitEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	db := c.MustGet("db").(*sql.DB)

	var exists bool
	if err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM students WHERE id = ?)`, req.StudentID).Scan(&exists); err != nil {
		log.Printf("Error checking student: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	}
	if err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM evaluation_forms WHERE id = ?)`, req.FormID).Scan(&exists); err != nil {
		log.Printf("Error checking form: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Form not found"})
		return
	}

	for _, a := range req.Answers {
		var valid bool
		err := db.QueryRow(`
			SELECT EXISTS (SELECT 1 FROM answer_options WHERE id = ? AND question_id = ?)`,
			a.OptionID, a.QuestionID).Scan(&valid)
		if err != nil {
			log.Printf("Error checking answer option: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		if !valid {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Option does not belong to question"})
			return
		}
	}

	evaluation := models.StudentEvaluation{
		ID:             utils.NewID(),
		StudentID:      req.StudentID,
		FormID:         req.FormID,
		TeacherID:      req.TeacherID,
		EvaluationDate: req.EvaluationDate,
		Notes:          req.Notes,
		CreatedAt:      utils.Now(),
	}

	tx, err := db.Begin()
	if err != nil {
		log.Printf("Error starting transaction: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO student_evaluations (id, student_id, form_id, teacher_id, evaluation_date, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		evaluation.ID, evaluation.StudentID, evaluation.FormID, evaluation.TeacherID,
		evaluation.EvaluationDate, evaluation.Notes, evaluation.CreatedAt)
	if err != nil {
		log.Printf("Error inserting evaluation: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	for _, a := range req.Answers {
		answer := models.EvaluationAnswer{
			ID:           utils.NewID(),
			EvaluationID: evaluation.ID,
			QuestionID:   a.QuestionID,
			OptionID:     a.OptionID,
			CreatedAt:    evaluation.CreatedAt,
		}
		_, err = tx.Exec(`
			INSERT INTO evaluation_answers (id, evaluation_id, question_id, option_id, created_at)
			VALUES (?, ?, ?, ?, ?)`,
			answer.ID, answer.EvaluationID, answer.QuestionID, answer.OptionID, answer.CreatedAt)
		if err != nil {
			log.Printf("Error inserting answer: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		evaluation.Answers = append(evaluation.Answers, answer)
	}

	if err := tx.Commit(); err != nil {
		log.Printf("Error committing evaluation: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusCreated, evaluation)
}

func loadAnswers(db *sql.DB, evaluationID string) ([]models.EvaluationAnswer, error) {
	rows, err := db.Query(`
		SELECT id, evaluation_id, question_id, option_id, created_at
		FROM evaluation_answers WHERE evaluation_id = ?`, evaluationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	answers := []models.EvaluationAnswer{}
	for rows.Next() {
		var a models.EvaluationAnswer
		if err := rows.Scan(&a.ID, &a.EvaluationID, &a.QuestionID, &a.OptionID, &a.CreatedAt); err != nil {
			return nil, err
		}
		answers = append(answers, a)
	}
	return answers, nil
}

// GetEvaluationHandler fetches one evaluation with its answers
func GetEvaluationHandler(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)
	var e models.StudentEvaluation
	err := db.QueryRow(`
		SELECT id, student_id, form_id, teacher_id, evaluation_date, notes, created_at
		FROM student_evaluations WHERE id = ?`, c.Param("id")).Scan(
		&e.ID, &e.StudentID, &e.FormID, &e.TeacherID, &e.EvaluationDate, &e.Notes, &e.CreatedAt)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Evaluation not found"})
		return
	} else if err != nil {
		log.Printf("Error querying evaluation: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	e.Answers, err = loadAnswers(db, e.ID)
	if err != nil {
		log.Printf("Error querying answers: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, e)
}

// GetStudentEvaluationsHandler lists one student's evaluations
func GetStudentEvaluationsHandler(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)
	studentID := c.Param("id")

	var exists bool
	if err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM students WHERE id = ?)`, studentID).Scan(&exists); err != nil {
		log.Printf("Error checking student: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	}

	rows, err := db.Query(`
		SELECT id, student_id, form_id, teacher_id, evaluation_date, notes, created_at
		FROM student_evaluations WHERE student_id = ? ORDER BY evaluation_date`, studentID)
	if err != nil {
		log.Printf("Error querying evaluations: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	defer rows.Close()

	evaluations := []models.StudentEvaluation{}
	for rows.Next() {
		var e models.StudentEvaluation
		if err := rows.Scan(&e.ID, &e.StudentID, &e.FormID, &e.TeacherID, &e.EvaluationDate, &e.Notes, &e.CreatedAt); err != nil {
			log.Printf("Error scanning evaluation: %v", err)
			continue
		}
		evaluations = append(evaluations, e)
	}

	for i := range evaluations {
		answers, err := loadAnswers(db, evaluations[i].ID)
		if err != nil {
			log.Printf("Error querying answers: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		evaluations[i].Answers = answers
	}

	c.JSON(http.StatusOK, evaluations)
}

// DeleteEvaluationHandler deletes an evaluation and its answers
func DeleteEvaluationHandler(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)
	result, err := db.Exec(`DELETE FROM student_evaluations WHERE id = ?`, c.Param("id"))
	if err != nil {
		log.Printf("Error deleting evaluation: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if n, _ := result.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Evaluation not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

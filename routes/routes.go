package routes

import (
	"github.com/gin-gonic/gin"

	"madrasati/auth"
	"madrasati/handlers"
)

// SetupRoutes configures the API routes
func SetupRoutes(r *gin.Engine) {
	// Public routes
	r.POST("/api/login/parent", auth.ParentLoginHandler)
	r.POST("/api/login/teacher", auth.TeacherLoginHandler)
	r.POST("/api/login/admin", auth.AdminLoginHandler)

	r.GET("/api/announcements", handlers.ListAnnouncementsHandler)
	r.GET("/api/announcements/:id", handlers.GetAnnouncementHandler)
	r.GET("/api/events", handlers.ListEventsHandler)
	r.GET("/api/events/:id", handlers.GetEventHandler)
	r.GET("/api/slideshow/active", handlers.ListActiveSlidesHandler)

	// Staff routes
	protected := r.Group("/api")
	protected.Use(auth.AuthMiddleware())

	protected.GET("/parents", handlers.ListParentsHandler)
	protected.GET("/parents/:id", handlers.GetParentHandler)
	protected.GET("/parents/:id/students", handlers.GetParentStudentsHandler)
	protected.GET("/students", handlers.ListStudentsHandler)
	protected.GET("/students/:id", handlers.GetStudentHandler)
	protected.GET("/students/:id/grades", handlers.GetStudentGradesHandler)
	protected.GET("/students/:id/attendance", handlers.GetStudentAttendanceHandler)
	protected.GET("/students/:id/evaluations", handlers.GetStudentEvaluationsHandler)
	protected.GET("/teachers", handlers.ListTeachersHandler)
	protected.GET("/teachers/:id", handlers.GetTeacherHandler)
	protected.GET("/grades", handlers.ListGradesHandler)
	protected.GET("/grades/:id", handlers.GetGradeHandler)
	protected.GET("/attendance", handlers.ListAttendanceHandler)
	protected.GET("/slideshow", handlers.ListSlidesHandler)
	protected.GET("/slideshow/:id", handlers.GetSlideHandler)
	protected.GET("/evaluations/forms", handlers.ListFormsHandler)
	protected.GET("/evaluations/forms/:id", handlers.GetFormHandler)
	protected.GET("/evaluations/:id", handlers.GetEvaluationHandler)

	// Teacher and admin mutations
	staff := r.Group("/api")
	staff.Use(auth.AuthMiddleware("teacher", "admin"))

	staff.POST("/grades", handlers.CreateGradeHandler)
	staff.PUT("/grades/:id", handlers.UpdateGradeHandler)
	staff.DELETE("/grades/:id", handlers.DeleteGradeHandler)
	staff.POST("/attendance", handlers.SubmitAttendanceHandler)
	staff.PUT("/attendance/:id", handlers.UpdateAttendanceHandler)
	staff.DELETE("/attendance/:id", handlers.DeleteAttendanceHandler)
	staff.POST("/announcements", handlers.CreateAnnouncementHandler)
	staff.PUT("/announcements/:id", handlers.UpdateAnnouncementHandler)
	staff.DELETE("/announcements/:id", handlers.DeleteAnnouncementHandler)
	staff.POST("/evaluations", handlers.SubmitEvaluationHandler)
	staff.DELETE("/evaluations/:id", handlers.DeleteEvaluationHandler)

	// Admin-only routes
	admin := r.Group("/api")
	admin.Use(auth.AuthMiddleware("admin"))

	admin.POST("/parents", handlers.CreateParentHandler)
	admin.PUT("/parents/:id", handlers.UpdateParentHandler)
	admin.DELETE("/parents/:id", handlers.DeleteParentHandler)
	admin.POST("/students", handlers.CreateStudentHandler)
	admin.PUT("/students/:id", handlers.UpdateStudentHandler)
	admin.DELETE("/students/:id", handlers.DeleteStudentHandler)
	admin.POST("/teachers", handlers.CreateTeacherHandler)
	admin.PUT("/teachers/:id", handlers.UpdateTeacherHandler)
	admin.DELETE("/teachers/:id", handlers.DeleteTeacherHandler)
	admin.POST("/events", handlers.CreateEventHandler)
	admin.PUT("/events/:id", handlers.UpdateEventHandler)
	admin.DELETE("/events/:id", handlers.DeleteEventHandler)
	admin.POST("/slideshow", handlers.CreateSlideHandler)
	admin.PUT("/slideshow/:id", handlers.UpdateSlideHandler)
	admin.DELETE("/slideshow/:id", handlers.DeleteSlideHandler)
	admin.POST("/evaluations/forms", handlers.CreateFormHandler)
	admin.PUT("/evaluations/forms/:id", handlers.UpdateFormHandler)
	admin.DELETE("/evaluations/forms/:id", handlers.DeleteFormHandler)
	admin.POST("/evaluations/questions", handlers.CreateQuestionHandler)
	admin.PUT("/evaluations/questions/:id", handlers.UpdateQuestionHandler)
	admin.DELETE("/evaluations/questions/:id", handlers.DeleteQuestionHandler)
	admin.POST("/evaluations/options", handlers.CreateOptionHandler)
	admin.PUT("/evaluations/options/:id", handlers.UpdateOptionHandler)
	admin.DELETE("/evaluations/options/:id", handlers.DeleteOptionHandler)

	admin.GET("/stats/grades", handlers.GetGradeStatsHandler)
	admin.GET("/stats/attendance", handlers.GetAttendanceStatsHandler)
	admin.GET("/stats/courses", handlers.GetCourseStatsHandler)
	admin.GET("/stats/overview", handlers.GetOverviewStatsHandler)
}

package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/vasanthsingh/QuickPass/internal/dto"
	"github.com/vasanthsingh/QuickPass/internal/service"
	"github.com/vasanthsingh/QuickPass/pkg/response"
)

// StudentHandler serves student account management, the student
// self-service endpoints, the warden database view and the bulk import.
type StudentHandler struct {
	studentSvc service.StudentService
	authSvc    service.AuthService
}

// NewStudentHandler creates the StudentHandler.
func NewStudentHandler(studentSvc service.StudentService, authSvc service.AuthService) *StudentHandler {
	return &StudentHandler{studentSvc: studentSvc, authSvc: authSvc}
}

// Login authenticates a student by roll number.
// POST /api/students/login
func (h *StudentHandler) Login(c *gin.Context) {
	var req dto.StudentLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "rollNumber and password are required")
		return
	}

	token, student, err := h.authSvc.LoginStudent(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Unauthorized(c, "Invalid rollNumber or password")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, "Student login successful", response.Payload{"token": token, "student": student})
}

// Create registers a new student. Omitting the password stores the default.
// POST /api/students and POST /api/students/add
func (h *StudentHandler) Create(c *gin.Context) {
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "fullName, rollNumber, studentPhone, parentPhone, hostelBlock and roomNumber are required")
		return
	}

	student, err := h.studentSvc.Create(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Created(c, "Student created successfully", response.Payload{"student": student})
}

// List returns every student.
// GET /api/students
func (h *StudentHandler) List(c *gin.Context) {
	students, err := h.studentSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, "Students retrieved successfully", response.Payload{
		"count":    len(students),
		"students": students,
	})
}

// Get returns one student by id.
// GET /api/students/:id
func (h *StudentHandler) Get(c *gin.Context) {
	student, err := h.studentSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, "Student retrieved successfully", response.Payload{"student": student})
}

// Update applies a partial update to a student.
// PUT /api/students/:id
func (h *StudentHandler) Update(c *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	student, err := h.studentSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, "Student updated successfully", response.Payload{"student": student})
}

// Delete removes a student. Pending profile requests are untouched.
// DELETE /api/students/:id
func (h *StudentHandler) Delete(c *gin.Context) {
	if err := h.studentSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, "Student deleted successfully", nil)
}

// Profile returns the acting student's own record.
// GET /api/students/profile
func (h *StudentHandler) Profile(c *gin.Context) {
	id, ok := MustGetPrincipalID(c)
	if !ok {
		return
	}
	student, err := h.studentSvc.Profile(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, "Student profile retrieved successfully", response.Payload{"student": student})
}

// UpdateProfile updates the acting student's own editable fields.
// PUT /api/students/profile
func (h *StudentHandler) UpdateProfile(c *gin.Context) {
	id, ok := MustGetPrincipalID(c)
	if !ok {
		return
	}

	var req dto.UpdateStudentProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	student, err := h.studentSvc.UpdateProfile(c.Request.Context(), id, &req)
	if err != nil {
		if _, isValidation := service.AsValidation(err); isValidation {
			response.BadRequest(c, "At least one of fullName, studentPhone, parentPhone, studentEmail, parentEmail, year or branch is required")
			return
		}
		writeServiceError(c, err)
		return
	}
	response.OK(c, "Student profile updated successfully", response.Payload{"student": student})
}

// UpdatePassword changes the acting student's own password.
// PUT /api/students/update-password
func (h *StudentHandler) UpdatePassword(c *gin.Context) {
	id, ok := MustGetPrincipalID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	var req dto.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "currentPassword and newPassword are required")
		return
	}

	if err := h.authSvc.ChangePassword(c.Request.Context(), role, id, &req); err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, "Password updated successfully", nil)
}

// CreateProfileRequest records the acting student's proposed profile edits.
// POST /api/students/profile-requests
func (h *StudentHandler) CreateProfileRequest(c *gin.Context) {
	id, ok := MustGetPrincipalID(c)
	if !ok {
		return
	}

	var req dto.CreateProfileRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Provide changes array or updates object with at least one editable field")
		return
	}
	if len(req.Changes) == 0 && len(req.Updates) == 0 {
		response.BadRequest(c, "Provide changes array or updates object with at least one editable field")
		return
	}

	request, err := h.studentSvc.CreateProfileRequest(c.Request.Context(), id, &req)
	if err != nil {
		if _, isValidation := service.AsValidation(err); isValidation {
			response.BadRequest(c, "No valid profile changes found")
			return
		}
		writeServiceError(c, err)
		return
	}
	response.Created(c, "Profile change request submitted successfully", response.Payload{"request": request})
}

// ListProfileRequests returns the acting student's change requests, newest
// first.
// GET /api/students/profile-requests
func (h *StudentHandler) ListProfileRequests(c *gin.Context) {
	id, ok := MustGetPrincipalID(c)
	if !ok {
		return
	}

	requests, err := h.studentSvc.ListProfileRequests(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, "Profile change requests retrieved successfully", response.Payload{
		"count":    len(requests),
		"requests": requests,
	})
}

// DatabaseView returns the warden panel's searchable student table.
// GET /api/warden/students/database?search=
func (h *StudentHandler) DatabaseView(c *gin.Context) {
	view, err := h.studentSvc.DatabaseView(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, "Student database retrieved successfully", response.Payload{"database": view})
}

// Import ingests an uploaded .xlsx workbook of students.
// POST /api/students/import
func (h *StudentHandler) Import(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		response.BadRequest(c, "An .xlsx file upload named 'file' is required")
		return
	}
	defer file.Close()

	result, err := h.studentSvc.ImportStudents(c.Request.Context(), file)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, "Student import completed", response.Payload{"result": result})
}

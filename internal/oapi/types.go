// Package oapi holds the HTTP contract of the resource manager API: DTOs,
// the server interface and its fiber router bindings.
package oapi

// ErrorResponseErrorCode is a machine readable error code.
type ErrorResponseErrorCode string

// Defines values for ErrorResponseErrorCode.
const (
	ASSIGNMENTEXISTS ErrorResponseErrorCode = "ASSIGNMENT_EXISTS"
	CAPACITYEXCEEDED ErrorResponseErrorCode = "CAPACITY_EXCEEDED"
	ENGINEEREXISTS   ErrorResponseErrorCode = "ENGINEER_EXISTS"
	INTERNAL         ErrorResponseErrorCode = "INTERNAL"
	INVALIDARGUMENT  ErrorResponseErrorCode = "INVALID_ARGUMENT"
	NOTFOUND         ErrorResponseErrorCode = "NOT_FOUND"
	PROJECTEXISTS    ErrorResponseErrorCode = "PROJECT_EXISTS"
)

// ErrorResponse defines model for ErrorResponse.
type ErrorResponse struct {
	Error struct {
		Code    ErrorResponseErrorCode `json:"code"`
		Message string                 `json:"message"`
	} `json:"error"`
}

// Engineer defines model for Engineer.
type Engineer struct {
	Id          string   `json:"id"`
	Email       string   `json:"email"`
	Name        string   `json:"name"`
	Skills      []string `json:"skills"`
	Seniority   string   `json:"seniority,omitempty"`
	MaxCapacity int      `json:"max_capacity"`
	Department  string   `json:"department,omitempty"`
}

// EngineerCreate defines model for EngineerCreate.
type EngineerCreate struct {
	Id          string   `json:"id,omitempty"`
	Email       string   `json:"email" validate:"required,email"`
	Name        string   `json:"name" validate:"required"`
	Skills      []string `json:"skills" validate:"dive,required"`
	Seniority   string   `json:"seniority,omitempty" validate:"omitempty,oneof=junior mid senior"`
	MaxCapacity int      `json:"max_capacity,omitempty" validate:"omitempty,gt=0"`
	Department  string   `json:"department,omitempty"`
}

// EngineerUpdate defines model for EngineerUpdate. Absent fields are left unchanged.
type EngineerUpdate struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Skills      []string `json:"skills,omitempty" validate:"omitempty,dive,required"`
	Seniority   *string  `json:"seniority,omitempty" validate:"omitempty,oneof=junior mid senior"`
	MaxCapacity *int     `json:"max_capacity,omitempty" validate:"omitempty,gt=0"`
	Department  *string  `json:"department,omitempty"`
}

// SuitableEngineersRequest defines model for SuitableEngineersRequest.
type SuitableEngineersRequest struct {
	Skills []string `json:"skills" validate:"required,min=1,dive,required"`
}

// Project defines model for Project.
type Project struct {
	Id             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description,omitempty"`
	Status         string   `json:"status"`
	RequiredSkills []string `json:"required_skills"`
	TeamSize       int      `json:"team_size"`
	StartDate      string   `json:"start_date"`
	EndDate        string   `json:"end_date"`
	ManagerId      string   `json:"manager_id,omitempty"`
}

// ProjectCreate defines model for ProjectCreate.
type ProjectCreate struct {
	Id             string   `json:"id,omitempty"`
	Name           string   `json:"name" validate:"required"`
	Description    string   `json:"description,omitempty"`
	Status         string   `json:"status,omitempty" validate:"omitempty,oneof=Planning Active Completed"`
	RequiredSkills []string `json:"required_skills" validate:"dive,required"`
	TeamSize       int      `json:"team_size" validate:"gte=0"`
	StartDate      string   `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate        string   `json:"end_date" validate:"required,datetime=2006-01-02"`
	ManagerId      string   `json:"manager_id,omitempty"`
}

// ProjectUpdate defines model for ProjectUpdate. Absent fields are left unchanged.
type ProjectUpdate struct {
	Name           *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Description    *string  `json:"description,omitempty"`
	Status         *string  `json:"status,omitempty" validate:"omitempty,oneof=Planning Active Completed"`
	RequiredSkills []string `json:"required_skills,omitempty" validate:"omitempty,dive,required"`
	TeamSize       *int     `json:"team_size,omitempty" validate:"omitempty,gte=0"`
	StartDate      *string  `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate        *string  `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// Assignment defines model for Assignment.
type Assignment struct {
	Id                   string `json:"id"`
	EngineerId           string `json:"engineer_id"`
	EngineerName         string `json:"engineer_name"`
	ProjectId            string `json:"project_id"`
	ProjectName          string `json:"project_name"`
	AllocationPercentage int    `json:"allocation_percentage"`
	StartDate            string `json:"start_date"`
	EndDate              string `json:"end_date"`
	Role                 string `json:"role"`
}

// AssignmentCreate defines model for AssignmentCreate.
type AssignmentCreate struct {
	Id                   string `json:"id,omitempty"`
	EngineerId           string `json:"engineer_id" validate:"required"`
	ProjectId            string `json:"project_id" validate:"required"`
	AllocationPercentage int    `json:"allocation_percentage" validate:"required,min=1,max=100"`
	StartDate            string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate              string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Role                 string `json:"role" validate:"required"`
}

// AssignmentUpdate defines model for AssignmentUpdate. Absent fields are left unchanged.
type AssignmentUpdate struct {
	ProjectId            *string `json:"project_id,omitempty" validate:"omitempty,min=1"`
	AllocationPercentage *int    `json:"allocation_percentage,omitempty" validate:"omitempty,min=1,max=100"`
	StartDate            *string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate              *string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Role                 *string `json:"role,omitempty" validate:"omitempty,min=1"`
}

// CapacityValidationRequest defines model for CapacityValidationRequest.
type CapacityValidationRequest struct {
	EngineerId           string `json:"engineer_id" validate:"required"`
	AllocationPercentage int    `json:"allocation_percentage" validate:"gte=0"`
	ExcludeAssignmentId  string `json:"exclude_assignment_id,omitempty"`
}

// UtilizationSummary defines model for UtilizationSummary.
type UtilizationSummary struct {
	EngineerId            string       `json:"engineer_id"`
	EngineerName          string       `json:"engineer_name"`
	CurrentAllocation     int          `json:"current_allocation"`
	MaxCapacity           int          `json:"max_capacity"`
	UtilizationPercentage float64      `json:"utilization_percentage"`
	Overallocated         bool         `json:"overallocated"`
	Level                 string       `json:"level"`
	Assignments           []Assignment `json:"assignments"`
}

// OverlapPair defines model for OverlapPair.
type OverlapPair struct {
	EngineerId string     `json:"engineer_id"`
	First      Assignment `json:"first"`
	Second     Assignment `json:"second"`
}

// TimelineEvent defines model for TimelineEvent.
type TimelineEvent struct {
	Id                   string `json:"id"`
	Title                string `json:"title"`
	Start                string `json:"start"`
	End                  string `json:"end"`
	EngineerName         string `json:"engineer_name"`
	ProjectName          string `json:"project_name"`
	AllocationPercentage int    `json:"allocation_percentage"`
	Level                string `json:"level"`
}

// GetProjectsParams defines parameters for GetProjects.
type GetProjectsParams struct {
	Status *string `query:"status"`
}

// GetAssignmentsParams defines parameters for GetAssignments.
type GetAssignmentsParams struct {
	EngineerId *string `query:"engineer_id"`
	ProjectId  *string `query:"project_id"`
}

// PostEngineersJSONRequestBody defines body for PostEngineers for application/json ContentType.
type PostEngineersJSONRequestBody = EngineerCreate

// PatchEngineersIdJSONRequestBody defines body for PatchEngineersId for application/json ContentType.
type PatchEngineersIdJSONRequestBody = EngineerUpdate

// PostEngineersSuitableJSONRequestBody defines body for PostEngineersSuitable for application/json ContentType.
type PostEngineersSuitableJSONRequestBody = SuitableEngineersRequest

// PostProjectsJSONRequestBody defines body for PostProjects for application/json ContentType.
type PostProjectsJSONRequestBody = ProjectCreate

// PatchProjectsIdJSONRequestBody defines body for PatchProjectsId for application/json ContentType.
type PatchProjectsIdJSONRequestBody = ProjectUpdate

// PostAssignmentsJSONRequestBody defines body for PostAssignments for application/json ContentType.
type PostAssignmentsJSONRequestBody = AssignmentCreate

// PatchAssignmentsIdJSONRequestBody defines body for PatchAssignmentsId for application/json ContentType.
type PatchAssignmentsIdJSONRequestBody = AssignmentUpdate

// PostAssignmentsValidateJSONRequestBody defines body for PostAssignmentsValidate for application/json ContentType.
type PostAssignmentsValidateJSONRequestBody = CapacityValidationRequest

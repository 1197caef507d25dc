package dto

// Bulk actions supported by the admin surface. Activate and deactivate are
// available on every entity; set_student/set_teacher reclassify hero awards;
// duplicate clones news articles.
const (
	BulkActionActivate   = "activate"
	BulkActionDeactivate = "deactivate"
	BulkActionSetStudent = "set_student"
	BulkActionSetTeacher = "set_teacher"
	BulkActionDuplicate  = "duplicate"
)

// BulkActionRequest addresses a caller-selected set of records with one action.
type BulkActionRequest struct {
	IDs    []int64 `json:"ids" binding:"required,min=1"`
	Action string  `json:"action" binding:"required"`
}

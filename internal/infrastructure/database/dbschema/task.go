package dbschema

import (
	"time"

	"gradpath-server/internal/domain/task"
	"gradpath-server/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(Task{})
}

// Task represents the persisted preparation task schema.
type Task struct {
	BaseModel
	PublicID     string     `gorm:"type:varchar(50);uniqueIndex;not null"`
	UserID       uint       `gorm:"index:idx_task_user_status;not null"`
	User         User       `gorm:"foreignKey:UserID"`
	Title        string     `gorm:"type:varchar(255);not null"`
	Description  string     `gorm:"type:text"`
	Status       string     `gorm:"type:varchar(20);index:idx_task_user_status;not null;default:'NOT_STARTED'"`
	Priority     string     `gorm:"type:varchar(10);not null;default:'MEDIUM'"`
	Category     string     `gorm:"type:varchar(20);not null;default:'APPLICATION'"`
	DueDate      *time.Time `gorm:"type:timestamp"`
	UniversityID *uint      `gorm:"index"`
	RelatedStage string     `gorm:"type:varchar(40)"`
	CreatedBy    string     `gorm:"type:varchar(10);not null;default:'USER'"`
}

// NewSchemaTask converts a domain task into a schema instance.
func NewSchemaTask(t *task.Task) *Task {
	if t == nil {
		return nil
	}
	return &Task{
		BaseModel: BaseModel{
			ID:        t.ID,
			CreatedAt: t.CreatedAt,
			UpdatedAt: t.UpdatedAt,
		},
		PublicID:     t.PublicID,
		UserID:       t.UserID,
		Title:        t.Title,
		Description:  t.Description,
		Status:       string(t.Status),
		Priority:     string(t.Priority),
		Category:     string(t.Category),
		DueDate:      t.DueDate,
		UniversityID: t.UniversityID,
		RelatedStage: t.RelatedStage,
		CreatedBy:    string(t.CreatedBy),
	}
}

// EtoD converts a schema task back to the domain representation.
func (t *Task) EtoD() *task.Task {
	if t == nil {
		return nil
	}
	return &task.Task{
		ID:           t.ID,
		PublicID:     t.PublicID,
		UserID:       t.UserID,
		Title:        t.Title,
		Description:  t.Description,
		Status:       task.Status(t.Status),
		Priority:     task.Priority(t.Priority),
		Category:     task.Category(t.Category),
		DueDate:      t.DueDate,
		UniversityID: t.UniversityID,
		RelatedStage: t.RelatedStage,
		CreatedBy:    task.Origin(t.CreatedBy),
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

package dbschema

import (
	"github.com/shopspring/decimal"

	"gradpath-server/internal/domain/university"
	"gradpath-server/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(University{})
}

// University represents the persisted catalog entry schema.
type University struct {
	BaseModel
	PublicID          string          `gorm:"type:varchar(50);uniqueIndex;not null"`
	Name              string          `gorm:"type:varchar(255);uniqueIndex;not null"`
	Country           string          `gorm:"type:varchar(100);index"`
	Program           string          `gorm:"type:varchar(255)"`
	Rank              int             `gorm:"index"`
	TuitionFeePerYear decimal.Decimal `gorm:"type:numeric(12,2)"`
	CostLevel         string          `gorm:"type:varchar(40)"`
	Competitiveness   string          `gorm:"type:varchar(40)"`
	AcceptanceChance  string          `gorm:"type:varchar(40)"`
	Description       string          `gorm:"type:text"`
	WhyItFits         string          `gorm:"type:text"`
	Risks             string          `gorm:"type:text"`
	IsActive          bool            `gorm:"not null;default:true"`
}

// NewSchemaUniversity converts a domain catalog entry into a schema instance.
func NewSchemaUniversity(u *university.University) *University {
	if u == nil {
		return nil
	}
	return &University{
		BaseModel: BaseModel{
			ID:        u.ID,
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
		},
		PublicID:          u.PublicID,
		Name:              u.Name,
		Country:           u.Country,
		Program:           u.Program,
		Rank:              u.Rank,
		TuitionFeePerYear: u.TuitionFeePerYear,
		CostLevel:         u.CostLevel,
		Competitiveness:   u.Competitiveness,
		AcceptanceChance:  u.AcceptanceChance,
		Description:       u.Description,
		WhyItFits:         u.WhyItFits,
		Risks:             u.Risks,
		IsActive:          u.IsActive,
	}
}

// EtoD converts a schema entry back to the domain representation.
func (u *University) EtoD() *university.University {
	if u == nil {
		return nil
	}
	return &university.University{
		ID:                u.ID,
		PublicID:          u.PublicID,
		Name:              u.Name,
		Country:           u.Country,
		Program:           u.Program,
		Rank:              u.Rank,
		TuitionFeePerYear: u.TuitionFeePerYear,
		CostLevel:         u.CostLevel,
		Competitiveness:   u.Competitiveness,
		AcceptanceChance:  u.AcceptanceChance,
		Description:       u.Description,
		WhyItFits:         u.WhyItFits,
		Risks:             u.Risks,
		IsActive:          u.IsActive,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}

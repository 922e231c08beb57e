package service

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	flatModel "societyhub_backend/internals/features/society/flats/model"
	towerModel "societyhub_backend/internals/features/society/towers/model"
)

var (
	ErrTowerNotFound = errors.New("tower not found")
	ErrDuplicateFlat = errors.New("flat code already exists")
)

type CreateFlatInput struct {
	TowerCode  string
	Floor      int
	UnitNumber int
	OwnerName  string
}

// ComposeFlatCode builds the canonical flat code: <tower>-<floor><unit, 2 digits>.
// "A", 1, 1 -> "A-101". Composing server-side keeps the tower-prefix invariant
// true by construction.
func ComposeFlatCode(towerCode string, floor, unit int) string {
	return fmt.Sprintf("%s-%d%02d", strings.ToUpper(towerCode), floor, unit)
}

// CreateFlat validates the tower reference and inserts the flat with its
// composed code. Duplicate codes are rejected by the unique index.
func CreateFlat(db *gorm.DB, in CreateFlatInput) (*flatModel.FlatModel, error) {
	var tower towerModel.TowerModel
	if err := db.Where("tower_code = ?", strings.ToUpper(in.TowerCode)).First(&tower).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTowerNotFound
		}
		return nil, err
	}

	flat := flatModel.FlatModel{
		FlatCode:              ComposeFlatCode(tower.TowerCode, in.Floor, in.UnitNumber),
		FlatTowerID:           tower.TowerID,
		FlatFloor:             in.Floor,
		FlatUnitNumber:        in.UnitNumber,
		FlatOwnerName:         in.OwnerName,
		FlatMaintenanceStatus: flatModel.MaintenanceUnpaid,
	}

	if err := db.Create(&flat).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateFlat
		}
		return nil, err
	}
	return &flat, nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "23505")
}

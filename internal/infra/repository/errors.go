package repository

import (
	"errors"
	"fmt"

	"advse-backend/internal/domain/aggregate"
	repo "advse-backend/internal/repository"

	"gorm.io/gorm"
)

// gorm のエラーを repository の sentinel に寄せる
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return repo.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", repo.ErrConflict, err)
	default:
		return err
	}
}

func toRows(maps []map[string]any) []aggregate.Row {
	rows := make([]aggregate.Row, 0, len(maps))
	for _, m := range maps {
		rows = append(rows, aggregate.Row(m))
	}
	return rows
}

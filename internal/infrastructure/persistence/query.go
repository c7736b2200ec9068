package persistence

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MGTheTrain/travel-marketplace/internal/pkg/apperr"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike quotes the LIKE wildcards in user input. Conditions using it
// must end in likeEscape since SQLite has no default escape character.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

const likeEscape = ` ESCAPE '\'`

// forUpdate row-locks what q selects until the surrounding transaction ends.
// SQLite has no row locks and the driver drops the clause there.
func forUpdate(q *gorm.DB) *gorm.DB {
	return q.Clauses(clause.Locking{Strength: "UPDATE"})
}

// paginate applies the whitelisted sort column and paging of a list query.
// Columns are validated by the domain query structs before they get here.
func paginate(q *gorm.DB, sortBy, sortOrder, defaultSort string, limit, offset int) *gorm.DB {
	if sortBy == "" {
		sortBy = defaultSort
	}
	if sortOrder == "" {
		sortOrder = "asc"
	}
	q = q.Order(fmt.Sprintf("%s %s", sortBy, sortOrder))

	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	return q
}

// translate maps GORM errors onto the apperr kinds
func translate(err error, action, entity, id string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.NotFoundf("%s %s not found", entity, id)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperr.Conflictf("%s %s already exists", entity, id)
	}
	return fmt.Errorf("failed to %s %s: %w", action, entity, err)
}

// updateAll overwrites every column of model and reports a missing row as not found
func updateAll(q *gorm.DB, model interface{}, entity, id string) error {
	res := q.Model(model).Select("*").Updates(model)
	if res.Error != nil {
		return translate(res.Error, "update", entity, id)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf("%s %s not found", entity, id)
	}
	return nil
}

// deleteByID removes the row with id from model's table
func deleteByID(q *gorm.DB, model interface{}, entity, id string) error {
	res := q.Where("id = ?", id).Delete(model)
	if res.Error != nil {
		return translate(res.Error, "delete", entity, id)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf("%s %s not found", entity, id)
	}
	return nil
}

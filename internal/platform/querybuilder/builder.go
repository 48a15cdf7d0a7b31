package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

// writer accumulates SQL text and numbered postgres placeholders.
type writer struct {
	buf  strings.Builder
	args []any
}

func (w *writer) str(s string) {
	w.buf.WriteString(s)
}

func (w *writer) bind(value any) {
	w.args = append(w.args, value)
	w.buf.WriteString("$")
	w.buf.WriteString(strconv.Itoa(len(w.args)))
}

// expr writes raw SQL, binding each '?' to the next value in args.
func (w *writer) expr(raw string, args []any) {
	next := 0
	for i := 0; i < len(raw); i++ {
		if raw[i] == '?' && next < len(args) {
			w.bind(args[next])
			next++
			continue
		}
		w.buf.WriteByte(raw[i])
	}
}

func (w *writer) where(conditions []Condition) {
	if len(conditions) == 0 {
		return
	}
	w.str(" WHERE ")
	for i, c := range conditions {
		if i > 0 {
			w.str(" AND ")
		}
		c.write(w)
	}
}

func (w *writer) list(keyword string, parts []string) {
	if len(parts) == 0 {
		return
	}
	w.str(" ")
	w.str(keyword)
	w.str(" ")
	w.str(strings.Join(parts, ", "))
}

func (w *writer) result() (string, []any, error) {
	return w.buf.String(), w.args, nil
}

type Condition interface {
	write(w *writer)
}

type conditionFunc func(w *writer)

func (f conditionFunc) write(w *writer) { f(w) }

func Eq(column string, value any) Condition {
	return conditionFunc(func(w *writer) {
		w.str(column)
		w.str(" = ")
		w.bind(value)
	})
}

func Gte(column string, value any) Condition {
	return conditionFunc(func(w *writer) {
		w.str(column)
		w.str(" >= ")
		w.bind(value)
	})
}

func Lte(column string, value any) Condition {
	return conditionFunc(func(w *writer) {
		w.str(column)
		w.str(" <= ")
		w.bind(value)
	})
}

// In renders "1=0" for an empty set so the query stays valid.
func In(column string, values []any) Condition {
	return conditionFunc(func(w *writer) {
		if len(values) == 0 {
			w.str("1=0")
			return
		}
		w.str(column)
		w.str(" IN (")
		for i, v := range values {
			if i > 0 {
				w.str(", ")
			}
			w.bind(v)
		}
		w.str(")")
	})
}

func IsNull(column string) Condition {
	return conditionFunc(func(w *writer) {
		w.str(column)
		w.str(" IS NULL")
	})
}

func Expr(raw string, args ...any) Condition {
	return conditionFunc(func(w *writer) {
		w.expr(raw, args)
	})
}

type SelectBuilder struct {
	columns []string
	table   string
	where   []Condition
	orderBy []string
	limit   int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, parts...)
	return b
}

func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("select columns are required")
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("select table is required")
	}

	w := &writer{}
	w.str("SELECT ")
	w.str(strings.Join(b.columns, ", "))
	w.str(" FROM ")
	w.str(b.table)
	w.where(b.where)
	w.list("ORDER BY", b.orderBy)
	if b.limit > 0 {
		w.str(" LIMIT ")
		w.str(strconv.Itoa(b.limit))
	}
	return w.result()
}

type InsertBuilder struct {
	table   string
	columns []string
	rows    [][]any
	suffix  string
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = append([]string(nil), columns...)
	return b
}

func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.rows = append(b.rows, append([]any(nil), values...))
	return b
}

// Suffix appends raw SQL such as ON CONFLICT or RETURNING clauses.
func (b *InsertBuilder) Suffix(sql string) *InsertBuilder {
	b.suffix = strings.TrimSpace(sql)
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("insert table is required")
	}
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("insert columns are required")
	}
	if len(b.rows) == 0 {
		return "", nil, fmt.Errorf("insert values are required")
	}

	w := &writer{}
	w.str("INSERT INTO ")
	w.str(b.table)
	w.str(" (")
	w.str(strings.Join(b.columns, ", "))
	w.str(") VALUES ")
	for rowIdx, row := range b.rows {
		if len(row) != len(b.columns) {
			return "", nil, fmt.Errorf("insert row %d has %d values, expected %d", rowIdx, len(row), len(b.columns))
		}
		if rowIdx > 0 {
			w.str(", ")
		}
		w.str("(")
		for colIdx, value := range row {
			if colIdx > 0 {
				w.str(", ")
			}
			w.bind(value)
		}
		w.str(")")
	}
	if b.suffix != "" {
		w.str(" ")
		w.str(b.suffix)
	}
	return w.result()
}

type assignment struct {
	column string
	value  any
	raw    string
	isRaw  bool
}

type UpdateBuilder struct {
	table string
	sets  []assignment
	where []Condition
}

func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	b.sets = append(b.sets, assignment{column: column, value: value})
	return b
}

// SetRaw assigns a SQL expression such as NOW().
func (b *UpdateBuilder) SetRaw(column, raw string) *UpdateBuilder {
	b.sets = append(b.sets, assignment{column: column, raw: raw, isRaw: true})
	return b
}

func (b *UpdateBuilder) Where(conditions ...Condition) *UpdateBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *UpdateBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("update table is required")
	}
	if len(b.sets) == 0 {
		return "", nil, fmt.Errorf("update sets are required")
	}
	if len(b.where) == 0 {
		return "", nil, fmt.Errorf("update without where is not allowed")
	}

	w := &writer{}
	w.str("UPDATE ")
	w.str(b.table)
	w.str(" SET ")
	for i, s := range b.sets {
		if i > 0 {
			w.str(", ")
		}
		w.str(s.column)
		w.str(" = ")
		if s.isRaw {
			w.str(s.raw)
			continue
		}
		w.bind(s.value)
	}
	w.where(b.where)
	return w.result()
}

type DeleteBuilder struct {
	table string
	where []Condition
}

func DeleteFrom(table string) *DeleteBuilder {
	return &DeleteBuilder{table: table}
}

func (b *DeleteBuilder) Where(conditions ...Condition) *DeleteBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *DeleteBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("delete table is required")
	}
	if len(b.where) == 0 {
		return "", nil, fmt.Errorf("delete without where is not allowed")
	}

	w := &writer{}
	w.str("DELETE FROM ")
	w.str(b.table)
	w.where(b.where)
	return w.result()
}

// Package aggregate は JOIN で平たくなった行を、親1件＋子配列のドキュメントに畳み込む。
//
// 行は「親キーごとに分割 → グループごとに1ドキュメント」の2段で処理する。
// 子グループは Many（配列に集める）と One（親ごとに1件だけ）を呼び出し側が宣言する。
package aggregate

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// 行が1件もない（親が存在しない）
	ErrNotFound = errors.New("aggregate: not found")

	// Single に複数の親キーが混ざっていた
	ErrAmbiguous = errors.New("aggregate: rows belong to more than one parent")
)

// Field は列名と出力キーの対応。
type Field struct {
	Column string
	Key    string
}

// F は列名をそのまま出力キーにする。
func F(column string) Field {
	return Field{Column: column, Key: column}
}

// As は列名を別名で出力する（o.created order_created → created など）。
func As(column, key string) Field {
	return Field{Column: column, Key: key}
}

// Fs は F をまとめて作る。
func Fs(columns ...string) []Field {
	out := make([]Field, 0, len(columns))
	for _, c := range columns {
		out = append(out, F(c))
	}
	return out
}

// Group は子のフィールド群。
// Identity の列がすべて NULL の行は「子なし」（LEFT JOIN の空側）として扱う。
// Identity が空なら Fields の列すべてで判定する。
type Group struct {
	Name     string
	Identity []string
	Fields   []Field
}

// Shape はリソースごとの畳み込み宣言。
type Shape struct {
	// 親キーの列
	Key string

	Fields []Field

	// 配列に集める子（order_items, variants）
	Many []Group

	// 親ごとに1件だけの子（invoice_address など）
	One []Group
}

// Document は1親ぶんの結果。
// Many の各グループは常に non-nil（空配列）。One は子がなければ nil。
type Document struct {
	Fields Row
	Many   map[string][]Row
	One    map[string]Row
}

type state struct {
	doc  Document
	seen map[string]map[string]struct{}
}

// Group は rows を親キーごとに分けて、初出順のドキュメント列にする。
// 親キーが NULL の行は捨てる。
func (s Shape) Group(rows []Row) []Document {
	order := make([]string, 0)
	groups := make(map[string]*state)

	for _, row := range rows {
		pk, ok := keyOf(row, []string{s.Key})
		if !ok {
			continue
		}

		st, exists := groups[pk]
		if !exists {
			st = s.newState(row)
			groups[pk] = st
			order = append(order, pk)
		}

		for _, g := range s.Many {
			id, ok := keyOf(row, g.identityColumns())
			if !ok {
				continue
			}
			//JOINの掛け算で同じ子が繰り返されても1件にする
			if _, dup := st.seen[g.Name][id]; dup {
				continue
			}
			st.seen[g.Name][id] = struct{}{}
			st.doc.Many[g.Name] = append(st.doc.Many[g.Name], project(row, g.Fields))
		}

		for _, g := range s.One {
			if st.doc.One[g.Name] != nil {
				continue
			}
			if _, ok := keyOf(row, g.identityColumns()); !ok {
				continue
			}
			st.doc.One[g.Name] = project(row, g.Fields)
		}
	}

	out := make([]Document, 0, len(order))
	for _, pk := range order {
		out = append(out, groups[pk].doc)
	}
	return out
}

// Single は1親ぶんの rows を1ドキュメントにする。
// rows が空なら ErrNotFound。
func (s Shape) Single(rows []Row) (Document, error) {
	docs := s.Group(rows)
	switch len(docs) {
	case 0:
		return Document{}, ErrNotFound
	case 1:
		return docs[0], nil
	default:
		return Document{}, fmt.Errorf("%w: %d parents", ErrAmbiguous, len(docs))
	}
}

func (s Shape) newState(row Row) *state {
	st := &state{
		doc: Document{
			Fields: project(row, s.Fields),
			Many:   make(map[string][]Row, len(s.Many)),
			One:    make(map[string]Row, len(s.One)),
		},
		seen: make(map[string]map[string]struct{}, len(s.Many)),
	}
	for _, g := range s.Many {
		st.doc.Many[g.Name] = []Row{}
		st.seen[g.Name] = make(map[string]struct{})
	}
	for _, g := range s.One {
		st.doc.One[g.Name] = nil
	}
	return st
}

func (g Group) identityColumns() []string {
	if len(g.Identity) > 0 {
		return g.Identity
	}
	cols := make([]string, 0, len(g.Fields))
	for _, f := range g.Fields {
		cols = append(cols, f.Column)
	}
	return cols
}

func project(row Row, fields []Field) Row {
	out := make(Row, len(fields))
	for _, f := range fields {
		out[f.Key] = row.Value(f.Column)
	}
	return out
}

// keyOf は列の値を連結したキーを返す。すべて NULL なら ok=false。
func keyOf(row Row, cols []string) (string, bool) {
	if len(cols) == 0 {
		return "", false
	}
	parts := make([]string, 0, len(cols))
	allNull := true
	for _, c := range cols {
		v := row.Value(c)
		if v != nil {
			allNull = false
		}
		parts = append(parts, fmt.Sprintf("%v", v))
	}
	if allNull {
		return "", false
	}
	return strings.Join(parts, "\x1f"), true
}

package database

// Atomic multi-statement writes.
//
// SurrealDB has no connection-level transactions over the websocket
// driver, so statements that must land together are accumulated in a
// TxBuilder and sent as one BEGIN TRANSACTION / COMMIT TRANSACTION batch.
// Variables are namespaced per statement ($xp -> $v1_xp) so the same
// query template can appear twice in a batch, e.g. one UPDATE per
// combatant after a duel.

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// TxBuilder accumulates statements for a single atomic batch.
type TxBuilder struct {
	statements []string
	vars       map[string]interface{}
	varCounter int
}

// NewTxBuilder creates a new transaction builder
func NewTxBuilder() *TxBuilder {
	return &TxBuilder{
		statements: make([]string, 0),
		vars:       make(map[string]interface{}),
	}
}

// Add adds a statement to the batch, namespacing its variables to avoid
// collisions with other statements. Longer variable names are replaced
// first so $xp never clobbers $xpToNextLevel.
func (tb *TxBuilder) Add(query string, vars map[string]interface{}) {
	tb.varCounter++

	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return len(names[i]) > len(names[j]) })

	for _, name := range names {
		namespaced := fmt.Sprintf("v%d_%s", tb.varCounter, name)
		query = strings.ReplaceAll(query, "$"+name, "$"+namespaced)
		tb.vars[namespaced] = vars[name]
	}

	tb.statements = append(tb.statements, query)
}

// AddRaw adds a raw statement without variable substitution
func (tb *TxBuilder) AddRaw(query string) {
	tb.statements = append(tb.statements, query)
}

// Build returns the complete transaction query and merged variables
func (tb *TxBuilder) Build() (string, map[string]interface{}) {
	if len(tb.statements) == 0 {
		return "", nil
	}

	var sb strings.Builder
	sb.WriteString("BEGIN TRANSACTION;\n")
	for _, stmt := range tb.statements {
		sb.WriteString(stmt)
		if !strings.HasSuffix(strings.TrimSpace(stmt), ";") {
			sb.WriteString(";")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("COMMIT TRANSACTION;")

	return sb.String(), tb.vars
}

// ExecuteTransaction executes a batch built with TxBuilder. All statements
// succeed or fail together.
func ExecuteTransaction(ctx context.Context, db Database, tb *TxBuilder) ([]interface{}, error) {
	query, vars := tb.Build()
	if query == "" {
		return nil, nil
	}
	return db.Query(ctx, query, vars)
}

package database

import (
	"strings"
	"testing"
)

// ============================================================================
// TxBuilder Tests
// ============================================================================

func TestTxBuilder_Build_Empty(t *testing.T) {
	t.Parallel()

	tb := NewTxBuilder()

	query, vars := tb.Build()
	if query != "" {
		t.Errorf("empty builder should produce no query, got %q", query)
	}
	if vars != nil {
		t.Errorf("empty builder should produce no vars, got %v", vars)
	}
}

func TestTxBuilder_Build_WrapsInTransaction(t *testing.T) {
	t.Parallel()

	tb := NewTxBuilder()
	tb.Add("UPDATE $id SET gold = $gold", map[string]interface{}{
		"id":   "player:jinwoo",
		"gold": 50,
	})

	query, vars := tb.Build()

	if !strings.HasPrefix(query, "BEGIN TRANSACTION;") {
		t.Errorf("query should begin a transaction, got %q", query)
	}
	if !strings.HasSuffix(query, "COMMIT TRANSACTION;") {
		t.Errorf("query should commit the transaction, got %q", query)
	}
	if vars["v1_id"] != "player:jinwoo" {
		t.Errorf("expected namespaced id var, got %v", vars)
	}
	if vars["v1_gold"] != 50 {
		t.Errorf("expected namespaced gold var, got %v", vars)
	}
}

func TestTxBuilder_Add_NamespacesRepeatedTemplates(t *testing.T) {
	t.Parallel()

	tb := NewTxBuilder()
	tb.Add("UPDATE $id SET rating = $rating", map[string]interface{}{
		"id":     "player:jinwoo",
		"rating": 1025,
	})
	tb.Add("UPDATE $id SET rating = $rating", map[string]interface{}{
		"id":     "player:cha",
		"rating": 975,
	})

	query, vars := tb.Build()

	if strings.Contains(query, "$id") {
		t.Errorf("raw $id should have been namespaced, got %q", query)
	}
	if vars["v1_id"] != "player:jinwoo" || vars["v2_id"] != "player:cha" {
		t.Errorf("each statement should get its own vars, got %v", vars)
	}
	if vars["v1_rating"] != 1025 || vars["v2_rating"] != 975 {
		t.Errorf("ratings should not collide, got %v", vars)
	}
}

func TestTxBuilder_Add_LongestVariableWins(t *testing.T) {
	t.Parallel()

	tb := NewTxBuilder()
	tb.Add("UPDATE $id SET xp = $xp, xpToNextLevel = $xpToNextLevel", map[string]interface{}{
		"id":            "player:jinwoo",
		"xp":            10,
		"xpToNextLevel": 200,
	})

	query, vars := tb.Build()

	if !strings.Contains(query, "$v1_xpToNextLevel") {
		t.Errorf("$xpToNextLevel should survive namespacing intact, got %q", query)
	}
	if strings.Contains(query, "$v1_xpToNextLevel,") && !strings.Contains(query, "xp = $v1_xp,") {
		t.Errorf("$xp should still be replaced on its own, got %q", query)
	}
	if vars["v1_xp"] != 10 || vars["v1_xpToNextLevel"] != 200 {
		t.Errorf("unexpected vars: %v", vars)
	}
}

func TestTxBuilder_Build_TerminatesStatements(t *testing.T) {
	t.Parallel()

	tb := NewTxBuilder()
	tb.AddRaw("UPDATE player:jinwoo SET hp = 100")
	tb.AddRaw("UPDATE player:cha SET hp = 90;")

	query, _ := tb.Build()

	lines := strings.Split(query, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", len(lines), query)
	}
	for _, line := range lines {
		if !strings.HasSuffix(strings.TrimSpace(line), ";") {
			t.Errorf("every statement should end with a semicolon, got %q", line)
		}
	}
}
